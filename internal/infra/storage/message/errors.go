package message

import "errors"

var (
	// ErrMessageNotFound is returned when a contact message does not exist
	ErrMessageNotFound = errors.New("message.repository: message not found")

	// ErrBuildQuery is returned when SQL query building fails
	ErrBuildQuery = errors.New("message.repository: failed to build query")

	// ErrExecQuery is returned when SQL query execution fails
	ErrExecQuery = errors.New("message.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("message.repository: failed to scan row")
)
