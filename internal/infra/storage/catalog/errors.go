package catalog

import "errors"

var (
	// ErrServiceNotFound is returned when a service does not exist
	ErrServiceNotFound = errors.New("catalog.repository: service not found")

	// ErrBuildQuery is returned when SQL query building fails
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")

	// ErrExecQuery is returned when SQL query execution fails
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
