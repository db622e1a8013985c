package settings

import "errors"

var (
	// ErrSettingNotFound is returned when a key has no stored value
	ErrSettingNotFound = errors.New("settings.repository: setting not found")

	// ErrBuildQuery is returned when SQL query building fails
	ErrBuildQuery = errors.New("settings.repository: failed to build query")

	// ErrExecQuery is returned when SQL query execution fails
	ErrExecQuery = errors.New("settings.repository: failed to execute query")

	// ErrScanRow is returned when scanning a result row fails
	ErrScanRow = errors.New("settings.repository: failed to scan row")
)
