package settings

import "errors"

var (
	// ErrNoValidKeys is returned when an update carries no allow-listed keys
	ErrNoValidKeys = errors.New("settings: no valid settings to update")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("settings: internal error")
)
