package catalog

import "errors"

var (
	// ErrMissingTitle is returned when a service is saved without a title
	ErrMissingTitle = errors.New("catalog: title is required")

	// ErrServiceNotFound is returned when the service does not exist
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("catalog: internal error")
)
