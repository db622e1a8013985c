package notifier

import "errors"

var (
	// ErrInternal is returned on request build or transport failures
	ErrInternal = errors.New("notifier client: internal error")

	// ErrInvalidResponse is returned when the webhook answers with a
	// non-2xx status
	ErrInvalidResponse = errors.New("notifier client: invalid response")
)
