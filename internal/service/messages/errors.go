package messages

import "errors"

var (
	// ErrMissingFields is returned when name, email or message is empty
	ErrMissingFields = errors.New("messages: name, email and message are required")

	// ErrInvalidEmail is returned for a malformed email address
	ErrInvalidEmail = errors.New("messages: invalid email address")

	// ErrMessageNotFound is returned when the message does not exist
	ErrMessageNotFound = errors.New("messages: message not found")

	// ErrInternal is returned on storage failures
	ErrInternal = errors.New("messages: internal error")
)
