package simpletxmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	errInternal := errors.New("booking.repository: failed to execute query")

	assert.True(t, isRetryable(&pq.Error{Code: "40001"}))
	assert.True(t, isRetryable(&pq.Error{Code: "40P01"}))
	assert.False(t, isRetryable(errors.New("boom")))

	// A conflict raised inside the transaction body arrives wrapped by the
	// repository and still has to trigger a retry
	wrapped := fmt.Errorf("%w: Create - execute insert: %w",
		errInternal, &pq.Error{Code: "40001"})
	assert.True(t, isRetryable(wrapped))
}
