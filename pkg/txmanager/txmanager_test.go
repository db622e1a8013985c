package txmanager

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsRetryable(t *testing.T) {
	errInternal := errors.New("booking.repository: failed to execute query")

	tests := []struct {
		name      string
		err       error
		retryable bool
	}{
		{
			name:      "serialization failure",
			err:       &pq.Error{Code: "40001"},
			retryable: true,
		},
		{
			name:      "deadlock",
			err:       &pq.Error{Code: "40P01"},
			retryable: true,
		},
		{
			name:      "other sql state",
			err:       &pq.Error{Code: "23505"},
			retryable: false,
		},
		{
			name:      "plain error",
			err:       errors.New("boom"),
			retryable: false,
		},
		{
			name: "serialization failure wrapped by a repository",
			err: fmt.Errorf("%w: GetForSlot - execute query: %w",
				errInternal, &pq.Error{Code: "40001"}),
			retryable: true,
		},
		{
			name: "serialization failure wrapped twice",
			err: fmt.Errorf("create: %w",
				fmt.Errorf("%w: Create - execute insert: %w",
					errInternal, &pq.Error{Code: "40001"})),
			retryable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.retryable, isRetryable(tt.err))
		})
	}
}
