package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{"app error", NewNotFoundError("User not found", nil), ErrNotFound},
		{"wrapped app error", fmt.Errorf("search: %w", NewRateLimitError("limited", nil)), ErrRateLimit},
		{"plain error", fmt.Errorf("boom"), ErrInternal},
		{"nil", nil, ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeOf(tt.err))
		})
	}
}

func TestPredicates(t *testing.T) {
	cause := fmt.Errorf("status 500")
	err := fmt.Errorf("wrapped: %w", NewUpstreamError("Failed to fetch repositories", cause))

	assert.True(t, IsUpstream(err))
	assert.False(t, IsNotFound(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Failed to fetch repositories", MessageOf(err))

	assert.True(t, IsInvalidInput(NewValidationError("Please enter a GitHub username", nil)))
	assert.True(t, IsNoRepositories(NewNoRepositoriesError("none")))
	assert.Equal(t, "plain", MessageOf(fmt.Errorf("plain")))
}

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "NOT_FOUND: User not found", NewNotFoundError("User not found", nil).Error())
	assert.Equal(t,
		"UPSTREAM: Failed to fetch user data (caused by: eof)",
		NewUpstreamError("Failed to fetch user data", fmt.Errorf("eof")).Error(),
	)
}
