package github

import (
	"errors"
	"fmt"
	"time"
)

// Outcome classifies the result of a GitHub API call.
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeNotFound    Outcome = "not_found"
	OutcomeRateLimited Outcome = "rate_limited"
	OutcomeFailure     Outcome = "failure"
)

// OutcomeOf maps an error returned by the client to its Outcome.
func OutcomeOf(err error) Outcome {
	if err == nil {
		return OutcomeOK
	}

	var notFound *NotFoundError
	if errors.As(err, &notFound) {
		return OutcomeNotFound
	}

	var rateLimit *RateLimitError
	if errors.As(err, &rateLimit) {
		return OutcomeRateLimited
	}

	return OutcomeFailure
}

// GitHubError covers transport failures (StatusCode 0) and unexpected statuses.
type GitHubError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *GitHubError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GitHub API error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("GitHub API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *GitHubError) Unwrap() error {
	return e.Err
}

// RateLimitError represents when we hit GitHub's rate limits
type RateLimitError struct {
	StatusCode int
	ResetTime  time.Time
	Limit      int
	Remaining  int
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("GitHub API rate limit exceeded (status %d). Reset at %v. Limit: %d, Remaining: %d",
		e.StatusCode, e.ResetTime, e.Limit, e.Remaining)
}

// NotFoundError represents a 404 from the API
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Resource)
}

// ValidationError represents invalid input to GitHub client methods
type ValidationError struct {
	Field string
	Value string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: invalid %s: %s", e.Field, e.Value)
}

// NewGitHubError creates a new GitHubError with the given status code and message
func NewGitHubError(statusCode int, message string, err error) error {
	return &GitHubError{
		StatusCode: statusCode,
		Message:    message,
		Err:        err,
	}
}

// NewRateLimitError creates a new RateLimitError
func NewRateLimitError(statusCode int, info RateLimitInfo) error {
	return &RateLimitError{
		StatusCode: statusCode,
		ResetTime:  info.ResetTime,
		Limit:      info.Limit,
		Remaining:  info.Remaining,
	}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, value string) error {
	return &ValidationError{
		Field: field,
		Value: value,
	}
}
