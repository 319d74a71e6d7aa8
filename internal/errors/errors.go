package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrInvalidInput   ErrorType = "INVALID_INPUT"
	ErrNotFound       ErrorType = "NOT_FOUND"
	ErrRateLimit      ErrorType = "RATE_LIMIT"
	ErrUpstream       ErrorType = "UPSTREAM"
	ErrNoRepositories ErrorType = "NO_REPOSITORIES"
	ErrInternal       ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type      ErrorType
	Message   string
	Cause     error
	Timestamp time.Time
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:      errType,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

// TypeOf returns the type of the first AppError in err's chain, or ErrInternal.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrInternal
}

// MessageOf returns the human readable message of the first AppError in err's chain.
func MessageOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

func is(err error, t ErrorType) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == t
}

// IsInvalidInput checks if the error is an invalid input error
func IsInvalidInput(err error) bool {
	return is(err, ErrInvalidInput)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return is(err, ErrNotFound)
}

// IsRateLimit checks if the error is a rate limit error
func IsRateLimit(err error) bool {
	return is(err, ErrRateLimit)
}

// IsUpstream checks if the error is a transport or other upstream failure
func IsUpstream(err error) bool {
	return is(err, ErrUpstream)
}

// IsNoRepositories checks if commit aggregation had nothing to analyze
func IsNoRepositories(err error) bool {
	return is(err, ErrNoRepositories)
}

// NewValidationError creates a new validation error
func NewValidationError(message string, err error) *AppError {
	return New(ErrInvalidInput, message, err)
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string, err error) *AppError {
	return New(ErrNotFound, message, err)
}

// NewRateLimitError creates a new rate limit error
func NewRateLimitError(message string, err error) *AppError {
	return New(ErrRateLimit, message, err)
}

// NewUpstreamError creates a new upstream failure
func NewUpstreamError(message string, err error) *AppError {
	return New(ErrUpstream, message, err)
}

// NewNoRepositoriesError creates the error raised when no repository can be analyzed
func NewNoRepositoriesError(message string) *AppError {
	return New(ErrNoRepositories, message, nil)
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return New(ErrInternal, message, err)
}
