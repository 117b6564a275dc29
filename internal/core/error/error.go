package errx

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	// SystemErrorMessage is a user-facing fallback when internal errors occur.
	SystemErrorMessage = "internal server error"
	// RedisErrorMessage describes Redis related failures.
	RedisErrorMessage = "redis operation failed"
	// RedisNotFoundMessage describes a missing Redis key.
	RedisNotFoundMessage = "redis key not found"
	// CollaboratorErrorMessage describes a failed LLM collaborator call.
	// Callers recover from it locally with mock output; it never reaches the
	// front end as an error.
	CollaboratorErrorMessage = "llm collaborator call failed"
	// InvalidReferenceMessage describes a reference to an interaction or
	// pending action that does not exist.
	InvalidReferenceMessage = "referenced interaction does not exist"
	// UnsupportedFormatMessage describes an unknown export format.
	UnsupportedFormatMessage = "unsupported export format"
)

// Error wraps an underlying error with an HTTP status and safe message.
type Error struct {
	Err     error
	Status  int
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

// Unwrap exposes the underlying error for errors.Is / errors.As support.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error with the provided information.
func New(err error, status int, message string) *Error {
	return &Error{
		Err:     err,
		Status:  status,
		Message: message,
	}
}

// WrapCollaborator wraps an LLM collaborator failure. The dispatcher matches
// on this to switch to mock output for the affected call only.
func WrapCollaborator(err error) *Error {
	if err == nil {
		return nil
	}
	return New(err, http.StatusBadGateway, CollaboratorErrorMessage)
}

// NewInvalidReference reports a lookup of a non-existent interaction.
func NewInvalidReference(err error) *Error {
	return New(err, http.StatusNotFound, InvalidReferenceMessage)
}

// NewUnsupportedFormat reports an export format the core does not know.
func NewUnsupportedFormat(format string) *Error {
	return New(fmt.Errorf("format %q", format), http.StatusBadRequest, UnsupportedFormatMessage)
}

// Is reports whether the target matches the underlying error or the Error itself.
func (e *Error) Is(target error) bool {
	return errors.Is(e.Err, target)
}

// As allows casting to Error or the wrapped error in a chain.
func (e *Error) As(target any) bool {
	if errors.As(e.Err, target) {
		return true
	}
	if t, ok := target.(**Error); ok {
		*t = e
		return true
	}
	return false
}
