package dto

import "fmt"

// Typed errors returned by the service layer. Controllers map these onto
// HTTP status codes; anything else is treated as a 500.

// ValidationError signals a bad input shape or range: empty meal/day
// selections, reversed date ranges, pause dates outside the subscription
// window.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError signals that a referenced record does not exist or is not
// owned by the caller. Ownership misses are deliberately indistinguishable
// from missing records.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ConflictError signals a state conflict, e.g. creating a subscription while
// another one is still active.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// UnauthenticatedError signals a missing or unusable identity.
type UnauthenticatedError struct{}

func (e *UnauthenticatedError) Error() string {
	return "user not authenticated"
}

// UpstreamError wraps a failed record-store or payment-gateway call. The
// caller may retry the whole operation.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func NewUpstreamError(op string, err error) *UpstreamError {
	return &UpstreamError{Op: op, Err: err}
}
