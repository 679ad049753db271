package errors

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when the Urban API reports 404 for an entity.
type NotFoundError struct {
	Method string
	Path   string
	Body   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s returned NOT FOUND: %s", e.Method, e.Path, e.Body)
}

// Is enables errors.Is() comparison for NotFoundError regardless of request details
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// BadRequestError is returned when the Urban API reports 400.
type BadRequestError struct {
	Method string
	Path   string
	Body   string
}

func (e *BadRequestError) Error() string {
	return fmt.Sprintf("%s %s returned BAD REQUEST: %s", e.Method, e.Path, e.Body)
}

// Is enables errors.Is() comparison for BadRequestError
func (e *BadRequestError) Is(target error) bool {
	_, ok := target.(*BadRequestError)
	return ok
}

// ConflictError is returned when the Urban API reports 409, typically because
// the base scenario link already exists.
type ConflictError struct {
	Method string
	Path   string
	Body   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %s returned CONFLICT: %s", e.Method, e.Path, e.Body)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	_, ok := target.(*ConflictError)
	return ok
}

// InvalidStatusCodeError is returned for any non-2xx status outside the mapped set.
type InvalidStatusCodeError struct {
	Method string
	Path   string
	Status int
}

func (e *InvalidStatusCodeError) Error() string {
	return fmt.Sprintf("%s %s returned unexpected status: %d", e.Method, e.Path, e.Status)
}

// Is enables errors.Is() comparison for InvalidStatusCodeError
func (e *InvalidStatusCodeError) Is(target error) bool {
	_, ok := target.(*InvalidStatusCodeError)
	return ok
}

// ConnectionError is returned when the request never produced an HTTP response.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("error on connection to Urban API: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Is enables errors.Is() comparison for ConnectionError
func (e *ConnectionError) Is(target error) bool {
	_, ok := target.(*ConnectionError)
	return ok
}

// TimeoutError is returned when a request exceeded its timeout budget.
type TimeoutError struct {
	Err error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout expired on Urban API request: %v", e.Err)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// Is enables errors.Is() comparison for TimeoutError
func (e *TimeoutError) Is(target error) bool {
	_, ok := target.(*TimeoutError)
	return ok
}

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsBadRequest checks if an error is a BadRequestError
func IsBadRequest(err error) bool {
	var badRequestErr *BadRequestError
	return errors.As(err, &badRequestErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsInvalidStatusCode checks if an error is an InvalidStatusCodeError
func IsInvalidStatusCode(err error) bool {
	var statusErr *InvalidStatusCodeError
	return errors.As(err, &statusErr)
}

// IsConnection checks if an error is a ConnectionError
func IsConnection(err error) bool {
	var connErr *ConnectionError
	return errors.As(err, &connErr)
}

// IsTimeout checks if an error is a TimeoutError
func IsTimeout(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}
