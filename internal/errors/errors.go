package errors

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorType string

const (
	ErrInvalidArgument ErrorType = "Invalid Argument"
	ErrNotFound        ErrorType = "Not Found"
	ErrInternalError   ErrorType = "Internal Error"
)

func (e ErrorType) String() string {
	return string(e)
}

// DomainError carries the kind of failure and the entity it happened on,
// callers use the ErrorType to decide how to surface it.
type DomainError struct {
	ErrorType  ErrorType
	Entity     string
	Message    string
	WrappedErr error
}

func (e *DomainError) Error() string {
	msg := fmt.Sprintf("%s for entity %s: %s", strings.ToLower(e.ErrorType.String()), e.Entity, e.Message)
	if e.WrappedErr != nil {
		return msg + ": " + e.WrappedErr.Error()
	}
	return msg
}

func (e *DomainError) Unwrap() error {
	return e.WrappedErr
}

func NewError(errType ErrorType, entity, msg string) *DomainError {
	return &DomainError{
		ErrorType: errType,
		Entity:    entity,
		Message:   msg,
	}
}

func InvalidArgument(entity, msg string) *DomainError {
	return NewError(ErrInvalidArgument, entity, msg)
}

func NotFound(entity, msg string) *DomainError {
	return NewError(ErrNotFound, entity, msg)
}

func InternalError(entity, msg string, err error) *DomainError {
	return &DomainError{
		ErrorType:  ErrInternalError,
		Entity:     entity,
		Message:    msg,
		WrappedErr: err,
	}
}

// Wrap keeps the type of an existing domain error, anything else becomes an internal error
func Wrap(entity, msg string, err error) error {
	if err == nil {
		return nil
	}

	var de *DomainError
	if errors.As(err, &de) {
		return &DomainError{
			ErrorType:  de.ErrorType,
			Entity:     entity,
			Message:    msg,
			WrappedErr: err,
		}
	}
	return InternalError(entity, msg, err)
}

func IsErrorType(err error, errType ErrorType) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.ErrorType == errType
	}
	return false
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}
