package errors

import (
	"fmt"

	"github.com/goto/gitsim/internal/errors"
)

const (
	ExitCodeDefault         = 1
	ExitCodeValidationError = 30
)

// CmdError is a custom error type for command errors, it will contain the error and the exit code
type CmdError struct {
	Cause error
	Code  int
}

func (e *CmdError) Error() string { return e.Cause.Error() }

func (e *CmdError) Unwrap() error { return e.Cause }

func NewCmdError(cause error, code int) *CmdError {
	return &CmdError{
		Cause: cause,
		Code:  code,
	}
}

func NewValidationErrorf(format string, args ...any) *CmdError {
	return NewCmdError(fmt.Errorf(format, args...), ExitCodeValidationError)
}

// FromDomainError maps rejected input, bad shapes and missing paths, to the
// validation exit code. Other errors are returned untouched.
func FromDomainError(err error) error {
	if err == nil {
		return nil
	}
	if errors.IsErrorType(err, errors.ErrInvalidArgument) || errors.IsErrorType(err, errors.ErrNotFound) {
		return NewCmdError(err, ExitCodeValidationError)
	}
	return err
}
