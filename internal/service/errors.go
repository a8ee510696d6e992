package service

import "errors"

// ErrValidation marks user-facing input errors (400). The concrete error
// message is shown to the caller verbatim, so handlers match the sentinel
// with errors.Is and forward err.Error() as-is.
var ErrValidation = errors.New("validation")

type validationError struct {
	msg string
}

func (e *validationError) Error() string { return e.msg }

func (e *validationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error { return &validationError{msg: msg} }
