package badge

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a failed build.
type ErrorCode string

const (
	ErrUnknownStyle ErrorCode = "UNKNOWN_STYLE" // caller supplied a style token that names no variant
	ErrInternal     ErrorCode = "INTERNAL"      // broken invariant; a bug, not bad input
)

// BuildError is returned by Builder.Build.
type BuildError struct {
	Code    ErrorCode
	Field   string
	Message string
	Err     error
}

func (e *BuildError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *BuildError) Unwrap() error { return e.Err }

func newUnknownStyle(err error) *BuildError {
	return &BuildError{
		Code:    ErrUnknownStyle,
		Field:   "style",
		Message: err.Error(),
		Err:     err,
	}
}

func newInternal(msg string) *BuildError {
	return &BuildError{
		Code:    ErrInternal,
		Message: msg,
	}
}

// IsCode reports whether err is a BuildError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var be *BuildError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
