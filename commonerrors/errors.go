// Package commonerrors defines the error kinds used across the module so that
// failures can be matched on type rather than on message contents.
package commonerrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrUndefined      = errors.New("undefined")
	ErrInvalid        = errors.New("invalid")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnexpected     = errors.New("unexpected")
	ErrNotFound       = errors.New("not found")
	ErrTimeout        = errors.New("timeout")
	ErrCancelled      = errors.New("cancelled")
	ErrConflict       = errors.New("conflict")
	ErrEOF            = errors.New("end of stream")
	// ErrBackpressure is raised when a bounded stage cannot accept further
	// input within the time allowed. It is distinct from ErrCancelled and
	// ErrTimeout so that callers can tell a saturated pipeline apart from a
	// caller-initiated stop.
	ErrBackpressure = errors.New("backpressure")
	// ErrContract flags a violation of a runtime protocol, e.g. stepping a
	// reduction which has already terminated.
	ErrContract = errors.New("contract violation")
)

// Any determines whether the target error is of the same type as any of the errors provided.
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None determines whether the target error is of a different type from all the errors provided.
func None(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return false
		}
	}
	return true
}

// CorrespondTo determines whether the target error corresponds to any of the
// descriptions provided. The match is case-insensitive and succeeds if the
// error's message contains a description.
func CorrespondTo(target error, description ...string) bool {
	if target == nil {
		return false
	}
	desc := strings.ToLower(target.Error())
	for i := range description {
		d := strings.ToLower(description[i])
		if desc == d || strings.Contains(desc, d) {
			return true
		}
	}
	return false
}

// New returns an error of type targetError with the description provided.
func New(targetError error, description string) error {
	return fmt.Errorf("%w: %v", targetError, description)
}

// Newf returns an error of type targetError with the formatted description provided.
func Newf(targetError error, format string, args ...any) error {
	return fmt.Errorf("%w: %v", targetError, fmt.Sprintf(format, args...))
}

// WrapError wraps err into an error of type targetError whilst retaining the
// original error for inspection with errors.Is/errors.As.
func WrapError(targetError error, err error, description string) error {
	if err == nil {
		return New(targetError, description)
	}
	if description == "" {
		return fmt.Errorf("%w: %w", targetError, err)
	}
	return fmt.Errorf("%w: %v: %w", targetError, description, err)
}

// WrapErrorf is similar to WrapError but accepts a format description.
func WrapErrorf(targetError error, err error, format string, args ...any) error {
	return WrapError(targetError, err, fmt.Sprintf(format, args...))
}

// WrapIfNotCommonError wraps err into targetError unless err is already typed
// with one of the kinds defined in this package, in which case it is returned
// unchanged so the original kind is preserved.
func WrapIfNotCommonError(targetError error, err error, description string) error {
	if IsCommonError(err) {
		return err
	}
	return WrapError(targetError, err, description)
}

// IsCommonError states whether err is typed with one of the kinds defined in this package.
func IsCommonError(err error) bool {
	return Any(err, ErrNotImplemented, ErrUndefined, ErrInvalid, ErrUnsupported, ErrUnexpected,
		ErrNotFound, ErrTimeout, ErrCancelled, ErrConflict, ErrEOF, ErrBackpressure, ErrContract)
}

// Ignore returns nil if the target error is of the same type as any of the errors provided.
func Ignore(target error, ignore ...error) error {
	if Any(target, ignore...) {
		return nil
	}
	return target
}

// ConvertContextError converts a context error into one of the error kinds
// defined in this package.
func ConvertContextError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return ErrCancelled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return err
}

// DetermineContextError determines whether the context has been cancelled or
// has expired and returns the corresponding error kind, or nil otherwise.
func DetermineContextError(ctx context.Context) error {
	return ConvertContextError(ctx.Err())
}

// UndefinedVariable returns an ErrUndefined error describing the missing variable.
func UndefinedVariable(variableName string) error {
	return Newf(ErrUndefined, "%v is not set", variableName)
}

// UndefinedParameter returns an ErrUndefined error with the description provided.
func UndefinedParameter(description string) error {
	return New(ErrUndefined, description)
}
