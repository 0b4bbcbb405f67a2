// Package validation provides extra rules to use alongside
// ozzo-validation's when validating configuration structures.
package validation

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/go-transduce/transduce/commonerrors"
)

// IsNonNegativeDuration validates that a duration is zero or above.
func IsNonNegativeDuration() validation.Rule {
	return validation.By(func(vRaw any) error {
		d, ok := vRaw.(time.Duration)
		if !ok {
			return commonerrors.Newf(commonerrors.ErrInvalid, "unsupported type for duration validation: %T", vRaw)
		}
		if d < 0 {
			return commonerrors.Newf(commonerrors.ErrInvalid, "duration [%v] must not be negative", d)
		}
		return nil
	})
}

// IsStrictlyPositiveDuration validates that a duration is above zero.
func IsStrictlyPositiveDuration() validation.Rule {
	return validation.By(func(vRaw any) error {
		d, ok := vRaw.(time.Duration)
		if !ok {
			return commonerrors.Newf(commonerrors.ErrInvalid, "unsupported type for duration validation: %T", vRaw)
		}
		if d <= 0 {
			return commonerrors.Newf(commonerrors.ErrInvalid, "duration [%v] must be strictly positive", d)
		}
		return nil
	})
}
