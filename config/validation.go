package config

import (
	"reflect"

	"github.com/go-transduce/transduce/commonerrors"
)

// ValidateEmbedded uses reflection to find embedded structs and validate them
func ValidateEmbedded(cfg Validator) error {
	r := reflect.ValueOf(cfg).Elem()
	for i := 0; i < r.NumField(); i++ {
		f := r.Field(i)
		if f.Kind() == reflect.Struct {
			validator, ok := f.Addr().Interface().(Validator)
			if !ok {
				continue
			}
			err := validator.Validate()
			if err != nil {
				return commonerrors.WrapErrorf(commonerrors.ErrInvalid, err, "field [%v] failed validation", r.Type().Field(i).Name)
			}
		}
	}
	return nil
}

// ConvertValidationError types err as ErrInvalid whilst keeping the original
// description, so configuration failures can be matched like any other error
// kind.
func ConvertValidationError(err error) error {
	if err == nil {
		return nil
	}
	if commonerrors.IsCommonError(err) {
		return err
	}
	return commonerrors.WrapError(commonerrors.ErrInvalid, err, "configuration failed validation")
}
