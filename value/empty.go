// Package value provides checks over values of unknown type.
package value

import (
	"reflect"
	"strings"
)

// IsEmpty states whether a value is empty i.e. nil, "", 0, false, an empty
// collection or a pointer to any of those. A string counts as empty when it
// only contains whitespace.
func IsEmpty(value any) bool {
	if value == nil {
		return true
	}
	if str, ok := value.(string); ok {
		return len(strings.TrimSpace(str)) == 0
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return true
		}
		return IsEmpty(v.Elem().Interface())
	default:
		return v.IsZero()
	}
}
