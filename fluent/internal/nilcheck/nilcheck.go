// Package nilcheck reports nil-ness for values received as any, so assertion
// entry points can treat typed nils (a nil *ByteBuffer inside an interface) the
// same as a literal nil.
package nilcheck

import "reflect"

// IsNil reports whether value is nil, including typed-nil interfaces.
func IsNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)

	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
