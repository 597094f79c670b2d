package validate

import "reflect"

// IsNil reports whether payload is a nil pointer, map, slice or interface.
// A JSON body of null decodes into such a value when T is a pointer type,
// and strategies report it as a missing payload instead of calling
// methods on it.
func IsNil(payload any) bool {
	rv := reflect.ValueOf(payload)
	switch rv.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
