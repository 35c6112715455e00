package jsonmodel

import "reflect"

// IsNull reports whether value carries no data: an untyped nil or a typed
// nil pointer, map, slice or interface. Handy when a decoded JSON null may
// arrive in either form.
func IsNull(value interface{}) bool {
	if value == nil {
		return true
	}
	switch rValue := reflect.ValueOf(value); rValue.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rValue.IsNil()
	}
	return false
}

// IsNullString reports whether value is null or not a string at all.
func IsNullString(value interface{}) bool {
	if IsNull(value) {
		return true
	}
	_, ok := value.(string)
	return !ok
}
