package result

import "reflect"

// IsNil reports whether err is nil, including the non-nil interface
// around a nil pointer that plain err == nil misses.
func IsNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func deepEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
