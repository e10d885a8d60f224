package toolbox

import (
	"context"
	"errors"
	"reflect"
)

// IsAbsent reports whether v is "no value": a nil interface or a nil
// pointer, map, slice, channel or function hiding behind one. Presence of
// a zero value (0, "", struct{}{}) is not absence.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

// UnwrapAll returns the individual errors joined into err, or a single
// element slice when err is not a joined error.
func UnwrapAll(err error) []error {
	if IsAbsent(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// IsCancellation reports whether err comes from context cancellation or a
// deadline, directly or via a wrapped cause.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
