package toolbox

import (
	"cmp"
	"reflect"
)

// Maybe represents a value or the deliberate absence of one. Absence is
// distinct from holding the type's zero value: Some(0) is present and
// default, None is neither.
type Maybe[T any] struct {
	value   T
	present bool
}

// Some creates a present Maybe. It panics when value is absent (a nil
// pointer, interface, map, slice, channel or function) — presence must be
// witnessed by a real value.
func Some[T any](value T) Maybe[T] {
	if IsAbsent(value) {
		panic("toolbox: Some requires a present value, got nil")
	}
	return Maybe[T]{value: value, present: true}
}

// None creates an absent Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// IsSome reports whether a value is present.
func (m Maybe[T]) IsSome() bool {
	return m.present
}

// IsNone reports whether the value is absent.
func (m Maybe[T]) IsNone() bool {
	return !m.present
}

// IsDefault reports whether a present value equals the zero value of T.
// It is orthogonal to presence and always false for None.
func (m Maybe[T]) IsDefault() bool {
	if !m.present {
		return false
	}
	var zero T
	return reflect.DeepEqual(m.value, zero)
}

// Value returns the contained value. It panics on None; use Reduce or
// MatchMaybe to consume a Maybe safely.
func (m Maybe[T]) Value() T {
	if !m.present {
		panic("toolbox: Value called on None")
	}
	return m.value
}

// Filter keeps a present value that satisfies pred, otherwise None.
func (m Maybe[T]) Filter(pred func(T) bool) Maybe[T] {
	if m.present && pred(m.value) {
		return m
	}
	return None[T]()
}

// If reports whether a present value satisfies pred. Always false on None.
func (m Maybe[T]) If(pred func(T) bool) bool {
	return m.present && pred(m.value)
}

// Reduce returns the contained value or the given substitute.
func (m Maybe[T]) Reduce(substitute T) T {
	if m.present {
		return m.value
	}
	return substitute
}

// ReduceWith returns the contained value or computes the substitute
// lazily. The substitute function is not invoked when a value is present.
func (m Maybe[T]) ReduceWith(substitute func() T) T {
	if m.present {
		return m.value
	}
	return substitute()
}

// TapIfSome invokes action on a present value and returns the instance
// unchanged.
func (m Maybe[T]) TapIfSome(action func(T)) Maybe[T] {
	if m.present {
		action(m.value)
	}
	return m
}

// TapIfNone invokes action on absence and returns the instance unchanged.
func (m Maybe[T]) TapIfNone(action func()) Maybe[T] {
	if !m.present {
		action()
	}
	return m
}

// MatchMaybe eliminates a Maybe eagerly: exactly one of the two functions
// is applied.
func MatchMaybe[T, R any](m Maybe[T], onSome func(T) R, onNone func() R) R {
	if m.present {
		return onSome(m.value)
	}
	return onNone()
}

// MapSome transforms a present value, propagating None otherwise. The
// function is not invoked on absence.
func MapSome[T, R any](m Maybe[T], fn func(T) R) Maybe[R] {
	if m.present {
		return Some(fn(m.value))
	}
	return None[R]()
}

// BindMaybe applies a Maybe-returning function to a present value,
// propagating None otherwise. The function is not invoked on absence.
func BindMaybe[T, R any](m Maybe[T], fn func(T) Maybe[R]) Maybe[R] {
	if m.present {
		return fn(m.value)
	}
	return None[R]()
}

// CompareMaybe orders two Maybe values: None sorts before Some, and two
// present values delegate to the natural ordering of T.
func CompareMaybe[T cmp.Ordered](a, b Maybe[T]) int {
	switch {
	case a.present && b.present:
		return cmp.Compare(a.value, b.value)
	case a.present:
		return 1
	case b.present:
		return -1
	default:
		return 0
	}
}
