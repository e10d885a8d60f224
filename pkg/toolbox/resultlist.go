package toolbox

// ResultList is an ordered, fixed-size sequence of Result built from an
// input sequence or from a single upfront Error. Immutable once
// constructed.
type ResultList[T any] struct {
	items  []Result[T]
	fault  Error
	failed bool
}

// NewResultList builds a list from individual results. The input slice is
// copied.
func NewResultList[T any](results []Result[T]) ResultList[T] {
	items := make([]Result[T], len(results))
	copy(items, results)
	return ResultList[T]{items: items}
}

// ListFromValues builds a list of successes from plain values.
func ListFromValues[T any](values []T) ResultList[T] {
	items := make([]Result[T], 0, len(values))
	for _, v := range values {
		items = append(items, Success(v))
	}
	return ResultList[T]{items: items}
}

// ListFromError builds an empty sequence flagged as a whole-list failure.
func ListFromError[T any](fault Error) ResultList[T] {
	fault.ensureDefined()
	return ResultList[T]{fault: fault, failed: true}
}

// IsSuccess is the logical AND across all elements, false for a list
// built from an upfront error.
func (l ResultList[T]) IsSuccess() bool {
	if l.failed {
		return false
	}
	for _, r := range l.items {
		if r.IsFailure() {
			return false
		}
	}
	return true
}

// Len returns the number of elements.
func (l ResultList[T]) Len() int {
	return len(l.items)
}

// At returns the element at index i.
func (l ResultList[T]) At(i int) Result[T] {
	return l.items[i]
}

// Results returns a copy of the underlying sequence.
func (l ResultList[T]) Results() []Result[T] {
	out := make([]Result[T], len(l.items))
	copy(out, l.items)
	return out
}

// Fault returns the whole-list error, or the first failing element's
// error from the left, or None when the list is successful.
func (l ResultList[T]) Fault() Maybe[Error] {
	if l.failed {
		return Some(l.fault)
	}
	for _, r := range l.items {
		if r.IsFailure() {
			return Some(r.fault)
		}
	}
	return None[Error]()
}

// Values returns all success values in order, or None when any element
// failed.
func (l ResultList[T]) Values() Maybe[[]T] {
	if l.failed {
		return None[[]T]()
	}
	values := make([]T, 0, len(l.items))
	for _, r := range l.items {
		if r.IsFailure() {
			return None[[]T]()
		}
		values = append(values, r.value)
	}
	return Some(values)
}
