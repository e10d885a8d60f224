package toolbox

// Flatten extracts the present values from a sequence of Maybe, dropping
// absent entries and preserving order.
func Flatten[T any](ms []Maybe[T]) []T {
	out := make([]T, 0, len(ms))
	for _, m := range ms {
		if m.present {
			out = append(out, m.value)
		}
	}
	return out
}

// FlattenOr extracts all values from a sequence of Maybe, substituting the
// given value for absent entries.
func FlattenOr[T any](ms []Maybe[T], substitute T) []T {
	out := make([]T, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Reduce(substitute))
	}
	return out
}

// WhereSome filters a sequence of Maybe by a predicate applied to present
// values only. Absent entries are dropped from the output, never passed
// through.
func WhereSome[T any](ms []Maybe[T], pred func(T) bool) []Maybe[T] {
	out := make([]Maybe[T], 0, len(ms))
	for _, m := range ms {
		if m.If(pred) {
			out = append(out, m)
		}
	}
	return out
}
