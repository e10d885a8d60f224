package toolbox

// Join2 merges two independent results by applying fn only when both are
// successful. Failure selection is positional: the first failing input
// from the left wins, regardless of the state of the others.
func Join2[A, B, R any](ra Result[A], rb Result[B], fn func(A, B) Result[R]) Result[R] {
	if ra.IsFailure() {
		return FailureFrom[A, R](ra)
	}
	if rb.IsFailure() {
		return FailureFrom[B, R](rb)
	}
	return fn(ra.value, rb.value)
}

// Join3 merges three independent results; see Join2.
func Join3[A, B, C, R any](ra Result[A], rb Result[B], rc Result[C], fn func(A, B, C) Result[R]) Result[R] {
	if ra.IsFailure() {
		return FailureFrom[A, R](ra)
	}
	if rb.IsFailure() {
		return FailureFrom[B, R](rb)
	}
	if rc.IsFailure() {
		return FailureFrom[C, R](rc)
	}
	return fn(ra.value, rb.value, rc.value)
}

// JoinAll merges any number of same-typed results. The values are handed
// to fn in input order only when every result is successful; otherwise the
// first failure from the left is carried over.
func JoinAll[T, R any](results []Result[T], fn func([]T) Result[R]) Result[R] {
	values := make([]T, 0, len(results))
	for _, r := range results {
		if r.IsFailure() {
			return FailureFrom[T, R](r)
		}
		values = append(values, r.value)
	}
	return fn(values)
}
