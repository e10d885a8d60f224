package toolbox

// Bind applies a Result-returning function to a successful value. A
// failed input short-circuits, propagating the original error unchanged
// without invoking fn.
func Bind[In, Out any](r Result[In], fn func(In) Result[Out]) Result[Out] {
	if r.succeeded {
		return fn(r.value)
	}
	return FailureFrom[In, Out](r)
}

// Map transforms a successful value, propagating failure otherwise. The
// function is not invoked on failure.
func Map[In, Out any](r Result[In], fn func(In) Out) Result[Out] {
	if r.succeeded {
		return Success(fn(r.value))
	}
	return FailureFrom[In, Out](r)
}

// Match eliminates a Result: exactly one of the two functions is applied.
func Match[In, Out any](r Result[In], onSuccess func(In) Out, onFailure func(Error) Out) Out {
	if r.succeeded {
		return onSuccess(r.value)
	}
	return onFailure(r.fault)
}
