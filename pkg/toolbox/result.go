package toolbox

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Result represents the outcome of an operation that either succeeded
// with a value or failed with an Error. Exactly one of the two holds.
// Every result carries an id and a creation timestamp for traceability.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	fault     Error
	succeeded bool
}

// Success creates a successful Result. It panics when value is absent —
// a success must carry a witnessed value.
func Success[T any](value T) Result[T] {
	if IsAbsent(value) {
		panic("toolbox: Success requires a present value, got nil")
	}
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     value,
		succeeded: true,
	}
}

// Failure creates a failed Result carrying the given Error. It panics on
// a zero-value Error.
func Failure[T any](fault Error) Result[T] {
	fault.ensureDefined()
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		fault:     fault,
	}
}

// FromValue is the explicit replacement for an implicit value-to-Result
// conversion. It is equivalent to Success.
func FromValue[T any](value T) Result[T] {
	return Success(value)
}

// FromError creates a failed Result from any Go error. An Error passes
// through unchanged; anything else is wrapped via FromCause.
func FromError[T any](err error) Result[T] {
	var fault Error
	if errors.As(err, &fault) {
		return Failure[T](fault)
	}
	return Failure[T](FromCause(err))
}

// FailureFrom carries a failure over to a new value type, preserving the
// original error, id and creation time. It panics when from is successful.
func FailureFrom[In, Out any](from Result[In]) Result[Out] {
	if from.succeeded {
		panic("toolbox: FailureFrom requires a failed result")
	}
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		fault:     from.fault,
	}
}

// IsSuccess reports whether the result holds a value.
func (r Result[T]) IsSuccess() bool {
	return r.succeeded
}

// IsFailure reports whether the result holds an Error.
func (r Result[T]) IsFailure() bool {
	return !r.succeeded
}

// Value returns the success value. It panics on failure; use Match or
// ToMaybe to consume a Result safely.
func (r Result[T]) Value() T {
	if !r.succeeded {
		panic("toolbox: Value called on a failed result: " + r.fault.Error())
	}
	return r.value
}

// Fault returns the Error of a failed result. It panics on success.
func (r Result[T]) Fault() Error {
	if r.succeeded {
		panic("toolbox: Fault called on a successful result")
	}
	return r.fault
}

// Id returns the result's identity.
func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// CreatedAt returns the creation time (UTC).
func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

// Ensure re-checks a successful value against pred and converts it to a
// failure carrying the caller-supplied fault when the predicate does not
// hold. A failed input passes through untouched and pred is not evaluated.
func (r Result[T]) Ensure(pred func(T) bool, fault Error) Result[T] {
	fault.ensureDefined()
	if !r.succeeded {
		return r
	}
	if !pred(r.value) {
		return Failure[T](fault)
	}
	return r
}

// Tap invokes action on the success value and returns the instance
// unchanged. It does nothing on failure.
func (r Result[T]) Tap(action func(T)) Result[T] {
	if r.succeeded {
		action(r.value)
	}
	return r
}

// TapFailure invokes action on the Error of a failed result and returns
// the instance unchanged. It does nothing on success.
func (r Result[T]) TapFailure(action func(Error)) Result[T] {
	if !r.succeeded {
		action(r.fault)
	}
	return r
}

// ToMaybe maps success to Some and failure to None. Error information is
// discarded in this direction by design.
func (r Result[T]) ToMaybe() Maybe[T] {
	if r.succeeded {
		return Some(r.value)
	}
	return None[T]()
}
