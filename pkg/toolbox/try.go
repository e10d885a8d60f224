package toolbox

import "fmt"

// Try is a deferred fallible call. Run executes it inside a fault
// boundary: returned errors and raised panics alike become a failed
// Result, never an escaping fault.
type Try[T any] func() (T, error)

// RecoveredPanic is the error wrapped around a panic value that was not
// itself an error.
type RecoveredPanic struct {
	Value any
}

func (p *RecoveredPanic) Error() string {
	return fmt.Sprintf("panic recovered: %v", p.Value)
}

// Run invokes the call. A returned error or a raised panic is converted
// to Failure with the original fault as the Error's cause.
func (t Try[T]) Run() (res Result[T]) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure[T](FromCause(recoveredError(r)))
		}
	}()

	v, err := t()
	if err != nil {
		return FromError[T](err)
	}
	return Success(v)
}

func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return &RecoveredPanic{Value: r}
}

// RunAll runs each call in order and collects the outcomes.
func RunAll[T any](tries []Try[T]) ResultList[T] {
	results := make([]Result[T], 0, len(tries))
	for _, t := range tries {
		results = append(results, t.Run())
	}
	return NewResultList(results)
}
