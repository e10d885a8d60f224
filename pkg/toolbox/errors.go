package toolbox

import (
	"errors"
	"fmt"
	"strings"
)

// Reserved code bands. Callers may assign their own positive codes; these
// are the conventional ones the classification predicates understand.
const (
	CodeNone       = 0
	CodeGeneric    = 1
	CodeValidation = 400
	CodeNotFound   = 404
	CodeInternal   = 500
)

const defaultErrorName = "Error"

// Error is an immutable structured failure: a positive code, a short
// machine-friendly name, a human-readable message and an optional cause.
// It implements the standard error interface.
//
// The zero value is deliberately unusable; every instance must come from
// NewError, NamedError, CodedError, FromMessage or FromCause. Any method
// called on a zero Error panics.
type Error struct {
	code    int
	name    string
	message string
	cause   error
	defined bool
}

// ErrNone is the reserved "no error" sentinel, the only instance allowed
// to carry code zero.
var ErrNone = Error{code: CodeNone, name: "None", message: "none", defined: true}

// NewError creates an Error with the default name and generic code.
// It panics if message is empty or whitespace.
func NewError(message string) Error {
	return CodedError(CodeGeneric, defaultErrorName, message)
}

// NamedError creates an Error with the generic code and the given name.
func NamedError(name, message string) Error {
	return CodedError(CodeGeneric, name, message)
}

// CodedError creates a fully specified Error. It panics if code is not
// positive or if name or message is empty or whitespace.
func CodedError(code int, name, message string) Error {
	if code <= 0 {
		panic(fmt.Sprintf("toolbox: error code must be positive, got %d", code))
	}
	return Error{
		code:    code,
		name:    mustText("name", name),
		message: mustText("message", message),
		defined: true,
	}
}

// FromMessage is the explicit replacement for an implicit string-to-Error
// conversion. It is equivalent to NewError.
func FromMessage(message string) Error {
	return NewError(message)
}

// FromCause wraps a raised fault into an Error, keeping the fault as the
// cause. When the fault is itself an Error its code and name are inherited;
// otherwise the generic code and default name are used. It panics when
// cause is nil.
func FromCause(cause error) Error {
	if IsAbsent(cause) {
		panic("toolbox: FromCause requires a non-nil cause")
	}

	var inner Error
	if errors.As(cause, &inner) {
		inner.ensureDefined()
		return Error{
			code:    inner.code,
			name:    inner.name,
			message: inner.message,
			cause:   cause,
			defined: true,
		}
	}

	message := strings.TrimSpace(cause.Error())
	if message == "" {
		message = "unknown fault"
	}
	return Error{
		code:    CodeGeneric,
		name:    defaultErrorName,
		message: message,
		cause:   cause,
		defined: true,
	}
}

func mustText(field, value string) string {
	if strings.TrimSpace(value) == "" {
		panic("toolbox: error " + field + " must not be empty or whitespace")
	}
	return value
}

func (e Error) ensureDefined() {
	if !e.defined {
		panic("toolbox: use of zero-value Error; construct it with NewError, NamedError, CodedError or FromCause")
	}
}

// Code returns the numeric category of the failure.
func (e Error) Code() int {
	e.ensureDefined()
	return e.code
}

// Name returns the short machine-friendly label.
func (e Error) Name() string {
	e.ensureDefined()
	return e.name
}

// Message returns the human-readable description.
func (e Error) Message() string {
	e.ensureDefined()
	return e.message
}

// Error implements the standard error interface.
func (e Error) Error() string {
	e.ensureDefined()
	return e.name + ": " + e.message
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e Error) Unwrap() error {
	e.ensureDefined()
	return e.cause
}

// Cause returns the underlying fault, if the error originated from one.
func (e Error) Cause() Maybe[error] {
	e.ensureDefined()
	if e.cause == nil {
		return None[error]()
	}
	return Some(e.cause)
}

// TryGetCause is the comma-ok form of Cause.
func (e Error) TryGetCause() (error, bool) {
	e.ensureDefined()
	return e.cause, e.cause != nil
}

// Causes returns the individual faults behind the error: the elements of
// a joined cause, a single-element slice for a plain cause, or an empty
// slice when there is none.
func (e Error) Causes() []error {
	e.ensureDefined()
	return UnwrapAll(e.cause)
}

// WithCode returns a copy with a new code. The code is re-validated.
func (e Error) WithCode(code int) Error {
	e.ensureDefined()
	if code <= 0 {
		panic(fmt.Sprintf("toolbox: error code must be positive, got %d", code))
	}
	e.code = code
	return e
}

// WithName returns a copy with a new name.
func (e Error) WithName(name string) Error {
	e.ensureDefined()
	e.name = mustText("name", name)
	return e
}

// WithMessage returns a copy with a new message.
func (e Error) WithMessage(message string) Error {
	e.ensureDefined()
	e.message = mustText("message", message)
	return e
}

// WithCause returns a copy carrying the given fault as cause.
func (e Error) WithCause(cause error) Error {
	e.ensureDefined()
	if IsAbsent(cause) {
		panic("toolbox: WithCause requires a non-nil cause")
	}
	e.cause = cause
	return e
}

// IsValidation reports whether the code falls in the validation band.
func (e Error) IsValidation() bool {
	e.ensureDefined()
	return e.code == CodeValidation
}

// IsNotFound reports whether the code falls in the not-found band.
func (e Error) IsNotFound() bool {
	e.ensureDefined()
	return e.code == CodeNotFound
}

// IsInternal reports whether the code falls in the internal band.
func (e Error) IsInternal() bool {
	e.ensureDefined()
	return e.code == CodeInternal
}
