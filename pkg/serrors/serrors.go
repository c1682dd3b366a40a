// Package serrors implements semantic errors: a small set of error kinds
// (not found, conflict, validation...) that can wrap a concrete cause while
// carrying a message that is safe to show to API clients.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel). Kinds are comparable
// and match through errors.Is on an *Error.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates a missing, invalid or revoked session.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden indicates the caller is authenticated but not allowed to perform the operation.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest indicates the client sent invalid data, including schema validation failures.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates a uniqueness conflict such as a duplicate slug or email.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates a store, network or other server-side failure.
	ErrInternal = NewKind("INTERNAL")
	// ErrUnavailable indicates a collaborator is not configured or temporarily unreachable.
	ErrUnavailable = NewKind("UNAVAILABLE")
)

// Error is a semantic error carrying a kind, an optional wrapped cause and an
// optional public message.
//
// Error string formatting:
//   - msg and err set: "<msg>: <err>"
//   - only msg: "<msg>"
//   - only err: "<err>"
//   - neither: the kind name.
//
// The string form may include the cause and is meant for logs. Use Message
// (or PublicMessage) for text returned to clients.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With constructs a new semantic error with the given kind and message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap constructs a new semantic error with the given kind wrapping err.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly creates a semantic error carrying only the kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	default:
		if e.kind != nil {
			return e.kind.Error()
		}

		return "unknown error"
	}
}

// Unwrap returns the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches either the kind sentinel or the wrapped cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}
	if e.err != nil && errors.Is(e.err, target) {
		return true
	}

	return false
}

// As matches either the kind sentinel or the wrapped cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}
	if e.err != nil && errors.As(e.err, target) {
		return true
	}

	return false
}

// Kind returns the kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the public message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// KindOf returns the kind of the outermost semantic error in err's chain, or
// ErrInternal when err carries no kind.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) && se.kind != nil {
		return se.kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// PublicMessage returns text that can be shown to clients. Wrapped causes are
// never included; errors without a semantic message fall back to a generic
// description of their kind.
func PublicMessage(err error) string {
	var se *Error
	if errors.As(err, &se) && se.msg != "" {
		return se.msg
	}

	switch KindOf(err) {
	case ErrNotFound:
		return "resource not found"
	case ErrUnauthorized:
		return "unauthorized"
	case ErrForbidden:
		return "forbidden"
	case ErrBadRequest:
		return "invalid request"
	case ErrConflict:
		return "conflict"
	case ErrUnavailable:
		return "service unavailable"
	default:
		return "internal error"
	}
}
