// Package result implements the uniform outcome of content operations: a
// two-variant value that is either a success carrying data and an optional
// message, or a failure carrying a semantic error. Operations return a Result
// instead of an error so nothing raised by the store ever crosses into the
// HTTP layer.
package result

import (
	"errors"
	"travel/pkg/serrors"
	"travel/pkg/validation"
)

// Result is the outcome of an operation. The zero value is not valid; build
// results with OK or Fail.
type Result[T any] struct {
	data    T
	message string
	err     error
}

// OK returns a successful result.
func OK[T any](data T, message string) Result[T] {
	return Result[T]{data: data, message: message}
}

// Fail returns a failed result. A nil err is replaced by a generic internal
// error so a failure can never be mistaken for a success.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = serrors.KindOnly(serrors.ErrInternal)
	}

	return Result[T]{err: err}
}

// Success reports whether r is the success variant.
func (r Result[T]) Success() bool { return r.err == nil }

// Data returns the payload of a successful result, or the zero value.
func (r Result[T]) Data() T { return r.data }

// Message returns the success message, if any.
func (r Result[T]) Message() string { return r.message }

// Err returns the failure cause, or nil on success.
func (r Result[T]) Err() error { return r.err }

// Kind returns the semantic error kind of a failure, or nil on success.
func (r Result[T]) Kind() serrors.Kind {
	if r.err == nil {
		return nil
	}

	return serrors.KindOf(r.err)
}

// NotFound reports whether r failed because the entity does not exist.
func (r Result[T]) NotFound() bool {
	return r.err != nil && errors.Is(r.err, serrors.ErrNotFound)
}

// OrEmpty returns the payload on success and the zero value otherwise. It is
// used by listings that render a failure as an empty page.
func (r Result[T]) OrEmpty() T {
	if r.err != nil {
		var zero T

		return zero
	}

	return r.data
}

// Envelope is the JSON form of a Result.
type Envelope struct {
	Success bool                    `json:"success"`
	Data    any                     `json:"data,omitempty"`
	Message string                  `json:"message,omitempty"`
	Error   string                  `json:"error,omitempty"`
	Code    string                  `json:"code,omitempty"`
	Fields  []validation.FieldError `json:"fields,omitempty"`
}

// Envelope converts r to its wire form. Failures expose only the public
// message of the error, never its wrapped cause.
func (r Result[T]) Envelope() Envelope {
	if r.err == nil {
		return Envelope{Success: true, Data: r.data, Message: r.message}
	}

	env := Envelope{
		Success: false,
		Error:   serrors.PublicMessage(r.err),
		Code:    serrors.KindOf(r.err).Error(),
	}

	var verrs validation.Errors
	if errors.As(r.err, &verrs) {
		env.Fields = verrs
	}

	return env
}

// FailEnvelope builds a failure envelope straight from an error, for callers
// that fail before reaching an operation (bad JSON, missing parameters).
func FailEnvelope(err error) Envelope {
	return Fail[struct{}](err).Envelope()
}
