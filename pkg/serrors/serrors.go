// Package serrors carries the semantic category of an error across package
// boundaries. Storage, registrar and service code tag failures with a Kind;
// the API maps kinds to status codes and the workers map them to retry
// decisions.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a semantic error category. Only NewKind creates kinds.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind.
func NewKind(name string) Kind { return kind{s: name} }

//nolint: gochecknoglobals
var (
	// ErrNotFound is returned when a domain, contact or job does not exist.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized is returned when the bearer token is missing or invalid.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrForbidden is returned when the caller may not perform the operation.
	ErrForbidden = NewKind("FORBIDDEN")
	// ErrBadRequest is returned for invalid input. Jobs failing with it are
	// cancelled instead of retried.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict is returned when stored state changed underneath an update
	// or a listing contains the same domain twice.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal is the fallback category.
	ErrInternal = NewKind("INTERNAL")
	// ErrTimeout is returned when a call to the registrar or the database ran
	// out of time.
	ErrTimeout = NewKind("TIMEOUT")
	// ErrUnavailable is returned when a dependency is temporarily down.
	ErrUnavailable = NewKind("UNAVAILABLE")
	// ErrRateLimited is returned when the registrar throttles us.
	ErrRateLimited = NewKind("RATE_LIMITED")
)

// Error tags an optional cause and an optional message with a Kind.
//
// errors.Is and errors.As match both the kind and anything in the cause
// chain. The message is meant for API clients; Error() appends the cause.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With returns an error of kind k with a formatted message and no cause.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap returns an error of kind k that wraps err under a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly returns a bare error of kind k.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	switch {
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the kind of e or part of its cause chain.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}

	return (e.kind != nil && errors.Is(e.kind, target)) || (e.err != nil && errors.Is(e.err, target))
}

// As extracts either the kind of e or a value from its cause chain.
func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}

	return (e.kind != nil && errors.As(e.kind, target)) || (e.err != nil && errors.As(e.err, target))
}

// Kind returns the kind of e.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the client facing message of e, without the cause.
func (e *Error) Message() string { return e.msg }

// KindOf returns the first kind found in the chain of err, or ErrInternal
// when there is none.
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// Temporary reports whether err is worth retrying later without changes:
// throttling, timeouts and unavailable dependencies.
func Temporary(err error) bool {
	switch KindOf(err) {
	case ErrRateLimited, ErrTimeout, ErrUnavailable:
		return true
	default:
		return false
	}
}
