// Package serrors implements semantic errors: a small set of error kinds that
// services attach to failures so the transport layer can pick a status code and
// a client-safe message without inspecting causes.
package serrors

import (
	"errors"
	"fmt"
	"maps"
	"net/http"
)

// Kind is a marker interface implemented by all semantic error kinds created
// with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct {
	s      string
	status int
}

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new semantic error kind (a sentinel) answered with the given
// HTTP status.
func NewKind(name string, status int) Kind { return kind{s: name, status: status} }

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = NewKind("NOT_FOUND", http.StatusNotFound)
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED", http.StatusUnauthorized)
	// ErrForbidden indicates the caller is authenticated but not allowed to perform the operation.
	ErrForbidden = NewKind("FORBIDDEN", http.StatusForbidden)
	// ErrBadRequest indicates the client sent invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST", http.StatusBadRequest)
	// ErrConflict indicates a state conflict (e.g., resource already exists).
	ErrConflict = NewKind("CONFLICT", http.StatusConflict)
	// ErrInternal indicates an internal server error.
	ErrInternal = NewKind("INTERNAL", http.StatusInternalServerError)
	// ErrTimeout indicates the operation timed out.
	ErrTimeout = NewKind("TIMEOUT", http.StatusGatewayTimeout)
	// ErrUnavailable indicates the service is temporarily unavailable.
	ErrUnavailable = NewKind("UNAVAILABLE", http.StatusServiceUnavailable)
	// ErrRateLimited indicates too many requests.
	ErrRateLimited = NewKind("RATE_LIMITED", http.StatusTooManyRequests)
	// ErrTooLarge indicates the request payload exceeds a configured limit.
	ErrTooLarge = NewKind("TOO_LARGE", http.StatusRequestEntityTooLarge)
)

// Error carries a kind, an optional wrapped cause, an optional message and
// optional per-field details.
//
// errors.Is and errors.As match either the kind sentinel or the wrapped cause.
//
// Error() renders "<msg>: <cause>", "<msg>", "<cause>" or the kind name,
// depending on what is set.
type Error struct {
	kind   Kind
	err    error
	msg    string
	fields map[string]string
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

// WithFields returns a copy of e with the given field → message details merged in.
func (e *Error) WithFields(fields map[string]string) *Error {
	out := *e
	out.fields = make(map[string]string, len(e.fields)+len(fields))
	maps.Copy(out.fields, e.fields)
	maps.Copy(out.fields, fields)

	return &out
}

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

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error { return e.err }

// Is matches against either the kind sentinel or the wrapped error.
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

// As matches against either the kind sentinel or the wrapped error.
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

// Kind returns the semantic kind sentinel associated with this error, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the message attached to this error.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped cause (may be nil).
func (e *Error) Cause() error { return e.err }

// Fields returns the per-field details (may be nil).
func (e *Error) Fields() map[string]string { return e.fields }

// Status returns the HTTP status associated with k, or 500 for foreign kinds.
func Status(k Kind) int {
	if kk, ok := k.(kind); ok && kk.status != 0 {
		return kk.status
	}

	return http.StatusInternalServerError
}

// Public describes an error the way it may be shown to a client.
type Public struct {
	Kind    Kind
	Status  int
	Message string
	Fields  map[string]string
}

// defaultMessages are used when a semantic error carries no message of its own.
var defaultMessages = map[Kind]string{ //nolint: gochecknoglobals
	ErrNotFound:     "resource not found",
	ErrUnauthorized: "unauthorized",
	ErrForbidden:    "forbidden",
	ErrBadRequest:   "bad request",
	ErrConflict:     "conflict",
	ErrInternal:     "internal error",
	ErrTimeout:      "timeout",
	ErrUnavailable:  "service unavailable",
	ErrRateLimited:  "too many requests",
	ErrTooLarge:     "payload too large",
}

// ToPublic classifies err. Errors without a semantic kind, and errors of kind
// ErrInternal, are reported as a generic internal error so causes never leak.
func ToPublic(err error) Public {
	internal := Public{Kind: ErrInternal, Status: http.StatusInternalServerError, Message: defaultMessages[ErrInternal]}

	var se *Error
	if errors.As(err, &se) && se.kind != nil {
		if se.kind == ErrInternal {
			return internal
		}
		msg := se.msg
		if msg == "" {
			msg = defaultMessages[se.kind]
		}

		return Public{Kind: se.kind, Status: Status(se.kind), Message: msg, Fields: se.fields}
	}

	var k Kind
	if errors.As(err, &k) && k != ErrInternal {
		return Public{Kind: k, Status: Status(k), Message: defaultMessages[k]}
	}

	return internal
}
