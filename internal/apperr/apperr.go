// Package apperr defines the closed set of error kinds the service can
// surface, carried as plain data and mapped to HTTP status codes at the
// boundary translator.
package apperr

import (
	"errors"
	"net/http"
)

type Kind int

const (
	Validation Kind = iota
	DuplicateEmail
	InvalidCredentials
	AccountDisabled
	Unauthenticated
	RoleUndetermined
	Forbidden
	NotFound
	Internal
)

// Error is a classified application error. Kind drives the HTTP status,
// Message is what the caller sees, Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Details any
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches by kind, so errors.Is(err, apperr.ErrDuplicateEmail) holds for
// any duplicate-email error regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func (e *Error) Status() int {
	switch e.Kind {
	case Validation, DuplicateEmail:
		return http.StatusBadRequest
	case InvalidCredentials, Unauthenticated:
		return http.StatusUnauthorized
	case AccountDisabled, RoleUndetermined, Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Operational reports whether the error is an expected, caller-recoverable
// outcome as opposed to a defect or infrastructure failure.
func (e *Error) Operational() bool { return e.Kind != Internal }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NewValidation builds a validation failure carrying the first failing
// rule's message plus the per-field details for the response envelope.
func NewValidation(message string, details any) *Error {
	return &Error{Kind: Validation, Message: message, Details: details}
}

// Predeclared values for errors.Is matching and for the common cases where
// the default message is the right one.
var (
	ErrDuplicateEmail     = New(DuplicateEmail, "user with this email already exists")
	ErrInvalidCredentials = New(InvalidCredentials, "invalid email or password")
	ErrAccountDisabled    = New(AccountDisabled, "account is disabled")
	ErrUnauthenticated    = New(Unauthenticated, "authentication required")
	ErrRoleUndetermined   = New(RoleUndetermined, "user role is not determined")
	ErrForbidden          = New(Forbidden, "insufficient permissions")
	ErrUserNotFound       = New(NotFound, "user not found")
)

// From classifies an arbitrary error: already-classified errors pass
// through, anything else becomes Internal with a generic message.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return &Error{Kind: Internal, Message: "internal server error", Err: err}
}
