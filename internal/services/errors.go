package services

import "errors"

// Kind classifies a domain error for the API boundary.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindAuth
	KindForbidden
	KindNotFound
)

// Error is a domain error with a message safe to show to clients.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// Is matches errors of the same kind and message, so wrapped sentinels and
// freshly built errors compare equal.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Message == e.Message
}

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// ValidationError builds a validation failure with msg.
func ValidationError(msg string) *Error { return newError(KindValidation, msg) }

var (
	ErrEmailTaken         = newError(KindConflict, "User already exists")
	ErrInvalidCredentials = newError(KindAuth, "Invalid credentials")
	ErrUserNotFound       = newError(KindNotFound, "User not found")
	ErrAnalysisNotFound   = newError(KindNotFound, "Analysis not found")
	ErrFollowUpRequired   = newError(KindValidation, "Follow-up text is required")
	ErrFollowUpIndex      = newError(KindValidation, "Follow-up index out of range")
	ErrInvalidRole        = newError(KindValidation, "Role must be user or admin")
	ErrAdminRequired      = newError(KindForbidden, "Admin access required")
)

// KindOf returns the kind of err, or 0 for errors that are not domain
// errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
