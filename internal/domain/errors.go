package domain

import "errors"

// Kind classifies an error for the transport layer.
type Kind int

const (
	KindInternal Kind = iota
	KindInvalid
	KindNotFound
	KindConflict
	KindForbidden
	KindNotAuthorized
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindForbidden:
		return "forbidden"
	case KindNotAuthorized:
		return "not_authorized"
	default:
		return "internal"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Field   string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Invalid(msg string) *Error       { return &Error{Kind: KindInvalid, Message: msg} }
func NotFound(msg string) *Error      { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error      { return &Error{Kind: KindConflict, Message: msg} }
func Forbidden(msg string) *Error     { return &Error{Kind: KindForbidden, Message: msg} }
func NotAuthorized(msg string) *Error { return &Error{Kind: KindNotAuthorized, Message: msg} }

func InvalidField(field, msg string) *Error {
	return &Error{Kind: KindInvalid, Message: msg, Field: field}
}

// Internal wraps err so the cause is logged but never shown to clients.
func Internal(msg string, err error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

var (
	ErrUserNotFound        = NotFound("user not found")
	ErrOrderNotFound       = NotFound("order not found")
	ErrTokenNotFound       = NotFound("token not found or invalid")
	ErrEmailTaken          = Conflict("email is already registered")
	ErrPersonalIDTaken     = Conflict("personal ID is already registered")
	ErrPhoneTaken          = Conflict("phone is already registered")
	ErrAlreadyConfirmed    = Conflict("user is already confirmed")
	ErrInvalidCredentials  = NotAuthorized("invalid credentials")
	ErrWrongPassword       = NotAuthorized("current password is incorrect")
	ErrUnauthenticated     = NotAuthorized("authentication required")
	ErrInvalidSession      = NotAuthorized("invalid token")
	ErrNotConfirmed        = Forbidden("account is not confirmed")
	ErrAdminOnly           = Forbidden("admin privileges required")
	ErrNotOrderOwner       = Forbidden("you do not have access to this order")
	ErrOrderNotCancellable = Conflict("only pending orders can be cancelled")
)
