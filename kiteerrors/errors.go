// Package kiteerrors defines the closed set of error kinds returned by the
// Kite trading API and the single error type that carries them.
package kiteerrors

// Kind is the semantic category of an API failure.
type Kind string

const (
	// General is an unclassified error.
	General Kind = "general"
	// Token is an authentication, token parse or token expiry error.
	Token Kind = "token"
	// Permission is an authorization error.
	Permission Kind = "permission"
	// Order is an order placement or modification error.
	Order Kind = "order"
	// Input is a caller-supplied validation error.
	Input Kind = "input"
	// Data is a malformed or missing data error, local or remote.
	Data Kind = "data"
	// Network is a transport-level error.
	Network Kind = "network"
)

// errorTypes maps the error_type tags reported in Kite API error bodies to
// kinds. The set is closed: tags outside this table degrade to General.
var errorTypes = map[string]Kind{
	"GeneralException":    General,
	"TokenException":      Token,
	"PermissionException": Permission,
	"OrderException":      Order,
	"InputException":      Input,
	"DataException":       Data,
	"NetworkException":    Network,
}

// Error is a classified API failure. Code is the HTTP status code of the
// failed request, or 0 when the failure happened before or outside an HTTP
// round trip.
type Error struct {
	Kind    Kind
	Message string
	Code    int
}

func (e *Error) Error() string {
	return e.Message
}

// New returns a classified error with no HTTP status attached.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// NewWithCode returns a classified error carrying an HTTP status code.
func NewWithCode(kind Kind, message string, code int) *Error {
	return &Error{Kind: kind, Message: message, Code: code}
}

// FromErrorType maps a remote error_type tag to a classified error. Only the
// documented tags are authoritative; an unrecognized tag yields General.
func FromErrorType(errorType, message string, code int) *Error {
	kind, ok := errorTypes[errorType]
	if !ok {
		kind = General
	}
	return &Error{Kind: kind, Message: message, Code: code}
}

// KindOf returns the kind of a classified error, or General for any other
// error value.
func KindOf(err error) Kind {
	if e, ok := err.(*Error); ok {
		return e.Kind
	}
	return General
}
