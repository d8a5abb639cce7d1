package domain

import (
	"errors"
	"unicode/utf8"
)

var (
	// ErrValidation is returned when required input is missing or malformed.
	ErrValidation = errors.New("validation error")
	// ErrUpstream is returned when the vendor reports a failure.
	ErrUpstream = errors.New("provider api error")
	// ErrUnknownProvider is returned when the vendor reply is empty or cannot be decoded.
	ErrUnknownProvider = errors.New("unknown provider api error")
	// ErrSubscriptionNotFound is returned when a package matches no vendor subscription.
	ErrSubscriptionNotFound = errors.New("subscription not found")
	// ErrAccountNotFound is returned when an account reference resolves to nothing.
	ErrAccountNotFound = errors.New("account not found")
	// ErrTransport is returned when the vendor could not be reached.
	ErrTransport = errors.New("provider transport error")
	// ErrProviderNotSupported is returned when no provider is registered under a name.
	ErrProviderNotSupported = errors.New("provider not supported")
)

// rawBodyLimit caps how much of a raw vendor body is attached to an error.
const rawBodyLimit = 300

// ProvisionError is the standard error result handed back to the platform:
// a human readable message plus diagnostic data such as the raw vendor response.
type ProvisionError struct {
	// Kind is one of the sentinel errors above.
	Kind error
	// Message is safe to show to the operator.
	Message string
	// Data carries diagnostic context.
	Data map[string]any
	// Cause is the underlying error, if any.
	Cause error
}

// NewError creates a ProvisionError of the given kind.
func NewError(kind error, message string) *ProvisionError {
	return &ProvisionError{Kind: kind, Message: message}
}

func (e *ProvisionError) Error() string {
	return e.Message
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *ProvisionError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Cause != nil {
		errs = append(errs, e.Cause)
	}
	return errs
}

// WithData attaches a diagnostic value and returns the error for chaining.
func (e *ProvisionError) WithData(key string, value any) *ProvisionError {
	if e.Data == nil {
		e.Data = make(map[string]any)
	}
	e.Data[key] = value
	return e
}

// WithCause records the underlying error and returns the error for chaining.
func (e *ProvisionError) WithCause(err error) *ProvisionError {
	e.Cause = err
	return e
}

// AsProvisionError extracts a ProvisionError from err's chain.
func AsProvisionError(err error) (*ProvisionError, bool) {
	var pe *ProvisionError
	if errors.As(err, &pe) {
		return pe, true
	}
	return nil, false
}

// TruncateRaw trims a raw vendor body before it is attached to an error.
func TruncateRaw(raw string) string {
	if utf8.RuneCountInString(raw) <= rawBodyLimit {
		return raw
	}
	runes := []rune(raw)
	return string(runes[:rawBodyLimit]) + "..."
}
