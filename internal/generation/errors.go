package generation

import "errors"

// ErrorKind names one of the closed set of failure categories.
type ErrorKind string

// Failure categories surfaced to callers.
const (
	KindMissingCredential ErrorKind = "missing_credential"
	KindInvalidCredential ErrorKind = "invalid_credential"
	KindMalformedResponse ErrorKind = "malformed_response"
	KindTransportFailure  ErrorKind = "transport_failure"
	KindUnsupportedMode   ErrorKind = "unsupported_mode"
)

// Sentinel errors, one per ErrorKind. A *ClassifiedError matches the
// sentinel of its kind under errors.Is.
var (
	// ErrMissingCredential is returned when no credential was supplied.
	ErrMissingCredential = errors.New("API key is missing")

	// ErrInvalidCredential is returned when the provider rejected the credential.
	ErrInvalidCredential = errors.New("API key is invalid")

	// ErrMalformedResponse is returned when a structured reply cannot be
	// parsed or does not have the expected shape.
	ErrMalformedResponse = errors.New("received invalid format from language model")

	// ErrTransportFailure is returned for any other failure while talking to
	// the provider.
	ErrTransportFailure = errors.New("transport failure")

	// ErrUnsupportedMode is returned when the mode is unknown or the topic
	// is missing.
	ErrUnsupportedMode = errors.New("unsupported study mode")
)

// ErrCredentialRejected may be wrapped by Client implementations when a typed
// provider error proves the credential was refused.
var ErrCredentialRejected = errors.New("credential rejected by provider")

var kindSentinels = map[ErrorKind]error{
	KindMissingCredential: ErrMissingCredential,
	KindInvalidCredential: ErrInvalidCredential,
	KindMalformedResponse: ErrMalformedResponse,
	KindTransportFailure:  ErrTransportFailure,
	KindUnsupportedMode:   ErrUnsupportedMode,
}

// ClassifiedError is the only error type returned by Service.Generate.
type ClassifiedError struct {
	// Kind is the failure category.
	Kind ErrorKind

	// Message is human readable and intended to be rendered verbatim.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface and returns Message unchanged.
func (e *ClassifiedError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause.
func (e *ClassifiedError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel error for e's kind.
func (e *ClassifiedError) Is(target error) bool {
	sentinel, ok := kindSentinels[e.Kind]
	return ok && target == sentinel
}

func newClassifiedError(kind ErrorKind, message string, cause error) *ClassifiedError {
	return &ClassifiedError{Kind: kind, Message: message, Err: cause}
}
