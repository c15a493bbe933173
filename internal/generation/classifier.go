package generation

import (
	"errors"

	"github.com/phrazzld/scry-study/internal/domain"
)

// Messages shown for kinds whose underlying error text is not meant for users.
const (
	msgMissingCredential = "API key is missing. Please provide your Gemini API key."
	msgInvalidCredential = "API key is invalid. Please check your Gemini API key and try again."
	msgUnsupportedMode   = "Invalid study mode selected."
	msgMissingTopic      = "Please select a topic and a study mode."
)

// Classify maps an error from any pipeline stage to a *ClassifiedError.
//
// Errors that are already classified are returned unchanged. Sentinels from
// this package and the domain package map to their kinds, a wrapped
// ErrCredentialRejected maps to KindInvalidCredential, and remaining errors
// are matched against providerSignatures. Anything unmatched is a transport
// failure whose message is the original error text, verbatim.
//
// Returns nil for a nil error.
func Classify(err error) *ClassifiedError {
	if err == nil {
		return nil
	}

	var classified *ClassifiedError
	if errors.As(err, &classified) {
		return classified
	}

	switch {
	case errors.Is(err, ErrMissingCredential):
		return newClassifiedError(KindMissingCredential, msgMissingCredential, err)
	case errors.Is(err, domain.ErrEmptyTopic):
		return newClassifiedError(KindUnsupportedMode, msgMissingTopic, err)
	case errors.Is(err, ErrUnsupportedMode), errors.Is(err, domain.ErrUnknownStudyMode):
		return newClassifiedError(KindUnsupportedMode, msgUnsupportedMode, err)
	case errors.Is(err, ErrMalformedResponse):
		return newClassifiedError(KindMalformedResponse, err.Error(), err)
	case errors.Is(err, ErrCredentialRejected), errors.Is(err, ErrInvalidCredential):
		return newClassifiedError(KindInvalidCredential, msgInvalidCredential, err)
	}

	if kind, ok := matchSignature(err.Error()); ok {
		switch kind {
		case KindInvalidCredential:
			return newClassifiedError(kind, msgInvalidCredential, err)
		default:
			return newClassifiedError(kind, err.Error(), err)
		}
	}

	return newClassifiedError(KindTransportFailure, err.Error(), err)
}
