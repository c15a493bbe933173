package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/scry-study/internal/api/shared"
	"github.com/phrazzld/scry-study/internal/generation"
)

// kindStatus maps every generation.ErrorKind to an HTTP status code.
var kindStatus = map[generation.ErrorKind]int{
	generation.KindMissingCredential: http.StatusUnauthorized,
	generation.KindInvalidCredential: http.StatusUnauthorized,
	generation.KindUnsupportedMode:   http.StatusBadRequest,
	generation.KindMalformedResponse: http.StatusBadGateway,
	generation.KindTransportFailure:  http.StatusBadGateway,
}

// MapErrorToStatusCode maps errors to HTTP status codes. Classified
// generation errors map by kind; request decoding and validation failures
// are bad requests; everything else is an internal server error.
func MapErrorToStatusCode(err error) int {
	var classified *generation.ClassifiedError
	if errors.As(err, &classified) {
		if status, ok := kindStatus[classified.Kind]; ok {
			return status
		}
		return http.StatusInternalServerError
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs),
		errors.Is(err, shared.ErrEmptyBody),
		errors.Is(err, errInvalidBody),
		errors.Is(err, errAnswerCount):
		return http.StatusBadRequest
	case errors.Is(err, errInvalidQuiz):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the message to show the client for err.
// Classified generation errors carry a message that is already safe to
// render verbatim.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var classified *generation.ClassifiedError
	if errors.As(err, &classified) {
		return classified.Message
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return SanitizeValidationError(err)
	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"
	case errors.Is(err, errInvalidBody):
		return "Invalid request format"
	case errors.Is(err, errAnswerCount):
		return "More answers than questions"
	case errors.Is(err, errInvalidQuiz):
		return "Invalid quiz"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns the first validator field error into a
// short message such as "Invalid questions: required field".
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return "Validation error"
	}

	fe := validationErrs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error response for err. Credential failures
// are logged at WARN level; the raw error only reaches the logs, redacted.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	opts := []shared.ResponseOption{}

	var classified *generation.ClassifiedError
	if errors.As(err, &classified) {
		opts = append(opts, shared.WithErrorKind(string(classified.Kind)))
		if classified.Kind == generation.KindInvalidCredential {
			opts = append(opts, shared.WithElevatedLogLevel())
		}
	}

	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err, opts...)
}
