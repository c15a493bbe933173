package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/phrazzld/scry-study/internal/api/shared"
)

// CredentialHeader carries the caller's Gemini API key.
const CredentialHeader = "X-Goog-Api-Key"

var (
	errInvalidBody = errors.New("invalid request body")
	errAnswerCount = errors.New("more answers than questions")
	errInvalidQuiz = errors.New("submitted quiz is invalid")
)

// credentialFromRequest returns the trimmed API key from the request
// headers, or "" when none was sent.
func credentialFromRequest(r *http.Request) string {
	return strings.TrimSpace(r.Header.Get(CredentialHeader))
}

// decodeRequest decodes the JSON body into v. An absent body is reported
// as shared.ErrEmptyBody and any other decoding failure as errInvalidBody.
//
// Parameters:
//   - r: The HTTP request
//   - v: Pointer to the request struct to fill
//
// Returns:
//   - nil on success, or an error that HandleAPIError maps to 400
func decodeRequest(r *http.Request, v interface{}) error {
	if err := shared.DecodeJSON(r, v); err != nil {
		if errors.Is(err, shared.ErrEmptyBody) {
			return err
		}
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return nil
}
