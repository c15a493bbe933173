package generation

import "strings"

// providerSignature maps a fragment of a provider error message to a kind.
// Fragments are lower case and matched against the lower-cased message.
type providerSignature struct {
	fragment string
	kind     ErrorKind
}

// providerSignatures lists the known Gemini error texts. The provider has no
// typed taxonomy for a refused key (it answers 400 INVALID_ARGUMENT), so
// this is a best-effort heuristic that tracks the provider's wording.
// Unmatched messages classify as KindTransportFailure.
var providerSignatures = []providerSignature{
	{fragment: "api key not valid", kind: KindInvalidCredential},
	{fragment: "api_key_invalid", kind: KindInvalidCredential},
	{fragment: "invalid api key", kind: KindInvalidCredential},
	{fragment: "api key expired", kind: KindInvalidCredential},
	{fragment: "api_key_expired", kind: KindInvalidCredential},
	{fragment: "api key not found", kind: KindInvalidCredential},
}

func matchSignature(message string) (ErrorKind, bool) {
	lower := strings.ToLower(message)
	for _, sig := range providerSignatures {
		if strings.Contains(lower, sig.fragment) {
			return sig.kind, true
		}
	}
	return "", false
}
