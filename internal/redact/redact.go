// Package redact provides utilities for redacting sensitive information from strings
// before they are logged. Provider API keys travel with every generation request,
// so error messages from the transport layer are scrubbed here before they reach
// the log stream.
package redact

import (
	"regexp"
	"strings"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder   = "[REDACTED]"
	RedactedKeyPlaceholder = "[REDACTED_KEY]"
)

// minSecretLength is the shortest secret Secret will scrub; shorter values
// would match ordinary words.
const minSecretLength = 4

// Precompiled regex patterns
var (
	// Google API keys: "AIza" followed by 35 key characters.
	googleKeyRegex = regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`)

	// key=... query parameters, as used by the Gemini REST endpoint.
	queryKeyRegex = regexp.MustCompile(`(?i)([?&]key=)[^&\s"']+`)

	// Named credentials such as "x-goog-api-key: ..." or "token=...".
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|access[_-]?key|auth)(['"\s]*[:=]['"\s]*)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// Bearer tokens in Authorization headers.
	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/=]{8,}`)

	// patterns is applied in order.
	patterns = []struct {
		re          *regexp.Regexp
		replacement string
	}{
		{re: googleKeyRegex, replacement: RedactedKeyPlaceholder},
		{re: queryKeyRegex, replacement: "${1}" + RedactedKeyPlaceholder},
		{re: apiKeyRegex, replacement: "${1}${2}" + RedactedKeyPlaceholder},
		{re: bearerRegex, replacement: "Bearer " + RedactedKeyPlaceholder},
	}
)

// String redacts credential-like substrings from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, p := range patterns {
		result = p.re.ReplaceAllString(result, p.replacement)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// Secret removes every occurrence of secret from input and then applies
// String. Use it when the exact credential is known, e.g. a caller's key.
func Secret(input, secret string) string {
	if len(secret) >= minSecretLength {
		input = strings.ReplaceAll(input, secret, RedactionPlaceholder)
	}
	return String(input)
}
