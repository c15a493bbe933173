// Package gemini provides an implementation of the generation.Client port
// that uses Google's Gemini API through the google.golang.org/genai SDK.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the generation core to Google's external Gemini service
// without exposing SDK types to the rest of the application.
//
// Key responsibilities:
//
// 1. Request construction:
//   - One genai client per call, built from the caller's credential
//   - Translation of generation.Schema into *genai.Schema
//   - JSON response mode for structured requests
//
// 2. Response handling:
//   - The reply text is returned unchanged; validation happens in the core
//
// 3. Error handling:
//   - Transport errors are returned as-is so their text reaches the classifier
//   - HTTP 401 responses are wrapped with generation.ErrCredentialRejected
//   - The credential and prompt body are never logged
//
// There is no retry logic: each Send performs exactly one round trip.
package gemini
