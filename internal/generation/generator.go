package generation

import "context"

// Request is a single outbound call to the language model.
type Request struct {
	// Credential is the caller's provider API key. Implementations must not
	// log or retain it beyond the call.
	Credential string

	// Prompt is the full instruction text.
	Prompt string

	// Schema constrains the reply to structured JSON when non-nil.
	Schema *Schema
}

// Client defines the boundary between the orchestration core and a remote
// generative model, following the hexagonal architecture pattern.
type Client interface {
	// Send performs exactly one round trip and returns the model's raw text.
	// It does not interpret or validate the text. Transport failures are
	// returned as-is so their messages reach the classifier unchanged;
	// implementations that can tell from a typed provider error that the
	// credential was refused may wrap ErrCredentialRejected instead.
	Send(ctx context.Context, req Request) (string, error)
}

// ClientFunc adapts an ordinary function to the Client interface.
type ClientFunc func(ctx context.Context, req Request) (string, error)

// Send implements Client.
func (f ClientFunc) Send(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
