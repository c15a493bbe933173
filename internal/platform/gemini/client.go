package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/phrazzld/scry-study/internal/config"
	"github.com/phrazzld/scry-study/internal/generation"
	"github.com/phrazzld/scry-study/internal/redact"
	"google.golang.org/genai"
)

// jsonMIMEType asks the model to reply with JSON only.
const jsonMIMEType = "application/json"

// Client implements generation.Client using the Gemini API.
// It keeps no credential; a genai client is created for every call.
type Client struct {
	// logger is used for structured logging
	logger *slog.Logger

	// model is the name of the Gemini model to use
	model string

	// httpOptions carries the optional endpoint override
	httpOptions genai.HTTPOptions
}

var _ generation.Client = (*Client)(nil)

// NewClient creates a new Gemini client with the provided dependencies.
//
// Parameters:
//   - ctx: Context for the operation, used for logging during validation
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing the model name and optional base URL
//
// Returns:
//   - A properly initialized Client or an error if the configuration is invalid
func NewClient(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(ctx, logger, cfg); err != nil {
		return nil, err
	}

	return &Client{
		logger:      logger,
		model:       cfg.ModelName,
		httpOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	}, nil
}

// Send makes exactly one GenerateContent call and returns the reply text
// unchanged. Structured requests set the JSON response MIME type and attach
// the converted schema.
//
// Transport errors are returned without wrapping so the classifier sees the
// provider's own message; only an HTTP 401 is wrapped with
// generation.ErrCredentialRejected.
func (c *Client) Send(ctx context.Context, req generation.Request) (string, error) {
	if req.Credential == "" {
		return "", generation.ErrMissingCredential
	}
	if req.Prompt == "" {
		return "", ErrEmptyPrompt
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      req.Credential,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: c.httpOptions,
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "failed to create Gemini client",
			"error", redact.Secret(err.Error(), req.Credential))
		return "", err
	}

	genConfig := &genai.GenerateContentConfig{}
	if req.Schema != nil {
		genConfig.ResponseMIMEType = jsonMIMEType
		genConfig.ResponseSchema = toGenAISchema(req.Schema)
	}

	c.logger.DebugContext(ctx, "Making Gemini API call",
		"model", c.model,
		"prompt_length", len(req.Prompt),
		"structured", req.Schema != nil)

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), genConfig)
	if err != nil {
		c.logger.WarnContext(ctx, "Gemini API call failed",
			"model", c.model,
			"error", redact.Secret(err.Error(), req.Credential))
		return "", translateError(err)
	}
	if resp == nil {
		return "", nil
	}

	text := resp.Text()
	c.logger.DebugContext(ctx, "Gemini API call successful",
		"model", c.model,
		"response_length", len(text),
		"finish_reason", finishReason(resp))

	return text, nil
}

// translateError wraps generation.ErrCredentialRejected around 401
// responses and returns every other error untouched.
func translateError(err error) error {
	if code, ok := apiErrorCode(err); ok && code == http.StatusUnauthorized {
		return fmt.Errorf("%w: %w", generation.ErrCredentialRejected, err)
	}
	return err
}

// apiErrorCode returns the HTTP status of a genai.APIError in err's chain.
func apiErrorCode(err error) (int, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return apiErrPtr.Code, true
	}
	return 0, false
}

func finishReason(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return ""
	}
	return string(resp.Candidates[0].FinishReason)
}
