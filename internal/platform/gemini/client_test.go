package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/phrazzld/scry-study/internal/config"
	"github.com/phrazzld/scry-study/internal/domain"
	"github.com/phrazzld/scry-study/internal/generation"
	"github.com/phrazzld/scry-study/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

const testCredential = "test-credential-123456"

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeGemini serves generateContent with a fixed status and body and
// records what it received.
type fakeGemini struct {
	status   int
	body     string
	calls    atomic.Int32
	lastPath atomic.Value
	lastKey  atomic.Value
	lastBody atomic.Value
}

func (f *fakeGemini) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.calls.Add(1)
	reqBody, _ := io.ReadAll(r.Body)
	f.lastPath.Store(r.URL.Path)
	f.lastKey.Store(r.Header.Get("x-goog-api-key"))
	f.lastBody.Store(string(reqBody))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	_, _ = io.WriteString(w, f.body)
}

func candidateBody(t *testing.T, text string) string {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
				"finishReason": "STOP",
			},
		},
	})
	require.NoError(t, err)
	return string(body)
}

func newTestClient(t *testing.T, baseURL string, l *slog.Logger) *Client {
	t.Helper()
	if l == nil {
		l = newTestLogger()
	}
	c, err := NewClient(context.Background(), l, config.LLMConfig{
		ModelName: "test-model",
		BaseURL:   baseURL,
	})
	require.NoError(t, err)
	return c
}

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.LLMConfig
		wantErr bool
	}{
		{name: "valid", cfg: config.LLMConfig{ModelName: "gemini-2.5-flash"}},
		{name: "valid with base url", cfg: config.LLMConfig{ModelName: "m", BaseURL: "http://localhost:9999"}},
		{name: "missing model", cfg: config.LLMConfig{}, wantErr: true},
		{name: "relative base url", cfg: config.LLMConfig{ModelName: "m", BaseURL: "/proxy"}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, err := NewClient(context.Background(), newTestLogger(), tc.cfg)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c)
		})
	}

	_, err := NewClient(context.Background(), nil, config.LLMConfig{ModelName: "m"})
	assert.Error(t, err)
}

func TestSendStructuredRequest(t *testing.T) {
	t.Parallel()

	reply := `[{"term":"Pyknosis","definition":"Nuclear shrinkage."}]`
	fake := &fakeGemini{status: http.StatusOK, body: candidateBody(t, reply)}
	server := httptest.NewServer(fake)
	defer server.Close()

	c := newTestClient(t, server.URL, nil)
	text, err := c.Send(context.Background(), generation.Request{
		Credential: testCredential,
		Prompt:     "Generate flashcards about necrosis",
		Schema:     generation.SchemaFor(domain.StudyModeFlashcards),
	})
	require.NoError(t, err)

	assert.Equal(t, reply, text, "reply text is returned unchanged")
	assert.EqualValues(t, 1, fake.calls.Load(), "exactly one round trip")
	assert.True(t, strings.HasSuffix(fake.lastPath.Load().(string), "models/test-model:generateContent"))
	assert.Equal(t, testCredential, fake.lastKey.Load())

	body := fake.lastBody.Load().(string)
	assert.Contains(t, body, "Generate flashcards about necrosis")
	assert.Contains(t, body, jsonMIMEType)
	assert.Contains(t, body, "definition")
}

func TestSendGuideRequest(t *testing.T) {
	t.Parallel()

	fake := &fakeGemini{status: http.StatusOK, body: candidateBody(t, "**Etiology**\n* Ischemia")}
	server := httptest.NewServer(fake)
	defer server.Close()

	c := newTestClient(t, server.URL, nil)
	text, err := c.Send(context.Background(), generation.Request{
		Credential: testCredential,
		Prompt:     "Write a guide",
	})
	require.NoError(t, err)
	assert.Equal(t, "**Etiology**\n* Ischemia", text)
	assert.NotContains(t, fake.lastBody.Load().(string), jsonMIMEType)
}

func TestSendInvalidKeyClassifiesAsInvalidCredential(t *testing.T) {
	t.Parallel()

	fake := &fakeGemini{
		status: http.StatusBadRequest,
		body: `{"error": {"code": 400, "message": "API key not valid. Please pass a valid API key.",
			"status": "INVALID_ARGUMENT"}}`,
	}
	server := httptest.NewServer(fake)
	defer server.Close()

	log, buf := logger.NewTestLogger()
	c := newTestClient(t, server.URL, log)
	_, err := c.Send(context.Background(), generation.Request{
		Credential: testCredential,
		Prompt:     "Write a guide",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
	assert.Equal(t, generation.KindInvalidCredential, generation.Classify(err).Kind)
	assert.EqualValues(t, 1, fake.calls.Load(), "no retries")
	assert.NotContains(t, buf.String(), testCredential, "credential must never be logged")
	assert.NotContains(t, buf.String(), "Write a guide", "prompt body must never be logged")
}

func TestSendUnauthorizedIsCredentialRejected(t *testing.T) {
	t.Parallel()

	fake := &fakeGemini{
		status: http.StatusUnauthorized,
		body:   `{"error": {"code": 401, "message": "Request had invalid authentication credentials.", "status": "UNAUTHENTICATED"}}`,
	}
	server := httptest.NewServer(fake)
	defer server.Close()

	c := newTestClient(t, server.URL, nil)
	_, err := c.Send(context.Background(), generation.Request{Credential: testCredential, Prompt: "p"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, generation.ErrCredentialRejected))

	code, ok := apiErrorCode(err)
	require.True(t, ok, "provider error stays reachable")
	assert.Equal(t, http.StatusUnauthorized, code)
}

func TestSendPreconditions(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, "http://127.0.0.1:1", nil)

	_, err := c.Send(context.Background(), generation.Request{Prompt: "p"})
	assert.ErrorIs(t, err, generation.ErrMissingCredential)

	_, err = c.Send(context.Background(), generation.Request{Credential: testCredential})
	assert.ErrorIs(t, err, ErrEmptyPrompt)
}

func TestToGenAISchema(t *testing.T) {
	t.Parallel()

	assert.Nil(t, toGenAISchema(nil))

	s := toGenAISchema(generation.SchemaFor(domain.StudyModeQuiz))
	require.NotNil(t, s)
	assert.Equal(t, genai.TypeArray, s.Type)
	require.NotNil(t, s.Items)
	assert.Equal(t, genai.TypeObject, s.Items.Type)
	assert.Equal(t, []string{"question", "options", "correctAnswer", "explanation"}, s.Items.Required)

	options := s.Items.Properties["options"]
	require.NotNil(t, options)
	assert.Equal(t, genai.TypeArray, options.Type)
	assert.Equal(t, genai.TypeString, options.Items.Type)
	require.NotNil(t, options.MinItems)
	assert.EqualValues(t, 4, *options.MinItems)
}
