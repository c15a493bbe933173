package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/phrazzld/scry-study/internal/config"
	"github.com/phrazzld/scry-study/internal/domain"
	"github.com/phrazzld/scry-study/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const quizReply = `[{"question":"Which form of cell death provokes inflammation?",
"options":["Necrosis","Apoptosis","Metaplasia","Dysplasia"],
"correctAnswer":"Necrosis","explanation":"Necrotic cells spill their contents."}]`

type testHarness struct {
	requests []generation.Request
	env      map[string]string
	logs     bytes.Buffer
	reply    string
	err      error
}

func (h *testHarness) deps() deps {
	return deps{
		loadConfig: func() (*config.Config, error) {
			return &config.Config{
				Server: config.ServerConfig{Port: 8080, LogLevel: "debug"},
				LLM:    config.LLMConfig{ModelName: "test-model"},
			}, nil
		},
		newClient: func(context.Context, *slog.Logger, config.LLMConfig) (generation.Client, error) {
			return generation.ClientFunc(func(_ context.Context, req generation.Request) (string, error) {
				h.requests = append(h.requests, req)
				return h.reply, h.err
			}), nil
		},
		getenv:    func(key string) string { return h.env[key] },
		logOutput: &h.logs,
	}
}

func execute(t *testing.T, h *testHarness, args ...string) (string, error) {
	t.Helper()

	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var out bytes.Buffer
	root := newRootCmd(h.deps())
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGenerateQuiz(t *testing.T) {
	h := &testHarness{reply: quizReply}

	out, err := execute(t, h, "generate", "--topic", "Necrosis", "--mode", "quiz", "--api-key", "flag-key-1234")
	require.NoError(t, err)

	require.Len(t, h.requests, 1)
	assert.Equal(t, "flag-key-1234", h.requests[0].Credential)
	assert.NotNil(t, h.requests[0].Schema)
	assert.Contains(t, out, "1. Which form of cell death provokes inflammation?")
	assert.Contains(t, out, "   A) Necrosis")
	assert.Contains(t, out, "   D) Dysplasia")
	assert.Contains(t, out, "Answer: Necrosis")
	assert.NotContains(t, h.logs.String(), "flag-key-1234")
}

func TestGenerateUsesEnvironmentKey(t *testing.T) {
	h := &testHarness{
		reply: "**Etiology**\n* Ischemia",
		env:   map[string]string{apiKeyEnv: "env-key-5678"},
	}

	out, err := execute(t, h, "generate", "-t", "Necrosis")
	require.NoError(t, err)

	require.Len(t, h.requests, 1)
	assert.Equal(t, "env-key-5678", h.requests[0].Credential)
	assert.Nil(t, h.requests[0].Schema, "guide mode is the default and has no schema")
	assert.Equal(t, "**Etiology**\n* Ischemia\n", out)
}

func TestGenerateJSON(t *testing.T) {
	h := &testHarness{reply: `[{"term":"Pyknosis","definition":"Nuclear shrinkage."}]`}

	out, err := execute(t, h, "generate", "--topic", "Necrosis", "--mode", "flashcards", "--api-key", "k-1234", "--json")
	require.NoError(t, err)

	var set domain.FlashcardSet
	require.NoError(t, json.Unmarshal([]byte(out), &set))
	assert.Equal(t, []domain.Flashcard{{Term: "Pyknosis", Definition: "Nuclear shrinkage."}}, set.Cards)
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		clientErr error
		reply     string
		wantErr   string
		wantCalls int
	}{
		{
			name:    "missing credential",
			args:    []string{"generate", "--topic", "Necrosis"},
			wantErr: "missing_credential: API key is missing. Please provide your Gemini API key.",
		},
		{
			name:    "unknown mode",
			args:    []string{"generate", "--topic", "Necrosis", "--mode", "poetry", "--api-key", "k-1234"},
			wantErr: "unsupported_mode: Invalid study mode selected.",
		},
		{
			name:      "invalid credential",
			args:      []string{"generate", "--topic", "Necrosis", "--api-key", "k-1234"},
			clientErr: errors.New("API key not valid. Please pass a valid API key."),
			wantErr:   "invalid_credential: API key is invalid. Please check your Gemini API key and try again.",
			wantCalls: 1,
		},
		{
			name:      "malformed quiz",
			args:      []string{"generate", "--topic", "Necrosis", "--mode", "quiz", "--api-key", "k-1234"},
			reply:     "[]",
			wantErr:   "malformed_response: received invalid format from language model for quiz questions: no questions in response",
			wantCalls: 1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := &testHarness{reply: tc.reply, err: tc.clientErr}

			_, err := execute(t, h, tc.args...)
			require.Error(t, err)
			assert.Equal(t, tc.wantErr, err.Error())
			assert.Len(t, h.requests, tc.wantCalls)
		})
	}
}

func TestModesCommand(t *testing.T) {
	out, err := execute(t, &testHarness{}, "modes")
	require.NoError(t, err)

	assert.Contains(t, out, "guide")
	assert.Contains(t, out, "Study Guide")
	assert.Contains(t, out, "Quiz Me")
}
