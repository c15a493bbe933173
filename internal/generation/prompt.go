package generation

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/phrazzld/scry-study/internal/domain"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

// promptTemplates holds the shared preamble and one template per mode.
// text/template is used so the topic is substituted without HTML escaping.
var promptTemplates = template.Must(template.ParseFS(promptFS, "prompts/*.tmpl"))

// promptData represents the data passed to the prompt templates.
type promptData struct {
	Topic string
}

// Prompt is the instruction text for one request plus the response schema
// to attach, if the mode has one.
type Prompt struct {
	Text   string
	Schema *Schema
}

// BuildPrompt renders the prompt for topic in the given mode. It is pure:
// the same inputs always produce the same Prompt.
//
// Returns ErrUnsupportedMode for unknown modes and domain.ErrEmptyTopic for a
// blank topic.
func BuildPrompt(topic string, mode domain.StudyMode) (Prompt, error) {
	p, ok := pipelines[mode]
	if !ok {
		return Prompt{}, fmt.Errorf("%w: %q", ErrUnsupportedMode, mode)
	}
	if err := domain.ValidateTopic(topic); err != nil {
		return Prompt{}, err
	}

	var buf bytes.Buffer
	if err := promptTemplates.ExecuteTemplate(&buf, p.template, promptData{Topic: topic}); err != nil {
		return Prompt{}, fmt.Errorf("failed to execute prompt template %s: %w", p.template, err)
	}

	prompt := Prompt{Text: strings.TrimSpace(buf.String())}
	if p.schema != nil {
		prompt.Schema = p.schema()
	}
	return prompt, nil
}
