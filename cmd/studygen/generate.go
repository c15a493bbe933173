package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/phrazzld/scry-study/internal/domain"
	"github.com/phrazzld/scry-study/internal/generation"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	topic  string
	mode   string
	apiKey string
	asJSON bool
}

func newGenerateCmd(d deps) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate study material for a topic",
		Example: `  studygen generate --topic "Neoplasia" --mode guide
  studygen generate --topic "Amyloidosis" --mode quiz --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, d, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.topic, "topic", "t", "", "topic to study")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", string(domain.StudyModeGuide), "study mode: guide, flashcards or quiz")
	cmd.Flags().StringVar(&opts.apiKey, "api-key", "", "Gemini API key (defaults to $"+apiKeyEnv+")")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "print the artifact as JSON")

	return cmd
}

func runGenerate(cmd *cobra.Command, d deps, opts *generateOptions) error {
	ctx := cmd.Context()

	cfg, err := d.loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(d, cfg)
	if err != nil {
		return err
	}

	client, err := d.newClient(ctx, log.With("component", "gemini_client"), cfg.LLM)
	if err != nil {
		return err
	}

	svc, err := generation.NewService(client, log.With("component", "generation_service"))
	if err != nil {
		return err
	}

	credential := opts.apiKey
	if credential == "" {
		credential = d.getenv(apiKeyEnv)
	}

	result, err := svc.Generate(ctx, strings.TrimSpace(credential), opts.topic, domain.StudyMode(opts.mode))
	if err != nil {
		classified := generation.Classify(err)
		return fmt.Errorf("%s: %s", classified.Kind, classified.Message)
	}

	out := cmd.OutOrStdout()
	if opts.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(result.Artifact)
	}
	return printArtifact(out, result.Artifact)
}

// printArtifact renders an artifact as plain text.
func printArtifact(w io.Writer, artifact domain.Artifact) error {
	var b strings.Builder

	switch a := artifact.(type) {
	case domain.Guide:
		b.WriteString(a.Text)
		b.WriteString("\n")
	case domain.FlashcardSet:
		for i, card := range a.Cards {
			fmt.Fprintf(&b, "%d. %s\n   %s\n", i+1, card.Term, card.Definition)
		}
	case domain.Quiz:
		for i, q := range a.Questions {
			if i > 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "%d. %s\n", i+1, q.Question)
			for j, option := range q.Options {
				fmt.Fprintf(&b, "   %c) %s\n", 'A'+j, option)
			}
			fmt.Fprintf(&b, "   Answer: %s\n   %s\n", q.CorrectAnswer, q.Explanation)
		}
	default:
		return fmt.Errorf("unsupported artifact %T", artifact)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
