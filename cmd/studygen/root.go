package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/phrazzld/scry-study/internal/config"
	"github.com/phrazzld/scry-study/internal/generation"
	"github.com/phrazzld/scry-study/internal/platform/gemini"
	"github.com/phrazzld/scry-study/internal/platform/logger"
	"github.com/spf13/cobra"
)

// apiKeyEnv names the environment variable read when --api-key is not set.
const apiKeyEnv = "GEMINI_API_KEY"

// deps are the collaborators the commands need; tests replace them.
type deps struct {
	loadConfig func() (*config.Config, error)
	newClient  func(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.Client, error)
	getenv     func(string) string
	logOutput  io.Writer
}

func defaultDeps() deps {
	return deps{
		loadConfig: config.Load,
		newClient: func(ctx context.Context, l *slog.Logger, cfg config.LLMConfig) (generation.Client, error) {
			return gemini.NewClient(ctx, l, cfg)
		},
		getenv:    os.Getenv,
		logOutput: os.Stderr,
	}
}

func newRootCmd(d deps) *cobra.Command {
	root := &cobra.Command{
		Use:   "studygen",
		Short: "Generate pathology study material with Gemini",
		Long: `studygen turns a topic into a study guide, a set of flashcards or a
multiple-choice quiz using the Gemini API.

The API key is read from --api-key or the GEMINI_API_KEY environment
variable. It is sent to Gemini and never written anywhere else.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCmd(d), newModesCmd())
	return root
}

// newLogger builds the CLI logger; logs go to stderr so stdout carries only
// the generated material.
func newLogger(d deps, cfg *config.Config) (*slog.Logger, error) {
	return logger.SetupWithWriter(cfg.Server, d.logOutput)
}
