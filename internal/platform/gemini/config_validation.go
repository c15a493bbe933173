package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/phrazzld/scry-study/internal/config"
)

// validateConfig checks the LLM configuration before the client is used.
//
// Parameters:
//   - ctx: Context for logging
//   - logger: Logger for recording validation results
//   - cfg: The LLM configuration to validate
//
// Returns:
//   - An error wrapping ErrInvalidConfig if validation fails, nil otherwise
func validateConfig(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) error {
	if cfg.ModelName == "" {
		logger.ErrorContext(ctx, "Missing model name in LLM configuration")
		return fmt.Errorf("%w: model name cannot be empty", ErrInvalidConfig)
	}

	if cfg.BaseURL != "" {
		u, err := url.Parse(cfg.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			logger.ErrorContext(ctx, "Invalid base URL in LLM configuration",
				"base_url", cfg.BaseURL)
			return fmt.Errorf("%w: base URL %q is not an absolute URL", ErrInvalidConfig, cfg.BaseURL)
		}
	}

	logger.DebugContext(ctx, "LLM configuration validation passed",
		"model", cfg.ModelName,
		"base_url_override", cfg.BaseURL != "")
	return nil
}
