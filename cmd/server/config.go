package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/scry-study/internal/config"
)

// loadAppConfig loads the application configuration from environment variables or config file.
// Returns the loaded config and any loading error.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// logAppConfig records the non-secret configuration at startup.
func logAppConfig(logger *slog.Logger, cfg *config.Config) {
	logger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	logger.Debug("LLM configuration",
		"model", cfg.LLM.ModelName,
		"base_url_override", cfg.LLM.BaseURL != "",
		"topic_count", len(cfg.Study.Topics))
}
