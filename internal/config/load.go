package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable read by Load,
// e.g. SCRY_SERVER_PORT or SCRY_LLM_MODEL_NAME.
const EnvPrefix = "SCRY"

// DefaultModelName is the Gemini model used when none is configured.
const DefaultModelName = "gemini-2.5-flash"

// DefaultTopics is the suggested pathology topic catalogue.
var DefaultTopics = []string{
	"Cell Injury and Adaptation",
	"Necrosis and Apoptosis",
	"Acute Inflammation",
	"Chronic Inflammation",
	"Tissue Repair and Healing",
	"Hemodynamic Disorders",
	"Thrombosis and Embolism",
	"Neoplasia",
	"Genetic Disorders",
	"Immunopathology",
	"Amyloidosis",
	"Infectious Diseases",
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers a default for every key. Viper only resolves
// environment overrides during Unmarshal for keys it already knows about.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.base_url", "")
	v.SetDefault("study.topics", DefaultTopics)
}
