package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
	Study  StudyConfig  `mapstructure:"study"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains the language model settings shared by every request.
// There is no API key setting: the key is supplied per request
// by the caller and never stored in configuration.
type LLMConfig struct {
	// ModelName is the Gemini model used for every generation request.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// BaseURL overrides the Gemini endpoint, e.g. for a proxy. Empty means
	// the SDK default.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

// StudyConfig contains study-material settings.
type StudyConfig struct {
	// Topics is the suggested topic catalogue offered to callers.
	Topics []string `mapstructure:"topics" validate:"dive,required"`
}
