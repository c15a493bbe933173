// Package config handles configuration loading, parsing, and validation
// from environment variables (SCRY_ prefix) and an optional config.yaml.
// It provides type-safe access to server, language model and study settings
// while keeping configuration details separate from business logic.
package config
