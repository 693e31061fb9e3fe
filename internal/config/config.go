package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all language model integration settings.
type LLMConfig struct {
	// GeminiAPIKey may be empty at startup; the service then runs in
	// locked mode until a key is supplied through the API.
	GeminiAPIKey string `mapstructure:"gemini_api_key"`

	// CredentialFile is the dotenv file used to persist a key supplied at
	// runtime, re-read on every update.
	CredentialFile string `mapstructure:"credential_file" validate:"required"`

	// RequestTimeoutSeconds bounds a single generation round trip.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"gte=0"`
}
