package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally a config.yaml
// in the working directory. Environment variables take precedence over values
// from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("llm.credential_file", ".env")
	v.SetDefault("llm.request_timeout_seconds", 60)

	// Configure to read from config files
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults cover it.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Configure to read from environment variables with CARDSMITH_ prefix
	v.SetEnvPrefix("CARDSMITH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind critical environment variables. The Gemini key also
	// honors the conventional GOOGLE_API_KEY name.
	bindEnvs := []struct {
		key     string
		envVars []string
	}{
		{"server.port", []string{"CARDSMITH_SERVER_PORT"}},
		{"server.log_level", []string{"CARDSMITH_SERVER_LOG_LEVEL"}},
		{"llm.gemini_api_key", []string{"CARDSMITH_LLM_GEMINI_API_KEY", "GOOGLE_API_KEY"}},
		{"llm.credential_file", []string{"CARDSMITH_LLM_CREDENTIAL_FILE"}},
		{"llm.request_timeout_seconds", []string{"CARDSMITH_LLM_REQUEST_TIMEOUT_SECONDS"}},
	}

	for _, env := range bindEnvs {
		args := append([]string{env.key}, env.envVars...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("error binding environment variable for %s: %w", env.key, err)
		}
	}

	// Unmarshal and validate
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
