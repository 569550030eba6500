package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Load reads, parses, and validates the service configuration.
//
// The loading sequence is:
//  1. Enforce UTC process time to prevent drift bugs in cycle arithmetic.
//  2. Load a .env file via godotenv (non-fatal if absent; existing
//     environment variables are never overridden).
//  3. Process envconfig struct tags to populate Config.
//  4. Validate the populated struct with go-playground/validator.
func Load() (*Config, error) {
	time.Local = time.UTC

	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, &Error{
			Type:    ErrParsing,
			Message: "failed to process environment configuration",
			Err:     err,
		}
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, &Error{
			Type:    ErrValidation,
			Message: "configuration failed validation",
			Err:     err,
		}
	}

	return &cfg, nil
}
