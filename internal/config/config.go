// Package config defines the service configuration. Configuration is loaded
// once at process start and is immutable thereafter; any missing required
// value or invalid format fails the startup.
package config

import (
	"fmt"
	"time"
)

// Config is the top-level configuration for the plancheck service.
// Sub-components receive only the subsets they need.
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"local" validate:"required,oneof=local dev staging prod"`
	Service     string `envconfig:"SERVICE_NAME" default:"plancheck-api"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`

	Server   ServerConfig
	Database DatabaseConfig
	Oracle   OracleConfig
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Port           string        `envconfig:"PORT" default:"8080"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT" default:"29s"`
	// CORS origins allowed to call the API. "*" allows all (local dev).
	CorsAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

// DatabaseConfig holds connection and pool tuning parameters for the
// subscription/usage store.
type DatabaseConfig struct {
	URL string `envconfig:"DATABASE_URL" validate:"required,url"`

	MaxConns          int32         `envconfig:"DB_MAX_CONNS" default:"10"`
	MinConns          int32         `envconfig:"DB_MIN_CONNS" default:"2"`
	MaxConnLifetime   time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"30m"`
	HealthCheckPeriod time.Duration `envconfig:"DB_HEALTH_CHECK_PERIOD" default:"1m"`
}

// OracleConfig holds settings for the authoritative pricing endpoint. The
// service computes prices optimistically from the catalog and reconciles
// them against this endpoint's check results.
type OracleConfig struct {
	BaseURL    string        `envconfig:"ORACLE_BASE_URL" validate:"required,url"`
	Timeout    time.Duration `envconfig:"ORACLE_TIMEOUT" default:"10s"`
	UserAgent  string        `envconfig:"ORACLE_USER_AGENT" default:"plancheck/1.0"`
	MaxRetries int           `envconfig:"ORACLE_MAX_RETRIES" default:"3"`
}

// ErrorType categorizes configuration loading failures to aid debugging.
type ErrorType string

const (
	// ErrParsing indicates a failure parsing environment values into their
	// target types.
	ErrParsing ErrorType = "PARSING_FAILED"
	// ErrValidation indicates the configuration failed struct validation.
	ErrValidation ErrorType = "VALIDATION_FAILED"
)

// Error is the diagnostic error type returned by Load.
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}
