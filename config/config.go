package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultEnvFile is the env file consulted when no other path is configured.
const DefaultEnvFile = ".env"

// Settings represents the complete application configuration.
// Each field is sourced from the environment variable named in its envconfig tag.
type Settings struct {
	// Application
	AppName     string `envconfig:"APP_NAME" default:"CatBot API"`
	Debug       Flag   `envconfig:"DEBUG" default:"false"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	SecretKey   string `envconfig:"SECRET_KEY" default:"your-secret-key-here"`

	// API
	APIPrefix   string     `envconfig:"API_V1_STR" default:"/api/v1"`
	CORSOrigins OriginList `envconfig:"CORS_ORIGINS" default:"http://localhost:3000,http://127.0.0.1:3000"`

	// Database
	DatabaseURL     string `envconfig:"DATABASE_URL" default:"sqlite:///./catbot.db"`
	TestDatabaseURL string `envconfig:"TEST_DATABASE_URL" default:"sqlite:///./test_catbot.db"`

	// Security
	AccessTokenExpireMinutes int    `envconfig:"ACCESS_TOKEN_EXPIRE_MINUTES" default:"10080"`
	Algorithm                string `envconfig:"ALGORITHM" default:"HS256"`

	// OpenAIAPIKey is nil when OPENAI_API_KEY is not set.
	OpenAIAPIKey *string `envconfig:"OPENAI_API_KEY"`

	// Feature flags
	EnableFeatureCheckIns      Flag `envconfig:"ENABLE_FEATURE_CHECK_INS" default:"true"`
	EnableFeatureFocusMode     Flag `envconfig:"ENABLE_FEATURE_FOCUS_MODE" default:"true"`
	EnableFeatureIdeaGenerator Flag `envconfig:"ENABLE_FEATURE_IDEA_GENERATOR" default:"true"`

	ServerSettings
}

// ServerSettings holds HTTP listener and logging configuration
type ServerSettings struct {
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Port            int           `envconfig:"PORT" default:"8000" validate:"min=1,max=65535"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s" validate:"gt=0"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s" validate:"gt=0"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s" validate:"gt=0"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"json" validate:"oneof=json console"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	// Report failures by environment key rather than Go field name.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("envconfig")
	})
}

// Option customizes how Load sources settings
type Option func(*options)

type options struct {
	envFile string
}

// WithEnvFile sets the env file path. An empty path disables the env file layer.
func WithEnvFile(path string) Option {
	return func(o *options) {
		o.envFile = path
	}
}

// Load builds Settings from struct defaults, the env file and the process
// environment, in increasing order of precedence.
func Load(opts ...Option) (Settings, error) {
	o := options{envFile: DefaultEnvFile}
	for _, opt := range opts {
		opt(&o)
	}

	if err := loadEnvFile(o.envFile); err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		var parseErr *envconfig.ParseError
		if errors.As(err, &parseErr) {
			return Settings{}, &ConfigurationError{
				Key:   parseErr.KeyName,
				Value: parseErr.Value,
				Err:   parseErr.Err,
			}
		}
		return Settings{}, &ConfigurationError{Err: err}
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// loadEnvFile copies the file's keys into the process environment without
// overwriting variables that are already set.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	// envconfig reads only the process environment, so file keys are copied into it.
	if err := godotenv.Load(path); err != nil {
		return &ConfigurationError{Err: fmt.Errorf("failed to read env file %s: %w", path, err)}
	}
	return nil
}

// Validate checks the listener and logging settings
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
			fe := validationErrors[0]
			return &ConfigurationError{
				Key:   fe.Field(),
				Value: fmt.Sprint(fe.Value()),
				Err:   fmt.Errorf("failed %q validation", fe.ActualTag()),
			}
		}
		return &ConfigurationError{Err: err}
	}
	return nil
}

// IsProduction returns true if running in production environment
func (s *Settings) IsProduction() bool {
	return s.Environment == "production" || s.Environment == "prod"
}

// IsDevelopment returns true if running in development environment
func (s *Settings) IsDevelopment() bool {
	return s.Environment == "development" || s.Environment == "dev"
}

// Address returns the HTTP listen address
func (s *ServerSettings) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseLogString returns the database URL with any password redacted.
func (s *Settings) DatabaseLogString() string {
	u, err := url.Parse(s.DatabaseURL)
	if err != nil {
		return "<unparseable DATABASE_URL>"
	}
	return u.Redacted()
}

// clone returns a copy that shares no mutable state with s.
func (s *Settings) clone() Settings {
	c := *s
	if s.CORSOrigins != nil {
		c.CORSOrigins = append(OriginList(nil), s.CORSOrigins...)
	}
	if s.OpenAIAPIKey != nil {
		key := *s.OpenAIAPIKey
		c.OpenAIAPIKey = &key
	}
	return c
}
