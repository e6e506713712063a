package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Dataset source names accepted in DATASET_SOURCE.
const (
	SourceSheets   = "sheets"
	SourceFile     = "file"
	SourceSpaces   = "spaces"
	SourceRedis    = "redis"
	SourcePostgres = "postgres"
	SourceHTTP     = "http"
)

// Config holds environment-based settings
type Config struct {
	Environment    string   `envconfig:"APP_ENV" default:"production"`
	ServerAddress  string   `envconfig:"SERVER_ADDRESS" default:":8080" validate:"required"`
	LogLevel       string   `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=trace debug info warn error"`
	APIKey         string   `envconfig:"BIBLEMIND_API_KEY"`
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"https://biblemind.onrender.com,https://biblemind.netlify.app,https://your-vercel-domain.vercel.app"`

	RateLimit RateLimitConfig `envconfig:"RATE_LIMIT"`

	DatasetSource         string `envconfig:"DATASET_SOURCE" default:"sheets" validate:"oneof=sheets file spaces redis postgres http"`
	GoogleCredentialsJSON string `envconfig:"GOOGLE_CREDS_JSON"`

	// only the settings of the selected source are validated
	Sheet    SheetConfig    `envconfig:"SHEET" validate:"-"`
	File     FileConfig     `envconfig:"DATASET" validate:"-"`
	HTTP     HTTPConfig     `envconfig:"DATASET" validate:"-"`
	Spaces   SpacesConfig   `envconfig:"SPACES" validate:"-"`
	Redis    RedisConfig    `envconfig:"REDIS" validate:"-"`
	Database DatabaseConfig `envconfig:"DATABASE" validate:"-"`
}

// RateLimitConfig is off when RPS is zero.
type RateLimitConfig struct {
	RPS   float64 `envconfig:"RPS" default:"0" validate:"gte=0"`
	Burst int     `envconfig:"BURST" default:"10" validate:"gte=1"`
}

type SheetConfig struct {
	ID    string `envconfig:"ID" validate:"required"`
	Range string `envconfig:"RANGE" default:"Sheet1" validate:"required"`
}

type FileConfig struct {
	Path  string `envconfig:"FILE" validate:"required"`
	Sheet string `envconfig:"SHEET"`
}

type HTTPConfig struct {
	URL string `envconfig:"URL" validate:"required,url"`
}

type SpacesConfig struct {
	Endpoint  string `envconfig:"ENDPOINT" validate:"required"`
	Region    string `envconfig:"REGION" validate:"required"`
	Bucket    string `envconfig:"BUCKET" validate:"required"`
	Key       string `envconfig:"KEY" default:"readings.json" validate:"required"`
	AccessKey string `envconfig:"ACCESS_KEY"`
	SecretKey string `envconfig:"SECRET_KEY"`
}

type RedisConfig struct {
	Address  string `envconfig:"ADDRESS" validate:"required"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0" validate:"gte=0"`
	Key      string `envconfig:"KEY" default:"biblemind:readings" validate:"required"`
}

type DatabaseConfig struct {
	URL            string `envconfig:"URL" validate:"required"`
	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"./migrations"`
}

// Load reads an optional .env file and then configuration from environment
// variables.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the general settings and those of the selected dataset
// source.
func (c *Config) Validate() error {
	v := validator.New()

	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var err error
	switch c.DatasetSource {
	case SourceSheets:
		if err = v.Struct(c.Sheet); err == nil {
			err = v.Var(c.GoogleCredentialsJSON, "required,json")
			if err != nil {
				err = fmt.Errorf("GOOGLE_CREDS_JSON: %w", err)
			}
		}
	case SourceFile:
		err = v.Struct(c.File)
	case SourceHTTP:
		err = v.Struct(c.HTTP)
	case SourceSpaces:
		err = v.Struct(c.Spaces)
	case SourceRedis:
		err = v.Struct(c.Redis)
	case SourcePostgres:
		err = v.Struct(c.Database)
	}
	if err != nil {
		return fmt.Errorf("invalid %s dataset configuration: %w", c.DatasetSource, err)
	}
	return nil
}

// IsDevelopment reports whether APP_ENV selects developer-friendly output.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
