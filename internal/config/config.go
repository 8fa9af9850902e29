package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Supported query backends.
const (
	BackendTimestream = "timestream"
	BackendInfluxDB   = "influxdb"
)

// Config holds the application's configuration.
type Config struct {
	Backend string `env:"QUERY_BACKEND" envDefault:"timestream"`

	AWSRegion          string `env:"AWS_REGION"`
	TimestreamDatabase string `env:"TIMESTREAM_DATABASE" envDefault:"sampleDB"`
	TimestreamTable    string `env:"TIMESTREAM_TABLE" envDefault:"uplinkDB"`

	InfluxDBURL    string `env:"INFLUXDB_URL"`
	InfluxDBToken  string `env:"INFLUXDB_TOKEN"`
	InfluxDBOrg    string `env:"INFLUXDB_ORG"`
	InfluxDBBucket string `env:"INFLUXDB_BUCKET" envDefault:"sampleDB"`

	Port               string   `env:"PORT" envDefault:"8000"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// LogFormat is json or text.
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// APIURL is the base URL telemetryctl talks to.
	APIURL string `env:"API_URL" envDefault:"http://localhost:8000"`
}

// LoadConfig loads the configuration from a .env file, if any, and the environment.
func LoadConfig() (Config, error) {
	cfg, err := Parse()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse reads the .env file and environment without validating the backend.
// telemetryctl uses it since it never talks to a store.
func Parse() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, relying on system environment variables")
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("error parsing environment: %w", err)
	}
	cfg.Backend = strings.ToLower(strings.TrimSpace(cfg.Backend))
	return cfg, nil
}

// Validate checks that the selected backend has everything it needs.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendTimestream:
		if c.TimestreamDatabase == "" || c.TimestreamTable == "" {
			return fmt.Errorf("Timestream configuration is incomplete. Please set TIMESTREAM_DATABASE and TIMESTREAM_TABLE environment variables")
		}
	case BackendInfluxDB:
		if c.InfluxDBURL == "" || c.InfluxDBToken == "" || c.InfluxDBOrg == "" {
			return fmt.Errorf("InfluxDB configuration is incomplete. Please set INFLUXDB_URL, INFLUXDB_TOKEN, and INFLUXDB_ORG environment variables")
		}
	default:
		return fmt.Errorf("unknown QUERY_BACKEND %q, expected %q or %q", c.Backend, BackendTimestream, BackendInfluxDB)
	}
	return nil
}

// SlogLevel parses the configured log level string into an slog.Level.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Addr returns the listen address as ":PORT".
func (c Config) Addr() string {
	return fmt.Sprintf(":%s", c.Port)
}
