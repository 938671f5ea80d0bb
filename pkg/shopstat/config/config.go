// Package config loads shopstat settings from the environment and an
// optional YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "SHOPSTAT"

// Config represents the complete tool configuration.
type Config struct {
	Sheet        string        `yaml:"sheet" envconfig:"SHEET" default:"JCS" validate:"required"`
	HeaderRow    int           `yaml:"header_row" envconfig:"HEADER_ROW" default:"0" validate:"gte=0"`
	Format       string        `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
	ExampleJobs  int           `yaml:"example_jobs" envconfig:"EXAMPLE_JOBS" default:"3" validate:"gte=0"`
	TopShortages int           `yaml:"top_shortages" envconfig:"TOP_SHORTAGES" default:"10" validate:"gte=0"`
	Logging      LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"warn" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"text" validate:"oneof=text json"`
}

// Load loads configuration from environment variables and, when path is
// not empty, a YAML file. Environment variables take precedence over the
// file, and the file over defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path != "" {
		fileConfig, err := loadFromFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = mergeConfigs(*fileConfig, cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// loadFromFile overlays the YAML file at filePath on base.
func loadFromFile(filePath string, base Config) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs keeps the env value of every explicitly set variable and
// takes the file value otherwise.
func mergeConfigs(fileConfig, envConfig Config) Config {
	merged := fileConfig

	if envSet("SHEET") {
		merged.Sheet = envConfig.Sheet
	}
	if envSet("HEADER_ROW") {
		merged.HeaderRow = envConfig.HeaderRow
	}
	if envSet("FORMAT") {
		merged.Format = envConfig.Format
	}
	if envSet("EXAMPLE_JOBS") {
		merged.ExampleJobs = envConfig.ExampleJobs
	}
	if envSet("TOP_SHORTAGES") {
		merged.TopShortages = envConfig.TopShortages
	}
	if envSet("LOGGING_LEVEL") {
		merged.Logging.Level = envConfig.Logging.Level
	}
	if envSet("LOGGING_FORMAT") {
		merged.Logging.Format = envConfig.Logging.Format
	}

	return merged
}

func envSet(key string) bool {
	_, ok := os.LookupEnv(EnvPrefix + "_" + key)
	return ok
}
