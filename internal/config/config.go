// Package config loads salesdash configuration from the environment and an
// optional YAML file.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable, e.g. SALESDASH_LOGGING_LEVEL.
const EnvPrefix = "SALESDASH"

// Config represents the complete application configuration
type Config struct {
	Logging  LoggingConfig  `yaml:"logging" envconfig:"LOGGING"`
	Pipeline PipelineConfig `yaml:"pipeline" envconfig:"PIPELINE"`
	Export   ExportConfig   `yaml:"export" envconfig:"EXPORT"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" envconfig:"FORMAT" default:"json" validate:"oneof=json text"`
}

// PipelineConfig contains upload processing configuration
type PipelineConfig struct {
	MaxFileSize   int64  `yaml:"max_file_size" envconfig:"MAX_FILE_SIZE" default:"10485760" validate:"min=1"`
	MonthlyMode   string `yaml:"monthly_mode" envconfig:"MONTHLY_MODE" default:"calendar" validate:"oneof=calendar recent"`
	Timezone      string `yaml:"timezone" envconfig:"TIMEZONE" default:"UTC" validate:"required"`
	TopCategories int    `yaml:"top_categories" envconfig:"TOP_CATEGORIES" default:"5" validate:"min=1,max=20"`
	TopProducts   int    `yaml:"top_products" envconfig:"TOP_PRODUCTS" default:"8" validate:"min=1,max=50"`
}

// ExportConfig contains workbook export configuration
type ExportConfig struct {
	Charts bool   `yaml:"charts" envconfig:"CHARTS" default:"false"`
	Dir    string `yaml:"dir" envconfig:"DIR" default:"."`
}

// Load loads configuration from environment variables and, when path is not
// empty, a YAML file. Environment variables take precedence over the file,
// and the file over built-in defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if path != "" {
		fileConfig, err := loadFromFile(path)
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

// loadFromFile loads configuration from YAML file
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// mergeConfigs copies file values into envConfig for every setting whose
// environment variable is unset.
func mergeConfigs(fileConfig, envConfig Config) Config {
	merge(&envConfig.Logging.Level, fileConfig.Logging.Level, "LOGGING_LEVEL")
	merge(&envConfig.Logging.Format, fileConfig.Logging.Format, "LOGGING_FORMAT")

	merge(&envConfig.Pipeline.MaxFileSize, fileConfig.Pipeline.MaxFileSize, "PIPELINE_MAX_FILE_SIZE")
	merge(&envConfig.Pipeline.MonthlyMode, fileConfig.Pipeline.MonthlyMode, "PIPELINE_MONTHLY_MODE")
	merge(&envConfig.Pipeline.Timezone, fileConfig.Pipeline.Timezone, "PIPELINE_TIMEZONE")
	merge(&envConfig.Pipeline.TopCategories, fileConfig.Pipeline.TopCategories, "PIPELINE_TOP_CATEGORIES")
	merge(&envConfig.Pipeline.TopProducts, fileConfig.Pipeline.TopProducts, "PIPELINE_TOP_PRODUCTS")

	merge(&envConfig.Export.Charts, fileConfig.Export.Charts, "EXPORT_CHARTS")
	merge(&envConfig.Export.Dir, fileConfig.Export.Dir, "EXPORT_DIR")

	return envConfig
}

func merge[T comparable](dst *T, fileValue T, key string) {
	var zero T
	if fileValue == zero {
		return
	}
	if _, set := os.LookupEnv(EnvPrefix + "_" + key); set {
		return
	}
	*dst = fileValue
}

// Validate checks field constraints and the timezone name.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if _, err := c.Pipeline.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the configured timezone.
func (p PipelineConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", p.Timezone, err)
	}
	return loc, nil
}
