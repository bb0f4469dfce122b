package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"dqagent/internal/errors"
)

// Config is the complete agent configuration. Precedence is code defaults,
// then the optional YAML file, then DQ_* environment variables. The engine
// receives its slice of this struct explicitly; nothing here is ambient
// process state.
type Config struct {
	Paths   PathsConfig   `yaml:"paths" envconfig:"PATHS"`
	Schema  SchemaConfig  `yaml:"schema" envconfig:"SCHEMA"`
	Outlier OutlierConfig `yaml:"outlier" envconfig:"OUTLIER"`
	Report  ReportConfig  `yaml:"report" envconfig:"REPORT"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	AI      AIConfig      `yaml:"ai" envconfig:"AI"`
}

// SchemaConfig describes the expected sales table: which columns must be
// present, which are numeric, which carry dates, and which column keys the
// duplicate check.
type SchemaConfig struct {
	RequiredColumns []string `yaml:"required_columns" envconfig:"REQUIRED_COLUMNS" validate:"min=1"`
	NumericColumns  []string `yaml:"numeric_columns" envconfig:"NUMERIC_COLUMNS" validate:"min=1"`
	DatetimeColumns []string `yaml:"datetime_columns" envconfig:"DATETIME_COLUMNS" validate:"min=1"`
	KeyColumn       string   `yaml:"key_column" envconfig:"KEY_COLUMN" validate:"required"`
	DateColumn      string   `yaml:"date_column" envconfig:"DATE_COLUMN" validate:"required"`
}

// OutlierConfig tunes the IQR outlier check.
type OutlierConfig struct {
	IQRMultiplier float64 `yaml:"iqr_multiplier" envconfig:"IQR_MULTIPLIER" validate:"gt=0"`
}

// ReportConfig tunes the rendered outputs.
type ReportConfig struct {
	HTML               bool `yaml:"html" envconfig:"HTML"`
	MaxRowsPerCategory int  `yaml:"max_rows_per_category" envconfig:"MAX_ROWS_PER_CATEGORY" validate:"gt=0"`
}

// LoggingConfig controls the slog bootstrap.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// AIConfig controls the optional AI-narrative step.
type AIConfig struct {
	Enabled bool          `yaml:"enabled" envconfig:"ENABLED"`
	APIKey  string        `yaml:"api_key" envconfig:"API_KEY"`
	Model   string        `yaml:"model" envconfig:"MODEL" validate:"required"`
	BaseURL string        `yaml:"base_url" envconfig:"BASE_URL" validate:"url"`
	Timeout time.Duration `yaml:"timeout" envconfig:"TIMEOUT" validate:"gt=0"`
}

// Default returns the built-in configuration: the ABC Shop sales schema,
// stdout logging, AI narrative off.
func Default() *Config {
	return &Config{
		Paths: PathsConfig{
			DataDir:    "data",
			ReportsDir: "reports",
			LogsDir:    "logs",
		},
		Schema: SchemaConfig{
			RequiredColumns: []string{"order_id", "order_date", "customer_id", "product_id", "quantity", "unit_price", "amount"},
			NumericColumns:  []string{"quantity", "unit_price", "amount"},
			DatetimeColumns: []string{"order_date"},
			KeyColumn:       "order_id",
			DateColumn:      "order_date",
		},
		Outlier: OutlierConfig{IQRMultiplier: 1.5},
		Report: ReportConfig{
			HTML:               false,
			MaxRowsPerCategory: 20,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "stdout",
			FilePath: "logs/dqagent.log",
		},
		AI: AIConfig{
			Enabled: false,
			Model:   "gpt-4.1-mini",
			BaseURL: "https://api.openai.com/v1",
			Timeout: 60 * time.Second,
		},
	}
}

// Load builds the configuration: defaults, overlaid by the YAML file at
// configFile when it exists, overlaid by DQ_* environment variables. A .env
// file in the working directory is loaded first if present.
func Load(configFile string) (*Config, error) {
	// Missing .env is the normal case, not a failure.
	_ = godotenv.Load()

	cfg := Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			data, err := os.ReadFile(configFile)
			if err != nil {
				return nil, errors.Wrap(err, errors.CodeConfigInvalid, fmt.Sprintf("failed to read config file %s", configFile))
			}
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, errors.Wrap(err, errors.CodeConfigInvalid, fmt.Sprintf("failed to parse config file %s", configFile))
			}
		}
	}

	if err := envconfig.Process("DQ", cfg); err != nil {
		return nil, errors.Wrap(err, errors.CodeConfigInvalid, "failed to load config from environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration's struct tags plus the cross-field
// constraint that the AI step has a key when enabled.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, errors.CodeConfigInvalid, "config validation failed")
	}
	if c.AI.Enabled && c.AI.APIKey == "" {
		return errors.New(errors.CodeConfigInvalid, "ai narrative enabled but no API key configured")
	}
	if c.Logging.Output != "stdout" && c.Logging.FilePath == "" {
		return errors.New(errors.CodeConfigInvalid, "file logging enabled but no log file path configured")
	}
	return nil
}
