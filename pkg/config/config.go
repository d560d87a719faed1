// Package config loads and validates configuration for the projectdetect
// CLI, metrics server, and MCP server host binaries. The library package
// (pkg/detector) never reads configuration itself — it is a pure function
// of the detector.Config its caller constructs; this package is how the
// host binaries build that Config from YAML/TOML/JSON files and
// PROJECTDETECT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Sentinel validation errors.
var (
	ErrInvalidMaxProjectFiles = errors.New("detector.max_project_files must be positive")
	ErrInvalidMaxDepth        = errors.New("detector.max_depth must be positive")
	ErrInvalidMinConfidence   = errors.New("detector.min_confidence must be in [0,1]")
	ErrInvalidSampleRatio     = errors.New("observability.sample_ratio must be in [0,1]")
)

// Config holds all configuration for the projectdetect host binaries.
type Config struct {
	Detector      DetectorConfig      `mapstructure:"detector"`
	Logging       LoggingConfig       `mapstructure:"logging"`
	Observability ObservabilityConfig `mapstructure:"observability"`
	Server        ServerConfig        `mapstructure:"server"`
}

// DetectorConfig mirrors spec.md §6's DetectorConfig; it is the plain data
// a host binary turns into a detector.Config (this package has no
// dependency on pkg/detector, so the library stays viper-free).
type DetectorConfig struct {
	MaxProjectFiles    int      `mapstructure:"max_project_files"`
	MaxDepth           int      `mapstructure:"max_depth"`
	EnableGitAnalysis  bool     `mapstructure:"enable_git_analysis"`
	SkipDirs           []string `mapstructure:"skip_dirs"`
	MinConfidence      float64  `mapstructure:"min_confidence"`
	EnableEnryTieBreak bool     `mapstructure:"enable_enry_tie_break"`
}

// LoggingConfig holds logging-specific configuration.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=text json"`
}

// ObservabilityConfig holds OpenTelemetry export configuration, layered
// onto pkg/observability.Config by the host binary.
type ObservabilityConfig struct {
	ServiceName  string  `mapstructure:"service_name" validate:"required"`
	Environment  string  `mapstructure:"environment"`
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"`
	OTLPInsecure bool    `mapstructure:"otlp_insecure"`
	SampleRatio  float64 `mapstructure:"sample_ratio"`
}

// ServerConfig holds the metrics server's listen configuration.
type ServerConfig struct {
	Addr string `mapstructure:"addr" validate:"required"`
}

// LoadConfig loads configuration from file and environment variables. An
// empty configPath searches ".", "./config" and "/etc/projectdetect" for a
// "config.yaml".
func LoadConfig(configPath string) (*Config, error) {
	viperCfg := viper.New()

	setDefaults(viperCfg)

	if configPath != "" {
		viperCfg.SetConfigFile(configPath)
	} else {
		viperCfg.SetConfigName("config")
		viperCfg.SetConfigType("yaml")
		viperCfg.AddConfigPath(".")
		viperCfg.AddConfigPath("./config")
		viperCfg.AddConfigPath("/etc/projectdetect")
	}

	viperCfg.SetEnvPrefix("PROJECTDETECT")
	viperCfg.AutomaticEnv()
	viperCfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	readErr := viperCfg.ReadInConfig()
	if readErr != nil {
		var notFoundErr viper.ConfigFileNotFoundError
		if !errors.As(readErr, &notFoundErr) {
			return nil, fmt.Errorf("read config file: %w", readErr)
		}
	}

	var cfg Config

	unmarshalErr := viperCfg.Unmarshal(&cfg)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("unmarshal config: %w", unmarshalErr)
	}

	validateErr := validateConfig(&cfg)
	if validateErr != nil {
		return nil, fmt.Errorf("invalid configuration: %w", validateErr)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values, mirroring spec.md §6's
// documented DetectorConfig defaults.
func setDefaults(viperCfg *viper.Viper) {
	viperCfg.SetDefault("detector.max_project_files", DefaultMaxProjectFiles)
	viperCfg.SetDefault("detector.max_depth", DefaultMaxDepth)
	viperCfg.SetDefault("detector.enable_git_analysis", DefaultEnableGitAnalysis)
	viperCfg.SetDefault("detector.skip_dirs", DefaultSkipDirs)
	viperCfg.SetDefault("detector.min_confidence", DefaultMinConfidence)
	viperCfg.SetDefault("detector.enable_enry_tie_break", DefaultEnableEnryTieBreak)

	viperCfg.SetDefault("logging.level", DefaultLoggingLevel)
	viperCfg.SetDefault("logging.format", DefaultLoggingFormat)

	viperCfg.SetDefault("observability.service_name", DefaultServiceName)
	viperCfg.SetDefault("observability.sample_ratio", DefaultSampleRatio)

	viperCfg.SetDefault("server.addr", DefaultServerAddr)
}

var structValidator = validator.New()

// validateConfig runs struct-tag validation, then the cross-field/range
// invariants validator tags alone can't express (viper happily unmarshals
// an out-of-range float into min_confidence; "oneof"-style tags can't
// express min_confidence's [0,1] bound the way we want the error worded).
func validateConfig(cfg *Config) error {
	if err := structValidator.Struct(cfg); err != nil {
		return fmt.Errorf("%w", err)
	}

	if cfg.Detector.MaxProjectFiles <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxProjectFiles, cfg.Detector.MaxProjectFiles)
	}

	if cfg.Detector.MaxDepth <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidMaxDepth, cfg.Detector.MaxDepth)
	}

	if cfg.Detector.MinConfidence < 0 || cfg.Detector.MinConfidence > 1 {
		return fmt.Errorf("%w: %f", ErrInvalidMinConfidence, cfg.Detector.MinConfidence)
	}

	if cfg.Observability.SampleRatio < 0 || cfg.Observability.SampleRatio > 1 {
		return fmt.Errorf("%w: %f", ErrInvalidSampleRatio, cfg.Observability.SampleRatio)
	}

	return nil
}
