// Package config loads runtime settings for the bem-translator command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "BEMT"

// ConfigName is the base name of the optional config file.
const ConfigName = ".bem-translator"

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all runtime configuration for a translation run.
// Values are populated from .bem-translator.yaml, BEMT_* env vars, and CLI flags.
type Config struct {
	// Catalog is the path of a catalog YAML file; empty means the embedded one.
	Catalog   string   `mapstructure:"catalog"`
	LogLevel  string   `mapstructure:"log_level"`
	LogFormat string   `mapstructure:"log_format"`
	MaxDepth  int      `mapstructure:"max_depth"`
	Roots     []string `mapstructure:"roots"`
	Strict    bool     `mapstructure:"strict"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("catalog", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("max_depth", 64)
	v.SetDefault("roots", []string{})
	v.SetDefault("strict", false)
}

// Init points v at the config file and the environment. An explicit file
// must exist; the default one is optional.
func Init(v *viper.Viper, file string, searchPaths ...string) error {
	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")

		for _, p := range searchPaths {
			v.AddConfigPath(p)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return nil
		}

		return fmt.Errorf("failed to read config: %w", err)
	}

	return nil
}

// Load reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	return cfg, cfg.Validate()
}

// Validate checks the closed-set settings.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level must be 'debug', 'info', 'warn', or 'error', got %q", ErrInvalidConfig, c.LogLevel)
	}

	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: log_format must be 'text' or 'json', got %q", ErrInvalidConfig, c.LogFormat)
	}

	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: max_depth must not be negative, got %d", ErrInvalidConfig, c.MaxDepth)
	}

	return nil
}
