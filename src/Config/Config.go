package Config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const envPrefix = "GOSTORE"

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	/* Any level logrus understands. */
	LogLevel string `mapstructure:"log_level"`
	/* Path of the declaration manifest to load. */
	Manifest string `mapstructure:"manifest"`
	/* Listing format: text or json. */
	Format string `mapstructure:"format"`
}

/* Creates a viper instance with defaults and GOSTORE_* environment binding; callers may bind flags onto it. */
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("log_level", "info")
	v.SetDefault("manifest", "")
	v.SetDefault("format", "text")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return v
}

/* Reads the optional config file at path (empty means none) into v and decodes the result. */
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}

	if c.Format != "text" && c.Format != "json" {
		return fmt.Errorf("%w: format must be text or json, got %q", ErrInvalidConfig, c.Format)
	}

	return nil
}

/* Only valid after Validate succeeded. */
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}
