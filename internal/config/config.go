package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Registration RegistrationConfig
	Catalog      CatalogConfig
	Log          LogConfig
	UI           UIConfig
}

// RegistrationConfig controls how registration numbers are issued.
type RegistrationConfig struct {
	NumberPrefix string `mapstructure:"number_prefix"`
}

// CatalogConfig points at an optional YAML catalog overriding the built-in skills.
type CatalogConfig struct {
	Path string
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title string
}

// Load reads configuration from file and env. Env var overrides use prefix STAFFDESK_.
func Load() (Config, error) {
	v := viper.New()

	home := os.Getenv("HOME")
	v.SetDefault("registration.number_prefix", "EMP")
	v.SetDefault("catalog.path", "")
	v.SetDefault("log.path", filepath.Join(home, ".local", "state", "staffdesk", "staffdesk.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.title", "Employee Management System")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("STAFFDESK_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(home, ".config", "staffdesk"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("STAFFDESK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// no config file is fine; an unreadable or malformed one is not
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Registration.NumberPrefix = strings.TrimSpace(c.Registration.NumberPrefix)
	if c.Registration.NumberPrefix == "" {
		c.Registration.NumberPrefix = "EMP"
	}
	return c, nil
}
