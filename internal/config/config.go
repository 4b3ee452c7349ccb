// Package config loads the server configuration from a yaml file with
// environment overrides.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address     string `mapstructure:"address"`
	Port        int    `mapstructure:"port"`
	Mode        string `mapstructure:"mode"`
	Debug       bool   `mapstructure:"debug"`
	AllowOrigin string `mapstructure:"allow_origin"`
}

type DatabaseConfig struct {
	// Path is the document file; created with empty collections on first use.
	Path string `mapstructure:"path"`
	// SeedFile, when set, is merged into the dashboard collections at startup.
	SeedFile string `mapstructure:"seed_file"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

// Load reads configuration from the given file path (e.g. "config.yaml").
// If path is empty, "config.yaml" in the working directory is tried, and a
// missing file falls back to defaults. Environment variables prefixed with
// PULSE_ override file values, e.g. PULSE_SERVER_PORT=9000.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.address", "0.0.0.0")
	v.SetDefault("server.port", 3001)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.debug", false)
	v.SetDefault("database.path", "./data/db.json")
	v.SetDefault("log.level", "info")

	if path == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("PULSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing default config file is fine; an explicit one is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
