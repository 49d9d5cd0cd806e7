package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/tinytelemetry/statekit/internal/model"
)

// appConfig holds everything the TUI and the headless runner read.
type appConfig struct {
	TickInterval time.Duration `mapstructure:"tick-interval" yaml:"tick-interval"`
	InitialCount int           `mapstructure:"initial-count" yaml:"initial-count"`
	TitleFormat  string        `mapstructure:"title-format" yaml:"title-format"`
	StartPage    string        `mapstructure:"start-page" yaml:"start-page"`
	Skin         string        `mapstructure:"skin" yaml:"skin"`
	LogLevel     string        `mapstructure:"log-level" yaml:"log-level"`
	LogFile      string        `mapstructure:"log-file" yaml:"log-file"`
	HistorySize  int           `mapstructure:"history-size" yaml:"history-size"`
}

var validPages = []string{"counter", "reducer", "timer"}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "statekit"), nil
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	v := viper.New()
	v.SetEnvPrefix("STATEKIT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("tick-interval", model.DefaultTickInterval)
	v.SetDefault("initial-count", model.DefaultInitialCount)
	v.SetDefault("title-format", model.DefaultTitleFormat)
	v.SetDefault("start-page", model.DefaultStartPage)
	v.SetDefault("skin", model.DefaultSkin)
	v.SetDefault("log-level", model.DefaultLogLevel)
	v.SetDefault("log-file", "")
	v.SetDefault("history-size", model.DefaultHistorySize)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		dir, err := configDir()
		if err != nil {
			return cfg, err
		}
		v.SetConfigFile(filepath.Join(dir, "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.validate()
}

func (c appConfig) validate() error {
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick-interval must be positive, got %s", c.TickInterval)
	}
	if c.HistorySize <= 0 {
		return fmt.Errorf("history-size must be positive, got %d", c.HistorySize)
	}
	if !singleCountVerb(c.TitleFormat) {
		return fmt.Errorf("title-format %q must contain %%d as its only verb", c.TitleFormat)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level %q: %w", c.LogLevel, err)
	}
	for _, p := range validPages {
		if c.StartPage == p {
			return nil
		}
	}
	return fmt.Errorf("start-page %q must be one of %s", c.StartPage, strings.Join(validPages, ", "))
}

// singleCountVerb reports whether format has exactly one verb and it is %d.
// Escaped percent signs are allowed.
func singleCountVerb(format string) bool {
	s := strings.ReplaceAll(format, "%%", "")
	return strings.Count(s, "%") == 1 && strings.Count(s, "%d") == 1
}

// printConfig writes the effective configuration as YAML.
func printConfig(w io.Writer, cfg appConfig) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return enc.Close()
}
