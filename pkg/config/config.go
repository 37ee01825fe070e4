package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Config carries the few knobs of the client. Every field has a default so
// running without a config file just works.
type Config struct {
	ProviderURL    string `yaml:"provider_url" validate:"required,url"`
	UserAgent      string `yaml:"user_agent" validate:"required"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"gte=1,lte=300"`
	ShowStats      bool   `yaml:"show_stats"`
}

const (
	defaultProviderURL    = "http://www.viaggiatreno.it/infomobilita/resteasy/viaggiatreno"
	defaultUserAgent      = "curl/7.54.1"
	defaultTimeoutSeconds = 30
)

// Load builds the effective configuration: defaults, then the yaml config
// file if one exists, then BINARIO_* environment overrides, validated last.
func Load() (*Config, error) {
	cfg := &Config{
		ProviderURL:    defaultProviderURL,
		UserAgent:      defaultUserAgent,
		TimeoutSeconds: defaultTimeoutSeconds,
		ShowStats:      true,
	}

	path, err := configFilePath()
	if err == nil {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	applyEnvironment(cfg)

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Timeout is TimeoutSeconds as a duration.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func configFilePath() (string, error) {
	if path := os.Getenv("BINARIO_CONFIG"); path != "" {
		return path, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	path := filepath.Join(configDir, "binario", "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return "", err
	}

	return path, nil
}

func loadFile(path string, cfg *Config) error {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	log.Debug().Str("path", path).Msg("Loading config file")

	if err := yaml.Unmarshal(contents, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return nil
}

func applyEnvironment(cfg *Config) {
	if v := os.Getenv("BINARIO_PROVIDER_URL"); v != "" {
		cfg.ProviderURL = v
	}

	if v := os.Getenv("BINARIO_USER_AGENT"); v != "" {
		cfg.UserAgent = v
	}

	if v := os.Getenv("BINARIO_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TimeoutSeconds = n
		} else {
			log.Warn().Str("value", v).Msg("Ignoring non-numeric BINARIO_TIMEOUT_SECONDS")
		}
	}

	if v := os.Getenv("BINARIO_SHOW_STATS"); v != "" {
		cfg.ShowStats = v == "YES"
	}
}
