// Package config provides configuration for loading the document and serving
// queries. Values come from defaults, an optional YAML file, environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/itsmostafa/constbot/internal/articles"
	"github.com/itsmostafa/constbot/internal/pdftext"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingPath      = errors.New("document.path is required")
	ErrInvalidStartPage = errors.New("document.start_page must be non-negative")
	ErrInvalidBackend   = errors.New("document.backend must be one of: native, pdftotext")
	ErrMissingAddr      = errors.New("server.addr is required")
	ErrInvalidLogLevel  = errors.New("log.level must be one of: debug, info, warn, error")
	ErrInvalidLogFormat = errors.New("log.format must be one of: console, json")
)

// Environment variables read by ApplyEnv.
const (
	EnvPDF       = "CONSTBOT_PDF"
	EnvStartPage = "CONSTBOT_START_PAGE"
	EnvBackend   = "CONSTBOT_BACKEND"
	EnvAddr      = "CONSTBOT_ADDR"
	EnvLogLevel  = "CONSTBOT_LOG_LEVEL"
)

// Config is the complete application configuration.
type Config struct {
	Document DocumentConfig `yaml:"document"`
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
}

// DocumentConfig describes the source PDF.
type DocumentConfig struct {
	Path      string          `yaml:"path"`
	StartPage int             `yaml:"start_page"` // zero-based page index
	Backend   pdftext.Backend `yaml:"backend"`
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a Config with the built-in defaults.
func Default() *Config {
	return &Config{
		Document: DocumentConfig{
			Path:      "the_constitution_of_india.pdf",
			StartPage: articles.DefaultStartPage,
			Backend:   pdftext.BackendNative,
		},
		Server: ServerConfig{
			Addr: "127.0.0.1:5000",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Read builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and the environment. The result is not validated so callers
// can apply further overrides first.
func Read(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is Read followed by Validate.
func Load(path string) (*Config, error) {
	cfg, err := Read(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables looked up with getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv(EnvPDF); v != "" {
		c.Document.Path = v
	}
	if v := getenv(EnvStartPage); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvStartPage, v, err)
		}
		c.Document.StartPage = n
	}
	if v := getenv(EnvBackend); v != "" {
		c.Document.Backend = pdftext.Backend(v)
	}
	if v := getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Document.Path) == "" {
		return ErrMissingPath
	}
	if c.Document.StartPage < 0 {
		return ErrInvalidStartPage
	}
	if _, err := pdftext.ValidateBackend(string(c.Document.Backend)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.Document.Backend)
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return ErrMissingAddr
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}

	switch c.Log.Format {
	case "console", "json":
	default:
		return ErrInvalidLogFormat
	}

	return nil
}

// ExtractOptions converts the document settings into extractor options.
func (c *Config) ExtractOptions() articles.Options {
	opts := articles.DefaultOptions()
	opts.StartPage = c.Document.StartPage
	return opts
}
