// Package config loads CLI configuration from an optional YAML file with
// environment-variable overrides. Everything has a working default so a fresh
// install needs no config at all.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/refineryiq/riq/internal/errors"
)

// DefaultAPIURL is the backend address used when nothing else is configured
const DefaultAPIURL = "http://localhost:8000"

// Environment variable overrides
const (
	EnvAPIURL        = "REFINERYIQ_API_URL"
	EnvStateDir      = "REFINERYIQ_STATE_DIR"
	EnvLogLevel      = "REFINERYIQ_LOG_LEVEL"
	EnvLogFormat     = "REFINERYIQ_LOG_FORMAT"
	EnvTraceEndpoint = "REFINERYIQ_TRACE_ENDPOINT"
)

// Config holds the CLI configuration
type Config struct {
	// APIURL is the base URL of the RefineryIQ backend
	APIURL string `yaml:"api_url"`

	// StateDir is where session state and the config file live
	StateDir string `yaml:"state_dir"`

	// LogLevel is the minimum log level (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogFormat is the log output format (text, json)
	LogFormat string `yaml:"log_format"`

	// TraceEndpoint, when set, enables OTLP trace export to this address
	TraceEndpoint string `yaml:"trace_endpoint"`
}

// DefaultStateDir returns ~/.refineryiq, falling back to the working
// directory when the home directory cannot be resolved
func DefaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".refineryiq"
	}
	return filepath.Join(home, ".refineryiq")
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	return filepath.Join(DefaultStateDir(), "config.yaml")
}

// Load reads the config file at path when it exists, then applies environment
// overrides and defaults. A missing file is fine; a malformed one is not.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.NewConfigInvalidError(path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeConfigRead, "read config file: "+path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIURL); v != "" {
		c.APIURL = v
	}
	if v := os.Getenv(EnvStateDir); v != "" {
		c.StateDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.LogFormat = v
	}
	if v := os.Getenv(EnvTraceEndpoint); v != "" {
		c.TraceEndpoint = v
	}
}

func (c *Config) applyDefaults() {
	if c.APIURL == "" {
		c.APIURL = DefaultAPIURL
	}
	if c.StateDir == "" {
		c.StateDir = DefaultStateDir()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.LogFormat == "" {
		c.LogFormat = "text"
	}
}
