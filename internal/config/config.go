// Package config loads runtime settings for the ITRA gateway server.
//
// Settings live in a YAML file (default ~/.itra/config.yaml). A missing
// file is not an error: defaults apply, and environment variables
// override whatever the file says.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/HendryAvila/itra-gateway/internal/export"
	"gopkg.in/yaml.v3"
)

const (
	// DataDir is the directory under the user's home holding config and exports.
	DataDir = ".itra"
	// ConfigFile is the config filename inside DataDir.
	ConfigFile = "config.yaml"
	// ExportsDir is the default export directory inside DataDir.
	ExportsDir = "exports"
)

// Environment variables that override file settings.
const (
	EnvExportDir    = "ITRA_EXPORT_DIR"
	EnvExportFormat = "ITRA_EXPORT_FORMAT"
	EnvLogLevel     = "ITRA_LOG_LEVEL"
)

// ExportConfig controls where and how assessments are exported.
type ExportConfig struct {
	Dir    string `yaml:"dir"`
	Format string `yaml:"format"` // json | yaml
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug | info | warn | error
}

// Config is the root of config.yaml.
type Config struct {
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

var validLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// userHomeDir is a package-level variable so tests can pin the home directory.
var userHomeDir = os.UserHomeDir

func dataPath(elem ...string) string {
	home, err := userHomeDir()
	if err != nil || home == "" {
		home = "."
	}
	return filepath.Join(append([]string{home, DataDir}, elem...)...)
}

// DefaultPath returns ~/.itra/config.yaml.
func DefaultPath() string {
	return dataPath(ConfigFile)
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Export: ExportConfig{
			Dir:    dataPath(ExportsDir),
			Format: string(export.FormatJSON),
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path over the defaults, then applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
		// defaults
	default:
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg.applyEnvOverrides()
	cfg.Export.Dir = expandHome(cfg.Export.Dir)
	return cfg, nil
}

// Save writes the config as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(EnvExportDir); v != "" {
		c.Export.Dir = v
	}
	if v := os.Getenv(EnvExportFormat); v != "" {
		c.Export.Format = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks the export format and log level.
func (c *Config) Validate() error {
	if _, err := export.ParseFormat(c.Export.Format); err != nil {
		return err
	}
	if c.Export.Dir == "" {
		return fmt.Errorf("export.dir must not be empty")
	}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("invalid log level %q: must be one of: debug, info, warn, error", c.Logging.Level)
	}
	return nil
}

// ExportFormat returns the configured format, defaulting to JSON.
func (c *Config) ExportFormat() export.Format {
	f, err := export.ParseFormat(c.Export.Format)
	if err != nil {
		return export.FormatJSON
	}
	return f
}

// expandHome turns a leading "~/" into the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := userHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
