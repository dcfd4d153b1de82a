// Package config handles loading and parsing of wsfind configuration files.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/NikitaCOEUR/wsfind/internal/derrors"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

//go:embed defaults.yml
var defaultsYAML []byte

// SupportedConfigNames contains supported configuration file names (in order of preference)
var SupportedConfigNames = []string{
	"config.yml",
	"config.yaml",
	"config.toml",
	"config.json",
}

// Output formats
const (
	FormatAlfred = "alfred"
	FormatText   = "text"
)

// Config represents a wsfind configuration
type Config struct {
	LogLevel       string   `koanf:"log_level"`
	Pattern        string   `koanf:"pattern"`
	Exclude        []string `koanf:"exclude"`
	SkipUnreadable bool     `koanf:"skip_unreadable"`
	Format         string   `koanf:"format"`
	TextTemplate   string   `koanf:"text_template"`
}

// Loader handles loading and parsing configuration files
type Loader struct {
	delim string
}

// New creates a new config loader
func New() *Loader {
	return &Loader{delim: "."}
}

// Defaults returns the built-in configuration
func (l *Loader) Defaults() (*Config, error) {
	k, err := l.base()
	if err != nil {
		return nil, err
	}
	return unmarshal(k, "")
}

// Load reads a configuration file on top of the built-in defaults
func (l *Loader) Load(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, derrors.NewConfigurationError(path, "config file not found", nil)
		}
		return nil, derrors.NewConfigurationError(path, "failed to stat config", err)
	}

	parser, err := parserFor(path)
	if err != nil {
		return nil, derrors.NewConfigurationError(path, "unsupported config file", err)
	}

	k, err := l.base()
	if err != nil {
		return nil, err
	}

	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to load config", err)
	}

	return unmarshal(k, path)
}

// Resolve loads the explicit config file when given, otherwise the user
// config file when one exists, otherwise the defaults. It returns the path
// that was loaded ("" for defaults).
func (l *Loader) Resolve(explicit string) (*Config, string, error) {
	path := explicit
	if path == "" {
		path = FindUserConfig()
	}
	if path == "" {
		cfg, err := l.Defaults()
		return cfg, "", err
	}

	cfg, err := l.Load(path)
	if err != nil {
		return nil, path, err
	}
	return cfg, path, nil
}

// base returns a koanf instance holding the built-in defaults
func (l *Loader) base() (*koanf.Koanf, error) {
	k := koanf.New(l.delim)
	if err := k.Load(rawbytes.Provider(defaultsYAML), yaml.Parser()); err != nil {
		return nil, derrors.NewConfigurationError("defaults.yml", "failed to load built-in defaults", err)
	}
	return k, nil
}

func unmarshal(k *koanf.Koanf, path string) (*Config, error) {
	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, derrors.NewConfigurationError(path, "failed to unmarshal config", err)
	}
	if cfg.Exclude == nil {
		cfg.Exclude = []string{}
	}
	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return yaml.Parser(), nil
	case ".toml":
		return toml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %q", ext)
	}
}

// GetConfigDir returns the wsfind directory under the XDG config home
func GetConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "wsfind"), nil
}

// FindUserConfig returns the first supported config file in the config
// directory, or "" when there is none
func FindUserConfig() string {
	dir, err := GetConfigDir()
	if err != nil {
		return ""
	}

	for _, name := range SupportedConfigNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
