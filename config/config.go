package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

const (
	configFile = "config.toml"

	DefaultBind = "127.0.0.1"
	DefaultPort = 7434
)

// Config is the on-disk matiz configuration.
type Config struct {
	Server  ServerConfig  `toml:"server"`
	Aliases AliasesConfig `toml:"aliases"`
	Log     LogConfig     `toml:"log"`
}

type ServerConfig struct {
	Bind string `toml:"bind"`
	Port int    `toml:"port"`
}

type AliasesConfig struct {
	// File is the YAML alias file. Relative paths are taken from the config dir.
	File string `toml:"file"`
}

type LogConfig struct {
	Debug bool `toml:"debug"`
}

// Dir returns $XDG_CONFIG_HOME/matiz, falling back to ~/.config/matiz.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "matiz"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "matiz"), nil
}

// Default returns the configuration used when no file exists.
func Default(dir string) *Config {
	return &Config{
		Server:  ServerConfig{Bind: DefaultBind, Port: DefaultPort},
		Aliases: AliasesConfig{File: filepath.Join(dir, aliasFile)},
	}
}

// Load reads config.toml from dir and applies MATIZ_* environment overrides.
// A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	cfg := Default(dir)

	data, err := os.ReadFile(filepath.Join(dir, configFile))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
		if cfg.Aliases.File != "" && !filepath.IsAbs(cfg.Aliases.File) {
			cfg.Aliases.File = filepath.Join(dir, cfg.Aliases.File)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("MATIZ_BIND"); v != "" {
		c.Server.Bind = v
	}
	if v := os.Getenv("MATIZ_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse MATIZ_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("MATIZ_ALIASES"); v != "" {
		c.Aliases.File = v
	}
	return nil
}

// Validate reports settings the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	if c.Server.Bind == "" {
		return errors.New("server bind address is empty")
	}
	return nil
}

// Save writes the configuration to dir, creating it if needed.
func (c *Config) Save(dir string) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, configFile), data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
