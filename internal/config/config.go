// Package config provides centralized configuration for the termgym backend.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/kurobon/termgym/internal/shell"
)

// Config holds application-wide configuration, read from TERMGYM_* env vars.
type Config struct {
	Addr         string `envconfig:"ADDR" default:":8080"`
	Env          string `envconfig:"ENV" default:"development"`
	DataRoot     string `envconfig:"DATA_ROOT" default:".termgym-data"`
	HistoryLimit int    `envconfig:"HISTORY_LIMIT" default:"100"`
	AliasFile    string `envconfig:"ALIAS_FILE"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("termgym", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// SessionsDir returns the directory for persisted session records.
func (c *Config) SessionsDir() string {
	return filepath.Join(c.DataRoot, "sessions")
}

type aliasFile struct {
	Aliases map[string]string `toml:"aliases"`
}

// Aliases returns the alias table: the built-in defaults, overlaid with the
// configured TOML file when one is set.
func (c *Config) Aliases() (shell.AliasTable, error) {
	table := shell.DefaultAliases()
	if c.AliasFile == "" {
		return table, nil
	}
	var f aliasFile
	if _, err := toml.DecodeFile(c.AliasFile, &f); err != nil {
		return nil, fmt.Errorf("config: alias file: %w", err)
	}
	for k, v := range f.Aliases {
		table[k] = v
	}
	return table, nil
}
