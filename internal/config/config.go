// Package config handles loading daytask.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/amonks/daytask/internal/paths"
)

// DefaultHistoryLimit is how many history entries list commands show when
// the config doesn't say otherwise.
const DefaultHistoryLimit = 50

// Config represents the daytask.toml configuration file.
type Config struct {
	Server Server `toml:"server"`
	Tasks  Tasks  `toml:"tasks"`
}

// Server contains connection configuration.
type Server struct {
	// URL is the address of the daytask server, e.g. "localhost:3001".
	URL string `toml:"url"`
}

// Tasks contains task display configuration.
type Tasks struct {
	// HistoryLimit caps how many history entries to fetch.
	HistoryLimit int `toml:"history-limit"`

	// DefaultCategory is applied to new tasks created without one.
	DefaultCategory string `toml:"default-category"`
}

// Load loads configuration from the working directory and the global
// config file. Project values win over global values. Returns defaults if
// no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := globalConfigPath()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}

	projectCfg, projectMeta, err := loadConfigFile(filepath.Join(dir, "daytask.toml"))
	if err != nil {
		return nil, err
	}

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)
	if merged.Server.URL == "" {
		merged.Server.URL = os.Getenv("DAYTASK_SERVER")
	}
	if merged.Tasks.HistoryLimit <= 0 {
		merged.Tasks.HistoryLimit = DefaultHistoryLimit
	}
	return merged, nil
}

func globalConfigPath() (string, error) {
	dir, err := paths.DefaultConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	if globalCfg == nil {
		globalCfg = &Config{}
	}
	if projectCfg == nil {
		projectCfg = &Config{}
	}

	merged := Config{}
	merged.Server.URL = mergeString(projectMeta.IsDefined("server", "url"), projectCfg.Server.URL, globalCfg.Server.URL)
	merged.Tasks.DefaultCategory = mergeString(projectMeta.IsDefined("tasks", "default-category"), projectCfg.Tasks.DefaultCategory, globalCfg.Tasks.DefaultCategory)
	if projectMeta.IsDefined("tasks", "history-limit") {
		merged.Tasks.HistoryLimit = projectCfg.Tasks.HistoryLimit
	} else if globalMeta.IsDefined("tasks", "history-limit") {
		merged.Tasks.HistoryLimit = globalCfg.Tasks.HistoryLimit
	}

	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
