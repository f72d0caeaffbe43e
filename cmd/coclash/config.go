package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	toml "github.com/pelletier/go-toml/v2"
)

// Config is the optional config file at
// $XDG_CONFIG_HOME/coclash/config.toml. Flags override it.
type Config struct {
	Theme string    `toml:"theme"`
	Width int       `toml:"width"`
	Run   RunConfig `toml:"run"`
}

type RunConfig struct {
	BuildCommand   string `toml:"build_command"`
	Command        string `toml:"command"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

var cfg = defaultConfig()

func defaultConfig() Config {
	return Config{Run: RunConfig{TimeoutSeconds: 5}}
}

func configPath() string {
	return filepath.Join(xdg.ConfigHome, "coclash", "config.toml")
}

func loadConfig() error {
	raw, err := os.ReadFile(configPath())
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse %s: %w", configPath(), err)
	}
	return nil
}
