package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/plus3/blockfall/tetris"
)

// appConfig is the optional YAML configuration for the front end. The game
// section maps directly onto the engine's policy knobs.
type appConfig struct {
	Game     tetris.Config `yaml:"game"`
	CellSize int           `yaml:"cellSize"`
}

func defaultAppConfig() appConfig {
	return appConfig{
		Game:     tetris.DefaultConfig(),
		CellSize: 24,
	}
}

// loadConfig returns the defaults, overridden by the YAML file at path if
// one is given.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultAppConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Game.Width <= 0 || cfg.Game.Height <= 0 {
		return cfg, fmt.Errorf("config %s: grid dimensions must be positive", path)
	}
	if cfg.CellSize <= 0 {
		return cfg, fmt.Errorf("config %s: cellSize must be positive", path)
	}
	return cfg, nil
}
