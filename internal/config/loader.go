package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// load reads a game config.
// Search order: customPath -> ~/.gridplay/configs/<file> -> ./configs/<file> -> embedded default -> fallback
func load[T any](file, customPath string, embedded []byte, fallback func() T) (T, error) {
	cfg := fallback()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(file); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = fallback()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", file)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = fallback()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return fallback(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// LoadTetris loads the falling-block configuration.
// Search order: customPath -> ~/.gridplay/configs/tetris.yaml -> ./configs/tetris.yaml -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	return load("tetris.yaml", customPath, defaultTetrisYAML, DefaultTetrisConfig)
}

// LoadMines loads Minesweeper configuration.
// Search order: customPath -> ~/.gridplay/configs/mines.yaml -> ./configs/mines.yaml -> embedded default
func LoadMines(customPath string) (MinesConfig, error) {
	return load("mines.yaml", customPath, defaultMinesYAML, DefaultMinesConfig)
}

// LoadLife loads Game of Life configuration.
// Search order: customPath -> ~/.gridplay/configs/life.yaml -> ./configs/life.yaml -> embedded default
func LoadLife(customPath string) (LifeConfig, error) {
	return load("life.yaml", customPath, defaultLifeYAML, DefaultLifeConfig)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridplay", "configs", filename)
}

// ApplyTetrisPreset adjusts gravity speed for a difficulty preset.
func ApplyTetrisPreset(cfg *TetrisConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.Interval = 30
	case DifficultyNormal:
		cfg.Gravity.Interval = 20
	case DifficultyHard:
		cfg.Gravity.Interval = 8
	}
}

// ApplyMinesPreset sets the classic beginner, intermediate and expert fields.
func ApplyMinesPreset(cfg *MinesConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board = MinesBoard{Width: 9, Height: 9, Mines: 10}
	case DifficultyNormal:
		cfg.Board = MinesBoard{Width: 16, Height: 16, Mines: 40}
	case DifficultyHard:
		cfg.Board = MinesBoard{Width: 30, Height: 16, Mines: 99}
	}
}

// ApplyLifePreset adjusts the starting population density.
func ApplyLifePreset(cfg *LifeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Density = 0.15
	case DifficultyNormal:
		cfg.Board.Density = 0.3
	case DifficultyHard:
		cfg.Board.Density = 0.45
	}
}
