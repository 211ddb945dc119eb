// Package config provides YAML-based game configuration loading and
// difficulty presets for the gridplay games.
package config

import "github.com/vovakirdan/gridplay/internal/core"

// TetrisConfig contains all configuration for the falling-block game.
type TetrisConfig struct {
	Board   TetrisBoard   `yaml:"board"`
	Gravity TetrisGravity `yaml:"gravity"`
	Buffer  TetrisBuffer  `yaml:"buffer"`
	Colors  TetrisColors  `yaml:"colors"`
}

// TetrisBoard defines the playfield size in cells.
type TetrisBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TetrisGravity defines how often the engine ticks.
type TetrisGravity struct {
	Enabled  bool `yaml:"enabled"`
	Interval int  `yaml:"interval"` // frames between engine ticks
}

// TetrisBuffer defines the look-ahead queue.
type TetrisBuffer struct {
	Size    int  `yaml:"size"`
	Preview bool `yaml:"preview"` // show the next piece beside the board
}

// TetrisColors names the palette entries used to draw the board.
type TetrisColors struct {
	Terrain core.Color `yaml:"terrain"`
	Piece   core.Color `yaml:"piece"`
	Preview core.Color `yaml:"preview"`
}

// MinesConfig contains all configuration for Minesweeper.
type MinesConfig struct {
	Board MinesBoard `yaml:"board"`
}

// MinesBoard defines the minefield.
type MinesBoard struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Mines  int `yaml:"mines"`
}

// LifeConfig contains all configuration for the Game of Life.
type LifeConfig struct {
	Board    LifeBoard  `yaml:"board"`
	Interval int        `yaml:"interval"` // frames between generations
	Color    core.Color `yaml:"color"`    // live cells
}

// LifeBoard defines the initial population. Zero width or height fits the
// board to the screen.
type LifeBoard struct {
	Width   int     `yaml:"width"`
	Height  int     `yaml:"height"`
	Density float64 `yaml:"density"` // chance of a cell starting alive
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset resolves a preset name. Unknown names report false.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), true
	default:
		return "", false
	}
}

// ResolvePreset picks the per-session preset name when it is valid and
// falls back to def otherwise.
func ResolvePreset(session string, def DifficultyPreset) DifficultyPreset {
	if p, ok := ParsePreset(session); ok {
		return p
	}
	return def
}

// Presets lists the selectable presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}
