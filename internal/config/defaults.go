package config

import (
	_ "embed"

	"github.com/vovakirdan/gridplay/internal/core"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

//go:embed defaults/mines.yaml
var defaultMinesYAML []byte

//go:embed defaults/life.yaml
var defaultLifeYAML []byte

// DefaultTetrisConfig returns the default falling-block configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: TetrisBoard{
			Width:  10,
			Height: 20,
		},
		Gravity: TetrisGravity{
			Enabled:  true,
			Interval: 20, // 3 rows per second at 60fps
		},
		Buffer: TetrisBuffer{
			Size:    5,
			Preview: true,
		},
		Colors: TetrisColors{
			Terrain: core.ColorCyan,
			Piece:   core.ColorBrightYellow,
			Preview: core.ColorBrightMagenta,
		},
	}
}

// DefaultMinesConfig returns the default Minesweeper configuration.
func DefaultMinesConfig() MinesConfig {
	return MinesConfig{
		Board: MinesBoard{
			Width:  16,
			Height: 16,
			Mines:  40,
		},
	}
}

// DefaultLifeConfig returns the default Game of Life configuration.
func DefaultLifeConfig() LifeConfig {
	return LifeConfig{
		Board: LifeBoard{
			Density: 0.3,
		},
		Interval: 6,
		Color:    core.ColorBrightGreen,
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "tetris":
		return defaultTetrisYAML
	case "mines":
		return defaultMinesYAML
	case "life":
		return defaultLifeYAML
	default:
		return nil
	}
}
