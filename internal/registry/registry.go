// Package registry keeps the table of playable grid games.
// Each game package registers a factory from init(), so the CLI and the
// TUI can list and build games by ID without importing them directly.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/gridplay/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is the contract between a grid game and the platform.
// Implementations hold pure simulation state; input mapping, timing and
// drawing to the terminal belong to the platform.
type Game interface {
	// ID is the stable identifier used on the command line and as the
	// score table key ("tetris", "mines", "life").
	ID() string

	// Title is the display name.
	Title() string

	// Reset starts a fresh game sized and seeded by cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances the game by one frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Resizer is implemented by games that can follow a window resize without
// starting over. Resize reports false when the game needs a Reset instead,
// for example because its board is sized from the window.
type Resizer interface {
	Resize(width, height int) bool
}

// TickCounter is implemented by games that count their own simulation
// steps. Recorded runs use it in place of platform frames.
type TickCounter interface {
	Ticks() int
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a new game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory under id.
// It panics on an empty or duplicate id.
func Register(id string, f Factory) {
	if id == "" || f == nil {
		panic("registry: empty id or nil factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}

// IDs returns the registered IDs in sorted order.
func IDs() []string {
	games := List()
	ids := make([]string, len(games))
	for i, g := range games {
		ids[i] = g.ID
	}
	return ids
}
