// Package tetris implements a falling-block game engine.
//
// The engine owns the terrain board, the active piece and its anchor, and a
// look-ahead piece buffer. Callers drive it with Tick at a fixed interval and
// issue moves between ticks; lifecycle changes are published on a per-engine
// event bus. The engine is not safe for concurrent use.
package tetris

import (
	"fmt"
	"io"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridplay/internal/core"
	"github.com/vovakirdan/gridplay/internal/grid"
)

// Board defaults.
const (
	DefaultWidth      = 10
	DefaultHeight     = 20
	DefaultBufferSize = 5
)

const (
	// YBuffer is the anchor row new pieces spawn at.
	YBuffer = 2

	maxSpawnAttempts  = 64
	maxDropIterations = 1024
)

// State is the engine's position in the piece lifecycle.
type State int

const (
	StateEmpty    State = iota // no active piece
	StateActive                // piece falling
	StateLanding               // next gravity step will commit the piece
	StateGameOver              // terminal
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "Empty"
	case StateActive:
		return "Active"
	case StateLanding:
		return "Landing"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Direction selects a one-cell move.
type Direction int

const (
	Left Direction = iota
	Right
	Down
)

// EngineConfig holds construction parameters.
type EngineConfig struct {
	Width      int
	Height     int
	Gravity    bool
	BufferSize int

	// Generator overrides the random piece source.
	Generator Generator
	// Seed feeds the random piece source when Generator is nil.
	Seed int64

	// Logger receives debug output; nil discards it.
	Logger *log.Logger
}

// DefaultEngineConfig returns a 10x20 board with gravity and a 5-piece buffer.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Gravity:    true,
		BufferSize: DefaultBufferSize,
	}
}

// Engine is the falling-block state machine.
type Engine struct {
	width, height int
	gravity       bool

	board    Shape
	piece    Shape // nil when no piece is active
	anchor   Position
	ticks    int
	gameOver bool

	buffer *PieceBuffer
	bus    *Bus
	logger *log.Logger
}

// NewEngine creates an engine with an empty board and no active piece.
// Zero dimensions or buffer size fall back to the defaults.
func NewEngine(cfg EngineConfig) *Engine {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = DefaultBufferSize
	}
	if cfg.Generator == nil {
		cfg.Generator = RandomGenerator(rand.New(rand.NewSource(cfg.Seed)))
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	return &Engine{
		width:   cfg.Width,
		height:  cfg.Height,
		gravity: cfg.Gravity,
		board:   grid.Zero[int](cfg.Width, cfg.Height),
		buffer:  NewPieceBuffer(cfg.BufferSize, cfg.Generator),
		bus:     NewBus(),
		logger:  cfg.Logger.WithPrefix("tetris"),
	}
}

// Width returns the board width.
func (e *Engine) Width() int { return e.width }

// Height returns the board height.
func (e *Engine) Height() int { return e.height }

// Ticks returns the number of ticks processed.
func (e *Engine) Ticks() int { return e.ticks }

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool { return e.gameOver }

// Events returns the engine's event bus.
func (e *Engine) Events() *Bus { return e.bus }

// On registers a handler for kind on the engine's bus.
func (e *Engine) On(kind EventKind, h Handler) error {
	return e.bus.On(kind, h)
}

// Board returns a copy of the committed terrain.
func (e *Engine) Board() Shape {
	return e.board.Clone()
}

// SetBoard replaces the terrain. The board must match the engine's
// dimensions and hold only 0 and 1 cells.
func (e *Engine) SetBoard(b Shape) error {
	if b.Height() != e.height || b.Width() != e.width {
		return fmt.Errorf("%w: got %dx%d, want %dx%d", ErrInvalidBoard, b.Width(), b.Height(), e.width, e.height)
	}
	for i, row := range b {
		if len(row) != e.width {
			return fmt.Errorf("%w: row %d has %d cells", ErrInvalidBoard, i, len(row))
		}
		for j, c := range row {
			if c != 0 && c != 1 {
				return fmt.Errorf("%w: cell (%d,%d) is %d", ErrInvalidBoard, i, j, c)
			}
		}
	}
	e.board = b.Clone()
	return nil
}

// Piece returns a copy of the active piece and whether one is active.
func (e *Engine) Piece() (Shape, bool) {
	if e.piece == nil {
		return nil, false
	}
	return e.piece.Clone(), true
}

// Position returns the anchor of the active piece.
func (e *Engine) Position() (Position, bool) {
	if e.piece == nil {
		return Position{}, false
	}
	return e.anchor, true
}

// Next returns the piece that the next spawn will use.
func (e *Engine) Next() Shape {
	return e.buffer.Peek()
}

// Upcoming returns every queued piece, next first.
func (e *Engine) Upcoming() []Shape {
	return e.buffer.Items()
}

// State reports the lifecycle state.
func (e *Engine) State() State {
	switch {
	case e.gameOver:
		return StateGameOver
	case e.piece == nil:
		return StateEmpty
	case e.landed():
		return StateLanding
	default:
		return StateActive
	}
}

// project converts an anchor into the top-left cell of piece. The column is
// clamped to keep the piece on the board; the row may go up to ph-1 rows
// above the board (the buffer zone) and, with bottom set, one row past the
// floor so that resting on it counts as a collision.
func (e *Engine) project(piece Shape, anchor Position, bottom bool) (x, y int) {
	pw, ph := piece.Width(), piece.Height()
	x = core.Clamp(anchor.X-pw/2, 0, e.width-pw)

	maxY := e.height - ph
	if bottom {
		maxY++
	}
	y = core.Clamp(anchor.Y-ph/2, -(ph - 1), maxY)
	return x, y
}

// settle returns the anchor whose projection is the clamped top-left, so
// that later relative moves start from where the piece is actually drawn.
func (e *Engine) settle(piece Shape, anchor Position) Position {
	x, y := e.project(piece, anchor, false)
	return Position{X: x + piece.Width()/2, Y: y + piece.Height()/2}
}

// DetectCollisions reports whether piece placed at anchor would overlap the
// terrain or leave the board. Rows above the board are ignored.
func (e *Engine) DetectCollisions(piece Shape, anchor Position, bottom bool) bool {
	x, y := e.project(piece, anchor, bottom)

	visible, top := piece, y
	if y < 0 {
		visible, top = piece[-y:], 0
	}

	canvas, err := grid.Superimpose(grid.Zero[int](e.width, e.height), visible, x, top)
	if err != nil {
		return true
	}

	return slices.ContainsFunc(grid.Flatten(grid.Add(e.board, canvas)), func(v int) bool {
		return v > 1
	})
}

// Compose renders piece at anchor over board. A nil piece yields a copy of board.
func (e *Engine) Compose(board, piece Shape, anchor Position) Shape {
	if piece == nil {
		return board.Clone()
	}
	x, y := e.project(piece, anchor, false)
	out, _ := grid.Superimpose(board, piece, x, y, grid.Crop())
	return out
}

// CompositeBoard returns the terrain with the active piece drawn in.
func (e *Engine) CompositeBoard() Shape {
	return e.Compose(e.board, e.piece, e.anchor)
}

func (e *Engine) validatePiece(p Shape) error {
	w, ok := p.Dims()
	if !ok || w == 0 {
		return fmt.Errorf("%w: empty shape", ErrInvalidPiece)
	}
	occupied := 0
	for i, row := range p {
		if len(row) != w {
			return fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidPiece, i, len(row), w)
		}
		for _, c := range row {
			switch c {
			case 0:
			case 1:
				occupied++
			default:
				return fmt.Errorf("%w: cell value %d", ErrInvalidPiece, c)
			}
		}
	}
	if occupied == 0 {
		return fmt.Errorf("%w: no occupied cells", ErrInvalidPiece)
	}
	if w > e.width || p.Height() > e.height {
		return fmt.Errorf("%w: %dx%d piece does not fit a %dx%d board", ErrInvalidPiece, w, p.Height(), e.width, e.height)
	}
	return nil
}

// Start fills the piece buffer and spawns the first piece.
func (e *Engine) Start() error {
	e.buffer.Init()
	return e.SpawnNext()
}

// SpawnNext spawns the piece at the head of the buffer.
func (e *Engine) SpawnNext() error {
	if e.gameOver {
		return ErrGameOver
	}
	return e.Spawn(e.buffer.Pop())
}

// Spawn makes piece the active piece, centered horizontally at row YBuffer.
// When that overlaps terrain the anchor is raised one row at a time into the
// buffer zone. If no placement fits, the piece is committed cropped to the
// board and the game ends with a GameOverEvent.
func (e *Engine) Spawn(piece Shape) error {
	if e.gameOver {
		return ErrGameOver
	}
	if err := e.validatePiece(piece); err != nil {
		return err
	}
	piece = piece.Clone()

	anchor := Position{X: e.width / 2, Y: YBuffer}
	minTop := -(piece.Height() - 1)

	for attempt := 0; ; attempt++ {
		if attempt >= maxSpawnAttempts {
			return &GeometryError{
				Op:       "spawn",
				Piece:    piece,
				Position: anchor,
				Attempts: attempt,
				Err:      ErrSpawnExhausted,
			}
		}

		if !e.DetectCollisions(piece, anchor, false) {
			e.piece = piece
			e.anchor = e.settle(piece, anchor)
			e.logger.Debug("spawn", "tick", e.ticks, "x", e.anchor.X, "y", e.anchor.Y, "attempts", attempt+1)
			e.emit(SpawnEvent{Tick: e.ticks, Piece: piece.Clone(), Position: e.anchor})
			return nil
		}

		if _, top := e.project(piece, anchor, false); top <= minTop {
			break
		}
		anchor.Y--
	}

	x, y := e.project(piece, anchor, false)
	e.board, _ = grid.Superimpose(e.board, piece, x, y, grid.Crop())
	e.piece = nil
	e.gameOver = true
	e.logger.Info("game over", "tick", e.ticks)
	e.emit(GameOverEvent{Tick: e.ticks, Board: e.board.Clone()})
	return nil
}

// landed reports whether the next gravity step would collide.
func (e *Engine) landed() bool {
	next := Position{X: e.anchor.X, Y: e.anchor.Y + 1}
	return e.DetectCollisions(e.piece, next, true)
}

func (e *Engine) land() {
	x, y := e.project(e.piece, e.anchor, false)
	e.emit(LandingEvent{
		Tick:     e.ticks,
		Piece:    e.piece.Clone(),
		Position: e.anchor,
		Final:    Position{X: x, Y: y},
	})
	e.board, _ = grid.Superimpose(e.board, e.piece, x, y, grid.Crop())
	e.piece = nil
}

// Tick advances the game by one step. In order, it clears complete lines,
// lands a resting piece, spawns a piece if none is active or applies
// gravity otherwise, and finally publishes a TickEvent. Clearing lines or
// landing ends the tick early.
func (e *Engine) Tick() error {
	if e.gameOver {
		return ErrGameOver
	}
	e.ticks++

	if e.ClearLines() {
		return nil
	}

	if e.piece != nil && e.landed() {
		e.land()
		return nil
	}

	if e.piece == nil {
		if err := e.SpawnNext(); err != nil {
			return err
		}
		if e.gameOver {
			return nil
		}
	} else if e.gravity {
		e.anchor.Y++
	}

	e.emit(TickEvent{Tick: e.ticks, Board: e.CompositeBoard()})
	return nil
}

// Move shifts the active piece by one cell. It returns false, leaving the
// piece where it was, when there is no piece or the move would collide.
func (e *Engine) Move(dir Direction) bool {
	if e.piece == nil || e.gameOver {
		return false
	}

	next := e.anchor
	switch dir {
	case Left:
		next.X--
	case Right:
		next.X++
	case Down:
		next.Y++
	default:
		return false
	}

	if dir != Down {
		// Projection clamps the column, so leaving the board has to be
		// checked on the raw anchor.
		if x := next.X - e.piece.Width()/2; x < 0 || x > e.width-e.piece.Width() {
			return false
		}
	}
	if e.DetectCollisions(e.piece, next, dir == Down) {
		return false
	}

	e.anchor = next
	return true
}

// MoveLeft moves the active piece one column left.
func (e *Engine) MoveLeft() bool { return e.Move(Left) }

// MoveRight moves the active piece one column right.
func (e *Engine) MoveRight() bool { return e.Move(Right) }

// MoveDown moves the active piece one row down.
func (e *Engine) MoveDown() bool { return e.Move(Down) }

// Rotate turns the active piece clockwise if the result fits at the
// current anchor.
func (e *Engine) Rotate() bool {
	return e.rotate(Rotate)
}

// RotateReverse turns the active piece anti-clockwise if the result fits at
// the current anchor.
func (e *Engine) RotateReverse() bool {
	return e.rotate(RotateReverse)
}

func (e *Engine) rotate(turn func(Shape) Shape) bool {
	if e.piece == nil || e.gameOver {
		return false
	}
	rotated := turn(e.piece)
	if e.DetectCollisions(rotated, e.anchor, false) {
		return false
	}
	e.piece = rotated
	e.anchor = e.settle(rotated, e.anchor)
	return true
}

// Drop moves the active piece down until it rests, then ticks to land it.
func (e *Engine) Drop() error {
	if e.gameOver {
		return ErrGameOver
	}
	for i := 0; e.MoveDown(); i++ {
		if i >= maxDropIterations {
			return &GeometryError{
				Op:       "drop",
				Piece:    e.piece.Clone(),
				Position: e.anchor,
				Attempts: i,
				Err:      ErrDropRunaway,
			}
		}
	}
	return e.Tick()
}

// ClearLines removes every complete row, shifting the terrain above down,
// and publishes a LineClearEvent. It returns false if no row is complete.
func (e *Engine) ClearLines() bool {
	var rows []int
	for i, row := range e.board {
		if !slices.Contains(row, 0) {
			rows = append(rows, i)
		}
	}
	if len(rows) == 0 {
		return false
	}

	before := e.board.Clone()
	completed := grid.Map(e.board, func(_ int, i, _ int) int {
		if slices.Contains(rows, i) {
			return 1
		}
		return 0
	})

	kept := grid.Zero[int](e.width, len(rows))
	for i, row := range e.board {
		if !slices.Contains(rows, i) {
			kept = append(kept, row)
		}
	}
	e.board = kept

	e.logger.Debug("lines cleared", "tick", e.ticks, "rows", rows)
	e.emit(LineClearEvent{
		Tick:      e.ticks,
		Lines:     len(rows),
		Rows:      rows,
		Before:    before,
		After:     e.board.Clone(),
		Completed: completed,
	})
	return true
}

func (e *Engine) emit(ev Event) {
	if err := e.bus.Trigger(ev); err != nil {
		e.logger.Error("event dispatch failed", "kind", ev.Kind(), "err", err)
	}
}
