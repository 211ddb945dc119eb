package tetris

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPiece is returned when spawning a missing, empty or malformed shape.
	ErrInvalidPiece = errors.New("tetris: invalid piece")

	// ErrUnknownEvent is returned when subscribing to or raising an unsupported event kind.
	ErrUnknownEvent = errors.New("tetris: unknown event kind")

	// ErrGameOver is returned by commands issued after the game has ended.
	ErrGameOver = errors.New("tetris: game over")

	// ErrInvalidBoard is returned by SetBoard for boards of the wrong size or content.
	ErrInvalidBoard = errors.New("tetris: invalid board")

	// ErrSpawnExhausted means spawn placement ran out of retries.
	ErrSpawnExhausted = errors.New("tetris: spawn placement did not resolve")

	// ErrDropRunaway means a hard drop never reached a resting position.
	ErrDropRunaway = errors.New("tetris: hard drop did not settle")
)

// GeometryError reports a placement or drop that the engine could not
// resolve. It always indicates a bug in collision handling, never a normal
// game outcome.
type GeometryError struct {
	Op       string
	Piece    Shape
	Position Position
	Attempts int
	Err      error
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("tetris: %s at (%d,%d) after %d attempts, piece %dx%d: %v",
		e.Op, e.Position.X, e.Position.Y, e.Attempts, e.Piece.Width(), e.Piece.Height(), e.Err)
}

func (e *GeometryError) Unwrap() error {
	return e.Err
}
