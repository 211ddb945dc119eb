package tetris

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Frame    uint64
	Ticks    int
	Lines    int
	Pieces   int
	State    State
	Board    Shape
	Piece    Shape    // nil when no piece is active
	Position Position // anchor of Piece
	Next     Shape
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	piece, _ := g.engine.Piece()
	pos, _ := g.engine.Position()
	return Snapshot{
		Frame:    g.frame,
		Ticks:    g.engine.Ticks(),
		Lines:    g.lines,
		Pieces:   g.pieces,
		State:    g.engine.State(),
		Board:    g.engine.Board(),
		Piece:    piece,
		Position: pos,
		Next:     g.engine.Next(),
	}
}
