package tetris

// PieceBuffer is a fixed-capacity look-ahead queue of upcoming pieces.
// Once initialised it always holds exactly Capacity pieces: every Pop
// generates a replacement.
type PieceBuffer struct {
	capacity int
	generate Generator
	items    []Shape
}

// NewPieceBuffer creates an empty buffer. Capacity below 1 is raised to 1.
// The buffer is filled on Init or lazily on first Peek/Pop.
func NewPieceBuffer(capacity int, generate Generator) *PieceBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &PieceBuffer{
		capacity: capacity,
		generate: generate,
	}
}

// Init discards any queued pieces and fills the buffer to capacity.
func (b *PieceBuffer) Init() {
	b.items = make([]Shape, 0, b.capacity)
	for range b.capacity {
		b.items = append(b.items, b.generate())
	}
}

func (b *PieceBuffer) ensure() {
	if len(b.items) == 0 {
		b.Init()
	}
}

// Peek returns the next piece without consuming it.
func (b *PieceBuffer) Peek() Shape {
	b.ensure()
	return b.items[0].Clone()
}

// Pop removes and returns the next piece, then appends a fresh one.
func (b *PieceBuffer) Pop() Shape {
	b.ensure()
	head := b.items[0]
	copy(b.items, b.items[1:])
	b.items[len(b.items)-1] = b.generate()
	return head
}

// Len returns the number of queued pieces.
func (b *PieceBuffer) Len() int {
	return len(b.items)
}

// Capacity returns the fixed size of the buffer.
func (b *PieceBuffer) Capacity() int {
	return b.capacity
}

// Items returns copies of the queued pieces, next piece first.
func (b *PieceBuffer) Items() []Shape {
	out := make([]Shape, len(b.items))
	for i, p := range b.items {
		out[i] = p.Clone()
	}
	return out
}
