package tetris

import (
	"fmt"
	"strings"
)

// EventKind enumerates the lifecycle events an engine can raise.
type EventKind int

const (
	EventTick EventKind = iota + 1
	EventTetrominoSpawn
	EventTetrominoLanding
	EventLineClear
	EventGameOver
)

// EventKinds returns every supported event kind.
func EventKinds() []EventKind {
	return []EventKind{EventTick, EventTetrominoSpawn, EventTetrominoLanding, EventLineClear, EventGameOver}
}

// Valid reports whether k is one of the supported kinds.
func (k EventKind) Valid() bool {
	return k >= EventTick && k <= EventGameOver
}

func (k EventKind) String() string {
	switch k {
	case EventTick:
		return "tick"
	case EventTetrominoSpawn:
		return "tetromino:spawn"
	case EventTetrominoLanding:
		return "tetromino:landing"
	case EventLineClear:
		return "line:clear"
	case EventGameOver:
		return "game:over"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// ParseEventKind resolves a kind from its String form.
func ParseEventKind(name string) (EventKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range EventKinds() {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownEvent, name)
}

// Event is the payload delivered to subscribers.
// The set of implementations is closed to this package.
type Event interface {
	Kind() EventKind
	tetrisEvent()
}

// Position is a piece location on the board: X is the column, Y the row.
type Position struct {
	X, Y int
}

// TickEvent is raised at the end of every tick that neither cleared lines
// nor landed a piece.
type TickEvent struct {
	Tick  int
	Board Shape // composite of terrain and active piece
}

func (TickEvent) Kind() EventKind { return EventTick }
func (TickEvent) tetrisEvent()    {}

// SpawnEvent is raised when a new piece becomes active.
type SpawnEvent struct {
	Tick     int
	Piece    Shape
	Position Position // anchor
}

func (SpawnEvent) Kind() EventKind { return EventTetrominoSpawn }
func (SpawnEvent) tetrisEvent()    {}

// LandingEvent is raised just before a piece is committed to the terrain.
type LandingEvent struct {
	Tick     int
	Piece    Shape
	Position Position // anchor
	Final    Position // top-left cell the piece is committed at
}

func (LandingEvent) Kind() EventKind { return EventTetrominoLanding }
func (LandingEvent) tetrisEvent()    {}

// LineClearEvent is raised after complete rows have been removed.
type LineClearEvent struct {
	Tick      int
	Lines     int
	Rows      []int // indices of the cleared rows, before clearing
	Before    Shape
	After     Shape
	Completed Shape // 1 on every cell of a cleared row
}

func (LineClearEvent) Kind() EventKind { return EventLineClear }
func (LineClearEvent) tetrisEvent()    {}

// GameOverEvent is raised once when a spawned piece cannot be placed.
// Board already contains the cropped final placement.
type GameOverEvent struct {
	Tick  int
	Board Shape
}

func (GameOverEvent) Kind() EventKind { return EventGameOver }
func (GameOverEvent) tetrisEvent()    {}

// Handler receives events of the kind it was registered for.
type Handler func(Event)

// Bus is a synchronous publish/subscribe registry scoped to one engine.
// Handlers for a kind run in registration order, inline with Trigger.
type Bus struct {
	handlers map[EventKind][]Handler
}

// NewBus creates a bus accepting the supported event kinds.
func NewBus() *Bus {
	b := &Bus{handlers: make(map[EventKind][]Handler)}
	for _, k := range EventKinds() {
		b.handlers[k] = nil
	}
	return b
}

// On registers h for kind.
func (b *Bus) On(kind EventKind, h Handler) error {
	if _, ok := b.handlers[kind]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEvent, kind)
	}
	if h == nil {
		return fmt.Errorf("tetris: nil handler for %s", kind)
	}
	b.handlers[kind] = append(b.handlers[kind], h)
	return nil
}

// Trigger delivers ev to every handler registered for its kind.
func (b *Bus) Trigger(ev Event) error {
	if ev == nil {
		return fmt.Errorf("%w: nil event", ErrUnknownEvent)
	}
	hs, ok := b.handlers[ev.Kind()]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownEvent, ev.Kind())
	}
	for _, h := range hs {
		h(ev)
	}
	return nil
}

// Subscribe registers a handler typed to a single payload type.
//
//	tetris.Subscribe(engine.Events(), func(e tetris.LineClearEvent) {
//		score += e.Lines
//	})
func Subscribe[E Event](b *Bus, fn func(E)) error {
	var zero E
	return b.On(zero.Kind(), func(ev Event) {
		if e, ok := ev.(E); ok {
			fn(e)
		}
	})
}
