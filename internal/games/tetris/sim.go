package tetris

import (
	"context"
	"errors"
	"math/rand"
)

// SimConfig configures a headless run driven by a random player.
type SimConfig struct {
	Engine EngineConfig

	// Ticks bounds the run; it also stops at game over.
	Ticks int
	// DropEvery hard-drops on every n-th tick. Zero never drops.
	DropEvery int
	// PolicySeed seeds the random player, independent of the piece source.
	PolicySeed int64
}

// SimResult summarises a headless run.
type SimResult struct {
	Ticks    int
	Lines    int
	Pieces   int
	GameOver bool
	Board    Shape
	Events   map[EventKind]int
}

// Simulate plays a game with a random policy: each tick the player tries
// one of left, right, rotate, reverse rotate, soft drop or nothing, and
// hard drops on schedule. Every event is passed to trace when it is set.
// The run is deterministic for a given config.
func Simulate(ctx context.Context, cfg SimConfig, trace func(Event)) (SimResult, error) {
	e := NewEngine(cfg.Engine)
	res := SimResult{Events: make(map[EventKind]int)}

	for _, kind := range EventKinds() {
		if err := e.On(kind, func(ev Event) {
			res.Events[ev.Kind()]++
			switch ev := ev.(type) {
			case SpawnEvent:
				res.Pieces++
			case LineClearEvent:
				res.Lines += ev.Lines
			}
			if trace != nil {
				trace(ev)
			}
		}); err != nil {
			return res, err
		}
	}

	if err := e.Start(); err != nil {
		return res, err
	}

	policy := rand.New(rand.NewSource(cfg.PolicySeed))
	for i := 1; i <= cfg.Ticks && !e.GameOver(); i++ {
		if err := ctx.Err(); err != nil {
			return res.finish(e), err
		}

		switch policy.Intn(6) {
		case 0:
			e.MoveLeft()
		case 1:
			e.MoveRight()
		case 2:
			e.Rotate()
		case 3:
			e.RotateReverse()
		case 4:
			e.MoveDown()
		}

		var err error
		if cfg.DropEvery > 0 && i%cfg.DropEvery == 0 {
			err = e.Drop()
		} else {
			err = e.Tick()
		}
		if err != nil && !errors.Is(err, ErrGameOver) {
			return res.finish(e), err
		}
	}
	return res.finish(e), nil
}

func (r SimResult) finish(e *Engine) SimResult {
	r.Ticks = e.Ticks()
	r.GameOver = e.GameOver()
	r.Board = e.Board()
	return r
}
