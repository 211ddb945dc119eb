package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputFrame(t *testing.T) {
	f := Frame(ActionLeft, ActionRotate)
	assert.True(t, f.Has(ActionLeft))
	assert.True(t, f.Has(ActionRotate))
	assert.False(t, f.Has(ActionRight))
	assert.False(t, f.Empty())

	clone := f.Clone()
	f.Clear()
	assert.True(t, f.Empty())
	assert.True(t, clone.Has(ActionLeft), "clone is independent")

	var zero InputFrame
	assert.False(t, zero.Has(ActionJump))
	assert.True(t, zero.Empty())
	zero.Set(ActionJump)
	assert.True(t, zero.Has(ActionJump))
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "RotateReverse", ActionRotateReverse.String())
	assert.Equal(t, "Flag", ActionFlag.String())
	assert.Equal(t, "Unknown", Action(99).String())
}

func TestRuntimeConfigWithDefaults(t *testing.T) {
	cfg := RuntimeConfig{ScreenW: 40, ScreenH: 20}.WithDefaults()
	assert.Equal(t, DefaultTickRate, cfg.TickRate)
	assert.NotZero(t, cfg.Seed)

	kept := RuntimeConfig{TickRate: 30, Seed: 7}.WithDefaults()
	assert.Equal(t, 30, kept.TickRate)
	assert.Equal(t, int64(7), kept.Seed)
}
