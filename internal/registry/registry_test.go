package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gridplay/internal/core"
)

type stubGame struct{ id, title string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-stub-b", func() Game { return &stubGame{"zz-stub-b", "Stub B"} })
	Register("zz-stub-a", func() Game { return &stubGame{"zz-stub-a", "Stub A"} })

	assert.True(t, Exists("zz-stub-a"))
	assert.False(t, Exists("zz-missing"))

	g, err := Create("zz-stub-b")
	require.NoError(t, err)
	assert.Equal(t, "Stub B", g.Title())

	// Each Create yields a fresh instance.
	g2, err := Create("zz-stub-b")
	require.NoError(t, err)
	assert.NotSame(t, g, g2)

	ids := IDs()
	ia := indexOf(ids, "zz-stub-a")
	ib := indexOf(ids, "zz-stub-b")
	require.GreaterOrEqual(t, ia, 0)
	assert.Less(t, ia, ib, "list is sorted by id")

	for _, info := range List() {
		if info.ID == "zz-stub-a" {
			assert.Equal(t, "Stub A", info.Title)
		}
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("zz-nope")
	assert.ErrorIs(t, err, ErrUnknownGame)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz-dup", func() Game { return &stubGame{"zz-dup", "Dup"} })
	assert.Panics(t, func() {
		Register("zz-dup", func() Game { return &stubGame{"zz-dup", "Dup"} })
	})
	assert.Panics(t, func() { Register("", nil) })
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
