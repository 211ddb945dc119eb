// Package tui runs gridplay games in the terminal with Bubble Tea.
// It owns the frame loop, key mapping, menus, the scoreboard and the
// SSH front end; games only see input frames and a screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridplay/internal/core"
)

// TickMsg advances the running game by one frame.
type TickMsg time.Time

// tickCmd schedules the next frame; rates below 1 fall back to the default.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = core.DefaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
