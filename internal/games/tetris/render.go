package tetris

import (
	"fmt"

	"github.com/vovakirdan/gridplay/internal/core"
)

const (
	cellWidth      = 2  // characters per board cell
	sidePanelWidth = 14 // next-piece preview and counters
	hudHeight      = 1
)

const (
	blockRune = '█'
	emptyRune = '·'
)

// Render draws the board, the active piece and the side panel.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	w, h := g.engine.Width(), g.engine.Height()
	frameW := w*cellWidth + 2
	frameH := h + 2
	totalW := frameW + sidePanelWidth

	boardX := (g.screenW - totalW) / 2
	boardY := hudHeight

	dst.DrawTextCentered(0, "TETRIS")
	dst.DrawBox(core.NewRect(boardX, boardY, frameW, frameH))
	g.renderBoard(dst, boardX+1, boardY+1)
	g.renderPanel(dst, boardX+frameW+2, boardY+1)
	g.renderOverlays(dst, boardX, boardY, frameW, frameH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderBoard draws terrain and the active piece. Active cells are the
// ones present in the composite board but not in the terrain.
func (g *Game) renderBoard(dst *core.Screen, x0, y0 int) {
	board := g.engine.Board()
	composite := g.engine.CompositeBoard()

	for i, row := range composite {
		for j, cell := range row {
			px := x0 + j*cellWidth
			switch {
			case cell == 0:
				dst.SetColored(px, y0+i, emptyRune, core.ColorGray)
			case board[i][j] == 0:
				drawBlock(dst, px, y0+i, g.cfg.Colors.Piece)
			default:
				drawBlock(dst, px, y0+i, g.cfg.Colors.Terrain)
			}
		}
	}
}

func drawBlock(dst *core.Screen, x, y int, c core.Color) {
	for k := range cellWidth {
		dst.SetColored(x+k, y, blockRune, c)
	}
}

// renderPanel draws the counters and, if enabled, the next piece.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawText(x, y, fmt.Sprintf("Lines  %d", g.lines))
	dst.DrawText(x, y+1, fmt.Sprintf("Pieces %d", g.pieces))

	if !g.cfg.Buffer.Preview {
		return
	}
	dst.DrawText(x, y+3, "Next")
	for i, row := range g.engine.Next() {
		for j, cell := range row {
			if cell != 0 {
				drawBlock(dst, x+j*cellWidth, y+4+i, g.cfg.Colors.Preview)
			}
		}
	}
}

// renderOverlays draws pause and game over banners over the board.
func (g *Game) renderOverlays(dst *core.Screen, x, y, w, h int) {
	var lines []string
	switch {
	case g.err != nil:
		lines = []string{"ENGINE ERROR", "R to restart"}
	case g.gameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("%d lines", g.lines), "R to restart"}
	case g.paused:
		lines = []string{"PAUSED", "P to resume"}
	default:
		return
	}

	top := y + (h-len(lines))/2
	for i, line := range lines {
		dst.DrawTextColored(x+(w-len(line))/2, top+i, line, core.ColorBrightWhite)
	}
}
