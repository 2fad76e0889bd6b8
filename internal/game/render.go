package game

import (
	"fmt"
	"strconv"

	"github.com/immortal00111/4096base/internal/core"
)

const (
	cellWidth  = 5 // Width of each cell (including borders)
	cellHeight = 2 // Height of each cell (including borders)
)

// tileColor picks a display color for a tile value.
func tileColor(val int) core.Color {
	switch val {
	case 2:
		return core.ColorWhite
	case 4:
		return core.ColorBrightWhite
	case 8:
		return core.ColorYellow
	case 16:
		return core.ColorOrange
	case 32:
		return core.ColorBrightRed
	case 64:
		return core.ColorRed
	case 128, 256:
		return core.ColorBrightYellow
	case 512, 1024:
		return core.ColorBrightCyan
	case 2048, 4096:
		return core.ColorBrightGreen
	default:
		return core.ColorBrightMagenta
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	// Calculate board position (centered)
	boardW := BoardSize*cellWidth + 1  // +1 for right border
	boardH := BoardSize*cellHeight + 1 // +1 for bottom border
	hudHeight := 3

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	msg := "Window too small"
	x := (g.screenW - len(msg)) / 2
	y := g.screenH / 2
	dst.DrawText(x, y, msg)

	hint := "Please resize terminal"
	hintX := (g.screenW - len(hint)) / 2
	dst.DrawText(hintX, y+1, hint)
}

// renderHUD draws the score line above the board.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	titleX := boardX + (boardW-len(title))/2
	dst.DrawText(titleX, 0, title)

	scoreStr := fmt.Sprintf("Score: %d", g.score)
	dst.DrawText(boardX, 1, scoreStr)

	bestStr := fmt.Sprintf("Best: %d", g.best)
	bestX := boardX + boardW - len(bestStr)
	if bestX < boardX+len(scoreStr)+2 {
		bestX = boardX + len(scoreStr) + 2
	}
	dst.DrawText(bestX, 1, bestStr)

	infoStr := fmt.Sprintf("Max: %d  Target: %d", MaxTile(g.board), g.opts.Target)
	infoX := boardX + (boardW-len(infoStr))/2
	if infoX < boardX {
		infoX = boardX
	}
	dst.DrawText(infoX, 2, infoStr)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	// Draw grid borders
	for y := range BoardSize + 1 {
		for x := range BoardSize + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			// Draw corner/intersection
			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == BoardSize:
				corner = '┐'
			case y == BoardSize && x == 0:
				corner = '└'
			case y == BoardSize && x == BoardSize:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == BoardSize:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == BoardSize:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.Set(px, py, corner)

			// Draw horizontal line to the right
			if x < BoardSize {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}

			// Draw vertical line down
			if y < BoardSize {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	// Draw tiles
	for y := range BoardSize {
		for x := range BoardSize {
			val := g.board[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			// Center the value in the cell
			valStr := strconv.Itoa(val)
			padLeft := (cellWidth - 1 - len(valStr)) / 2
			if padLeft < 0 {
				padLeft = 0
			}

			dst.DrawTextColored(cellX+padLeft, cellY, valStr, tileColor(val))
		}
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.won && !g.keepPlaying {
		targetStr := fmt.Sprintf("You reached %d!", g.opts.Target)
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!", targetStr, "Press Enter to keep going")
		return
	}

	if g.gameOver {
		maxStr := fmt.Sprintf("Max tile: %d", MaxTile(g.board))
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
		return
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	// Find max line width
	maxLen := 0
	for _, line := range lines {
		if len(line) > maxLen {
			maxLen = len(line)
		}
	}

	// Draw box
	boxW := maxLen + 4
	boxH := len(lines) + 2
	boxX := centerX - boxW/2
	boxY := centerY - boxH/2

	// Clear area behind overlay
	for y := boxY; y < boxY+boxH; y++ {
		for x := boxX; x < boxX+boxW; x++ {
			dst.Set(x, y, ' ')
		}
	}

	dst.DrawBox(core.Rect{X: boxX, Y: boxY, W: boxW, H: boxH})

	for i, line := range lines {
		x := centerX - len(line)/2
		dst.DrawText(x, boxY+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrow keys/WASD: Move | P: Pause | R: Restart | Q: Quit"
}
