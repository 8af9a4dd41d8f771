package skyhop

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skyhop/internal/core"
)

// hudRows is the number of rows above the playfield (status line + separator).
const hudRows = 2

// Render draws the game to the screen, scaling the world onto the cell grid.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot into a cell buffer.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	renderHUD(dst, snap)

	if dst.Height() <= hudRows || snap.World.W <= 0 || snap.World.H <= 0 {
		return
	}
	v := viewport{
		sx: float64(dst.Width()) / snap.World.W,
		sy: float64(dst.Height()-hudRows) / snap.World.H,
	}

	for _, p := range snap.Platforms {
		x, y, w, h := v.cells(p.Rect)
		if p.Ground {
			dst.FillRect(x, y, w, h, '▓', core.ColorGray)
			continue
		}
		dst.FillRect(x, y, w, h, '▬', core.ColorCyan)
	}

	if snap.Star != nil {
		x, y, w, h := v.cells(*snap.Star)
		dst.FillRect(x, y, w, h, '★', core.ColorYellow)
	}

	renderPlayer(dst, v, snap)

	switch snap.Phase {
	case core.PhaseLevelComplete:
		renderOverlay(dst, fmt.Sprintf("Level %d complete!", snap.Level), "Press N to continue")
	case core.PhaseGameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  -  Press R to restart", snap.Score))
	}
}

// viewport maps world units to cells.
type viewport struct {
	sx, sy float64
}

// cells returns the cell area covered by r. Anything visible gets at least one cell.
func (v viewport) cells(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	return x0, y0 + hudRows, max(1, x1-x0), max(1, y1-y0)
}

// renderPlayer draws the character: hair on top, body below, legs by pose.
func renderPlayer(dst *core.Screen, v viewport, snap Snapshot) {
	x, y, w, h := v.cells(snap.Player)
	dst.FillRect(x, y, w, h, '█', core.ColorBrightBlue)
	dst.FillRect(x, y, w, 1, '▀', core.ColorPink)

	if h < 2 {
		return
	}
	legs := '▌'
	switch snap.Pose {
	case PoseRising:
		legs = '▘'
	case PoseFalling:
		legs = '▖'
	}
	for cx := x; cx < x+w; cx++ {
		dst.SetColor(cx, y+h-1, legs, core.ColorSkin)
	}
}

// renderHUD draws the top status bar.
func renderHUD(dst *core.Screen, snap Snapshot) {
	var hud string
	if snap.Mode == ModeEndless {
		hud = fmt.Sprintf(" Skyhop (Endless)  Stage: %d  Lives: %d  Score: %d", snap.Level, snap.Lives, snap.Score)
	} else {
		hud = fmt.Sprintf(" Skyhop  Level: %d/%d %s  Lives: %d  Score: %d",
			snap.Level, LevelCount(), LevelName(snap.Level), snap.Lives, snap.Score)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderOverlay draws a centered message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
