// Package window presents skyhop in a desktop window using Ebitengine.
// The presenter owns the game: Update applies input and steps one tick,
// Draw reads a snapshot and never mutates game state.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/engine"
	"github.com/vovakirdan/skyhop/internal/games/skyhop"
)

// pixel is the side of one cell of the character sprite.
const pixel = 4

var (
	colorSky    = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorGround = color.RGBA{0x55, 0x55, 0x55, 0xff}
	colorBlock  = color.RGBA{0x00, 0xff, 0xff, 0xff}
	colorStar   = color.RGBA{0xff, 0xff, 0x00, 0xff}
	colorBody   = color.RGBA{0x7c, 0xc6, 0xfe, 0xff}
	colorSkin   = color.RGBA{0xff, 0xdb, 0xac, 0xff}
	colorPink   = color.RGBA{0xff, 0xb6, 0xc1, 0xff}
	colorInk    = color.RGBA{0x00, 0x00, 0x00, 0xff}
	colorShade  = color.RGBA{0x00, 0x00, 0x00, 0xb0}
)

// Presenter adapts a skyhop game to ebiten.Game.
type Presenter struct {
	game   *skyhop.Game
	logger *log.Logger
	width  int
	height int
}

// NewPresenter resets the game and returns a presenter sized to its world.
func NewPresenter(game *skyhop.Game, runtime core.RuntimeConfig, logger *log.Logger) *Presenter {
	game.Reset(runtime)
	cfg := game.Config()
	return &Presenter{
		game:   game,
		logger: logger,
		width:  int(cfg.Screen.Width),
		height: int(cfg.Screen.Height),
	}
}

// Update applies this frame's input and advances the simulation one tick.
func (p *Presenter) Update() error {
	action, quit := mapInput(inpututil.IsKeyJustPressed,
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft))
	if quit {
		return ebiten.Termination
	}
	if action != core.ActionNone {
		p.game.Handle(action)
	}

	res := p.game.Step()
	engine.LogEvents(p.logger, res.Events)
	return nil
}

// mapInput turns the keys pressed this frame into a game command.
// Escape quits; otherwise the first matching command wins.
func mapInput(justPressed func(ebiten.Key) bool, clicked bool) (core.Action, bool) {
	switch {
	case justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ):
		return core.ActionNone, true
	case justPressed(ebiten.KeySpace) || justPressed(ebiten.KeyArrowUp) || justPressed(ebiten.KeyW) || clicked:
		return core.ActionJump, false
	case justPressed(ebiten.KeyN) || justPressed(ebiten.KeyEnter):
		return core.ActionAdvance, false
	case justPressed(ebiten.KeyR):
		return core.ActionRestart, false
	}
	return core.ActionNone, false
}

// Draw renders the current snapshot.
func (p *Presenter) Draw(screen *ebiten.Image) {
	snap := p.game.Snapshot()
	screen.Fill(colorSky)

	for _, plat := range snap.Platforms {
		clr := colorBlock
		if plat.Ground {
			clr = colorGround
		}
		fillRect(screen, plat.Rect, clr)
	}

	if snap.Star != nil {
		drawStar(screen, *snap.Star)
	}
	drawCharacter(screen, snap.Player, snap.Pose)

	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("Level: %d   Lives: %d   Score: %d", snap.Level, snap.Lives, snap.Score), 10, 10)

	switch snap.Phase {
	case core.PhaseLevelComplete:
		p.drawBanner(screen, fmt.Sprintf("Level %d complete!", snap.Level), "Press N to continue")
	case core.PhaseGameOver:
		p.drawBanner(screen, "Game Over", fmt.Sprintf("Score: %d - press R to restart", snap.Score))
	}
}

func (p *Presenter) drawBanner(screen *ebiten.Image, title, hint string) {
	const bannerH = 60
	top := float32(p.height-bannerH) / 2
	vector.FillRect(screen, 0, top, float32(p.width), bannerH, colorShade, false)

	// DebugPrint glyphs are 6x16.
	cx := p.width / 2
	ebitenutil.DebugPrintAt(screen, title, cx-len(title)*3, int(top)+10)
	ebitenutil.DebugPrintAt(screen, hint, cx-len(hint)*3, int(top)+32)
}

// Layout keeps the logical screen at world size; ebiten scales the window.
func (p *Presenter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.width, p.height
}

func fillRect(dst *ebiten.Image, r core.Rect, clr color.Color) {
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

type point struct {
	X, Y float32
}

// starPoints returns the ten vertices of a five-pointed star inscribed in r,
// starting at the top tip and alternating outer and inner radius.
func starPoints(r core.Rect) []point {
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	outer := r.W / 2
	inner := outer / 2

	pts := make([]point, 0, 10)
	for i := 0; i < 10; i++ {
		radius := outer
		if i%2 == 1 {
			radius = inner
		}
		angle := float64(i)*math.Pi/5 - math.Pi/2
		pts = append(pts, point{
			X: float32(cx + radius*math.Cos(angle)),
			Y: float32(cy + radius*math.Sin(angle)),
		})
	}
	return pts
}

func drawStar(dst *ebiten.Image, r core.Rect) {
	pts := starPoints(r)
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, a.X, a.Y, b.X, b.Y, 2, colorStar, true)
	}
}

// spriteRect is one filled block of the character, in sprite cells.
type spriteRect struct {
	x, y, w, h int
	clr        color.Color
}

// characterSprite is a 10x10 cell figure, listed back to front: torso, head
// with glasses, cheeks and smile, arms, legs and a heart on the chest.
// Legs tuck up while airborne.
func characterSprite(pose skyhop.Pose) []spriteRect {
	legY := 8
	if pose != skyhop.PoseStanding {
		legY = 7
	}
	return []spriteRect{
		{2, 4, 6, 4, colorBody},
		{1, 0, 8, 4, colorSkin},
		{2, 1, 2, 1, colorInk},
		{5, 1, 2, 1, colorInk},
		{4, 1, 1, 1, colorInk},
		{1, 2, 1, 1, colorPink},
		{7, 2, 1, 1, colorPink},
		{3, 3, 1, 1, colorInk},
		{5, 3, 1, 1, colorInk},
		{0, 4, 2, 2, colorBody},
		{8, 4, 2, 2, colorBody},
		{3, legY, 2, 2, colorBody},
		{5, legY, 2, 2, colorBody},
		{5, 6, 1, 1, colorPink},
	}
}

// drawCharacter draws the sprite centered on the player's bounding box.
func drawCharacter(dst *ebiten.Image, r core.Rect, pose skyhop.Pose) {
	const spriteSize = 10 * pixel
	ox := float32(r.X) + (float32(r.W)-spriteSize)/2
	oy := float32(r.Y) + (float32(r.H) - spriteSize)

	for _, s := range characterSprite(pose) {
		vector.FillRect(dst,
			ox+float32(s.x*pixel), oy+float32(s.y*pixel),
			float32(s.w*pixel), float32(s.h*pixel),
			s.clr, false)
	}
}

// Run opens the window and blocks until it is closed.
func Run(game *skyhop.Game, runtime core.RuntimeConfig, logger *log.Logger) error {
	p := NewPresenter(game, runtime, logger)

	ebiten.SetWindowSize(p.width, p.height)
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(runtime.TickRate)

	if err := ebiten.RunGame(p); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
