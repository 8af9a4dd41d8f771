// Package skyhop implements the platform-jumping game: a character jumps in a
// fixed arc across scrolling platforms to reach a star, with three campaign
// levels and an endless mode that keeps spawning platforms.
package skyhop

import (
	"time"

	"github.com/vovakirdan/skyhop/internal/config"
	"github.com/vovakirdan/skyhop/internal/core"
	"github.com/vovakirdan/skyhop/internal/registry"
)

// Mode selects how levels are built.
type Mode string

const (
	ModeCampaign Mode = "campaign" // Three static levels, then level 1 again
	ModeEndless  Mode = "endless"  // Endless layout with timed platform spawns
)

// MusicCue receives background music commands. Calls must not block and
// failures stay inside the implementation.
type MusicCue interface {
	StartLoop()
	RestartLoop()
}

type silentCue struct{}

func (silentCue) StartLoop()   {}
func (silentCue) RestartLoop() {}

// Package-level settings applied by Reset, set from the CLI.
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the campaign level the next Reset starts on.
// 0 means start from level 1. The value is consumed by Reset.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// Game implements the skyhop simulation.
// All methods must be called from a single owning loop.
type Game struct {
	mode Mode

	// Configuration
	runtime    core.RuntimeConfig
	cfg        config.GameConfig
	pending    *config.GameConfig // Staged by Configure, applied on the next level load
	configured bool
	difficulty *config.DifficultyManager

	// Collaborators
	spawner *Spawner
	now     func() time.Time
	music   MusicCue

	// Game state
	tick  uint64
	level int
	lives int
	score int
	phase core.Phase

	// Entities, replaced wholesale on every level load
	player    Player
	platforms []Platform
	star      *Star
	starY     float64

	events []core.Event
}

// New creates a campaign mode game.
func New() *Game {
	return &Game{
		mode:  ModeCampaign,
		now:   time.Now,
		music: silentCue{},
	}
}

// NewEndless creates an endless mode game.
func NewEndless() *Game {
	g := New()
	g.mode = ModeEndless
	return g
}

func init() {
	registry.Register("skyhop", func() registry.Game {
		return New()
	})
	registry.Register("skyhop_endless", func() registry.Game {
		return NewEndless()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "skyhop_endless"
	}
	return "skyhop"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Skyhop (Endless)"
	}
	return "Skyhop"
}

// Mode returns the game mode.
func (g *Game) Mode() Mode {
	return g.mode
}

// SetMusic attaches the background music cue. nil detaches it.
func (g *Game) SetMusic(m MusicCue) {
	if m == nil {
		m = silentCue{}
	}
	g.music = m
}

// SetClock replaces the wall clock used for spawn cadence.
func (g *Game) SetClock(now func() time.Time) {
	g.now = now
}

// Configure stages a configuration. It replaces file loading in Reset and
// takes effect at the next Reset, Restart or level advance.
func (g *Game) Configure(cfg config.GameConfig) {
	g.pending = &cfg
	g.configured = true
}

// Config returns the active configuration.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Reset starts a new game on level 1 (or the selected start level).
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.configured {
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.DefaultGameConfig()
		}
		config.ApplyPreset(&cfg, difficultyPreset)
		g.pending = &cfg
	}
	g.applyPending()
	g.spawner = NewSpawner(g.cfg, runtime.Seed)

	g.tick = 0
	g.score = 0
	g.lives = g.cfg.Rules.Lives
	g.level = 1
	g.events = nil

	if g.mode == ModeCampaign && selectedStartLevel > 0 && selectedStartLevel <= LevelCount() {
		g.level = selectedStartLevel
		selectedStartLevel = 0 // Reset after use
	}

	g.loadLevel()
	g.music.StartLoop()
}

// applyPending activates a staged configuration, if any.
func (g *Game) applyPending() {
	if g.pending == nil {
		return
	}
	g.cfg = *g.pending
	g.pending = nil
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)
	if g.spawner != nil {
		g.spawner.UpdateConfig(g.cfg)
	}
}

// loadLevel replaces all entities with a fresh layout for the current level.
func (g *Game) loadLevel() {
	var layout Layout
	if g.mode == ModeEndless {
		layout = BuildEndless(g.cfg)
		g.spawner.Reset()
	} else {
		layout = BuildLevel(g.level, g.cfg)
	}

	g.platforms = layout.Platforms
	g.star = layout.Star
	g.starY = layout.StarY
	g.player = g.spawnPlayer()
	g.phase = core.PhaseRunning
	g.emit(core.EventLevelLoaded)
}

// spawnPlayer builds a player standing on the ground at the spawn point.
func (g *Game) spawnPlayer() Player {
	return Player{
		X:              g.cfg.Player.SpawnX,
		Y:              GroundY(g.cfg) - g.cfg.Player.Height,
		W:              g.cfg.Player.Width,
		H:              g.cfg.Player.Height,
		LivesRemaining: g.lives,
	}
}

// Handle applies a command. Illegal commands are ignored and report false.
func (g *Game) Handle(a core.Action) bool {
	switch a {
	case core.ActionJump:
		return g.jump()
	case core.ActionAdvance:
		return g.advanceLevel()
	case core.ActionRestart:
		g.restart()
		return true
	default:
		return false
	}
}

// jump starts the fixed jump arc. Only a running, grounded player can jump.
func (g *Game) jump() bool {
	if g.phase != core.PhaseRunning || g.player.Jumping {
		return false
	}
	g.player.Jumping = true
	g.player.VY = g.cfg.Physics.JumpHeight
	g.player.VX = g.cfg.Physics.JumpVelocityX()
	return true
}

// advanceLevel moves on after the star was collected.
func (g *Game) advanceLevel() bool {
	if g.phase != core.PhaseLevelComplete {
		return false
	}
	g.applyPending()
	g.level++
	g.loadLevel()
	return true
}

// restart starts over from level 1 with full lives and zero score.
func (g *Game) restart() {
	g.applyPending()
	g.level = 1
	g.lives = g.cfg.Rules.Lives
	g.score = 0
	g.loadLevel()
	g.music.RestartLoop()
}

// Step advances the game by one tick. Nothing moves unless the phase is Running.
func (g *Game) Step() core.StepResult {
	if g.phase == core.PhaseRunning {
		g.tick++
		g.stepRunning()
	}

	res := core.StepResult{State: g.State(), Events: g.events}
	g.events = nil
	return res
}

func (g *Game) stepRunning() {
	g.updatePlatforms()
	g.updatePlayer()

	if g.collectStar() {
		return
	}
	g.checkBounds()
}

// updatePlatforms spawns (endless mode), scrolls and removes platforms.
func (g *Game) updatePlatforms() {
	if g.mode == ModeEndless {
		speed := g.difficulty.Speed(g.cfg.Physics.BlockSpeed, g.score, g.tick)
		g.spawner.SetInterval(g.difficulty.Interval(g.cfg.Spawner.Interval(), g.score, g.tick))
		if p, ok := g.spawner.Update(g.now(), g.starY, speed); ok {
			g.platforms = append(g.platforms, p)
			g.emit(core.EventSpawned)
		}
	}

	for i := range g.platforms {
		g.platforms[i].X -= g.platforms[i].Speed
	}

	kept := g.platforms[:0]
	for _, p := range g.platforms {
		if p.Gone() {
			g.emit(core.EventDespawned)
			continue
		}
		kept = append(kept, p)
	}
	g.platforms = kept
}

// updatePlayer integrates a jumping player and resolves landings.
// A standing player whose platform scrolled away starts to fall; the fall
// is integrated from the next tick.
func (g *Game) updatePlayer() {
	p := &g.player

	switch {
	case p.Jumping:
		p.VY += g.cfg.Physics.Gravity
		p.Y += p.VY
		p.X += p.VX
		g.land()
	case !g.supported():
		p.Jumping = true
		g.emit(core.EventFellOff)
	}
}

// land stops a descending player on the first platform it overlaps.
func (g *Game) land() {
	p := &g.player
	if p.VY <= 0 {
		return
	}
	box := p.Rect()
	for _, plat := range g.platforms {
		if !box.Overlaps(plat.Rect()) {
			continue
		}
		p.Jumping = false
		p.VX = 0
		p.VY = 0
		p.Y = plat.Y - p.H
		g.emit(core.EventLanded)
		return
	}
}

// supported reports whether the player stands on any platform.
func (g *Game) supported() bool {
	box := g.player.Rect()
	for _, plat := range g.platforms {
		if box.RestsOn(plat.Rect()) {
			return true
		}
	}
	return false
}

// collectStar completes the level when the player touches the star.
func (g *Game) collectStar() bool {
	if g.star == nil || !g.player.Rect().Overlaps(g.star.Rect()) {
		return false
	}
	g.star = nil
	g.score += g.cfg.Rules.StarPoints
	g.phase = core.PhaseLevelComplete
	g.emit(core.EventStarCollected)
	return true
}

// checkBounds costs a life when the player leaves the world.
func (g *Game) checkBounds() {
	p := g.player
	w, h := g.cfg.Screen.Width, g.cfg.Screen.Height
	if p.Y <= h && p.X >= 0 && p.X <= w {
		return
	}

	g.lives = max(0, g.lives-1)
	g.emit(core.EventLifeLost)

	if g.lives == 0 {
		g.phase = core.PhaseGameOver
		g.emit(core.EventGameOver)
		return
	}
	g.player = g.spawnPlayer()
}

func (g *Game) emit(kind core.EventKind) {
	g.events = append(g.events, core.Event{
		Kind:  kind,
		Tick:  g.tick,
		State: g.State(),
	})
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Level: g.level,
		Lives: g.lives,
		Score: g.score,
		Phase: g.phase,
	}
}

// Player returns a copy of the player.
func (g *Game) Player() Player {
	return g.player
}

// Platforms returns a copy of the platform list in update order.
func (g *Game) Platforms() []Platform {
	return append([]Platform(nil), g.platforms...)
}

// Star returns a copy of the star, or nil once collected.
func (g *Game) Star() *Star {
	if g.star == nil {
		return nil
	}
	s := *g.star
	return &s
}
