package skyhop

import "github.com/vovakirdan/skyhop/internal/config"

// Fixed entity sizes in world units.
const (
	GroundHeight = 50
	BlockWidth   = 50
	BlockHeight  = 10
	StarSize     = 20

	starX           = 700
	starRise        = 300 // Campaign star sits this far above the bottom edge
	endlessStarFrac = 0.3
)

// block is one elevated platform in a level table, positioned by its
// x coordinate and its height above the bottom edge of the world.
type block struct {
	X    float64
	Rise float64
}

// Level is one hand-authored campaign stage.
type Level struct {
	Name   string
	Blocks []block
}

// levels is the campaign table, indexed by level number - 1.
var levels = []Level{
	{
		Name:   "First Steps",
		Blocks: []block{{200, 150}, {400, 200}, {600, 250}},
	},
	{
		Name:   "Staircase",
		Blocks: []block{{150, 150}, {300, 200}, {450, 250}, {600, 200}},
	},
	{
		Name:   "Ridge",
		Blocks: []block{{100, 150}, {250, 200}, {400, 250}, {550, 200}, {700, 150}},
	},
}

// endlessFractions place the opening platforms of endless mode.
var endlessFractions = []float64{0.2, 0.3, 0.4, 0.5, 0.6, 0.7}

// Layout is the freshly built entity set for one level.
type Layout struct {
	Platforms []Platform // Ground first, then blocks left to right
	Star      *Star
	StarY     float64 // Top of the star, used by the spawner
}

// LevelCount returns the number of campaign levels.
func LevelCount() int {
	return len(levels)
}

// LevelName returns the name of level n. Unknown levels report level 1's name.
func LevelName(n int) string {
	return levels[levelIndex(n)].Name
}

// levelIndex maps a level number to a table index, falling back to level 1.
func levelIndex(n int) int {
	if n < 1 || n > len(levels) {
		return 0
	}
	return n - 1
}

// BuildLevel builds the layout for campaign level n.
// Levels outside the table use level 1's layout.
func BuildLevel(n int, cfg config.GameConfig) Layout {
	h := cfg.Screen.Height
	lvl := levels[levelIndex(n)]

	platforms := make([]Platform, 0, len(lvl.Blocks)+1)
	platforms = append(platforms, groundPlatform(cfg))
	for _, b := range lvl.Blocks {
		platforms = append(platforms, newBlock(b.X, h-b.Rise, cfg.Physics.BlockSpeed))
	}

	starY := h - starRise
	return Layout{
		Platforms: platforms,
		Star:      newStar(starY),
		StarY:     starY,
	}
}

// BuildEndless builds the opening layout of endless mode: a row of blocks
// climbing toward a star placed high on the right.
func BuildEndless(cfg config.GameConfig) Layout {
	starY := cfg.Screen.Height * endlessStarFrac

	platforms := make([]Platform, 0, len(endlessFractions)+1)
	platforms = append(platforms, groundPlatform(cfg))
	for i, frac := range endlessFractions {
		x := 150 + 100*float64(i)
		platforms = append(platforms, newBlock(x, SpawnY(cfg, starY, frac), cfg.Physics.BlockSpeed))
	}

	return Layout{
		Platforms: platforms,
		Star:      newStar(starY),
		StarY:     starY,
	}
}

// GroundY returns the top of the ground.
func GroundY(cfg config.GameConfig) float64 {
	return cfg.Screen.Height - GroundHeight
}

func groundPlatform(cfg config.GameConfig) Platform {
	return Platform{
		X:      0,
		Y:      GroundY(cfg),
		W:      cfg.Screen.Width,
		H:      GroundHeight,
		Ground: true,
	}
}

func newBlock(x, y, speed float64) Platform {
	return Platform{X: x, Y: y, W: BlockWidth, H: BlockHeight, Speed: speed}
}

func newStar(y float64) *Star {
	return &Star{X: starX, Y: y, W: StarSize, H: StarSize}
}
