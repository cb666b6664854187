package nav

import "math"

// Default cost and range parameters used when a Config field is left zero.
const (
	DefaultStraightCost = 1.0
	DefaultDiagonalCost = math.Sqrt2
	DefaultTileSize     = 1.0
	DefaultMaxRayRange  = 64.0
)

// Config carries the tunable parameters for an Engine. A zero field selects
// the matching default; MaxPathLength has no default and zero means
// unbounded. Config is passed explicitly so that multiple simulation
// contexts can query the same Grid without cross-talk.
type Config struct {
	// StraightCost is the cost of an orthogonal step.
	StraightCost float64

	// DiagonalCost is the cost of a diagonal step.
	DiagonalCost float64

	// MaxPathLength caps the accumulated cost of a path. Searches exceeding
	// the cap return no path even when a longer valid path exists. Zero or
	// negative means unbounded.
	MaxPathLength float64

	// TileSize converts non-integral world coordinates to grid cells.
	TileSize float64

	// MaxRayRange caps the distance returned by ray queries.
	MaxRayRange float64
}

// DefaultConfig returns a Config populated with the default parameters and
// an unbounded path length.
func DefaultConfig() Config {
	return Config{
		StraightCost: DefaultStraightCost,
		DiagonalCost: DefaultDiagonalCost,
		TileSize:     DefaultTileSize,
		MaxRayRange:  DefaultMaxRayRange,
	}
}

// normalized fills zero-valued fields with their defaults.
func (c Config) normalized() Config {
	if c.StraightCost <= 0 {
		c.StraightCost = DefaultStraightCost
	}
	if c.DiagonalCost <= 0 {
		c.DiagonalCost = DefaultDiagonalCost
	}
	if c.TileSize <= 0 {
		c.TileSize = DefaultTileSize
	}
	if c.MaxRayRange <= 0 {
		c.MaxRayRange = DefaultMaxRayRange
	}
	return c
}

// Engine answers path, ray, and collision queries against one immutable
// Grid. An Engine holds no per-query state, so independent queries may run
// concurrently.
type Engine struct {
	grid *Grid
	cfg  Config
}

// NewEngine binds a Grid and a Config into a query engine.
func NewEngine(grid *Grid, cfg Config) *Engine {
	return &Engine{grid: grid, cfg: cfg.normalized()}
}

// Grid returns the occupancy grid the engine queries.
func (e *Engine) Grid() *Grid { return e.grid }

// Config returns the normalized configuration in effect.
func (e *Engine) Config() Config { return e.cfg }
