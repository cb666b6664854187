package main

import (
	"log"
	"math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"gridnav/nav"
)

// Game holds the demo state: the active query engine, the player, the path
// being followed, and the ray fan buffers shared with the worker pool.
type Game struct {
	grid   *nav.Grid
	engine *nav.Engine

	px, py    float64
	viewAngle float64

	goal      nav.Point
	path      []nav.Point
	pathIndex int
	hasPath   bool

	lastSearch     time.Duration
	lastSearchHit  bool
	searchAttempts int
	sinceSearch    int

	levelRand *rand.Rand
	autoWalk  bool

	rayCount     int
	rayAngles    []float64
	rayCorrected []float64
	rayRaw       []float64

	workerCount    int
	workerMu       sync.Mutex
	workerCond     *sync.Cond
	workerStep     int
	workerPending  int
	workersStarted bool
	rayBands       []rayBand

	reloads chan *nav.GridMap

	pixels []byte
}

// newGame constructs a fully initialized Game from a resolved map.
func newGame(m *nav.GridMap) *Game {
	rayCount := *rayCountFlag
	if rayCount < 1 {
		rayCount = 1
	}
	g := &Game{
		levelRand:    rand.New(rand.NewSource(time.Now().UnixNano() + 1)),
		autoWalk:     *autoWalkFlag,
		rayCount:     rayCount,
		rayAngles:    make([]float64, rayCount),
		rayCorrected: make([]float64, rayCount),
		rayRaw:       make([]float64, rayCount),
		workerCount:  runtime.NumCPU(),
		reloads:      make(chan *nav.GridMap, 1),
		viewAngle:    -math.Pi / 2,
	}
	g.workerCond = sync.NewCond(&g.workerMu)
	g.setMap(m)
	g.startWorkers()
	return g
}

// setMap installs a new grid and engine and resets the player and path.
func (g *Game) setMap(m *nav.GridMap) {
	g.workerMu.Lock()
	g.grid = m.Grid
	g.engine = nav.NewEngine(m.Grid, m.Config)
	g.px = cellCenter(m.Spawn.X)
	g.py = cellCenter(m.Spawn.Y)
	g.path = nil
	g.pathIndex = 0
	g.hasPath = false
	g.pixels = make([]byte, m.Grid.Width()*m.Grid.Height()*4)
	g.workerMu.Unlock()
}

// Update advances the player, maintains the active path, and refreshes the
// ray fan.
func (g *Game) Update() error {
	select {
	case m := <-g.reloads:
		g.setMap(m)
		log.Printf("Map reloaded (%dx%d)", m.Grid.Width(), m.Grid.Height())
	default:
	}

	g.sinceSearch++
	g.handleGoalClick()

	dx, dy := g.movementVector()
	if dx != 0 || dy != 0 {
		g.viewAngle = math.Atan2(dy, dx)
		nx := g.px + dx
		ny := g.py + dy
		if !g.engine.Collides(nx, ny, playerRadius) {
			g.px, g.py = nx, ny
		} else if !g.engine.Collides(nx, g.py, playerRadius) {
			// Slide along the blocked axis rather than stopping dead.
			g.px = nx
		} else if !g.engine.Collides(g.px, ny, playerRadius) {
			g.py = ny
		}
	}

	if *showRaysFlag {
		g.castRayFan()
	}
	return nil
}

// requestPath runs a search from the player to the goal cell and installs
// the result as the active path.
func (g *Game) requestPath(goal nav.Point) {
	g.sinceSearch = 0
	started := time.Now()
	path, ok := g.engine.FindPath(math.Floor(g.px), math.Floor(g.py), float64(goal.X), float64(goal.Y))
	g.lastSearch = time.Since(started)
	g.lastSearchHit = ok
	g.searchAttempts++
	if !ok {
		g.hasPath = false
		g.path = nil
		return
	}
	g.goal = goal
	g.path = path
	g.pathIndex = 0
	g.hasPath = true
}

// randomGoal picks a random walkable cell, rejecting blocked samples up to
// a fixed retry budget.
func (g *Game) randomGoal() (nav.Point, bool) {
	for attempts := 0; attempts < goalRetryLimit; attempts++ {
		p := nav.Point{
			X: g.levelRand.Intn(g.grid.Width()),
			Y: g.levelRand.Intn(g.grid.Height()),
		}
		if g.grid.Walkable(p.X, p.Y) {
			return p, true
		}
	}
	return nav.Point{}, false
}
