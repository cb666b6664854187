package nav

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pathCost walks a returned path from the start cell and sums the step
// costs, failing on any step that is not one of the 8 unit moves.
func pathCost(t *testing.T, cfg Config, start Point, path []Point) float64 {
	t.Helper()
	cost := 0.0
	at := start
	for _, wp := range path {
		dx := wp.X - at.X
		dy := wp.Y - at.Y
		require.LessOrEqual(t, math.Abs(float64(dx)), 1.0)
		require.LessOrEqual(t, math.Abs(float64(dy)), 1.0)
		require.False(t, dx == 0 && dy == 0, "zero-length step at %v", wp)
		if dx != 0 && dy != 0 {
			cost += cfg.DiagonalCost
		} else {
			cost += cfg.StraightCost
		}
		at = wp
	}
	return cost
}

func octile(cfg Config, a, b Point) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	min, max := dx, dy
	if min > max {
		min, max = max, min
	}
	return cfg.DiagonalCost*min + cfg.StraightCost*(max-min)
}

func TestFindPathAlreadyAtGoal(t *testing.T) {
	e := NewEngine(openGrid(t, 4, 4), DefaultConfig())
	path, ok := e.FindPath(2, 2, 2, 2)
	require.True(t, ok)
	assert.Empty(t, path)
}

func TestFindPathOpenGridMatchesOctile(t *testing.T) {
	cfg := DefaultConfig()
	e := NewEngine(openGrid(t, 12, 12), cfg)
	pairs := []struct {
		start, goal Point
	}{
		{Point{0, 0}, Point{11, 11}},
		{Point{0, 0}, Point{11, 0}},
		{Point{3, 8}, Point{9, 2}},
		{Point{5, 1}, Point{2, 10}},
		{Point{11, 11}, Point{0, 5}},
	}
	for _, p := range pairs {
		path, ok := e.FindPath(float64(p.start.X), float64(p.start.Y), float64(p.goal.X), float64(p.goal.Y))
		require.True(t, ok, "path %v -> %v", p.start, p.goal)
		require.NotEmpty(t, path)
		assert.Equal(t, p.goal, path[len(path)-1])
		assert.InDelta(t, octile(cfg, p.start, p.goal), pathCost(t, cfg, p.start, path), 1e-9)
	}
}

func TestFindPathNeverCutsCorners(t *testing.T) {
	g := mustGrid(t,
		"......",
		"..##..",
		"..##..",
		"......",
		".##...",
		"......",
	)
	e := NewEngine(g, DefaultConfig())
	start := Point{0, 0}
	path, ok := e.FindPath(0, 0, 5, 5)
	require.True(t, ok)

	at := start
	for _, wp := range path {
		dx := wp.X - at.X
		dy := wp.Y - at.Y
		if dx != 0 && dy != 0 {
			assert.True(t, g.Walkable(at.X+dx, at.Y), "corner cut at %v -> %v", at, wp)
			assert.True(t, g.Walkable(at.X, at.Y+dy), "corner cut at %v -> %v", at, wp)
		}
		at = wp
	}
	assert.Equal(t, Point{5, 5}, at)
}

func TestFindPathSealedByWallCornerPair(t *testing.T) {
	// The direct diagonal between (0,1) and (1,0) passes between two walls
	// and must not be taken.
	g := mustGrid(t,
		".#..",
		"#...",
		"....",
		"....",
	)
	e := NewEngine(g, DefaultConfig())
	_, ok := e.FindPath(0, 0, 3, 3)
	assert.False(t, ok, "start is sealed off by the wall pair")
}

func TestFindPathInvalidEndpoints(t *testing.T) {
	g := mustGrid(t,
		"....",
		".#..",
		"....",
	)
	e := NewEngine(g, DefaultConfig())

	_, ok := e.FindPath(1, 1, 3, 2) // start occupied
	assert.False(t, ok)

	_, ok = e.FindPath(0, 0, 1, 1) // goal occupied
	assert.False(t, ok)

	_, ok = e.FindPath(-1, 0, 2, 2) // start out of bounds
	assert.False(t, ok)

	_, ok = e.FindPath(0, 0, 9, 9) // goal out of bounds
	assert.False(t, ok)
}

func TestFindPathUnreachableGoal(t *testing.T) {
	g := mustGrid(t,
		"......",
		".###..",
		".#.#..",
		".###..",
		"......",
	)
	e := NewEngine(g, DefaultConfig())
	path, ok := e.FindPath(0, 0, 2, 2)
	assert.False(t, ok)
	assert.Nil(t, path)
}

func TestFindPathBorderedDiagonal(t *testing.T) {
	e := NewEngine(borderedGrid(t, 5, 5), DefaultConfig())
	path, ok := e.FindPath(1, 1, 3, 3)
	require.True(t, ok)
	require.GreaterOrEqual(t, len(path), 2)
	require.LessOrEqual(t, len(path), 3)
	assert.Equal(t, Point{3, 3}, path[len(path)-1])
	assert.InDelta(t, 2*math.Sqrt2, pathCost(t, DefaultConfig(), Point{1, 1}, path), 1e-9)
}

func TestFindPathLengthCap(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPathLength = 1
	e := NewEngine(borderedGrid(t, 5, 5), cfg)
	path, ok := e.FindPath(1, 1, 3, 3)
	assert.False(t, ok)
	assert.Nil(t, path)

	// A single straight step still fits under the cap.
	path, ok = e.FindPath(1, 1, 2, 1)
	require.True(t, ok)
	assert.Equal(t, []Point{{2, 1}}, path)
}

func TestFindPathSnapsFractionalWorldCoordinates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TileSize = 32
	e := NewEngine(borderedGrid(t, 5, 5), cfg)

	// 36.5/32 floors to cell 1, 100.5/32 to cell 3.
	path, ok := e.FindPath(36.5, 36.5, 100.5, 100.5)
	require.True(t, ok)
	assert.Equal(t, Point{3, 3}, path[len(path)-1])

	// Integral coordinates pass through as cell indices untouched.
	path, ok = e.FindPath(1, 1, 3, 3)
	require.True(t, ok)
	assert.Equal(t, Point{3, 3}, path[len(path)-1])
}

func TestFindPathConcurrentSearches(t *testing.T) {
	e := NewEngine(borderedGrid(t, 24, 24), DefaultConfig())
	var wg sync.WaitGroup
	for i := 1; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			path, ok := e.FindPath(1, 1, float64(1+i), float64(1+i))
			if !ok {
				t.Errorf("search %d found no path", i)
				return
			}
			if len(path) == 0 || path[len(path)-1] != (Point{1 + i, 1 + i}) {
				t.Errorf("search %d ended at %v", i, path)
			}
		}(i)
	}
	wg.Wait()
}
