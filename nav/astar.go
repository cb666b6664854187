package nav

import (
	"container/heap"
	"math"
)

// pathNode is one frontier entry in the A* open set.
type pathNode struct {
	at    Point
	g     float64 // accumulated cost from the start
	f     float64 // g plus the heuristic estimate to the goal
	index int     // heap bookkeeping
}

// openHeap is a min-heap of frontier nodes ordered by f score.
type openHeap []*pathNode

func (h openHeap) Len() int           { return len(h) }
func (h openHeap) Less(i, j int) bool { return h[i].f < h[j].f }
func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *openHeap) Push(x any) {
	node := x.(*pathNode)
	node.index = len(*h)
	*h = append(*h, node)
}

func (h *openHeap) Pop() any {
	old := *h
	n := len(old)
	node := old[n-1]
	old[n-1] = nil
	node.index = -1
	*h = old[:n-1]
	return node
}

// neighborDirs lists the 8-directional moves, orthogonal first.
var neighborDirs = [8]Point{
	{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1},
	{X: 1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: 1}, {X: -1, Y: -1},
}

// FindPath searches for a cheapest path between two world positions. The
// returned waypoints run from the cell after the start to the goal
// inclusive; the start cell is omitted because the caller already occupies
// it. A walkable start equal to the goal yields an empty path with ok true.
// Unwalkable or out-of-bounds endpoints, an exhausted frontier, and searches
// priced beyond MaxPathLength all yield ok false; the sentinel does not
// distinguish the causes.
//
// Each call builds fresh search state, so concurrent searches over the same
// Grid are safe.
func (e *Engine) FindPath(startX, startY, goalX, goalY float64) (path []Point, ok bool) {
	start := e.snap(startX, startY)
	goal := e.snap(goalX, goalY)
	if !e.grid.Walkable(start.X, start.Y) || !e.grid.Walkable(goal.X, goal.Y) {
		return nil, false
	}
	if start == goal {
		return []Point{}, true
	}

	maxLen := e.cfg.MaxPathLength
	open := &openHeap{}
	heap.Init(open)
	heap.Push(open, &pathNode{at: start, g: 0, f: e.heuristic(start, goal)})

	gScore := map[Point]float64{start: 0}
	cameFrom := map[Point]Point{}
	closed := map[Point]bool{}

	for open.Len() > 0 {
		current := heap.Pop(open).(*pathNode)
		if closed[current.at] {
			continue // stale duplicate superseded by a cheaper entry
		}
		if maxLen > 0 && current.g > maxLen {
			break
		}
		closed[current.at] = true
		if current.at == goal {
			return reconstructPath(cameFrom, start, goal), true
		}

		for _, dir := range neighborDirs {
			next := Point{X: current.at.X + dir.X, Y: current.at.Y + dir.Y}
			if closed[next] || !e.grid.Walkable(next.X, next.Y) {
				continue
			}
			stepCost := e.cfg.StraightCost
			if dir.X != 0 && dir.Y != 0 {
				// A diagonal step requires both orthogonally adjacent cells
				// to be open, otherwise the move would cut through a wall
				// corner.
				if !e.grid.Walkable(current.at.X+dir.X, current.at.Y) ||
					!e.grid.Walkable(current.at.X, current.at.Y+dir.Y) {
					continue
				}
				stepCost = e.cfg.DiagonalCost
			}
			tentative := current.g + stepCost
			if maxLen > 0 && tentative > maxLen {
				continue
			}
			if best, seen := gScore[next]; seen && tentative >= best {
				continue
			}
			gScore[next] = tentative
			cameFrom[next] = current.at
			heap.Push(open, &pathNode{at: next, g: tentative, f: tentative + e.heuristic(next, goal)})
		}
	}
	return nil, false
}

// snap converts a world position to a grid cell. Integral coordinates pass
// through unchanged; fractional ones are divided by the tile size and
// floored.
func (e *Engine) snap(x, y float64) Point {
	if x == math.Trunc(x) && y == math.Trunc(y) {
		return Point{X: int(x), Y: int(y)}
	}
	return Point{
		X: int(math.Floor(x / e.cfg.TileSize)),
		Y: int(math.Floor(y / e.cfg.TileSize)),
	}
}

// heuristic is the octile distance between two cells, admissible and
// consistent for 8-directional movement with the configured step costs.
func (e *Engine) heuristic(a, b Point) float64 {
	dx := math.Abs(float64(a.X - b.X))
	dy := math.Abs(float64(a.Y - b.Y))
	min, max := dx, dy
	if min > max {
		min, max = max, min
	}
	return e.cfg.DiagonalCost*min + e.cfg.StraightCost*(max-min)
}

// reconstructPath walks predecessor links from the goal back to the start
// and reverses them, dropping the start cell itself.
func reconstructPath(cameFrom map[Point]Point, start, goal Point) []Point {
	path := []Point{goal}
	for at := goal; at != start; {
		at = cameFrom[at]
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path[1:]
}
