package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gridnav/nav"
)

// movementVector selects either manual or path-following movement.
func (g *Game) movementVector() (float64, float64) {
	if g.autoWalk {
		return g.pathFollowVector()
	}
	return g.manualMovementVector()
}

// manualMovementVector returns WASD-based input movement scaled by moveSpeed.
func (g *Game) manualMovementVector() (float64, float64) {
	dx, dy := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dy -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dy += moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dx -= moveSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dx += moveSpeed
	}
	if dx != 0 && dy != 0 {
		dx *= 0.7071
		dy *= 0.7071
	}
	if dx == 0 && dy == 0 && g.hasPath {
		// A clicked goal is followed even in manual mode while idle.
		return g.waypointVector()
	}
	return dx, dy
}

// pathFollowVector keeps a path to a random goal active and walks it.
// Searches are rate-limited to repathDelay ticks; path recomputation is the
// caller's job to pace, not the engine's.
func (g *Game) pathFollowVector() (float64, float64) {
	if !g.hasPath || g.pathIndex >= len(g.path) {
		if g.sinceSearch < repathDelay {
			return 0, 0
		}
		if goal, ok := g.randomGoal(); ok {
			g.requestPath(goal)
		}
		if !g.hasPath {
			return 0, 0
		}
	}
	return g.waypointVector()
}

// waypointVector steers toward the center of the current waypoint, advancing
// to the next one on arrival.
func (g *Game) waypointVector() (float64, float64) {
	for g.pathIndex < len(g.path) {
		wp := g.path[g.pathIndex]
		tx := cellCenter(wp.X)
		ty := cellCenter(wp.Y)
		dx := tx - g.px
		dy := ty - g.py
		dist := math.Hypot(dx, dy)
		if dist > waypointReach {
			scale := moveSpeed
			if dist < moveSpeed {
				scale = dist
			}
			return dx / dist * scale, dy / dist * scale
		}
		g.pathIndex++
	}
	g.hasPath = false
	return 0, 0
}

// handleGoalClick converts a mouse click into a path request. The layout
// maps logical pixels one-to-one onto grid cells.
func (g *Game) handleGoalClick() {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	goal := nav.Point{
		X: clampCoord(mx, 0, g.grid.Width()-1),
		Y: clampCoord(my, 0, g.grid.Height()-1),
	}
	g.requestPath(goal)
}
