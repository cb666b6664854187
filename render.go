package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw renders the grid, the ray fan, the active path, and the player and
// goal markers.
func (g *Game) Draw(screen *ebiten.Image) {
	width := g.grid.Width()
	height := g.grid.Height()
	if len(g.pixels) == width*height*4 {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				base := (y*width + x) * 4
				if g.grid.Walkable(x, y) {
					g.pixels[base] = 16
					g.pixels[base+1] = 16
					g.pixels[base+2] = 20
				} else {
					g.pixels[base] = 30
					g.pixels[base+1] = 40
					g.pixels[base+2] = 80
				}
				g.pixels[base+3] = 255
			}
		}
		screen.WritePixels(g.pixels)
	}

	if *showRaysFlag {
		g.drawRayFan(screen)
	}
	if *showPathFlag && g.hasPath {
		g.drawPathOverlay(screen)
	}

	px := int(g.px)
	py := int(g.py)
	for y := -1; y <= 1; y++ {
		for x := -1; x <= 1; x++ {
			cx := clampCoord(px+x, 0, width-1)
			cy := clampCoord(py+y, 0, height-1)
			screen.Set(cx, cy, color.RGBA{255, 0, 0, 255})
		}
	}
	if g.hasPath {
		gx := clampCoord(g.goal.X, 0, width-1)
		gy := clampCoord(g.goal.Y, 0, height-1)
		screen.Set(gx, gy, color.RGBA{255, 0, 255, 255})
	}

	if *debugFlag {
		fps := ebiten.ActualFPS()
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		waypoints := len(g.path) - g.pathIndex
		if !g.hasPath {
			waypoints = 0
		}
		debugMsg := fmt.Sprintf("FPS: %.1f (%.1f TPS)\nRays: %d\nSearch: %s (hit %v, total %d)\nWaypoints left: %d",
			fps, tps, g.rayCount, g.lastSearch, g.lastSearchHit, g.searchAttempts, waypoints)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the logical screen size, one pixel per grid cell.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.grid.Width(), g.grid.Height()
}

// drawRayFan plots each ray from the player to its hit point. Line length
// uses the raw Euclidean distance; shading uses the corrected one, dimming
// rays toward the edge of the fan the way a renderer would.
func (g *Game) drawRayFan(screen *ebiten.Image) {
	maxRange := g.engine.Config().MaxRayRange
	for i, angle := range g.rayAngles {
		raw := g.rayRaw[i]
		hx := g.px + math.Cos(angle)*raw
		hy := g.py + math.Sin(angle)*raw
		shade := 1.0
		if maxRange > 0 {
			shade = math.Abs(g.rayCorrected[i]) / maxRange
		}
		level := uint8(60 + 120*shade)
		drawLine(screen, int(g.px), int(g.py), int(hx), int(hy), color.RGBA{level, level, 40, 90})
	}
}

// drawPathOverlay connects the remaining waypoints from the player onward.
func (g *Game) drawPathOverlay(screen *ebiten.Image) {
	x0 := int(g.px)
	y0 := int(g.py)
	for i := g.pathIndex; i < len(g.path); i++ {
		x1 := int(cellCenter(g.path[i].X))
		y1 := int(cellCenter(g.path[i].Y))
		drawLine(screen, x0, y0, x1, y1, color.RGBA{0, 255, 120, 200})
		x0, y0 = x1, y1
	}
}

// drawLine plots a line segment using Bresenham's integer algorithm.
func drawLine(screen *ebiten.Image, x0, y0, x1, y1 int, clr color.Color) {
	bounds := screen.Bounds()
	dx := int(math.Abs(float64(x1 - x0)))
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -int(math.Abs(float64(y1 - y0)))
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		if x0 >= bounds.Min.X && x0 < bounds.Max.X && y0 >= bounds.Min.Y && y0 < bounds.Max.Y {
			screen.Set(x0, y0, clr)
		}
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
