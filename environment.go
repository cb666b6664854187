package main

import (
	"math/rand"

	"gridnav/nav"
)

// generateLevel procedurally creates a bordered level with random wall
// segments and resolves it into engine inputs. The area around the spawn
// cell is kept clear so the player never starts inside a wall.
func generateLevel(rng *rand.Rand, cfg nav.Config) (*nav.GridMap, error) {
	width, height := defaultGridW, defaultGridH
	cells := make([][]bool, height)
	for y := range cells {
		cells[y] = make([]bool, width)
		cells[y][0] = true
		cells[y][width-1] = true
	}
	for x := 0; x < width; x++ {
		cells[0][x] = true
		cells[height-1][x] = true
	}

	spawn := nav.Point{X: width / 2, Y: height / 2}
	for s := 0; s < wallSegments; s++ {
		lengthRange := wallMaxLen - wallMinLen + 1
		if lengthRange <= 0 {
			lengthRange = 1
		}
		length := wallMinLen + rng.Intn(lengthRange)
		thickness := 0
		if wallThicknessVariance > 0 {
			thickness = rng.Intn(wallThicknessVariance + 1)
		}
		horizontal := rng.Intn(2) == 0
		x := rng.Intn(width-4) + 2
		y := rng.Intn(height-4) + 2
		dx, dy := 0, 1
		if horizontal {
			dx, dy = 1, 0
		}
		perpX, perpY := dy, dx
		cx, cy := x, y
		for l := 0; l < length; l++ {
			if cx <= 1 || cx >= width-1 || cy <= 1 || cy >= height-1 {
				break
			}
			for t := -thickness; t <= thickness; t++ {
				trySetWall(cells, cx+perpX*t, cy+perpY*t, spawn)
			}
			cx += dx
			cy += dy
		}
	}

	grid, err := nav.NewGrid(cells)
	if err != nil {
		return nil, err
	}
	return &nav.GridMap{Grid: grid, Spawn: spawn, Config: cfg}, nil
}

// trySetWall marks a cell as a wall while enforcing spacing from the spawn.
func trySetWall(cells [][]bool, x, y int, spawn nav.Point) {
	height := len(cells)
	width := len(cells[0])
	if x <= 1 || x >= width-1 || y <= 1 || y >= height-1 {
		return
	}
	dx := x - spawn.X
	dy := y - spawn.Y
	if dx*dx+dy*dy < wallExclusionRadius*wallExclusionRadius {
		return
	}
	cells[y][x] = true
}
