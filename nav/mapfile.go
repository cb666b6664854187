package nav

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Map file cell glyphs.
const (
	glyphWall  = '#'
	glyphFloor = '.'
)

// mapDocument mirrors the on-disk YAML layout of a map file.
type mapDocument struct {
	Rows  []string `yaml:"rows"`
	Spawn struct {
		X int `yaml:"x"`
		Y int `yaml:"y"`
	} `yaml:"spawn"`
	Costs struct {
		Straight      float64 `yaml:"straight"`
		Diagonal      float64 `yaml:"diagonal"`
		MaxPathLength float64 `yaml:"max_path_length"`
	} `yaml:"costs"`
}

// GridMap is a map file resolved into engine inputs: the occupancy grid,
// the suggested spawn cell, and the configuration with any cost overrides
// from the file applied.
type GridMap struct {
	Grid   *Grid
	Spawn  Point
	Config Config
}

// LoadMap reads a YAML map file and resolves it against the base
// configuration. Rows are strings of '#' (wall) and '.' (floor) glyphs; all
// rows must have equal length and the spawn must land on a floor cell.
func LoadMap(path string, base Config) (*GridMap, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseMap(b, base)
}

// ParseMap resolves raw YAML map data against the base configuration.
func ParseMap(data []byte, base Config) (*GridMap, error) {
	var doc mapDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("nav: map parse: %w", err)
	}

	cells := make([][]bool, len(doc.Rows))
	for y, row := range doc.Rows {
		cells[y] = make([]bool, len(row))
		for x, glyph := range []byte(row) {
			switch glyph {
			case glyphWall:
				cells[y][x] = true
			case glyphFloor:
			default:
				return nil, fmt.Errorf("nav: map row %d col %d: unknown glyph %q", y, x, glyph)
			}
		}
	}
	grid, err := NewGrid(cells)
	if err != nil {
		return nil, err
	}

	cfg := base.normalized()
	if doc.Costs.Straight > 0 {
		cfg.StraightCost = doc.Costs.Straight
	}
	if doc.Costs.Diagonal > 0 {
		cfg.DiagonalCost = doc.Costs.Diagonal
	}
	if doc.Costs.MaxPathLength > 0 {
		cfg.MaxPathLength = doc.Costs.MaxPathLength
	}

	spawn := Point{X: doc.Spawn.X, Y: doc.Spawn.Y}
	if !grid.Walkable(spawn.X, spawn.Y) {
		return nil, fmt.Errorf("nav: spawn (%d,%d) is not walkable", spawn.X, spawn.Y)
	}
	return &GridMap{Grid: grid, Spawn: spawn, Config: cfg}, nil
}
