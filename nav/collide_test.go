package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollidesOpenArea(t *testing.T) {
	e := NewEngine(openGrid(t, 10, 10), DefaultConfig())
	assert.False(t, e.Collides(5, 5, 0.45))
}

func TestCollidesNearWall(t *testing.T) {
	g := mustGrid(t,
		".....",
		".....",
		"..#..",
		".....",
		".....",
	)
	e := NewEngine(g, DefaultConfig())

	// Footprint centered one cell left of the wall: the +x sample at
	// floor(1.5+0.6)=2 lands in the blocked cell.
	assert.True(t, e.Collides(1.5, 2.5, 0.6))

	// A smaller radius keeps every sample on floor cells.
	assert.False(t, e.Collides(1.4, 2.5, 0.4))
}

func TestCollidesOutOfBounds(t *testing.T) {
	e := NewEngine(openGrid(t, 4, 4), DefaultConfig())

	// Samples beyond the edge count as blocked.
	assert.True(t, e.Collides(0.2, 2, 0.5))
	assert.True(t, e.Collides(3.9, 2, 0.5))
	assert.True(t, e.Collides(-2, -2, 0.5))
}

func TestCollidesZeroRadius(t *testing.T) {
	g := mustGrid(t,
		"...",
		".#.",
		"...",
	)
	e := NewEngine(g, DefaultConfig())

	// All nine samples collapse onto the center cell.
	assert.True(t, e.Collides(1.5, 1.5, 0))
	assert.False(t, e.Collides(0.5, 0.5, 0))
}
