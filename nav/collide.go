package nav

import "math"

// probeOffset is one sample direction of the circular collision footprint.
type probeOffset struct {
	dx int
	dy int
}

// probeOffsets holds the fixed 3x3 sample pattern: the center plus the 8
// surrounding directions, each scaled by the probe radius.
var probeOffsets = precomputeProbeOffsets()

func precomputeProbeOffsets() []probeOffset {
	offsets := make([]probeOffset, 0, 9)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			offsets = append(offsets, probeOffset{dx: dx, dy: dy})
		}
	}
	return offsets
}

// Collides reports whether a circular footprint of the given radius centered
// at the world position overlaps any blocked cell. The footprint is sampled
// at nine fixed offsets rather than swept geometrically; the coarse pattern
// trades exactness for a cheap constant-time probe. Cells outside the grid
// count as blocked.
func (e *Engine) Collides(worldX, worldY, radius float64) bool {
	for _, o := range probeOffsets {
		cx := int(math.Floor(worldX + float64(o.dx)*radius))
		cy := int(math.Floor(worldY + float64(o.dy)*radius))
		if !e.grid.Walkable(cx, cy) {
			return true
		}
	}
	return false
}
