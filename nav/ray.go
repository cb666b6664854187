package nav

import "math"

// CastRay marches a ray from the origin along angle until it leaves the grid,
// enters a blocked cell, or travels MaxRayRange world units. It returns both
// the fisheye-corrected distance (raw distance times cos(angle-viewAngle),
// the factor perspective renderers need to avoid bowed walls) and the raw
// Euclidean distance. Occlusion tests should use the raw value.
//
// The ray advances in fixed 1-unit steps, so thin walls crossed at shallow
// angles can be stepped over. The coarse stride is part of the query's
// contract; callers needing exact cell crossings must not rely on it.
func (e *Engine) CastRay(angle, originX, originY, viewAngle float64) (corrected, raw float64) {
	stepX := math.Cos(angle)
	stepY := math.Sin(angle)
	maxRange := e.cfg.MaxRayRange

	x, y := originX, originY
	dist := 0.0
	for dist < maxRange {
		x += stepX
		y += stepY
		dist = math.Hypot(x-originX, y-originY)
		// Truncation toward zero, not floor; the two differ for negative
		// coordinates at the map edge.
		if !e.grid.Walkable(int(x), int(y)) {
			break
		}
	}
	if dist > maxRange {
		dist = maxRange
	}
	return dist * math.Cos(angle-viewAngle), dist
}
