package main

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// cellCenter returns the world-space center of a grid cell.
func cellCenter(c int) float64 {
	return float64(c) + 0.5
}
