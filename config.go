package main

import "time"

// Demo application constants: grid sizing for generated levels, movement
// tuning, and timing for path recomputation and map reloads.
const (
	defaultGridW, defaultGridH = 96, 96
	windowScale                = 8
	moveSpeed                  = 0.18
	playerRadius               = 0.45
	waypointReach              = 0.2
	repathDelay                = 6
	goalRetryLimit             = 32
	wallSegments               = 14
	wallMinLen                 = 6
	wallMaxLen                 = 28
	wallExclusionRadius        = 3
	wallThicknessVariance      = 1
	reloadDebounce             = 100 * time.Millisecond
)
