package main

import "flag"

// Command-line flags that control map input, query parameters, and optional
// rendering and runtime behavior.
var (
	// mapFlag selects a YAML map file; empty generates a random level.
	mapFlag = flag.String("map", "", "YAML map file to load (empty generates a random level)")

	// watchMapFlag reloads the map file whenever it changes on disk.
	watchMapFlag = flag.Bool("watch-map", false, "reload the -map file when it changes")

	// fovDegreesFlag adjusts the field of view covered by the ray fan.
	fovDegreesFlag = flag.Float64("fov-deg", 90.0, "field of view for the ray fan (degrees)")

	// rayCountFlag sets how many rays the visualization casts per frame.
	rayCountFlag = flag.Int("rays", 180, "number of rays in the visualization fan")

	// showRaysFlag toggles drawing of the ray fan.
	showRaysFlag = flag.Bool("show-rays", true, "draw the ray fan from the player")

	// showPathFlag toggles drawing of the active path overlay.
	showPathFlag = flag.Bool("show-path", true, "draw the active path overlay")

	// autoWalkFlag makes the player path to random goals on its own.
	autoWalkFlag = flag.Bool("auto-walk", false, "follow computed paths to random goals instead of WASD input")

	// maxPathLengthFlag caps the accumulated cost of computed paths.
	maxPathLengthFlag = flag.Float64("max-path-length", 0, "path cost cap for searches (0 = unbounded)")

	// maxRayRangeFlag caps the distance of ray queries.
	maxRayRangeFlag = flag.Float64("max-ray-range", 64, "distance cap for ray queries (world units)")

	// debugFlag enables the FPS and query timing overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and query timing overlay")

	// cpuProfileFlag writes a CPU profile for the duration of the run.
	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to the given path")
)
