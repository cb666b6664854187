package main

import "math"

// rayBand is the contiguous range of ray indices assigned to one worker.
type rayBand struct{ start, end int }

// assignRayBands splits the fan into near-equal contiguous bands.
func assignRayBands(workerCount, rayCount int) []rayBand {
	if workerCount < 1 {
		workerCount = 1
	}
	bands := make([]rayBand, workerCount)
	per := (rayCount + workerCount - 1) / workerCount
	for i := range bands {
		start := i * per
		end := start + per
		if start > rayCount {
			start = rayCount
		}
		if end > rayCount {
			end = rayCount
		}
		bands[i] = rayBand{start: start, end: end}
	}
	return bands
}

// rayWorkerLoop casts the rays assigned to the worker each time the fan is
// stepped. Bands are disjoint, so workers write to distinct slice ranges.
func (g *Game) rayWorkerLoop(index int) {
	lastStep := 0
	g.workerMu.Lock()
	for {
		for g.workerStep == lastStep {
			g.workerCond.Wait()
		}
		lastStep = g.workerStep
		var band rayBand
		if index < len(g.rayBands) {
			band = g.rayBands[index]
		}
		engine := g.engine
		ox, oy, view := g.px, g.py, g.viewAngle
		angles := g.rayAngles
		corrected := g.rayCorrected
		raw := g.rayRaw
		g.workerMu.Unlock()

		for i := band.start; i < band.end; i++ {
			corrected[i], raw[i] = engine.CastRay(angles[i], ox, oy, view)
		}

		g.workerMu.Lock()
		g.workerPending--
		if g.workerPending == 0 {
			g.workerCond.Broadcast()
		}
	}
}

// castRayFan recomputes the fan across the field of view, fanning the work
// out to the worker goroutines and waiting for completion.
func (g *Game) castRayFan() {
	fovDeg := *fovDegreesFlag
	if fovDeg < 1 {
		fovDeg = 1
	} else if fovDeg > 180 {
		fovDeg = 180
	}
	fov := fovDeg * math.Pi / 180.0

	g.workerMu.Lock()
	for i := range g.rayAngles {
		frac := 0.5
		if g.rayCount > 1 {
			frac = float64(i) / float64(g.rayCount-1)
		}
		g.rayAngles[i] = g.viewAngle - fov/2 + frac*fov
	}
	g.rayBands = assignRayBands(g.workerCount, g.rayCount)
	g.workerPending = g.workerCount
	g.workerStep++
	g.workerCond.Broadcast()
	for g.workerPending > 0 {
		g.workerCond.Wait()
	}
	g.workerMu.Unlock()
}

// startWorkers launches the background goroutines that cast the ray fan.
func (g *Game) startWorkers() {
	if g.workersStarted {
		return
	}
	if g.workerCount < 1 {
		g.workerCount = 1
	}
	g.workersStarted = true
	for i := 0; i < g.workerCount; i++ {
		go g.rayWorkerLoop(i)
	}
}
