package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"gridnav/nav"
)

func main() {
	flag.Parse()

	if *cpuProfileFlag != "" {
		stop, err := startCPUProfile(*cpuProfileFlag)
		if err != nil {
			log.Fatalf("CPU profile failed: %v", err)
		}
		defer stop()
	}

	cfg := nav.DefaultConfig()
	cfg.MaxPathLength = *maxPathLengthFlag
	cfg.MaxRayRange = *maxRayRangeFlag

	var m *nav.GridMap
	var err error
	if *mapFlag != "" {
		m, err = nav.LoadMap(*mapFlag, cfg)
		if err != nil {
			log.Fatalf("Map load failed: %v", err)
		}
		log.Printf("Loaded map %s (%dx%d)", *mapFlag, m.Grid.Width(), m.Grid.Height())
	} else {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		m, err = generateLevel(rng, cfg)
		if err != nil {
			log.Fatalf("Level generation failed: %v", err)
		}
	}

	g := newGame(m)
	if *mapFlag != "" && *watchMapFlag {
		if err := g.watchMap(*mapFlag, cfg); err != nil {
			log.Fatalf("Map watch failed: %v", err)
		}
	}

	ebiten.SetWindowSize(m.Grid.Width()*windowScale, m.Grid.Height()*windowScale)
	ebiten.SetWindowTitle("Grid Spatial Queries")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
