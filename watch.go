package main

import (
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"gridnav/nav"
)

// watchMap reloads the map file whenever it is rewritten, handing the
// parsed result to the game loop over the reloads channel. Editors often
// replace files via rename, so the watch covers the containing directory.
func (g *Game) watchMap(path string, base nav.Config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		return err
	}
	target, err := filepath.Abs(path)
	if err != nil {
		_ = watcher.Close()
		return err
	}

	go func() {
		var lastReload time.Time
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				name, err := filepath.Abs(event.Name)
				if err != nil || name != target {
					continue
				}
				now := time.Now()
				if now.Sub(lastReload) < reloadDebounce {
					continue
				}
				lastReload = now
				m, err := nav.LoadMap(path, base)
				if err != nil {
					log.Printf("Map reload failed: %v", err)
					continue
				}
				select {
				case g.reloads <- m:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("Map watcher error: %v", err)
			}
		}
	}()
	return nil
}
