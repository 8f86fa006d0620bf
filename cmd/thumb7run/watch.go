package main

import (
	"fmt"
	"os"
	"time"

	"github.com/northfield-labs/thumb7/internal/coreerr"
)

const watchPollInterval = 500 * time.Millisecond

// watchAndRun reruns the image at cfg.imagePath every time its modification
// time changes, until stop is closed. There is no filesystem-event library
// in play here — see DESIGN.md — so this is a plain stdlib mtime poll.
func watchAndRun(cfg config, stop <-chan struct{}) error {
	var lastMod time.Time

	ticker := time.NewTicker(watchPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return nil
		case <-ticker.C:
			info, err := os.Stat(cfg.imagePath)
			if err != nil {
				return coreerr.Errorf("watch", "stat %s: %w", cfg.imagePath, err)
			}
			if !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()

			image, err := loadImage(cfg.imagePath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "thumb7run: %v\n", err)
				continue
			}
			trap, core, err := runImage(cfg, image)
			if err != nil {
				fmt.Fprintf(os.Stderr, "thumb7run: %v\n", err)
				continue
			}
			reportRun(trap, core)
		}
	}
}
