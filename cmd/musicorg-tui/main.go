package main

import (
	"fmt"
	"os"

	"github.com/handiism/musicorg/internal/config"
	"github.com/handiism/musicorg/internal/tui"
)

func main() {
	settings := config.DefaultSettings()
	if path, err := config.DefaultPath(); err == nil {
		if loaded, err := config.Load(path); err == nil {
			settings = loaded
		} else {
			fmt.Fprintf(os.Stderr, "Error loading config, using defaults: %v\n", err)
		}
	}

	if err := tui.Run(settings); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
