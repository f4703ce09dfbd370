// Package config provides configuration management for musicorg.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Conversion to the types other packages consume
//
// # Default Settings
//
// Use DefaultSettings() to get sensible defaults:
//
//	settings := config.DefaultSettings()
//	// Reads the XDG music directory
//	// Writes to <music>/music_repo
//	// Lyrics and cover lookups enabled, 5 second timeout
//
// # Loading from File
//
//	path, _ := config.DefaultPath() // ~/.config/musicorg/config.json
//	settings, err := config.Load(path)
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Saving Settings
//
//	settings.OutputDir = "/srv/www/music"
//	err := settings.Save(path)
//
// # Configuration Options
//
// Settings includes options for:
//   - Input directory, output directory and audio extensions
//   - Lyric and cover service endpoints, timeout and User-Agent
//   - Sidecar lyrics preference
//   - Local cover art saving, resizing and conversion
//   - Extra playlist generation
//   - The heuristics vocabulary file
package config
