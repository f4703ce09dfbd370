// Package library organizes a music directory into a flat library.
//
// # Manager
//
// The Manager coordinates a run:
//
//  1. Create the output layout (audio/, covers/, lyrics/)
//  2. Scan the music directory for audio files
//  3. Build the corpus index over every file name
//  4. For each file, in order: resolve metadata, copy the audio under a
//     collision-free name, store lyrics (sidecar or fetched), look up a cover
//  5. Write playlist.json and the optional extra playlist
//
// # Basic Usage
//
//	manager := library.NewManager(settings, vocab, logger, func(event library.ProgressEvent) {
//	    fmt.Println(event.Message)
//	})
//
//	if err := manager.Initialize(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	summary, err := manager.Organize(ctx)
//
// # Failures
//
// Only Initialize can fail a run (output directory creation, scanning).
// During Organize a file that cannot be processed is reported with
// LevelError and skipped; lookup failures only mean "no lyrics" or the
// default cover.
//
// # Progress Tracking
//
// Progress is reported via a callback function that receives ProgressEvent:
//
//	type ProgressEvent struct {
//	    Message string
//	    Level   ProgressLevel // Info, Verbose, Warning, Error, Success
//	}
//
// GetProgress can be polled from another goroutine.
package library
