// Package ioutils provides file system and image processing utilities.
//
// # File Operations
//
//	// Copy a file
//	err := ioutils.CopyFile(ctx, "/src/file.mp3", "/dst/file.mp3")
//
//	// Write data to file
//	err := ioutils.WriteFile(ctx, "/path/to/file.lrc", []byte("content"))
//
//	// Read a sidecar file, dropping invalid UTF-8
//	text, err := ioutils.ReadTextLossy("/src/file.lrc")
//
//	// Ensure directory exists
//	err := ioutils.EnsureDir("/path/to/new/directory")
//
// # Collision-free Names
//
// NameAllocator never hands out a name twice and never returns a name that
// already exists on disk:
//
//	names := ioutils.NewNameAllocator(lib.AudioDir())
//	name := names.Allocate("Artist - Title", ".mp3") // "Artist - Title_1.mp3" if taken
//
// # Image Processing
//
// The ImageService handles cover art manipulation:
//
//	svc := ioutils.NewImageService()
//
//	// Resize image to fit within 500x500
//	resized, _ := svc.ResizeImage(ctx, imageData, 500, 500)
//
//	// Convert to JPEG
//	jpeg, _ := svc.ConvertToJPEG(ctx, pngData)
package ioutils
