// Package model defines the core data structures used throughout
// the musicorg application.
//
// # Metadata
//
// Metadata is the resolved title, artist, album and duration of one audio
// file together with its provenance:
//
//	meta.ArtistSource // e.g. model.ArtistSourceTPE1, model.ArtistSourceFilename
//	meta.TitleSource  // model.TitleSourceTag, TitleSourceFilename or TitleSourceStem
//
// # Track
//
// Track is a processed file placed in the library:
//
//	track.AudioURL()     // "audio/Artist - Title.mp3"
//	track.LyricsURL()    // "lyrics/Artist - Title.lrc" or nil
//	track.PlaylistEntry() // the playlist.json object
//
// # Library
//
// Library describes the flat output layout (audio/, covers/, lyrics/,
// playlist.json) and collects the processed tracks:
//
//	lib := model.NewLibrary("/music_repo")
//	lib.AudioDir()     // "/music_repo/audio"
//	lib.ManifestPath() // "/music_repo/playlist.json"
//
// File names are built with BaseFileName and cleaned with SanitizeFileName.
package model
