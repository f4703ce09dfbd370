package model

import (
	"path/filepath"
	"strings"
)

// ArtistSource records which source won when a track's artist was resolved.
type ArtistSource string

const (
	// ArtistSourceTPE1 is the MP3 lead performer frame.
	ArtistSourceTPE1 ArtistSource = "TPE1_tag"

	// ArtistSourceTPE2 is the MP3 band/album artist frame, used when TPE1 is missing.
	ArtistSourceTPE2 ArtistSource = "TPE2_tag"

	// ArtistSourceArtistTag is the artist field of a FLAC, M4A or WAV file.
	ArtistSourceArtistTag ArtistSource = "artist_tag"

	// ArtistSourceAlbumArtistTag is the album artist field of a FLAC or M4A file.
	ArtistSourceAlbumArtistTag ArtistSource = "album_artist_tag"

	// ArtistSourceFilename means the artist was inferred from the file name.
	ArtistSourceFilename ArtistSource = "filename_parse_artist"

	// ArtistSourceDefault means nothing was found and "Various Artists" was used.
	ArtistSourceDefault ArtistSource = "default"

	// ArtistSourceErrorFallback means tag extraction failed and the file
	// name was the only input.
	ArtistSourceErrorFallback ArtistSource = "error_fallback"
)

// TitleSource records which source won when a track's title was resolved.
type TitleSource string

const (
	TitleSourceTag      TitleSource = "tag"
	TitleSourceFilename TitleSource = "filename"
	TitleSourceStem     TitleSource = "stem"
)

// Metadata is the resolved description of one audio file.
//
// It is produced once per file by the resolver and is not modified
// afterwards. Duration is in whole seconds, 0 when unknown.
type Metadata struct {
	Title        string
	Artist       string
	Album        string
	Duration     int
	ArtistSource ArtistSource
	TitleSource  TitleSource
}

// Track is one audio file as it appears in the organized library.
//
// Example:
//
//	track := &Track{Source: "/in/晴天.mp3", Metadata: meta, FileName: "周杰伦 - 晴天.mp3"}
//	track.AudioURL() // "audio/周杰伦 - 晴天.mp3"
type Track struct {
	// Source is the path of the original file.
	Source string

	// Metadata is the resolved title, artist and so on.
	Metadata Metadata

	// FileName is the collision-free name under the audio directory.
	FileName string

	// LyricsFileName is the name under the lyrics directory, or empty when
	// no lyrics were found.
	LyricsFileName string

	// CoverURL is the remote cover image, or the default cover path.
	CoverURL string

	// CoverFileName is the name under the covers directory when cover art
	// was saved locally.
	CoverFileName string
}

// AudioURL returns the library-relative URL of the copied audio file.
func (t *Track) AudioURL() string {
	return AudioDirName + "/" + t.FileName
}

// LyricsURL returns the library-relative URL of the lyrics file, or nil.
func (t *Track) LyricsURL() *string {
	if t.LyricsFileName == "" {
		return nil
	}
	u := LyricsDirName + "/" + t.LyricsFileName
	return &u
}

// HasLyrics reports whether lyrics were stored for the track.
func (t *Track) HasLyrics() bool {
	return t.LyricsFileName != ""
}

// OriginalFileName returns the base name of the source file.
func (t *Track) OriginalFileName() string {
	return filepath.Base(t.Source)
}

// Stem returns the final file name without its extension.
func (t *Track) Stem() string {
	return strings.TrimSuffix(t.FileName, filepath.Ext(t.FileName))
}

// PlaylistEntry converts the track into its playlist.json object.
func (t *Track) PlaylistEntry() PlaylistEntry {
	return PlaylistEntry{
		Name:     t.Metadata.Title,
		Artist:   t.Metadata.Artist,
		URL:      t.AudioURL(),
		Cover:    t.CoverURL,
		Lrc:      t.LyricsURL(),
		Duration: t.Metadata.Duration,
	}
}

// PlaylistEntry is one object of the playlist.json manifest. The JSON keys
// are exactly name, artist, url, cover, lrc and duration; lrc is null when
// the track has no lyrics.
type PlaylistEntry struct {
	Name     string  `json:"name"`
	Artist   string  `json:"artist"`
	URL      string  `json:"url"`
	Cover    string  `json:"cover"`
	Lrc      *string `json:"lrc"`
	Duration int     `json:"duration"`
}
