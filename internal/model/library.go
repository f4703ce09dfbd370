package model

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// Directory and file names of an organized library.
const (
	AudioDirName     = "audio"
	CoversDirName    = "covers"
	LyricsDirName    = "lyrics"
	ManifestFileName = "playlist.json"

	// PlaylistBaseName is the file name, without extension, of the optional
	// extra playlist written next to the manifest.
	PlaylistBaseName = "playlist"

	// UntitledFileName replaces a base file name that sanitizes to nothing.
	UntitledFileName = "untitled"
)

// MaxFileNameLength is the maximum length, in characters, of one sanitized
// name component.
const MaxFileNameLength = 100

// Library is the flat output tree:
//
//	<root>/
//	    audio/          copied audio files
//	    covers/         local cover art (optional)
//	    lyrics/         .lrc files
//	    playlist.json   manifest
//
// Tracks holds the successfully processed files in processing order.
type Library struct {
	Root   string
	Tracks []*Track
}

// NewLibrary creates an empty Library rooted at root.
func NewLibrary(root string) *Library {
	return &Library{Root: root}
}

// Add appends a processed track.
func (l *Library) Add(t *Track) {
	l.Tracks = append(l.Tracks, t)
}

// AudioDir returns the directory audio files are copied into.
func (l *Library) AudioDir() string {
	return filepath.Join(l.Root, AudioDirName)
}

// CoversDir returns the directory local cover art is saved into.
func (l *Library) CoversDir() string {
	return filepath.Join(l.Root, CoversDirName)
}

// LyricsDir returns the directory .lrc files are written into.
func (l *Library) LyricsDir() string {
	return filepath.Join(l.Root, LyricsDirName)
}

// Dirs returns every directory of the layout.
func (l *Library) Dirs() []string {
	return []string{l.AudioDir(), l.CoversDir(), l.LyricsDir()}
}

// ManifestPath returns the path of playlist.json.
func (l *Library) ManifestPath() string {
	return filepath.Join(l.Root, ManifestFileName)
}

// PlaylistPath returns the path of the extra playlist in the given format.
func (l *Library) PlaylistPath(format PlaylistFormat) string {
	return filepath.Join(l.Root, PlaylistBaseName+format.Extension())
}

// Entries returns the manifest objects of all tracks.
func (l *Library) Entries() []PlaylistEntry {
	entries := make([]PlaylistEntry, 0, len(l.Tracks))
	for _, t := range l.Tracks {
		entries = append(entries, t.PlaylistEntry())
	}
	return entries
}

// PlaylistFormat represents supported extra playlist file formats.
type PlaylistFormat int

const (
	// PlaylistFormatNone writes no extra playlist.
	PlaylistFormatNone PlaylistFormat = iota

	// PlaylistFormatM3U creates .m3u playlist files (most widely supported).
	PlaylistFormatM3U

	// PlaylistFormatPLS creates .pls playlist files (used by Winamp).
	PlaylistFormatPLS

	// PlaylistFormatWPL creates .wpl playlist files (Windows Media Player).
	PlaylistFormatWPL

	// PlaylistFormatZPL creates .zpl playlist files (Zune Media Player).
	PlaylistFormatZPL
)

// Extension returns the file extension for the playlist format, including the dot.
//
// Returns:
//   - ".m3u" for PlaylistFormatM3U
//   - ".pls" for PlaylistFormatPLS
//   - ".wpl" for PlaylistFormatWPL
//   - ".zpl" for PlaylistFormatZPL
//   - "" for PlaylistFormatNone
func (pf PlaylistFormat) Extension() string {
	switch pf {
	case PlaylistFormatM3U:
		return ".m3u"
	case PlaylistFormatPLS:
		return ".pls"
	case PlaylistFormatWPL:
		return ".wpl"
	case PlaylistFormatZPL:
		return ".zpl"
	default:
		return ""
	}
}

// String returns the settings name of the format ("m3u", "pls", ...), or ""
// for PlaylistFormatNone.
func (pf PlaylistFormat) String() string {
	return strings.TrimPrefix(pf.Extension(), ".")
}

// ParsePlaylistFormat converts a settings value into a PlaylistFormat.
// Matching ignores case and a leading dot; "" and "none" mean no playlist.
func ParsePlaylistFormat(s string) (PlaylistFormat, bool) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "", "none":
		return PlaylistFormatNone, true
	case "m3u":
		return PlaylistFormatM3U, true
	case "pls":
		return PlaylistFormatPLS, true
	case "wpl":
		return PlaylistFormatWPL, true
	case "zpl":
		return PlaylistFormatZPL, true
	default:
		return PlaylistFormatNone, false
	}
}

var invalidFileNameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

// SanitizeFileName removes characters that are invalid in file names on
// common filesystems.
//
// The following transformations are applied:
//   - Invalid characters (<>:"/\|?* and Unicode control characters) are removed
//   - The result is truncated to MaxFileNameLength characters
//   - Leading and trailing whitespace is removed
//
// Example:
//
//	SanitizeFileName("AC/DC: Live?") // Returns "ACDC Live"
func SanitizeFileName(name string) string {
	name = invalidFileNameChars.ReplaceAllString(name, "")
	name = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, name)
	return truncateFileName(name)
}

// truncateFileName cuts name to MaxFileNameLength characters and trims
// surrounding whitespace.
func truncateFileName(name string) string {
	if r := []rune(name); len(r) > MaxFileNameLength {
		name = string(r[:MaxFileNameLength])
	}
	return strings.TrimSpace(name)
}

// BaseFileName builds the output file name (without extension) for a
// resolved track: "{artist} - {title}", or just "{title}" when the artist is
// the various-artists sentinel. Both parts are sanitized separately and the
// joined name is held to MaxFileNameLength characters.
func BaseFileName(artist, title, variousArtists string) string {
	base := SanitizeFileName(title)
	if artist != variousArtists {
		base = truncateFileName(SanitizeFileName(artist) + " - " + base)
		base = strings.TrimSpace(strings.TrimSuffix(base, " -"))
	}
	if base == "" || base == "-" {
		return UntitledFileName
	}
	return base
}
