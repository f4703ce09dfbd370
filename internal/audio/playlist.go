package audio

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/handiism/musicorg/internal/model"
)

// manifestJSON writes non-ASCII text as-is and does not escape HTML
// characters, so titles like "晴天 <Live>" survive unchanged.
var manifestJSON = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// CreateManifest renders the playlist.json content for a library: a JSON
// array of {name, artist, url, cover, lrc, duration} objects with two-space
// indentation, terminated by a newline.
//
// An empty library yields "[]".
func CreateManifest(lib *model.Library) ([]byte, error) {
	data, err := manifestJSON.MarshalIndent(lib.Entries(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return append(data, '\n'), nil
}

// ParseManifest decodes playlist.json content.
func ParseManifest(data []byte) ([]model.PlaylistEntry, error) {
	var entries []model.PlaylistEntry
	if err := manifestJSON.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}
	return entries, nil
}

// PlaylistCreator generates playlist files in various formats.
//
// Each format has different features and compatibility:
//   - M3U: Simple text format, widely supported
//   - PLS: INI-style format, used by Winamp
//   - WPL: XML format, Windows Media Player
//   - ZPL: XML format, Zune/Groove Music
//
// Entries point into the library's audio directory, relative to the library
// root where the playlist file is written.
//
// Example:
//
//	// Create M3U playlist with extended info
//	creator := NewPlaylistCreator(model.PlaylistFormatM3U, true)
//	content := creator.CreatePlaylist(lib)
//	os.WriteFile(lib.PlaylistPath(model.PlaylistFormatM3U), []byte(content), 0644)
//
//	// Result:
//	// #EXTM3U
//	// #EXTINF:269,周杰伦 - 晴天
//	// audio/周杰伦 - 晴天.mp3
type PlaylistCreator struct {
	format   model.PlaylistFormat
	extended bool // For M3U: include EXTINF lines with duration/title
}

// NewPlaylistCreator creates a new PlaylistCreator.
//
// Parameters:
//   - format: The playlist format to generate
//   - extended: For M3U format, whether to include #EXTINF lines
//     (ignored for other formats)
func NewPlaylistCreator(format model.PlaylistFormat, extended bool) *PlaylistCreator {
	return &PlaylistCreator{
		format:   format,
		extended: extended,
	}
}

// CreatePlaylist generates playlist content for a library.
//
// Returns the playlist as a string, ready to be written to a file.
// Unknown formats fall back to M3U.
func (p *PlaylistCreator) CreatePlaylist(lib *model.Library) string {
	switch p.format {
	case model.PlaylistFormatPLS:
		return p.createPLS(lib)
	case model.PlaylistFormatWPL:
		return p.createWPL(lib)
	case model.PlaylistFormatZPL:
		return p.createZPL(lib)
	default:
		return p.createM3U(lib)
	}
}

// createM3U generates an M3U playlist.
//
// Standard M3U format:
//
//	audio/filename1.mp3
//	audio/filename2.mp3
//
// Extended M3U format (when extended=true):
//
//	#EXTM3U
//	#EXTINF:180,Artist - Title
//	audio/filename1.mp3
func (p *PlaylistCreator) createM3U(lib *model.Library) string {
	var sb strings.Builder

	if p.extended {
		sb.WriteString("#EXTM3U\n")
	}

	for _, track := range lib.Tracks {
		if p.extended {
			sb.WriteString(fmt.Sprintf("#EXTINF:%d,%s - %s\n", track.Metadata.Duration, track.Metadata.Artist, track.Metadata.Title))
		}
		sb.WriteString(track.AudioURL() + "\n")
	}

	return sb.String()
}

// createPLS generates a PLS playlist.
//
// PLS format is an INI-style text file:
//
//	[playlist]
//	File1=audio/filename1.mp3
//	Title1=Artist - Song Title
//	Length1=180
//	NumberOfEntries=2
//	Version=2
func (p *PlaylistCreator) createPLS(lib *model.Library) string {
	var sb strings.Builder

	sb.WriteString("[playlist]\n")

	for i, track := range lib.Tracks {
		idx := i + 1
		sb.WriteString(fmt.Sprintf("File%d=%s\n", idx, track.AudioURL()))
		sb.WriteString(fmt.Sprintf("Title%d=%s - %s\n", idx, track.Metadata.Artist, track.Metadata.Title))
		sb.WriteString(fmt.Sprintf("Length%d=%d\n", idx, track.Metadata.Duration))
	}

	sb.WriteString(fmt.Sprintf("NumberOfEntries=%d\n", len(lib.Tracks)))
	sb.WriteString("Version=2\n")

	return sb.String()
}

// createWPL generates a Windows Media Player playlist.
//
// WPL is an XML-based SMIL format used by Windows Media Player.
func (p *PlaylistCreator) createWPL(lib *model.Library) string {
	var sb strings.Builder

	sb.WriteString("<?wpl version=\"1.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString("    <title>musicorg</title>\n")
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, track := range lib.Tracks {
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\"/>\n", escapeXML(track.AudioURL())))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// createZPL generates a Zune/Groove Music playlist.
//
// ZPL is similar to WPL but includes additional metadata attributes
// like album title, artist, and track duration.
func (p *PlaylistCreator) createZPL(lib *model.Library) string {
	var sb strings.Builder

	sb.WriteString("<?zpl version=\"2.0\"?>\n")
	sb.WriteString("<smil>\n")
	sb.WriteString("  <head>\n")
	sb.WriteString("    <title>musicorg</title>\n")
	sb.WriteString("    <meta name=\"Generator\" content=\"musicorg\"/>\n")
	sb.WriteString(fmt.Sprintf("    <meta name=\"ItemCount\" content=\"%d\"/>\n", len(lib.Tracks)))
	sb.WriteString("  </head>\n")
	sb.WriteString("  <body>\n")
	sb.WriteString("    <seq>\n")

	for _, track := range lib.Tracks {
		meta := track.Metadata
		sb.WriteString(fmt.Sprintf("      <media src=\"%s\" albumTitle=\"%s\" trackTitle=\"%s\" trackArtist=\"%s\" duration=\"%d\"/>\n",
			escapeXML(track.AudioURL()),
			escapeXML(meta.Album),
			escapeXML(meta.Title),
			escapeXML(meta.Artist),
			meta.Duration*1000))
	}

	sb.WriteString("    </seq>\n")
	sb.WriteString("  </body>\n")
	sb.WriteString("</smil>\n")

	return sb.String()
}

// escapeXML escapes special XML characters in a string.
//
// Replaces: & < > " '
// With:     &amp; &lt; &gt; &quot; &apos;
func escapeXML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, "\"", "&quot;")
	s = strings.ReplaceAll(s, "'", "&apos;")
	return s
}
