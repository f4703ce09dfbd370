package model

import (
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"normal-file.mp3", "normal-file.mp3"},
		{"file:with:colons.mp3", "filewithcolons.mp3"},
		{"file<with>brackets.mp3", "filewithbrackets.mp3"},
		{"file/with\\slashes.mp3", "filewithslashes.mp3"},
		{"file|with|pipes.mp3", "filewithpipes.mp3"},
		{"file?with*wildcards.mp3", "filewithwildcards.mp3"},
		{"file\"with\"quotes.mp3", "filewithquotes.mp3"},
		{"tab\tand\nnewline", "tabandnewline"},
		{"  spaced  ", "spaced"},
		{"周杰伦 - 晴天", "周杰伦 - 晴天"},
		{"x\x7fy\u0085z", "xyz"},
		{"bidi\u200eok", "bidi\u200eok"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := SanitizeFileName(tt.input)
			if got != tt.want {
				t.Errorf("SanitizeFileName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitizeFileName_Truncates(t *testing.T) {
	input := "a/b\x01" + strings.Repeat("晴", 150)
	got := SanitizeFileName(input)

	if n := utf8.RuneCountInString(got); n > MaxFileNameLength {
		t.Errorf("length = %d, want <= %d", n, MaxFileNameLength)
	}
	if strings.ContainsAny(got, "<>:\"/\\|?*\x01") {
		t.Errorf("SanitizeFileName left illegal characters in %q", got)
	}
	if !utf8.ValidString(got) {
		t.Error("truncation split a character")
	}
}

func TestBaseFileName_LimitsJoinedName(t *testing.T) {
	artist := strings.Repeat("周", 90)
	title := strings.Repeat("晴", 90)

	got := BaseFileName(artist, title, "Various Artists")
	if n := utf8.RuneCountInString(got); n != MaxFileNameLength {
		t.Errorf("length = %d, want %d", n, MaxFileNameLength)
	}
	if !strings.HasPrefix(got, artist+" - 晴") {
		t.Errorf("BaseFileName() = %q, want the artist prefix kept", got)
	}

	// A cut right after the separator leaves no dangling dash.
	got = BaseFileName(strings.Repeat("a", 98), "Song", "Various Artists")
	if got != strings.Repeat("a", 98) {
		t.Errorf("BaseFileName() = %q, want the bare artist", got)
	}
}

func TestBaseFileName(t *testing.T) {
	tests := []struct {
		artist, title string
		want          string
	}{
		{"周杰伦", "晴天", "周杰伦 - 晴天"},
		{"Various Artists", "晴天", "晴天"},
		{"AC/DC", "Back In Black?", "ACDC - Back In Black"},
		{"Various Artists", "???", UntitledFileName},
		{"", "", UntitledFileName},
	}

	for _, tt := range tests {
		if got := BaseFileName(tt.artist, tt.title, "Various Artists"); got != tt.want {
			t.Errorf("BaseFileName(%q, %q) = %q, want %q", tt.artist, tt.title, got, tt.want)
		}
	}
}

func TestLibrary_Paths(t *testing.T) {
	lib := NewLibrary("/out")

	if lib.AudioDir() != filepath.Join("/out", "audio") {
		t.Errorf("AudioDir() = %q", lib.AudioDir())
	}
	if lib.ManifestPath() != filepath.Join("/out", "playlist.json") {
		t.Errorf("ManifestPath() = %q", lib.ManifestPath())
	}
	if got := lib.PlaylistPath(PlaylistFormatPLS); got != filepath.Join("/out", "playlist.pls") {
		t.Errorf("PlaylistPath(PLS) = %q", got)
	}
	if len(lib.Dirs()) != 3 {
		t.Errorf("Dirs() = %v, want 3 directories", lib.Dirs())
	}
}

func TestTrack_PlaylistEntry(t *testing.T) {
	track := &Track{
		Source:   "/in/sub/01 晴天.MP3",
		Metadata: Metadata{Title: "晴天", Artist: "周杰伦", Duration: 269},
		FileName: "周杰伦 - 晴天.mp3",
		CoverURL: "/music/default_cover.jpg",
	}

	entry := track.PlaylistEntry()
	if entry.URL != "audio/周杰伦 - 晴天.mp3" {
		t.Errorf("URL = %q", entry.URL)
	}
	if entry.Lrc != nil {
		t.Errorf("Lrc = %q, want nil", *entry.Lrc)
	}
	if entry.Duration != 269 {
		t.Errorf("Duration = %d, want 269", entry.Duration)
	}
	if track.OriginalFileName() != "01 晴天.MP3" {
		t.Errorf("OriginalFileName() = %q", track.OriginalFileName())
	}

	track.LyricsFileName = track.Stem() + ".lrc"
	entry = track.PlaylistEntry()
	if entry.Lrc == nil || *entry.Lrc != "lyrics/周杰伦 - 晴天.lrc" {
		t.Errorf("Lrc = %v, want lyrics/周杰伦 - 晴天.lrc", entry.Lrc)
	}
}

func TestPlaylistFormat_Extension(t *testing.T) {
	tests := []struct {
		format PlaylistFormat
		want   string
	}{
		{PlaylistFormatM3U, ".m3u"},
		{PlaylistFormatPLS, ".pls"},
		{PlaylistFormatWPL, ".wpl"},
		{PlaylistFormatZPL, ".zpl"},
		{PlaylistFormatNone, ""},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.Extension(); got != tt.want {
				t.Errorf("Extension() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePlaylistFormat(t *testing.T) {
	tests := []struct {
		input  string
		want   PlaylistFormat
		wantOK bool
	}{
		{"", PlaylistFormatNone, true},
		{"none", PlaylistFormatNone, true},
		{"M3U", PlaylistFormatM3U, true},
		{".pls", PlaylistFormatPLS, true},
		{"wpl", PlaylistFormatWPL, true},
		{"zpl", PlaylistFormatZPL, true},
		{"xspf", PlaylistFormatNone, false},
	}

	for _, tt := range tests {
		got, ok := ParsePlaylistFormat(tt.input)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParsePlaylistFormat(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}
