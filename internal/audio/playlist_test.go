package audio

import (
	"strings"
	"testing"

	"github.com/handiism/musicorg/internal/model"
)

func TestCreateManifest(t *testing.T) {
	lib := createTestLibrary()

	data, err := CreateManifest(lib)
	if err != nil {
		t.Fatalf("CreateManifest() error = %v", err)
	}
	content := string(data)

	if !strings.Contains(content, `"name": "晴天"`) {
		t.Errorf("manifest should keep non-ASCII text unescaped:\n%s", content)
	}
	if !strings.Contains(content, "\n  {\n    \"name\"") {
		t.Errorf("manifest should use two-space indentation:\n%s", content)
	}
	if !strings.Contains(content, `"lrc": null`) {
		t.Errorf("track without lyrics should have lrc null:\n%s", content)
	}
	if !strings.Contains(content, `"name": "Rock <Live> & More"`) {
		t.Errorf("manifest should not HTML-escape:\n%s", content)
	}
}

func TestManifest_RoundTrip(t *testing.T) {
	lib := createTestLibrary()

	data, err := CreateManifest(lib)
	if err != nil {
		t.Fatal(err)
	}

	var raw []map[string]any
	if err := manifestJSON.Unmarshal(data, &raw); err != nil {
		t.Fatalf("manifest is not a JSON array of objects: %v", err)
	}
	if len(raw) != len(lib.Tracks) {
		t.Fatalf("got %d entries, want %d", len(raw), len(lib.Tracks))
	}

	wantKeys := []string{"name", "artist", "url", "cover", "lrc", "duration"}
	for i, obj := range raw {
		if len(obj) != len(wantKeys) {
			t.Errorf("entry %d has keys %v, want exactly %v", i, obj, wantKeys)
		}
		for _, k := range wantKeys {
			if _, ok := obj[k]; !ok {
				t.Errorf("entry %d is missing key %q", i, k)
			}
		}
	}

	entries, err := ParseManifest(data)
	if err != nil {
		t.Fatalf("ParseManifest() error = %v", err)
	}
	if entries[0].URL != "audio/周杰伦 - 晴天.mp3" {
		t.Errorf("entries[0].URL = %q", entries[0].URL)
	}
	if entries[0].Lrc == nil || *entries[0].Lrc != "lyrics/周杰伦 - 晴天.lrc" {
		t.Errorf("entries[0].Lrc = %v", entries[0].Lrc)
	}
	if entries[1].Duration != 200 {
		t.Errorf("entries[1].Duration = %d, want 200", entries[1].Duration)
	}
}

func TestCreateManifest_Empty(t *testing.T) {
	data, err := CreateManifest(model.NewLibrary(t.TempDir()))
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(string(data)) != "[]" {
		t.Errorf("empty manifest = %q, want []", data)
	}
}

func TestPlaylistCreator_M3U(t *testing.T) {
	lib := createTestLibrary()
	creator := NewPlaylistCreator(model.PlaylistFormatM3U, false)

	content := creator.CreatePlaylist(lib)

	if !strings.Contains(content, "audio/周杰伦 - 晴天.mp3\n") {
		t.Error("M3U should contain track path relative to the library root")
	}
	if strings.Contains(content, "#EXTINF") {
		t.Error("plain M3U should not contain #EXTINF")
	}
}

func TestPlaylistCreator_M3UExtended(t *testing.T) {
	lib := createTestLibrary()
	creator := NewPlaylistCreator(model.PlaylistFormatM3U, true)

	content := creator.CreatePlaylist(lib)

	if !strings.HasPrefix(content, "#EXTM3U") {
		t.Error("Extended M3U should start with #EXTM3U")
	}
	if !strings.Contains(content, "#EXTINF:269,周杰伦 - 晴天") {
		t.Error("Extended M3U should contain #EXTINF with duration and names")
	}
}

func TestPlaylistCreator_PLS(t *testing.T) {
	lib := createTestLibrary()
	creator := NewPlaylistCreator(model.PlaylistFormatPLS, false)

	content := creator.CreatePlaylist(lib)

	if !strings.HasPrefix(content, "[playlist]") {
		t.Error("PLS should start with [playlist]")
	}
	if !strings.Contains(content, "File1=audio/") {
		t.Error("PLS should contain File1=")
	}
	if !strings.Contains(content, "NumberOfEntries=2") {
		t.Error("PLS should contain NumberOfEntries")
	}
}

func TestPlaylistCreator_WPL(t *testing.T) {
	lib := createTestLibrary()
	creator := NewPlaylistCreator(model.PlaylistFormatWPL, false)

	content := creator.CreatePlaylist(lib)

	if !strings.Contains(content, "<?wpl") {
		t.Error("WPL should contain XML declaration")
	}
	if !strings.Contains(content, "<smil>") {
		t.Error("WPL should contain smil element")
	}
	if !strings.Contains(content, "<media src=") {
		t.Error("WPL should contain media elements")
	}
}

func TestPlaylistCreator_ZPL(t *testing.T) {
	lib := createTestLibrary()
	creator := NewPlaylistCreator(model.PlaylistFormatZPL, false)

	content := creator.CreatePlaylist(lib)

	if !strings.Contains(content, "<?zpl") {
		t.Error("ZPL should contain XML declaration")
	}
	if !strings.Contains(content, "duration=\"269000\"") {
		t.Error("ZPL should contain duration in milliseconds")
	}
}

func TestPlaylistCreator_XMLEscape(t *testing.T) {
	lib := createTestLibrary()
	creator := NewPlaylistCreator(model.PlaylistFormatZPL, false)

	content := creator.CreatePlaylist(lib)

	if !strings.Contains(content, "Rock &lt;Live&gt; &amp; More") {
		t.Error("ZPL should escape &, < and >")
	}
	if strings.Contains(content, "<Live>") {
		t.Error("ZPL should not contain raw < and >")
	}
}

func createTestLibrary() *model.Library {
	lib := model.NewLibrary("/music_repo")

	lib.Add(&model.Track{
		Source:         "/in/晴天.mp3",
		Metadata:       model.Metadata{Title: "晴天", Artist: "周杰伦", Duration: 269},
		FileName:       "周杰伦 - 晴天.mp3",
		LyricsFileName: "周杰伦 - 晴天.lrc",
		CoverURL:       "https://y.qq.com/music/photo_new/T002R300x300M000abc.jpg",
	})
	lib.Add(&model.Track{
		Source:   "/in/rock.flac",
		Metadata: model.Metadata{Title: "Rock <Live> & More", Artist: "Various Artists", Duration: 200},
		FileName: "Rock Live & More.flac",
		CoverURL: "/music/default_cover.jpg",
	})

	return lib
}
