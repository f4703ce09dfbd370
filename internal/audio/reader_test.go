package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2"

	"github.com/handiism/musicorg/internal/model"
)

func writeMP3(t *testing.T, name string, frames map[string]string) string {
	t.Helper()

	tag := id3v2.NewEmptyTag()
	tag.SetDefaultEncoding(id3v2.EncodingUTF8)
	for id, text := range frames {
		tag.AddTextFrame(id, id3v2.EncodingUTF8, text)
	}

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if _, err := tag.WriteTo(f); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Write(make([]byte, 256)); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReader_MP3(t *testing.T) {
	path := writeMP3(t, "song.mp3", map[string]string{
		"TIT2": "晴天",
		"TPE1": "周杰伦/Someone Else",
		"TPE2": "Album Artist",
		"TALB": "叶惠美",
	})

	tags, err := NewReader().ReadTags(path)
	if err != nil {
		t.Fatalf("ReadTags() error = %v", err)
	}

	want := Tags{Title: "晴天", Artist: "周杰伦", ArtistSource: model.ArtistSourceTPE1, Album: "叶惠美"}
	if tags != want {
		t.Errorf("ReadTags() = %+v, want %+v", tags, want)
	}
}

func TestReader_MP3FramePrecedence(t *testing.T) {
	path := writeMP3(t, "song.MP3", map[string]string{
		"TIT1": "Grouping Title",
		"TIT3": "Subtitle",
		"TPE2": "Band",
	})

	tags, err := NewReader().ReadTags(path)
	if err != nil {
		t.Fatalf("ReadTags() error = %v", err)
	}

	if tags.Title != "Grouping Title" {
		t.Errorf("Title = %q, want TIT1 value", tags.Title)
	}
	if tags.Artist != "Band" || tags.ArtistSource != model.ArtistSourceTPE2 {
		t.Errorf("Artist = %q (%s), want Band (TPE2_tag)", tags.Artist, tags.ArtistSource)
	}
}

func TestReader_MP3WithoutTag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.mp3")
	if err := os.WriteFile(path, make([]byte, 128), 0644); err != nil {
		t.Fatal(err)
	}

	tags, err := NewReader().ReadTags(path)
	if err != nil {
		t.Fatalf("ReadTags() error = %v", err)
	}
	if tags != (Tags{}) {
		t.Errorf("ReadTags() = %+v, want empty tags", tags)
	}
}

func TestReader_Unsupported(t *testing.T) {
	_, err := NewReader().ReadTags("/music/song.ogg")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ReadTags(.ogg) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestReader_BrokenFLAC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.flac")
	if err := os.WriteFile(path, []byte("definitely not flac"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := NewReader().ReadTags(path); err == nil {
		t.Error("ReadTags() on a broken FLAC file should fail")
	}
}

func TestFirstArtist(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"周杰伦", "周杰伦"},
		{"周杰伦/费玉清", "周杰伦"},
		{"A; B", "A"},
		{" Solo ", "Solo"},
	}

	for _, tt := range tests {
		if got := firstArtist(tt.input); got != tt.want {
			t.Errorf("firstArtist(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestReader_MP3AlbumArtistKeepsFirstName(t *testing.T) {
	path := writeMP3(t, "duet.mp3", map[string]string{
		"TIT2": "千里之外",
		"TPE2": "周杰伦;费玉清",
	})

	tags, err := NewReader().ReadTags(path)
	if err != nil {
		t.Fatalf("ReadTags() error = %v", err)
	}
	if tags.Artist != "周杰伦" || tags.ArtistSource != model.ArtistSourceTPE2 {
		t.Errorf("Artist = %q (%s), want 周杰伦 (TPE2_tag)", tags.Artist, tags.ArtistSource)
	}
}

func TestApplyArtist(t *testing.T) {
	tests := []struct {
		name        string
		artist      string
		albumArtist string
		want        string
		wantSource  model.ArtistSource
	}{
		{"artist wins", "周杰伦/费玉清", "Various", "周杰伦", model.ArtistSourceArtistTag},
		{"album artist fallback", "", "A; B", "A", model.ArtistSourceAlbumArtistTag},
		{"delimiter only falls through", "/", "Band", "Band", model.ArtistSourceAlbumArtistTag},
		{"nothing", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tags Tags
			applyArtist(&tags, tt.artist, tt.albumArtist)
			if tags.Artist != tt.want || tags.ArtistSource != tt.wantSource {
				t.Errorf("applyArtist(%q, %q) = %q (%s), want %q (%s)",
					tt.artist, tt.albumArtist, tags.Artist, tags.ArtistSource, tt.want, tt.wantSource)
			}
		})
	}
}

func TestReader_MP3DelimiterOnlyLeadArtistFallsThrough(t *testing.T) {
	path := writeMP3(t, "band.mp3", map[string]string{
		"TIT2": "Song",
		"TPE1": "/",
		"TPE2": "Band",
	})

	tags, err := NewReader().ReadTags(path)
	if err != nil {
		t.Fatalf("ReadTags() error = %v", err)
	}
	if tags.Artist != "Band" || tags.ArtistSource != model.ArtistSourceTPE2 {
		t.Errorf("Artist = %q (%s), want Band (TPE2_tag)", tags.Artist, tags.ArtistSource)
	}
}
