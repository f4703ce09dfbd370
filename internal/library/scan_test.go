package library

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"b.mp3":           "",
		"a.MP3":           "",
		"x/c.flac":        "",
		"d.m4a":           "",
		"e.wav":           "",
		"f.ogg":           "",
		"cover.jpg":       "",
		"out/audio/z.mp3": "",
	})

	files, err := Scan(root, []string{".mp3", ".flac", ".wav", ".m4a"}, filepath.Join(root, "out"))
	require.NoError(t, err)

	rel := make([]string, len(files))
	for i, f := range files {
		r, err := filepath.Rel(root, f)
		require.NoError(t, err)
		rel[i] = filepath.ToSlash(r)
	}
	assert.Equal(t, []string{"a.MP3", "b.mp3", "x/c.flac", "e.wav", "d.m4a"}, rel)
}

func TestScan_MissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"), []string{".mp3"})
	assert.Error(t, err)
}

func TestSidecarPath(t *testing.T) {
	assert.Equal(t, "/m/周杰伦 - 晴天.lrc", sidecarPath("/m/周杰伦 - 晴天.mp3"))
	assert.Equal(t, "/m/v1.2 song.lrc", sidecarPath("/m/v1.2 song.flac"))
}
