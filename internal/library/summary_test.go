package library

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/handiism/musicorg/internal/model"
)

func TestNewSummary(t *testing.T) {
	lib := model.NewLibrary("/out")
	for i := 0; i < 12; i++ {
		track := &model.Track{
			Source:   fmt.Sprintf("/music/%02d.mp3", i),
			FileName: fmt.Sprintf("%02d.mp3", i),
			Metadata: model.Metadata{Title: fmt.Sprint(i), Artist: "A", ArtistSource: model.ArtistSourceTPE1},
		}
		if i%3 == 0 {
			track.LyricsFileName = fmt.Sprintf("%02d.lrc", i)
			track.Metadata.ArtistSource = model.ArtistSourceFilename
		}
		lib.Add(track)
	}

	s := NewSummary(lib, 2)

	assert.Equal(t, 12, s.Processed)
	assert.Equal(t, 2, s.Failed)
	assert.Equal(t, 4, s.WithLyrics)
	assert.Equal(t, 8, s.WithoutLyrics)
	assert.Len(t, s.Samples, sampleSize)
	assert.Equal(t, "00.mp3", s.Samples[0].OriginalFileName)
	assert.Equal(t, []SourceCount{
		{Source: model.ArtistSourceTPE1, Count: 8},
		{Source: model.ArtistSourceFilename, Count: 4},
	}, s.SortedSources())
}

func TestNewSummary_Empty(t *testing.T) {
	s := NewSummary(model.NewLibrary("/out"), 0)
	assert.Zero(t, s.Processed)
	assert.Empty(t, s.Samples)
	assert.Empty(t, s.SortedSources())
}
