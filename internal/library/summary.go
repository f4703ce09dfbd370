package library

import (
	"sort"

	"github.com/handiism/musicorg/internal/model"
)

// sampleSize is how many tracks a Summary lists as examples.
const sampleSize = 10

// Summary describes a finished run.
type Summary struct {
	Processed     int
	Failed        int
	WithLyrics    int
	WithoutLyrics int

	// ArtistSources counts tracks per artist provenance.
	ArtistSources map[model.ArtistSource]int

	// Samples are the first tracks of the library, in processing order.
	Samples []Sample

	// ManifestPath is where playlist.json was written; empty on dry runs.
	ManifestPath string
}

// Sample is one example line of a Summary.
type Sample struct {
	Name             string
	Artist           string
	OriginalFileName string
}

// SourceCount is one row of Summary.SortedSources.
type SourceCount struct {
	Source model.ArtistSource
	Count  int
}

// NewSummary summarizes the tracks of lib plus the number of failed files.
func NewSummary(lib *model.Library, failed int) *Summary {
	s := &Summary{
		Processed:     len(lib.Tracks),
		Failed:        failed,
		ArtistSources: make(map[model.ArtistSource]int),
	}
	for i, t := range lib.Tracks {
		s.ArtistSources[t.Metadata.ArtistSource]++
		if t.HasLyrics() {
			s.WithLyrics++
		} else {
			s.WithoutLyrics++
		}
		if i < sampleSize {
			s.Samples = append(s.Samples, Sample{
				Name:             t.Metadata.Title,
				Artist:           t.Metadata.Artist,
				OriginalFileName: t.OriginalFileName(),
			})
		}
	}
	return s
}

// SortedSources returns the artist source counts, largest first, ties by
// name.
func (s *Summary) SortedSources() []SourceCount {
	out := make([]SourceCount, 0, len(s.ArtistSources))
	for src, n := range s.ArtistSources {
		out = append(out, SourceCount{Source: src, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Source < out[j].Source
	})
	return out
}
