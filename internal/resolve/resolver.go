// Package resolve merges embedded tags with file name heuristics into the
// final metadata of a track.
package resolve

import (
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/handiism/musicorg/internal/audio"
	"github.com/handiism/musicorg/internal/model"
	"github.com/handiism/musicorg/internal/naming"
)

// TagReader extracts embedded metadata. *audio.Reader satisfies it.
type TagReader interface {
	ReadTags(path string) (audio.Tags, error)
}

// Resolver decides the title and artist of each file.
//
// Precedence:
//   - title: tag, then the title parsed from the file name, then the stem
//   - artist: tag, unless missing or an "unknown artist" placeholder, then
//     the parsed artist, then "Various Artists"
//
// When tag extraction fails the file name alone is used and the artist
// source is error_fallback.
type Resolver struct {
	tags    TagReader
	parser  *naming.Parser
	cleaner *naming.Cleaner
	vocab   *naming.Vocabulary
	logger  hclog.Logger
}

// NewResolver creates a Resolver. The parser's classifier must have been
// built over a complete corpus index.
func NewResolver(tags TagReader, parser *naming.Parser, logger hclog.Logger) *Resolver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	vocab := parser.Classifier().Vocabulary()
	return &Resolver{
		tags:    tags,
		parser:  parser,
		cleaner: naming.NewCleaner(vocab),
		vocab:   vocab,
		logger:  logger.Named("resolve"),
	}
}

// Resolve returns the metadata of the audio file at path. It never fails.
func (r *Resolver) Resolve(path string) model.Metadata {
	stem := Stem(path)

	tags, err := r.tags.ReadTags(path)
	if err != nil {
		r.logger.Debug("tag extraction failed, using file name", "file", filepath.Base(path), "error", err)
		return r.Fallback(stem)
	}

	meta := r.Merge(stem, tags)
	r.logger.Debug("resolved",
		"file", filepath.Base(path),
		"artist", meta.Artist,
		"title", meta.Title,
		"artist_source", meta.ArtistSource,
		"title_source", meta.TitleSource)
	return meta
}

// Merge combines tags read from a file with what its stem says.
func (r *Resolver) Merge(stem string, tags audio.Tags) model.Metadata {
	parsed := r.parser.Parse(stem)

	meta := model.Metadata{
		Title:        tags.Title,
		Artist:       tags.Artist,
		ArtistSource: tags.ArtistSource,
		Album:        tags.Album,
		Duration:     tags.Duration,
		TitleSource:  model.TitleSourceTag,
	}

	if meta.Title == "" && parsed.Title != "" {
		meta.Title = parsed.Title
		meta.TitleSource = model.TitleSourceFilename
	}
	if meta.Title == "" {
		meta.Title = stem
		meta.TitleSource = model.TitleSourceStem
	}

	if meta.Artist == "" || r.vocab.IsUnknownArtist(meta.Artist) {
		meta.Artist, meta.ArtistSource = "", ""
		if parsed.HasArtist() {
			meta.Artist = parsed.Artist
			meta.ArtistSource = model.ArtistSourceFilename
		}
	}

	if meta.Artist != "" {
		meta.Title = r.cleaner.Clean(meta.Title, meta.Artist)
	} else {
		meta.Artist = r.vocab.VariousArtists
		meta.ArtistSource = model.ArtistSourceDefault
	}
	return meta
}

// Fallback derives metadata from the stem alone. Cleaning is skipped.
func (r *Resolver) Fallback(stem string) model.Metadata {
	parsed := r.parser.Parse(stem)

	meta := model.Metadata{
		Title:        parsed.Title,
		Artist:       parsed.Artist,
		ArtistSource: model.ArtistSourceErrorFallback,
		TitleSource:  model.TitleSourceFilename,
	}
	if meta.Title == "" {
		meta.Title = stem
		meta.TitleSource = model.TitleSourceStem
	}
	if meta.Artist == "" {
		meta.Artist = r.vocab.VariousArtists
	}
	return meta
}

// Stem returns the file name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
