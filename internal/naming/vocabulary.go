package naming

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed vocabulary.yaml
var defaultVocabulary []byte

// Vocabulary holds the static word lists the classifier and resolver match
// against. Matching is exact: no case folding or accent stripping.
type Vocabulary struct {
	KnownArtists   []string `yaml:"known_artists"`
	ArtistKeywords []string `yaml:"artist_keywords"`
	TitleMarkers   []string `yaml:"title_markers"`
	UnknownArtists []string `yaml:"unknown_artists"`
	VariousArtists string   `yaml:"various_artists"`

	known   map[string]struct{}
	unknown map[string]struct{}
}

// DefaultVocabulary returns the built-in vocabulary.
func DefaultVocabulary() *Vocabulary {
	v, err := decodeVocabulary(defaultVocabulary)
	if err != nil {
		panic(fmt.Sprintf("naming: embedded vocabulary: %v", err))
	}
	return v
}

// ParseVocabulary decodes a YAML vocabulary. Keys missing from data keep
// their built-in values.
func ParseVocabulary(data []byte) (*Vocabulary, error) {
	return decodeVocabulary(defaultVocabulary, data)
}

func decodeVocabulary(docs ...[]byte) (*Vocabulary, error) {
	v := &Vocabulary{}
	for _, doc := range docs {
		if err := yaml.Unmarshal(doc, v); err != nil {
			return nil, fmt.Errorf("decode vocabulary: %w", err)
		}
	}
	if strings.TrimSpace(v.VariousArtists) == "" {
		v.VariousArtists = "Various Artists"
	}
	v.index()
	return v, nil
}

// LoadVocabulary reads a YAML vocabulary file. An empty path returns the
// built-in vocabulary.
func LoadVocabulary(path string) (*Vocabulary, error) {
	if path == "" {
		return DefaultVocabulary(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseVocabulary(data)
}

func (v *Vocabulary) index() {
	v.known = make(map[string]struct{}, len(v.KnownArtists))
	for _, name := range v.KnownArtists {
		v.known[name] = struct{}{}
	}
	v.unknown = make(map[string]struct{}, len(v.UnknownArtists))
	for _, name := range v.UnknownArtists {
		v.unknown[name] = struct{}{}
	}
}

// IsKnownArtist reports whether name is in the known artist set.
func (v *Vocabulary) IsKnownArtist(name string) bool {
	if v.known == nil {
		v.index()
	}
	_, ok := v.known[name]
	return ok
}

// IsUnknownArtist reports whether a tag artist value is a placeholder for
// "no artist".
func (v *Vocabulary) IsUnknownArtist(name string) bool {
	if v.unknown == nil {
		v.index()
	}
	_, ok := v.unknown[name]
	return ok
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
