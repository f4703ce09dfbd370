package naming

import (
	"unicode"
	"unicode/utf8"
)

const (
	// recurringArtistCount is the corpus frequency above which a token is
	// taken to name an artist on its own.
	recurringArtistCount = 2

	shortNameMin = 2
	shortNameMax = 4

	minTitleLen = 3
)

// Classifier answers two independent yes/no questions about a token: does it
// look like an artist, and does it look like a song title. Both may be true
// (or false) for the same token; Parser weighs them against each other.
type Classifier struct {
	vocab *Vocabulary
	index *Index
}

// NewClassifier creates a Classifier over a vocabulary and a fully built
// corpus index. A nil vocabulary means DefaultVocabulary; a nil index counts
// nothing.
func NewClassifier(vocab *Vocabulary, index *Index) *Classifier {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Classifier{vocab: vocab, index: index}
}

// Vocabulary returns the word lists the classifier matches against.
func (c *Classifier) Vocabulary() *Vocabulary {
	return c.vocab
}

// Frequency returns the corpus count of token.
func (c *Classifier) Frequency(token string) int {
	return c.index.Frequency(token)
}

// IsLikelyArtist reports whether token looks like an artist name. The first
// matching rule wins:
//  1. it is a known artist;
//  2. it contains a group or featuring keyword ("乐队", "&", "feat", ...);
//  3. it recurs more than twice across the collection;
//  4. it is 2-4 characters long with no digits (typical of Chinese names).
func (c *Classifier) IsLikelyArtist(token string) bool {
	if c.vocab.IsKnownArtist(token) {
		return true
	}
	if containsAny(token, c.vocab.ArtistKeywords) {
		return true
	}
	if c.index.Frequency(token) > recurringArtistCount {
		return true
	}
	n := utf8.RuneCountInString(token)
	return n >= shortNameMin && n <= shortNameMax && !hasDigit(token)
}

// IsLikelyTitle reports whether token looks like a song title: at least three
// characters and not artist-like, or carrying a bracket/punctuation marker.
func (c *Classifier) IsLikelyTitle(token string) bool {
	if utf8.RuneCountInString(token) >= minTitleLen && !c.IsLikelyArtist(token) {
		return true
	}
	return containsAny(token, c.vocab.TitleMarkers)
}

func hasDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
