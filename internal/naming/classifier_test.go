package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifier_IsLikelyArtist(t *testing.T) {
	ix := BuildIndex([]string{"Somebody x1", "Somebody x2", "Somebody x3", "Twice here", "Twice there"})
	c := NewClassifier(DefaultVocabulary(), ix)

	tests := []struct {
		token string
		want  bool
	}{
		{"周杰伦", true},               // known artist
		{"Taylor Swift", true},      // known artist with a space
		{"五月天乐队", true},             // band keyword
		{"Simon & Garfunkel", true}, // "&"
		{"Somebody", true},          // frequency 3
		{"Twice", false},            // frequency 2, 5 chars
		{"晴天", true},                // 2 chars, no digit
		{"ABCD", true},              // 4 chars
		{"01", false},               // digits
		{"A1", false},
		{"x", false},            // too short
		{"告白气球", true},          // 4 chars
		{"Loremipsum", false},   // long, no keyword
		{"Spirited Away", false}, // no keyword
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.IsLikelyArtist(tt.token), tt.token)
	}
}

func TestClassifier_IsLikelyTitle(t *testing.T) {
	c := NewClassifier(DefaultVocabulary(), NewIndex())

	tests := []struct {
		token string
		want  bool
	}{
		{"Loremipsum", true},  // long, not artist-like
		{"周杰伦", false},        // artist-like
		{"晴天", false},          // too short
		{"晴天(Live)", true},     // marker
		{"《晴天》", true},         // marker, also 4 chars
		{"好！", true},           // full-width exclamation
		{"为什么？", true},         // full-width question mark
		{"Hi", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.IsLikelyTitle(tt.token), tt.token)
	}
}

func TestClassifier_PredicatesAreIndependent(t *testing.T) {
	c := NewClassifier(DefaultVocabulary(), NewIndex())
	token := "[Live]"
	assert.True(t, c.IsLikelyTitle(token))
	assert.False(t, c.IsLikelyArtist(token))

	both := "A&B(1)"
	assert.True(t, c.IsLikelyArtist(both))
	assert.True(t, c.IsLikelyTitle(both))
}

func TestClassifier_SyntheticVocabulary(t *testing.T) {
	vocab, err := ParseVocabulary([]byte("known_artists: [Loremipsum]\nartist_keywords: [Band]\n"))
	require.NoError(t, err)

	c := NewClassifier(vocab, nil)
	assert.True(t, c.IsLikelyArtist("Loremipsum"))
	assert.False(t, c.IsLikelyArtist("周杰伦xyz"))
	assert.True(t, c.IsLikelyArtist("The Long Band"))
	assert.False(t, c.IsLikelyArtist("Simon & Garfunkel"), "keywords were replaced")
}
