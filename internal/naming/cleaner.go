package naming

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Cleaner strips a redundant artist mention from a title, e.g.
// "周杰伦 - 晴天" with artist "周杰伦" becomes "晴天".
type Cleaner struct {
	vocab *Vocabulary
}

// NewCleaner creates a Cleaner. A nil vocabulary means DefaultVocabulary.
func NewCleaner(vocab *Vocabulary) *Cleaner {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Cleaner{vocab: vocab}
}

// Clean removes artist from title.
//
// An empty artist or the "Various Artists" sentinel leaves the title alone.
// The artist is first removed where it stands as a whole word, then anywhere
// together with its surrounding dashes, tildes and spaces. If nothing is left
// the original title is returned, so Clean never produces an empty title from
// a non-empty one. Clean is idempotent.
func (c *Cleaner) Clean(title, artist string) string {
	if artist == "" || artist == c.vocab.VariousArtists {
		return title
	}

	// A removal can splice the remaining pieces into a new occurrence of the
	// artist, so repeat until nothing changes.
	pattern := paddedPattern(artist)
	cleaned := title
	for {
		next := strings.TrimSpace(removeWholeWord(cleaned, artist))
		next = pattern.ReplaceAllString(next, "")
		if next == cleaned {
			break
		}
		cleaned = next
	}
	cleaned = trimSeparators(strings.TrimSpace(cleaned))
	if cleaned == "" {
		return title
	}
	return cleaned
}

// paddedPattern matches artist with any dash, tilde or space run on either
// side.
func paddedPattern(artist string) *regexp.Regexp {
	const pad = `[-~\s\p{Zs}]*`
	return regexp.MustCompile(pad + regexp.QuoteMeta(artist) + pad)
}

// removeWholeWord deletes every occurrence of word in s that sits on word
// boundaries at both ends. Letters, digits and '_' of any script are word
// characters, so "周杰伦" inside "周杰伦晴天" is not a whole word.
func removeWholeWord(s, word string) string {
	if word == "" {
		return s
	}
	var b strings.Builder
	i := 0
	for i < len(s) {
		j := strings.Index(s[i:], word)
		if j < 0 {
			break
		}
		start := i + j
		end := start + len(word)
		if atBoundary(s, start) && atBoundary(s, end) {
			b.WriteString(s[i:start])
			i = end
			continue
		}
		// Not a whole word: keep the first rune and look again after it.
		_, size := utf8.DecodeRuneInString(s[start:])
		b.WriteString(s[i : start+size])
		i = start + size
	}
	b.WriteString(s[i:])
	return b.String()
}

// atBoundary reports whether byte offset i of s lies between a word and a
// non-word character. The ends of s count as non-word.
func atBoundary(s string, i int) bool {
	before, after := false, false
	if i > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:i])
		before = isWordRune(r)
	}
	if i < len(s) {
		r, _ := utf8.DecodeRuneInString(s[i:])
		after = isWordRune(r)
	}
	return before != after
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
