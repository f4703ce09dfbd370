package naming

import "unicode/utf8"

// Index counts how often each token occurs as a standalone segment across
// all file names of a collection.
//
// Build it once with BuildIndex (or Record for every stem) before any
// classification, then treat it as read-only. A nil *Index reports zero for
// every token.
type Index struct {
	counts map[string]int
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{counts: make(map[string]int)}
}

// BuildIndex tokenizes every stem and records its tokens.
func BuildIndex(stems []string) *Index {
	ix := NewIndex()
	for _, stem := range stems {
		ix.Record(Tokenize(stem))
	}
	return ix
}

// Record counts every token longer than one character. Length is measured
// in characters, so a single CJK character is skipped just like "a".
func (ix *Index) Record(tokens []string) {
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) > 1 {
			ix.counts[tok]++
		}
	}
}

// Frequency returns how many times token was recorded, or 0.
func (ix *Index) Frequency(token string) int {
	if ix == nil {
		return 0
	}
	return ix.counts[token]
}

// Len returns the number of distinct tokens recorded.
func (ix *Index) Len() int {
	if ix == nil {
		return 0
	}
	return len(ix.counts)
}
