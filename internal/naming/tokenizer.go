package naming

import (
	"strings"
	"unicode"
)

// separatorRunes are the non-whitespace characters that split a file name
// stem into tokens. Any Unicode whitespace also splits.
const separatorRunes = "~-_.—–"

func isSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(separatorRunes, r)
}

// Tokenize splits a file name stem (without extension) into tokens.
//
// Consecutive separators collapse into a single split point, so the result
// never contains empty tokens. Order is preserved:
//
//	Tokenize("周杰伦 - 晴天")        // ["周杰伦", "晴天"]
//	Tokenize("01_Artist.Song~Live") // ["01", "Artist", "Song", "Live"]
//	Tokenize("--__--")              // []
func Tokenize(stem string) []string {
	return strings.FieldsFunc(stem, isSeparator)
}

// collapseSeparators replaces every separator run with one space and trims
// the ends.
func collapseSeparators(s string) string {
	return strings.Join(Tokenize(s), " ")
}

// trimSeparators strips leading and trailing separator runs.
func trimSeparators(s string) string {
	return strings.TrimFunc(s, isSeparator)
}
