// Package naming infers an (artist, title) pair from an unstructured audio
// file name when embedded tags are missing or unreliable.
//
// The pipeline for one file is:
//
//	tokens := naming.Tokenize(stem)          // split on separator runs
//	result := parser.ParseTokens(stem, tokens) // classify and pick the artist
//	title  := cleaner.Clean(result.Title, result.Artist)
//
// # Corpus Index
//
// An Index counts how often each token appears across every file name in the
// scanned collection. A token that keeps recurring is a weak hint that it
// names an artist. The index must be fully built before the first Parse call:
//
//	index := naming.BuildIndex(stems)
//	classifier := naming.NewClassifier(naming.DefaultVocabulary(), index)
//	parser := naming.NewParser(classifier)
//
// # Vocabulary
//
// Known artists, group/feature keywords and title markers are static data
// loaded from YAML (see vocabulary.yaml), so tests can swap in synthetic
// vocabularies.
package naming
