package naming

import "strings"

// Weights for the two-token comparison.
const (
	pairArtistWeight = 2
	pairTitleWeight  = 1
)

// Weights for picking the artist among three or more tokens.
const (
	artistLikeWeight = 3
	recurringWeight  = 2
	leadingWeight    = 1
)

// ParseResult is the (artist, title) pair inferred from one file name.
// Artist is empty when the name carries no artist.
type ParseResult struct {
	Artist string
	Title  string
}

// HasArtist reports whether an artist was inferred.
func (r ParseResult) HasArtist() bool {
	return r.Artist != ""
}

// Parser picks the artist and title tokens of a file name using classifier
// verdicts and positional priors.
type Parser struct {
	classifier *Classifier
}

// NewParser creates a Parser.
func NewParser(classifier *Classifier) *Parser {
	return &Parser{classifier: classifier}
}

// Classifier returns the classifier the parser scores tokens with.
func (p *Parser) Classifier() *Classifier {
	return p.classifier
}

// Parse tokenizes stem and infers its artist and title.
func (p *Parser) Parse(stem string) ParseResult {
	return p.ParseTokens(stem, Tokenize(stem))
}

// ParseTokens infers artist and title from already tokenized stem.
//
//   - zero tokens: the raw stem is the title;
//   - one token: it is the title, no artist;
//   - two tokens: whichever ordering scores higher wins;
//   - three or more: the best scoring token is the artist, the rest the title.
func (p *Parser) ParseTokens(stem string, tokens []string) ParseResult {
	switch len(tokens) {
	case 0:
		return ParseResult{Title: stem}
	case 1:
		return ParseResult{Title: tokens[0]}
	case 2:
		return p.parsePair(tokens[0], tokens[1])
	default:
		return p.parseMany(tokens)
	}
}

func (p *Parser) parsePair(a, b string) ParseResult {
	c := p.classifier
	artistFirst := pairArtistWeight*btoi(c.IsLikelyArtist(a)) + pairTitleWeight*btoi(c.IsLikelyTitle(b))
	titleFirst := pairArtistWeight*btoi(c.IsLikelyArtist(b)) + pairTitleWeight*btoi(c.IsLikelyTitle(a))

	switch {
	case artistFirst > titleFirst:
		return ParseResult{Artist: a, Title: b}
	case titleFirst > artistFirst:
		return ParseResult{Artist: b, Title: a}
	}

	// Tie. A known artist outranks the short-name guess on the other side;
	// otherwise the first token is the artist.
	if c.vocab.IsKnownArtist(b) && !c.vocab.IsKnownArtist(a) {
		return ParseResult{Artist: b, Title: a}
	}
	return ParseResult{Artist: a, Title: b}
}

func (p *Parser) parseMany(tokens []string) ParseResult {
	best, bestScore := 0, -1
	for i, tok := range tokens {
		// Strictly greater keeps the earliest token on ties.
		if score := p.artistScore(i, tok); score > bestScore {
			best, bestScore = i, score
		}
	}
	artist := tokens[best]

	rest := make([]string, 0, len(tokens)-1)
	rest = append(rest, tokens[:best]...)
	rest = append(rest, tokens[best+1:]...)

	title := strings.Join(rest, " ")
	title = removeWholeWord(title, artist)
	title = collapseSeparators(title)
	if title == "" {
		title = rest[0]
	}
	return ParseResult{Artist: artist, Title: title}
}

func (p *Parser) artistScore(i int, token string) int {
	c := p.classifier
	score := artistLikeWeight * btoi(c.IsLikelyArtist(token))
	if c.Frequency(token) > 1 {
		score += recurringWeight
	}
	if i == 0 {
		score += leadingWeight
	}
	return score
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
