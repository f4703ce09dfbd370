package lookup

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/tidwall/gjson"
)

// Cover service defaults.
const (
	DefaultCoverSearchURL   = "https://c.y.qq.com/soso/fcgi-bin/client_search_cp"
	DefaultCoverImageFormat = "https://y.qq.com/music/photo_new/T002R300x300M000%s.jpg"

	// DefaultCover is the manifest cover for tracks without a found cover.
	DefaultCover = "/music/default_cover.jpg"

	coverCandidates = 3
)

// CoverSearcher finds album cover image URLs.
type CoverSearcher struct {
	client      JSONGetter
	searchURL   string
	imageFormat string
}

// NewCoverSearcher creates a CoverSearcher. Empty arguments fall back to
// DefaultCoverSearchURL and DefaultCoverImageFormat; imageFormat must
// contain one %s for the album id.
func NewCoverSearcher(client JSONGetter, searchURL, imageFormat string) *CoverSearcher {
	if searchURL == "" {
		searchURL = DefaultCoverSearchURL
	}
	if imageFormat == "" {
		imageFormat = DefaultCoverImageFormat
	}
	return &CoverSearcher{client: client, searchURL: searchURL, imageFormat: imageFormat}
}

type coverCandidate struct {
	title   string
	artist  string
	albumID string
}

// Search looks up a cover image for title by artist.
//
// Among the returned songs, those whose name and singer each contain or are
// contained in the queried title and artist are matches; the match closest
// to the title (by edit distance, earliest on ties) wins. Without a match,
// the first song is used if it has an album id.
func (s *CoverSearcher) Search(ctx context.Context, title, artist string) Result {
	res, err := s.client.GetJSON(ctx, s.searchURL, url.Values{
		"w":      {query(title, artist)},
		"format": {"json"},
		"n":      {fmt.Sprint(coverCandidates)},
	})
	if err != nil {
		return Failedf("cover search: %w", err)
	}

	candidates := parseCandidates(res.Get("data.song.list"))
	if len(candidates) == 0 {
		return NotFound()
	}

	if best, ok := bestMatch(candidates, title, artist); ok {
		return Found(s.imageURL(best.albumID))
	}
	if first := candidates[0]; first.albumID != "" {
		return Found(s.imageURL(first.albumID))
	}
	return NotFound()
}

func (s *CoverSearcher) imageURL(albumID string) string {
	return fmt.Sprintf(s.imageFormat, albumID)
}

func parseCandidates(list gjson.Result) []coverCandidate {
	var out []coverCandidate
	list.ForEach(func(_, song gjson.Result) bool {
		out = append(out, coverCandidate{
			title:   song.Get("songname").String(),
			artist:  song.Get("singer.0.name").String(),
			albumID: song.Get("albummid").String(),
		})
		return true
	})
	return out
}

func bestMatch(candidates []coverCandidate, title, artist string) (coverCandidate, bool) {
	var (
		best     coverCandidate
		bestDist = -1
	)
	for _, c := range candidates {
		if c.albumID == "" || !mutualContains(title, c.title) || !mutualContains(artist, c.artist) {
			continue
		}
		d := levenshtein.ComputeDistance(title, c.title)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist >= 0
}

// mutualContains reports whether either string contains the other.
func mutualContains(a, b string) bool {
	return strings.Contains(a, b) || strings.Contains(b, a)
}
