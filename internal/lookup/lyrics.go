package lookup

import (
	"context"
	"net/url"
	"strings"
)

// DefaultLyricsAPIBase is the lyric service used when none is configured.
const DefaultLyricsAPIBase = "http://music.163.com/api"

// LyricsSearcher finds synchronized lyrics (LRC text) for a song.
//
// A search is two requests: the song search returns the id of the best
// match, then the lyric endpoint returns the LRC text for that id.
type LyricsSearcher struct {
	client  JSONGetter
	apiBase string
}

// NewLyricsSearcher creates a LyricsSearcher. An empty apiBase means
// DefaultLyricsAPIBase.
func NewLyricsSearcher(client JSONGetter, apiBase string) *LyricsSearcher {
	if apiBase == "" {
		apiBase = DefaultLyricsAPIBase
	}
	return &LyricsSearcher{client: client, apiBase: strings.TrimRight(apiBase, "/")}
}

// Search looks up lyrics for title by artist. Each request is attempted
// once.
func (s *LyricsSearcher) Search(ctx context.Context, title, artist string) Result {
	search, err := s.client.GetJSON(ctx, s.apiBase+"/search/get", url.Values{
		"s":     {query(title, artist)},
		"type":  {"1"},
		"limit": {"1"},
	})
	if err != nil {
		return Failedf("lyrics search: %w", err)
	}

	id := search.Get("result.songs.0.id")
	if !id.Exists() || id.String() == "" {
		return NotFound()
	}

	lyric, err := s.client.GetJSON(ctx, s.apiBase+"/song/lyric", url.Values{
		"id": {id.String()},
		"lv": {"1"},
	})
	if err != nil {
		return Failedf("lyrics fetch %s: %w", id.String(), err)
	}

	text := lyric.Get("lrc.lyric").String()
	if strings.TrimSpace(text) == "" {
		return NotFound()
	}
	return Found(text)
}
