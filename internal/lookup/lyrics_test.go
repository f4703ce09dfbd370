package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mhttp "github.com/handiism/musicorg/internal/http"
)

func newLyricsServer(t *testing.T, search, lyric string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/search/get", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "晴天 周杰伦", r.URL.Query().Get("s"))
		assert.Equal(t, "1", r.URL.Query().Get("type"))
		assert.Equal(t, "1", r.URL.Query().Get("limit"))
		w.Write([]byte(search))
	})
	mux.HandleFunc("/api/song/lyric", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "186016", r.URL.Query().Get("id"))
		assert.Equal(t, "1", r.URL.Query().Get("lv"))
		w.Write([]byte(lyric))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLyricsSearcher_Found(t *testing.T) {
	srv := newLyricsServer(t,
		`{"result":{"songs":[{"id":186016,"name":"晴天"}]},"code":200}`,
		`{"lrc":{"version":1,"lyric":"[00:00.00]晴天\n"},"code":200}`)

	s := NewLyricsSearcher(mhttp.NewClient(time.Second, ""), srv.URL+"/api/")
	res := s.Search(context.Background(), "晴天", "周杰伦")

	require.Equal(t, StatusFound, res.Status, "err: %v", res.Err)
	assert.Equal(t, "[00:00.00]晴天\n", res.Value)
}

func TestLyricsSearcher_NoSongs(t *testing.T) {
	srv := newLyricsServer(t, `{"result":{"songCount":0},"code":200}`, `{}`)

	s := NewLyricsSearcher(mhttp.NewClient(time.Second, ""), srv.URL+"/api")
	res := s.Search(context.Background(), "晴天", "周杰伦")

	assert.Equal(t, StatusNotFound, res.Status)
}

func TestLyricsSearcher_EmptyLyric(t *testing.T) {
	srv := newLyricsServer(t,
		`{"result":{"songs":[{"id":186016}]}}`,
		`{"nolyric":true,"code":200}`)

	s := NewLyricsSearcher(mhttp.NewClient(time.Second, ""), srv.URL+"/api")
	res := s.Search(context.Background(), "晴天", "周杰伦")

	assert.Equal(t, StatusNotFound, res.Status)
}

func TestLyricsSearcher_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>"))
		}},
		{"timeout", func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{}`))
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			s := NewLyricsSearcher(mhttp.NewClient(50*time.Millisecond, ""), srv.URL)
			res := s.Search(context.Background(), "晴天", "周杰伦")

			assert.Equal(t, StatusFailed, res.Status)
			assert.Error(t, res.Err)
			assert.Empty(t, res.Value)
		})
	}
}

func TestNewLyricsSearcher_DefaultBase(t *testing.T) {
	s := NewLyricsSearcher(nil, "")
	assert.Equal(t, DefaultLyricsAPIBase, s.apiBase)
}
