// Package lookup queries the external lyric and cover services.
//
// Both searchers return a Result instead of an error. A timeout, a non-200
// answer or a malformed body becomes StatusFailed; an answer without a
// usable song becomes StatusNotFound. Nothing here retries or caches.
//
//	client := http.NewClient(5*time.Second, "")
//	lyrics := lookup.NewLyricsSearcher(client, "")
//	covers := lookup.NewCoverSearcher(client, "", "")
//
//	lrc := lyrics.Search(ctx, "晴天", "周杰伦")
//	cover := covers.Search(ctx, "晴天", "周杰伦").ValueOr(lookup.DefaultCover)
package lookup
