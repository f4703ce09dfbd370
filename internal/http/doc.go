// Package http provides the HTTP client used for lyric and cover lookups.
//
// The Client in this package handles:
//   - User-Agent headers
//   - A short fixed timeout (DefaultTimeout)
//   - JSON responses parsed with gjson
//
// # Basic Usage
//
//	client := http.NewClient(5*time.Second, "")
//
//	// Query a JSON endpoint
//	res, err := client.GetJSON(ctx, searchURL, url.Values{"w": {"晴天 周杰伦"}})
//
//	// Download an image
//	data, err := client.DownloadBytes(ctx, coverURL)
//
// Non-200 responses, timeouts and malformed JSON are all returned as errors;
// deciding what they mean is up to the caller.
package http
