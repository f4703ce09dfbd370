package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"
)

// DefaultTimeout bounds every request made by a Client. Lookups are
// attempted exactly once, so a slow service costs at most this much per file.
const DefaultTimeout = 5 * time.Second

// DefaultUserAgent is sent when no User-Agent is configured.
const DefaultUserAgent = "Mozilla/5.0 (compatible; musicorg)"

// ErrInvalidJSON is returned by GetJSON when the body is not valid JSON.
var ErrInvalidJSON = errors.New("invalid JSON response")

// Client wraps HTTP operations for the lyric and cover services.
//
// Client provides:
//   - Configured User-Agent header
//   - A fixed, short timeout
//   - JSON responses as gjson results, so callers can pull out nested
//     fields without declaring response structs
//
// Example usage:
//
//	client := NewClient(5*time.Second, "")
//
//	// Query a search endpoint
//	res, err := client.GetJSON(ctx, searchURL, url.Values{"s": {"晴天 周杰伦"}})
//	id := res.Get("result.songs.0.id").String()
//
//	// Download cover art
//	data, err := client.DownloadBytes(ctx, coverURL)
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client.
//
// A timeout <= 0 means DefaultTimeout; an empty userAgent means
// DefaultUserAgent.
func NewClient(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Get performs a GET request and returns the response body as bytes.
//
// The request includes the configured User-Agent header.
//
// Returns an error if:
//   - The request fails or times out
//   - The response status is not 200 OK
//   - Reading the body fails
//
// Example:
//
//	data, err := client.Get(ctx, "https://example.com/image.jpg")
func (c *Client) Get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// GetJSON performs a GET request with params appended to the query string
// and parses the body as JSON.
//
// Example:
//
//	res, err := client.GetJSON(ctx, "https://api.example.com/search", url.Values{"q": {"晴天"}})
//	for _, song := range res.Get("data.songs").Array() { ... }
func (c *Client) GetJSON(ctx context.Context, rawURL string, params url.Values) (gjson.Result, error) {
	u, err := withQuery(rawURL, params)
	if err != nil {
		return gjson.Result{}, err
	}

	body, err := c.Get(ctx, u)
	if err != nil {
		return gjson.Result{}, err
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("%s: %w", u, ErrInvalidJSON)
	}
	return gjson.ParseBytes(body), nil
}

// DownloadBytes downloads a file and returns the bytes in memory.
//
// Use this for small files like cover art images.
//
// Example:
//
//	imageData, err := client.DownloadBytes(ctx, coverURL)
func (c *Client) DownloadBytes(ctx context.Context, rawURL string) ([]byte, error) {
	return c.Get(ctx, rawURL)
}

func withQuery(rawURL string, params url.Values) (string, error) {
	if len(params) == 0 {
		return rawURL, nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
