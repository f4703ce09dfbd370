package lookup

import (
	"context"
	"net/url"

	"github.com/tidwall/gjson"
)

// JSONGetter performs a GET request and returns the parsed JSON body.
// *http.Client from this module satisfies it.
type JSONGetter interface {
	GetJSON(ctx context.Context, rawURL string, params url.Values) (gjson.Result, error)
}

// query is the search string sent to both services.
func query(title, artist string) string {
	return title + " " + artist
}
