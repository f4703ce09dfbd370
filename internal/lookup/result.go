package lookup

import "fmt"

// Status is the outcome of a lookup.
type Status int

const (
	// StatusNotFound means the service answered but had nothing usable.
	StatusNotFound Status = iota

	// StatusFound means Value holds the result.
	StatusFound

	// StatusFailed means the service could not be queried (timeout,
	// non-200, malformed response). Err holds the reason.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusFailed:
		return "failed"
	default:
		return "not_found"
	}
}

// Result is the outcome of one lookup. Lookups never return errors to the
// caller; a failure is a Result like any other so the run never aborts.
//
//	switch res := lyrics.Search(ctx, title, artist); res.Status {
//	case lookup.StatusFound:
//	    save(res.Value)
//	case lookup.StatusFailed:
//	    log.Debug("lyrics lookup failed", "err", res.Err)
//	}
type Result struct {
	Status Status
	Value  string
	Err    error
}

// Found returns a successful Result.
func Found(value string) Result {
	return Result{Status: StatusFound, Value: value}
}

// NotFound returns a Result for a query with no usable answer.
func NotFound() Result {
	return Result{Status: StatusNotFound}
}

// Failed returns a Result for a query that could not be completed.
func Failed(err error) Result {
	return Result{Status: StatusFailed, Err: err}
}

// Failedf returns a Failed result with a formatted reason.
func Failedf(format string, args ...any) Result {
	return Failed(fmt.Errorf(format, args...))
}

// OK reports whether the lookup found something.
func (r Result) OK() bool {
	return r.Status == StatusFound
}

// ValueOr returns Value when found, otherwise fallback.
func (r Result) ValueOr(fallback string) string {
	if r.OK() {
		return r.Value
	}
	return fallback
}
