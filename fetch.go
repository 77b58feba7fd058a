package readflow

import "context"

// FetchedResponse is the contract a Fetcher returns.
// EffectiveURL reflects all redirects followed to retrieve Body.
type FetchedResponse struct {
	Status       int
	Headers      map[string]string
	Body         []byte
	EffectiveURL string
}

// ContentType returns the Content-Type header, or the empty string if
// absent.
func (r *FetchedResponse) ContentType() string {
	if r == nil {
		return ""
	}
	return r.Headers["Content-Type"]
}

// Fetcher retrieves a URL and reports status, headers, body, and the
// effective URL after redirects. Implementations live outside this
// package.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchedResponse, error)
}
