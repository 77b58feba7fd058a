package mock

import (
	"context"

	"readflow"
)

var _ readflow.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of readflow.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*readflow.FetchedResponse, error)
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*readflow.FetchedResponse, error) {
	return f.FetchFn(ctx, url)
}
