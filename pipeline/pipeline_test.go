package pipeline_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readflow"
	"readflow/mime"
	"readflow/mock"
	"readflow/pipeline"
)

func newConfig(opts ...readflow.ConfigOption) *readflow.Config {
	return readflow.NewConfig(opts...)
}

func fetcherReturning(body string, status int, contentType string) *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (*readflow.FetchedResponse, error) {
			return &readflow.FetchedResponse{
				Status:       status,
				Headers:      map[string]string{"Content-Type": contentType},
				Body:         []byte(body),
				EffectiveURL: url,
			}, nil
		},
	}
}

func noopDispatcher() *mock.MimeDispatcher {
	return &mock.MimeDispatcher{
		DispatchFn: func(contentType string) readflow.MimeInfo {
			return readflow.MimeInfo{Mime: contentType}
		},
	}
}

func extractorReturning(title, content string) *mock.Extractor {
	return &mock.Extractor{
		ProcessFn: func(html string, url string) (*readflow.ExtractResult, error) {
			return &readflow.ExtractResult{Title: title, ContentHTML: content, OK: true}, nil
		},
	}
}

func passthroughPostProcessor() *mock.PostProcessor {
	return &mock.PostProcessor{
		ProcessFn: func(contentHTML string, _ string, _ readflow.PostProcessOptions) (string, error) {
			return contentHTML, nil
		},
		OpenGraphFn: func(_ string) map[string]string { return map[string]string{} },
		SummaryFn:   func(html string, _ int) string { return html },
	}
}

func emptyResolver() *mock.ConfigResolver {
	return &mock.ConfigResolver{
		BuildForHostFn: func(_ string, _ bool) (*readflow.SiteConfig, error) {
			return &readflow.SiteConfig{}, nil
		},
	}
}

func TestPipeline_Run_BasicExtraction(t *testing.T) {
	t.Parallel()

	p := pipeline.New(
		emptyResolver(),
		fetcherReturning("<html><body><p>hello</p></body></html>", 200, "text/html"),
		noopDispatcher(),
		extractorReturning("Hello", "<p>hello</p>"),
		passthroughPostProcessor(),
		newConfig(),
	)

	result, err := p.Run(context.Background(), "example.com/article")
	require.NoError(t, err)
	assert.Equal(t, "Hello", result.Title)
	assert.Contains(t, result.HTML, "hello")
	assert.Equal(t, 200, result.Status)
}

func TestPipeline_Run_MimeExcludeReturnsPolicyError(t *testing.T) {
	t.Parallel()

	dispatcher := &mock.MimeDispatcher{
		DispatchFn: func(_ string) readflow.MimeInfo {
			return readflow.MimeInfo{Action: readflow.MimeActionExclude, Name: "blocked"}
		},
	}

	p := pipeline.New(
		emptyResolver(),
		fetcherReturning("binary", 200, "application/octet-stream"),
		dispatcher,
		extractorReturning("", ""),
		passthroughPostProcessor(),
		newConfig(),
	)

	result, err := p.Run(context.Background(), "example.com/file.bin")
	assert.Nil(t, result)
	assert.Equal(t, readflow.EBLOCKED, readflow.ErrorCode(err))
}

func TestPipeline_Run_MimeLinkReturnsStubImmediately(t *testing.T) {
	t.Parallel()

	dispatcher := &mock.MimeDispatcher{
		DispatchFn: func(_ string) readflow.MimeInfo {
			return readflow.MimeInfo{Action: readflow.MimeActionLink, Type: "image", Name: "a photo"}
		},
	}
	extractor := &mock.Extractor{
		ProcessFn: func(_ string, _ string) (*readflow.ExtractResult, error) {
			t.Fatal("extractor should not run for a link-dispatched response")
			return nil, nil
		},
	}

	p := pipeline.New(
		emptyResolver(),
		fetcherReturning("binarydata", 200, "image/png"),
		dispatcher,
		extractor,
		passthroughPostProcessor(),
		newConfig(),
	)

	result, err := p.Run(context.Background(), "example.com/photo.png")
	require.NoError(t, err)
	assert.Contains(t, result.HTML, "<img")
	assert.Equal(t, 200, result.Status)
}

func TestPipeline_Run_ExtractionFailureReturnsPlaceholderResult(t *testing.T) {
	t.Parallel()

	extractor := &mock.Extractor{
		ProcessFn: func(_ string, _ string) (*readflow.ExtractResult, error) {
			return &readflow.ExtractResult{OK: false}, nil
		},
	}

	p := pipeline.New(
		emptyResolver(),
		fetcherReturning("<html></html>", 404, "text/html"),
		noopDispatcher(),
		extractor,
		passthroughPostProcessor(),
		newConfig(),
	)

	result, err := p.Run(context.Background(), "example.com/gone")
	require.NoError(t, err)
	assert.Equal(t, 404, result.Status)
	assert.Equal(t, readflow.DefaultErrorMessage, result.HTML)
}

func TestPipeline_Run_BlockedURLNeverFetches(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, _ string) (*readflow.FetchedResponse, error) {
			t.Fatal("fetcher should not run for a blocked URL")
			return nil, nil
		},
	}

	p := pipeline.New(
		emptyResolver(),
		fetcher,
		noopDispatcher(),
		extractorReturning("", ""),
		passthroughPostProcessor(),
		newConfig(readflow.WithBlockedURLs([]string{"example.com"})),
	)

	result, err := p.Run(context.Background(), "http://example.com/article")
	assert.Nil(t, result)
	assert.Equal(t, readflow.EBLOCKED, readflow.ErrorCode(err))
}

func TestPipeline_Run_MultiPageComposesAcrossPages(t *testing.T) {
	t.Parallel()

	pages := map[string]string{
		"http://example.com/1": "page one",
		"http://example.com/2": "page two",
		"http://example.com/3": "page three",
	}
	nextLinks := map[string]string{
		"http://example.com/1": "http://example.com/2",
		"http://example.com/2": "http://example.com/3",
	}

	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (*readflow.FetchedResponse, error) {
			return &readflow.FetchedResponse{Status: 200, Headers: map[string]string{"Content-Type": "text/html"}, Body: []byte(pages[url]), EffectiveURL: url}, nil
		},
	}
	extractor := &mock.Extractor{
		ProcessFn: func(html string, url string) (*readflow.ExtractResult, error) {
			return &readflow.ExtractResult{ContentHTML: html, OK: true, NextPageURL: nextLinks[url]}, nil
		},
	}

	p := pipeline.New(
		emptyResolver(),
		fetcher,
		noopDispatcher(),
		extractor,
		passthroughPostProcessor(),
		newConfig(),
	)

	result, err := p.Run(context.Background(), "http://example.com/1")
	require.NoError(t, err)
	assert.Contains(t, result.HTML, "page one")
	assert.Contains(t, result.HTML, "page two")
	assert.Contains(t, result.HTML, "page three")
}

func TestPipeline_Run_MultiPageAbandonsOnRevisitedURL(t *testing.T) {
	t.Parallel()

	fetchCount := 0
	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (*readflow.FetchedResponse, error) {
			fetchCount++
			return &readflow.FetchedResponse{Status: 200, Headers: map[string]string{"Content-Type": "text/html"}, Body: []byte("body"), EffectiveURL: url}, nil
		},
	}
	// next_page_link always points back at page 1, simulating a
	// misconfigured site loop.
	extractor := &mock.Extractor{
		ProcessFn: func(html string, url string) (*readflow.ExtractResult, error) {
			return &readflow.ExtractResult{ContentHTML: html, OK: true, NextPageURL: "http://example.com/1"}, nil
		},
	}

	p := pipeline.New(
		emptyResolver(),
		fetcher,
		noopDispatcher(),
		extractor,
		passthroughPostProcessor(),
		newConfig(),
	)

	result, err := p.Run(context.Background(), "http://example.com/1")
	require.NoError(t, err)
	assert.Contains(t, result.HTML, "truncated")
	// page 1 fetched once, page 1 revisit detected on the first loop
	// iteration without a second fetch of the same URL succeeding into
	// another loop pass.
	assert.Equal(t, 1, fetchCount)
}

func TestPipeline_Run_MultiPageDisabledStopsAtFirstPage(t *testing.T) {
	t.Parallel()

	extractor := &mock.Extractor{
		ProcessFn: func(_ string, url string) (*readflow.ExtractResult, error) {
			return &readflow.ExtractResult{ContentHTML: "only page", OK: true, NextPageURL: "http://example.com/2"}, nil
		},
	}

	p := pipeline.New(
		emptyResolver(),
		fetcherReturning("<html></html>", 200, "text/html"),
		noopDispatcher(),
		extractor,
		passthroughPostProcessor(),
		newConfig(func(c *readflow.Config) { c.MultiPage = false }),
	)

	result, err := p.Run(context.Background(), "http://example.com/1")
	require.NoError(t, err)
	assert.Equal(t, "only page", result.HTML)
}

func TestPipeline_Run_RejectsMalformedURL(t *testing.T) {
	t.Parallel()

	p := pipeline.New(
		emptyResolver(),
		fetcherReturning("", 200, ""),
		noopDispatcher(),
		extractorReturning("", ""),
		passthroughPostProcessor(),
		newConfig(),
	)

	result, err := p.Run(context.Background(), "://bad")
	assert.Nil(t, result)
	assert.Equal(t, readflow.EINVALID, readflow.ErrorCode(err))
}

func TestPipeline_Run_MimeDispatchUsesContentTypeHeader(t *testing.T) {
	t.Parallel()

	dispatcher := mime.New(map[string]readflow.DispatchEntry{
		"application/pdf": {Action: readflow.MimeActionLink, Name: "PDF"},
	})

	p := pipeline.New(
		emptyResolver(),
		fetcherReturning("%PDF-1.4", 200, "application/pdf"),
		dispatcher,
		extractorReturning("", ""),
		passthroughPostProcessor(),
		newConfig(),
	)

	result, err := p.Run(context.Background(), "http://example.com/doc.pdf")
	require.NoError(t, err)
	assert.Contains(t, result.HTML, "<a")
}
