// Package pipeline orchestrates fetch, single-page promotion,
// extraction, multi-page composition, and post-processing into one
// Pipeline.Run call.
package pipeline

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"readflow"
	"readflow/bloom"
	"readflow/mime"
	"readflow/xpath"
)

// multiPageExpectedURLs sizes the Bloom pre-check for one article's
// next_page_link chain. Chains this long are not expected in practice;
// the exact map behind it has no such limit.
const multiPageExpectedURLs = 64

// Pipeline runs the full fetch-extract-compose flow that turns a raw
// URL into a Result. It holds no per-request mutable state; a single
// value may serve concurrent Run calls.
type Pipeline struct {
	Resolver      readflow.ConfigResolver
	Fetcher       readflow.Fetcher
	Dispatcher    readflow.MimeDispatcher
	Extractor     readflow.Extractor
	PostProcessor readflow.PostProcessor
	Config        *readflow.Config

	logger *slog.Logger
}

var _ readflow.Pipeline = (*Pipeline)(nil)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// New builds a Pipeline from its collaborators. cfg must not be nil;
// use readflow.NewConfig for documented defaults.
func New(resolver readflow.ConfigResolver, fetcher readflow.Fetcher, dispatcher readflow.MimeDispatcher, extractor readflow.Extractor, post readflow.PostProcessor, cfg *readflow.Config, opts ...Option) *Pipeline {
	p := &Pipeline{
		Resolver:      resolver,
		Fetcher:       fetcher,
		Dispatcher:    dispatcher,
		Extractor:     extractor,
		PostProcessor: post,
		Config:        cfg,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// dispatchOutcome is what MIME dispatch decided for one fetched
// response: a stub Result to return immediately, a policy error, or
// neither (proceed to extraction).
type dispatchOutcome struct {
	result *readflow.Result
	err    error
}

func (p *Pipeline) dispatch(resp *readflow.FetchedResponse) dispatchOutcome {
	info := p.Dispatcher.Dispatch(resp.ContentType())
	if !info.HasAction() {
		return dispatchOutcome{}
	}
	if info.Action == readflow.MimeActionExclude {
		return dispatchOutcome{err: readflow.Errorf(readflow.EBLOCKED, "content type %q excluded by dispatch rule %q", resp.ContentType(), info.Name)}
	}
	return dispatchOutcome{result: &readflow.Result{
		Status:      resp.Status,
		HTML:        mime.Synthesize(info, resp.EffectiveURL, resp.Body),
		URL:         resp.EffectiveURL,
		ContentType: resp.ContentType(),
	}}
}

func (p *Pipeline) policy() *readflow.URLPolicy {
	return &readflow.URLPolicy{Allowed: p.Config.AllowedURLs, Blocked: p.Config.BlockedURLs}
}

// Run executes the full pipeline for rawURL.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (*readflow.Result, error) {
	normalized, err := readflow.NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}
	if err := p.policy().Check(normalized); err != nil {
		return nil, err
	}

	resp, err := p.Fetcher.Fetch(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if err := p.policy().Check(resp.EffectiveURL); err != nil {
		return nil, err
	}

	if outcome := p.dispatch(resp); outcome.result != nil || outcome.err != nil {
		return outcome.result, outcome.err
	}

	html := string(resp.Body)
	effectiveURL := resp.EffectiveURL
	primaryHTML := html

	host, err := readflow.Host(effectiveURL)
	if err != nil {
		return nil, err
	}
	cfg, err := p.Resolver.BuildForHost(host, true)
	if err != nil {
		return nil, err
	}

	promoted := false
	if p.Config.SinglePage && len(cfg.SinglePageLink) > 0 {
		if newHTML, newURL, newResp, ok := p.promoteSinglePage(ctx, html, effectiveURL, cfg); ok {
			if newResp != nil {
				if outcome := p.dispatch(newResp); outcome.result != nil || outcome.err != nil {
					return outcome.result, outcome.err
				}
			}
			html, effectiveURL, primaryHTML = newHTML, newURL, newHTML
			promoted = true
		}
	}

	result, err := p.Extractor.Process(html, effectiveURL)
	if err != nil {
		return nil, err
	}

	if !result.OK {
		return &readflow.Result{
			Status:      resp.Status,
			HTML:        p.Config.ErrorMessage,
			URL:         effectiveURL,
			ContentType: resp.ContentType(),
		}, nil
	}

	contentHTML := result.ContentHTML
	finalURL := effectiveURL

	if !promoted && p.Config.MultiPage && result.NextPageURL != "" {
		contentHTML, finalURL = p.composeMultiPage(ctx, contentHTML, effectiveURL, result.NextPageURL)
	}

	isWikipedia := strings.Contains(host, "wikipedia.org")
	processed, err := p.PostProcessor.Process(contentHTML, finalURL, readflow.PostProcessOptions{
		RewriteRelativeURLs: p.Config.RewriteRelativeURLs,
		LinkPolicy:          p.Config.ContentLinks,
		IsWikipedia:         isWikipedia,
	})
	if err != nil {
		return nil, err
	}

	summaryWords := p.Config.SummaryWords
	if summaryWords <= 0 {
		summaryWords = readflow.DefaultSummaryWords
	}

	return &readflow.Result{
		Status:      resp.Status,
		HTML:        processed,
		Title:       result.Title,
		Language:    result.Language,
		URL:         finalURL,
		ContentType: resp.ContentType(),
		OpenGraph:   p.PostProcessor.OpenGraph(primaryHTML),
		Summary:     p.PostProcessor.Summary(processed, summaryWords),
	}, nil
}

// promoteSinglePage evaluates cfg.SinglePageLink against html and, on a
// match that differs from effectiveURL, fetches the candidate and
// returns its body/URL/response for the caller to re-run MIME dispatch
// on.
func (p *Pipeline) promoteSinglePage(ctx context.Context, html, effectiveURL string, cfg *readflow.SiteConfig) (newHTML string, newURL string, resp *readflow.FetchedResponse, ok bool) {
	doc, err := xpath.Parse(html)
	if err != nil {
		return "", "", nil, false
	}
	candidate, found, errs := xpath.FirstLink(doc, cfg.SinglePageLink)
	for _, e := range errs {
		p.logger.Warn("single_page_link evaluation failed", "error", e)
	}
	if !found {
		return "", "", nil, false
	}
	resolved, err := resolveAgainst(candidate, effectiveURL)
	if err != nil || resolved == effectiveURL {
		return "", "", nil, false
	}
	fetched, err := p.Fetcher.Fetch(ctx, resolved)
	if err != nil {
		p.logger.Warn("single_page_link fetch failed", "url", resolved, "error", err)
		return "", "", nil, false
	}
	return string(fetched.Body), fetched.EffectiveURL, fetched, true
}

const multiPageTruncationNotice = "<p>This article has been truncated; the remaining pages could not be retrieved.</p>"

// composeMultiPage follows next_page_url chains, appending each page's
// extracted content to contentHTML, and returns the accumulated
// content plus the final effective URL reached. Any failure abandons the loop and appends
// a placeholder noting truncation; the first page's content is always
// preserved.
func (p *Pipeline) composeMultiPage(ctx context.Context, contentHTML, effectiveURL, nextPageURL string) (string, string) {
	visited := bloom.NewVisitedSet(multiPageExpectedURLs)
	visited.Record(effectiveURL)

	currentURL := effectiveURL
	next := nextPageURL

	for next != "" {
		resolved, err := resolveAgainst(next, currentURL)
		if err != nil {
			return contentHTML + multiPageTruncationNotice, currentURL
		}
		if visited.Seen(resolved) {
			return contentHTML + multiPageTruncationNotice, currentURL
		}

		resp, err := p.Fetcher.Fetch(ctx, resolved)
		if err != nil {
			return contentHTML + multiPageTruncationNotice, currentURL
		}
		if info := p.Dispatcher.Dispatch(resp.ContentType()); info.HasAction() {
			return contentHTML + multiPageTruncationNotice, currentURL
		}
		visited.Record(resp.EffectiveURL)

		result, err := p.Extractor.Process(string(resp.Body), resp.EffectiveURL)
		if err != nil || !result.OK {
			return contentHTML + multiPageTruncationNotice, currentURL
		}

		contentHTML += result.ContentHTML
		currentURL = resp.EffectiveURL
		next = result.NextPageURL
	}

	return contentHTML, currentURL
}

// resolveAgainst resolves raw against base, rejecting non-HTTP(S)
// schemes.
func resolveAgainst(raw, base string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", err
	}
	resolved := baseURL.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", readflow.Errorf(readflow.EINVALID, "unsupported scheme in resolved URL %q", resolved.String())
	}
	return resolved.String(), nil
}
