// Package extractor implements the directive+heuristic extraction
// algorithm: it resolves a SiteConfig for
// a host, applies find/replace rewrites, evaluates XPath directives,
// falls back to a heuristic adapter for whichever field is still
// missing, strips unwanted nodes, and detects the next-page link and
// document language.
package extractor

import (
	"bytes"
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	"readflow"
	"readflow/xpath"
)

// Ensure Extractor implements readflow.Extractor at compile time.
var _ readflow.Extractor = (*Extractor)(nil)

// Extractor combines a ConfigResolver, a ReadabilityAdapter fallback,
// and a LanguageDetector into the full per-page extraction algorithm.
type Extractor struct {
	resolver         readflow.ConfigResolver
	adapter          readflow.ReadabilityAdapter
	detector         readflow.LanguageDetector
	logger           *slog.Logger
	logXPathWarnings bool
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger attaches a logger used to report malformed XPath
// expressions once per occurrence.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		e.logger = logger
	}
}

// WithLogXPathWarnings toggles the malformed-XPath warning log.
// Enabled by default.
func WithLogXPathWarnings(v bool) Option {
	return func(e *Extractor) {
		e.logXPathWarnings = v
	}
}

// New builds an Extractor.
func New(resolver readflow.ConfigResolver, adapter readflow.ReadabilityAdapter, detector readflow.LanguageDetector, opts ...Option) *Extractor {
	e := &Extractor{
		resolver:         resolver,
		adapter:          adapter,
		detector:         detector,
		logger:           slog.Default(),
		logXPathWarnings: true,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Process applies directive extraction with heuristic fallback to
// rawHTML fetched from rawURL. It returns a well-formed ExtractResult
// even when no content could be produced; ExtractResult.OK reports
// whether a content block was produced.
func (e *Extractor) Process(rawHTML, rawURL string) (*readflow.ExtractResult, error) {
	host, err := readflow.Host(rawURL)
	if err != nil {
		return nil, err
	}

	cfg, err := e.resolver.BuildForHost(host, true)
	if err != nil {
		return nil, err
	}

	rewritten := applyFindReplace(rawHTML, cfg.FindReplacePairs())
	rewritten = tidyIfRequested(rewritten, cfg)

	doc, err := xpath.Parse(rewritten)
	if err != nil {
		return nil, readflow.Errorf(readflow.EINTERNAL, "parse HTML for %s: %v", rawURL, err)
	}

	title, _, titleErrs := xpath.FirstText(doc, cfg.Title)
	bodyNode, bodyOK, bodyErrs := xpath.FirstNode(doc, cfg.Body)
	_, _, authorErrs := xpath.FirstText(doc, cfg.Author)
	_, _, dateErrs := xpath.FirstText(doc, cfg.Date)
	e.logXPathErrors(host, titleErrs, bodyErrs, authorErrs, dateErrs)

	autodetect := cfg.AutodetectOnFailure.Value(readflow.DefaultAutodetectOnFailure)

	if title == "" && autodetect {
		if field, ferr := e.adapter.DetectTitle(rewritten); ferr == nil && field.OK {
			title = field.Title
		}
	}

	var contentHTML string
	if bodyOK {
		stripNodes(bodyNode, cfg.Strip, e)
		stripByAttrSubstring(bodyNode, "id", cfg.StripIDOrClass)
		stripByAttrSubstring(bodyNode, "class", cfg.StripIDOrClass)
		stripImages(bodyNode, cfg.StripImageSrc)
		if cfg.Prune.Value(readflow.DefaultPrune) {
			pruneEmptyText(bodyNode)
		}
		contentHTML = strings.TrimSpace(xpath.OuterHTML(bodyNode))
	}
	if contentHTML == "" && autodetect {
		if field, ferr := e.adapter.DetectBody(rewritten); ferr == nil && field.OK {
			contentHTML = field.ContentHTML
		}
	}

	nextPageURL, _, nextErrs := xpath.FirstLink(doc, cfg.NextPageLink)
	e.logXPathErrors(host, nextErrs)

	language, _ := e.detector.Detect(rewritten)

	return &readflow.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
		Language:    language,
		NextPageURL: nextPageURL,
		OK:          contentHTML != "",
	}, nil
}

func (e *Extractor) logXPathErrors(host string, errGroups ...[]error) {
	if e.logger == nil || !e.logXPathWarnings {
		return
	}
	for _, errs := range errGroups {
		for _, err := range errs {
			e.logger.Warn("malformed xpath expression treated as no match", "host", host, "error", err)
		}
	}
}

func applyFindReplace(rawHTML string, pairs []readflow.FindReplace) string {
	out := rawHTML
	for _, pair := range pairs {
		out = strings.ReplaceAll(out, pair.Find, pair.Replace)
	}
	return out
}

// tidyIfRequested approximates classic HTML tidying by re-serializing
// through golang.org/x/net/html's parser and renderer, normalizing
// malformed markup before directive evaluation runs.
func tidyIfRequested(rawHTML string, cfg *readflow.SiteConfig) string {
	if !cfg.Tidy.Value(readflow.DefaultTidy) {
		return rawHTML
	}
	node, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return rawHTML
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, node); err != nil {
		return rawHTML
	}
	return buf.String()
}
