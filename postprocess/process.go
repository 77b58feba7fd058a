// Package postprocess implements PostProcessor: URL absolutization, link-policy enforcement, nesting
// collapse, whitespace normalization, serialization, OpenGraph
// extraction, and summary generation, built on goquery/golang.org/x/net/html
// for DOM work and a Converter for tag-stripping.
package postprocess

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"readflow"
)

// Ensure Processor implements readflow.PostProcessor at compile time.
var _ readflow.PostProcessor = (*Processor)(nil)

// Processor is the default PostProcessor implementation.
type Processor struct {
	converter readflow.Converter
}

// New builds a Processor. converter is used solely by Summary to strip
// tags before word-counting.
func New(converter readflow.Converter) *Processor {
	return &Processor{converter: converter}
}

// Process applies the post-extraction steps to contentHTML: relative URL
// rewriting, content-link policy, nesting collapse, whitespace
// normalization, empty-node and empty-paragraph removal, and
// serialization. It runs no XSS sanitizer; Config.XSSFilter is not read
// here.
func (p *Processor) Process(contentHTML, effectiveURL string, opts readflow.PostProcessOptions) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(contentHTML))
	if err != nil {
		return "", readflow.Errorf(readflow.EINTERNAL, "parse content block: %v", err)
	}

	root := rootSelection(doc)

	if opts.RewriteRelativeURLs {
		absolutizeURLs(root, effectiveURL)
	}
	applyLinkPolicy(root, opts.LinkPolicy, opts.IsWikipedia)

	node := root.Get(0)
	node = collapseNesting(node)
	normalizeWhitespace(node)
	dropEmptyTextNodes(node)
	stripEmptyParagraphs(node)

	return serialize(node)
}

// rootSelection returns the single meaningful root of the parsed
// fragment: goquery always wraps a fragment in html/head/body, so when
// body has exactly one element child that child is the real root;
// otherwise (e.g. a multi-page content block with several appended
// top-level nodes) body itself is treated as the container.
func rootSelection(doc *goquery.Document) *goquery.Selection {
	body := doc.Find("body")
	children := body.Children()
	if children.Length() == 1 {
		return children.First()
	}
	return body
}

// OpenGraph extracts og: meta properties from the original fetched
// HTML.
func (p *Processor) OpenGraph(originalHTML string) map[string]string {
	return openGraph(originalHTML)
}

// Summary produces a tag-stripped, word-truncated summary.
func (p *Processor) Summary(html string, maxWords int) string {
	return summarize(p.converter, html, maxWords)
}
