// Package xpath evaluates the XPath directives in a SiteConfig against
// a parsed HTML document, using antchfx/htmlquery (golang.org/x/net/html
// underneath). A malformed expression is never fatal: it is reported to
// the caller as an error alongside a "no match" result, per readflow's
// Extractor error model.
package xpath

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// Parse parses rawHTML into a document usable by the other functions in
// this package.
func Parse(rawHTML string) (*html.Node, error) {
	return htmlquery.Parse(strings.NewReader(rawHTML))
}

// Nodes evaluates expr against doc. A compile or evaluation error is
// returned alongside a nil slice; callers treat this as "no match" and
// log the error once.
func Nodes(doc *html.Node, expr string) ([]*html.Node, error) {
	return htmlquery.QueryAll(doc, expr)
}

// Text returns the trimmed inner text of node. For a node matched by an
// attribute-valued expression (e.g. "//a/@href") this is the attribute
// value itself, since antchfx/htmlquery represents attribute matches as
// text-bearing pseudo-nodes.
func Text(node *html.Node) string {
	return strings.TrimSpace(htmlquery.InnerText(node))
}

// OuterHTML serializes node including its own tag.
func OuterHTML(node *html.Node) string {
	return htmlquery.OutputHTML(node, true)
}

// FirstText tries each expression in exprs in order against doc and
// returns the trimmed text of the first node of the first expression
// that yields a non-empty result. Malformed expressions
// are skipped and collected into errs rather than aborting evaluation.
func FirstText(doc *html.Node, exprs []string) (value string, ok bool, errs []error) {
	for _, expr := range exprs {
		nodes, err := Nodes(doc, expr)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, n := range nodes {
			text := Text(n)
			if text != "" {
				return text, true, errs
			}
		}
	}
	return "", false, errs
}

// FirstNode is like FirstText but returns the matched node itself,
// for directives (body) whose result must be treated as an HTML
// subtree rather than flattened to text.
func FirstNode(doc *html.Node, exprs []string) (node *html.Node, ok bool, errs []error) {
	for _, expr := range exprs {
		nodes, err := Nodes(doc, expr)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for _, n := range nodes {
			if strings.TrimSpace(OuterHTML(n)) != "" {
				return n, true, errs
			}
		}
	}
	return nil, false, errs
}

// Attr returns the named attribute of node, or "" if absent.
func Attr(node *html.Node, name string) string {
	return htmlquery.SelectAttr(node, name)
}

// FirstLink evaluates each expression in exprs against doc and returns
// the first resolved link candidate: an element's href attribute if
// present, otherwise the node's own text/attribute value.
func FirstLink(doc *html.Node, exprs []string) (value string, ok bool, errs []error) {
	for _, expr := range exprs {
		nodes, err := Nodes(doc, expr)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if len(nodes) == 0 {
			continue
		}
		first := nodes[0]
		if href := Attr(first, "href"); href != "" {
			return strings.TrimSpace(href), true, errs
		}
		if text := Text(first); text != "" {
			return text, true, errs
		}
	}
	return "", false, errs
}
