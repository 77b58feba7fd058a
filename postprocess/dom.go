package postprocess

import (
	"bytes"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// nestingContainers are the tags whose single-child chains collapse
// into the innermost container.
var nestingContainers = map[string]bool{
	"div": true, "article": true, "section": true, "header": true, "footer": true,
}

// innerHTMLContainers are the tags serialized via innerHTML rather
// than outerXML.
var innerHTMLContainers = map[string]bool{
	"div": true, "article": true, "section": true, "header": true, "footer": true,
	"li": true, "td": true, "body": true,
}

var whitespaceRe = regexp.MustCompile(`[ \t\r\n]+`)

// collapseNesting walks root, then repeatedly replaces it with its
// sole element child while both root and the child are nesting
// containers, returning the effective new root.
func collapseNesting(root *html.Node) *html.Node {
	if root.Type == html.ElementNode {
		for c := root.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				collapseNesting(c)
			}
		}
	}

	for root.Type == html.ElementNode && nestingContainers[root.Data] {
		child, ok := onlyElementChild(root)
		if !ok || !nestingContainers[child.Data] {
			break
		}
		root = child
	}
	return root
}

func onlyElementChild(n *html.Node) (*html.Node, bool) {
	var only *html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.ElementNode:
			if only != nil {
				return nil, false
			}
			only = c
		case html.TextNode:
			if strings.TrimSpace(c.Data) != "" {
				return nil, false
			}
		}
	}
	if only == nil {
		return nil, false
	}
	return only, true
}

// normalizeWhitespace collapses runs of whitespace in text nodes to a
// single space.
func normalizeWhitespace(n *html.Node) {
	if n.Type == html.TextNode {
		n.Data = whitespaceRe.ReplaceAllString(n.Data, " ")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		normalizeWhitespace(c)
	}
}

// dropEmptyTextNodes removes whitespace-only text nodes.
func dropEmptyTextNodes(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		nc := c.NextSibling
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" {
			n.RemoveChild(c)
		} else {
			dropEmptyTextNodes(c)
		}
		c = nc
	}
}

// stripEmptyParagraphs removes <p></p> elements with no meaningful
// content.
func stripEmptyParagraphs(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		nc := c.NextSibling
		if c.Type == html.ElementNode && c.Data == "p" && isEmpty(c) {
			n.RemoveChild(c)
		} else {
			stripEmptyParagraphs(c)
		}
		c = nc
	}
}

func isEmpty(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return false
		}
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) != "" {
			return false
		}
	}
	return true
}

// serialize renders root by its root-tag rule: innerHTML for container
// tags, outerHTML (standing in for outerXML — no XML serializer is
// available in this module's dependency set) otherwise.
func serialize(root *html.Node) (string, error) {
	tag := ""
	if root.Type == html.ElementNode {
		tag = root.Data
	}

	var buf bytes.Buffer
	if innerHTMLContainers[tag] || root.Type != html.ElementNode {
		for c := root.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, root); err != nil {
		return "", err
	}
	return buf.String(), nil
}
