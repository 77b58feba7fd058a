package extractor

import (
	"strings"

	"golang.org/x/net/html"

	"readflow/xpath"
)

// stripNodes removes every node matched by any expression in exprs
// from root's subtree.
func stripNodes(root *html.Node, exprs []string, e *Extractor) {
	for _, expr := range exprs {
		nodes, err := xpath.Nodes(root, expr)
		if err != nil {
			if e != nil && e.logger != nil && e.logXPathWarnings {
				e.logger.Warn("malformed strip xpath treated as no match", "error", err)
			}
			continue
		}
		for _, n := range nodes {
			removeNode(n)
		}
	}
}

// stripByAttrSubstring removes elements whose named attribute contains
// any of values as a plain substring (for "class" as well, so "promo"
// matches class="promo-banner"), implementing the "strip_id_or_class"
// directive.
func stripByAttrSubstring(root *html.Node, attr string, values []string) {
	if len(values) == 0 {
		return
	}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			value := attrValue(n, attr)
			for _, v := range values {
				if v != "" && strings.Contains(value, v) {
					removeNode(n)
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; {
			nc := c.NextSibling
			walk(c)
			c = nc
		}
	}
	for c := root.FirstChild; c != nil; {
		nc := c.NextSibling
		walk(c)
		c = nc
	}
}

// stripImages removes <img> elements whose src attribute contains any
// of values as a substring ("strip_image_src" directive).
func stripImages(root *html.Node, values []string) {
	if len(values) == 0 {
		return
	}
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "img" {
			src := attrValue(n, "src")
			for _, v := range values {
				if v != "" && strings.Contains(src, v) {
					removeNode(n)
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; {
			nc := c.NextSibling
			walk(c)
			c = nc
		}
	}
	for c := root.FirstChild; c != nil; {
		nc := c.NextSibling
		walk(c)
		c = nc
	}
}

// pruneEmptyText removes whitespace-only text nodes, collapsing noise
// left behind by stripping.
func pruneEmptyText(root *html.Node) {
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; {
			nc := c.NextSibling
			if c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" {
				removeNode(c)
			} else {
				walk(c)
			}
			c = nc
		}
	}
	walk(root)
}

func attrValue(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func removeNode(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}
