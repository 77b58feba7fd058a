package postprocess

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var httpAbsoluteRe = regexp.MustCompile(`(?i)^https?://`)

// absolutizeURLs rewrites a@href, img@src, and iframe@src under root —
// including on root itself — resolving relative values against
// effectiveURL.
func absolutizeURLs(root *goquery.Selection, effectiveURL string) {
	base, err := url.Parse(effectiveURL)
	if err != nil {
		return
	}

	rewrite := func(s *goquery.Selection, attr string) {
		raw, exists := s.Attr(attr)
		if !exists {
			return
		}
		resolved, ok := resolveAttr(base, raw)
		if !ok {
			return
		}
		s.SetAttr(attr, resolved)
	}

	switch goquery.NodeName(root) {
	case "a":
		rewrite(root, "href")
	case "img", "iframe":
		rewrite(root, "src")
	}

	root.Find("a[href]").Each(func(_ int, s *goquery.Selection) { rewrite(s, "href") })
	root.Find("img[src]").Each(func(_ int, s *goquery.Selection) { rewrite(s, "src") })
	root.Find("iframe[src]").Each(func(_ int, s *goquery.Selection) { rewrite(s, "src") })
}

// resolveAttr normalizes and resolves one attribute value. It returns
// false when the value is empty after normalization, so the caller
// silently skips the entry.
func resolveAttr(base *url.URL, raw string) (string, bool) {
	value := normalizeAttrValue(raw)
	if value == "" {
		return "", false
	}
	if httpAbsoluteRe.MatchString(value) {
		return value, true
	}

	collapsedBase := *base
	collapsedBase.Path = collapseSlashes(collapsedBase.Path)

	ref, err := url.Parse(value)
	if err != nil {
		return "", false
	}
	resolved := collapsedBase.ResolveReference(ref).String()
	if resolved == "" {
		return "", false
	}
	return resolved, true
}

// normalizeAttrValue trims surrounding whitespace while preserving
// internal spaces: trim, decode %20 to space (catching encoded edge
// whitespace), trim again, then re-encode remaining internal spaces.
func normalizeAttrValue(raw string) string {
	v := strings.TrimSpace(raw)
	v = strings.ReplaceAll(v, "%20", " ")
	v = strings.TrimSpace(v)
	v = strings.ReplaceAll(v, " ", "%20")
	return v
}

func collapseSlashes(path string) string {
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}
	return path
}
