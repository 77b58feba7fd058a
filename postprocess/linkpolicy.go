package postprocess

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"readflow"
)

// applyLinkPolicy rewrites anchors under root per policy. The
// footnotes conversion is skipped for Wikipedia hosts; removal is not.
func applyLinkPolicy(root *goquery.Selection, policy readflow.LinkPolicy, isWikipedia bool) {
	switch policy {
	case readflow.LinkPolicyRemove:
		root.Find("a").Each(func(_ int, s *goquery.Selection) {
			s.ReplaceWithHtml(s.Text())
		})
	case readflow.LinkPolicyFootnotes:
		if !isWikipedia {
			convertLinksToFootnotes(root)
		}
	}
}

func convertLinksToFootnotes(root *goquery.Selection) {
	var notes []string
	n := 0
	root.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		n++
		notes = append(notes, fmt.Sprintf("<li>%s</li>", href))
		s.ReplaceWithHtml(fmt.Sprintf("%s<sup>[%d]</sup>", s.Text(), n))
	})
	if len(notes) > 0 {
		root.AppendHtml(fmt.Sprintf(`<ol class="footnotes">%s</ol>`, strings.Join(notes, "")))
	}
}
