package postprocess

import (
	"strings"

	"github.com/antchfx/htmlquery"
)

// openGraph scans the original fetched HTML for og: meta properties.
func openGraph(originalHTML string) map[string]string {
	result := map[string]string{}

	doc, err := htmlquery.Parse(strings.NewReader(originalHTML))
	if err != nil {
		return result
	}

	nodes, err := htmlquery.QueryAll(doc, "//meta[@property]")
	if err != nil {
		return result
	}

	for _, n := range nodes {
		prop := htmlquery.SelectAttr(n, "property")
		if !strings.HasPrefix(prop, "og:") {
			continue
		}
		key := strings.ReplaceAll(prop, ":", "_")
		result[key] = htmlquery.SelectAttr(n, "content")
	}

	return result
}
