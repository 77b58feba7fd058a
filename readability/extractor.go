package readability

import (
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"readflow"
)

// Ensure Adapter implements readflow.ReadabilityAdapter at compile time.
var _ readflow.ReadabilityAdapter = (*Adapter)(nil)

// Adapter wraps go-readability as the fallback heuristic for title and
// body detection. Unlike go-readability's own all-or-nothing Article,
// DetectTitle and DetectBody run independently: a directive may already
// have supplied one field, and autodetect must only fill the other.
type Adapter struct{}

// NewAdapter creates a new Adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// DetectTitle runs go-readability and reports its guess at the title.
func (a *Adapter) DetectTitle(rawHTML string) (readflow.FieldResult, error) {
	article, err := a.parse(rawHTML)
	if err != nil {
		return readflow.FieldResult{}, err
	}
	title := strings.TrimSpace(article.Title)
	return readflow.FieldResult{Title: title, OK: title != ""}, nil
}

// DetectBody runs go-readability and reports its guess at the main
// content.
func (a *Adapter) DetectBody(rawHTML string) (readflow.FieldResult, error) {
	article, err := a.parse(rawHTML)
	if err != nil {
		return readflow.FieldResult{}, err
	}
	content := strings.TrimSpace(article.Content)
	return readflow.FieldResult{ContentHTML: content, OK: content != ""}, nil
}

func (a *Adapter) parse(rawHTML string) (readability.Article, error) {
	if rawHTML == "" {
		return readability.Article{}, readflow.Errorf(readflow.EINVALID, "empty HTML input")
	}
	// go-readability needs a base URL to resolve relative links internally;
	// absolutization of the final content happens later in postprocess, so
	// any well-formed placeholder is sufficient here.
	base, _ := url.Parse("http://readability.invalid/")
	return readability.FromReader(strings.NewReader(rawHTML), base)
}
