package trafilatura

import (
	"strings"

	"github.com/antchfx/htmlquery"
	"github.com/markusmobius/go-trafilatura"

	"readflow"
)

// Ensure Detector implements readflow.LanguageDetector at compile time.
var _ readflow.LanguageDetector = (*Detector)(nil)

// Detector determines the natural language of a document. It is the
// sole remaining role go-trafilatura plays in readflow: full-document
// content extraction is go-readability's job (see the readability
// package); trafilatura's strength here is the metadata it recovers
// during its own boilerplate-removal pass.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect reports the language of rawHTML. It first asks trafilatura,
// which inspects content, meta tags, and declared document language;
// if trafilatura reports nothing it falls back to reading html[@lang]
// or meta[@http-equiv='content-language'] directly.
func (d *Detector) Detect(rawHTML string) (string, bool) {
	if rawHTML == "" {
		return "", false
	}

	opts := trafilatura.Options{EnableFallback: true}
	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err == nil && result != nil {
		if lang := strings.TrimSpace(result.Metadata.Language); lang != "" {
			return lang, true
		}
	}

	return fallbackLanguage(rawHTML)
}

func fallbackLanguage(rawHTML string) (string, bool) {
	doc, err := htmlquery.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return "", false
	}

	if node := htmlquery.FindOne(doc, "//html/@lang"); node != nil {
		if lang := strings.TrimSpace(htmlquery.InnerText(node)); lang != "" {
			return lang, true
		}
	}

	if node := htmlquery.FindOne(doc, "//meta[translate(@http-equiv,'ABCDEFGHIJKLMNOPQRSTUVWXYZ','abcdefghijklmnopqrstuvwxyz')='content-language']/@content"); node != nil {
		if lang := strings.TrimSpace(htmlquery.InnerText(node)); lang != "" {
			return lang, true
		}
	}

	return "", false
}
