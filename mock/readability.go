package mock

import "readflow"

var _ readflow.ReadabilityAdapter = (*ReadabilityAdapter)(nil)

// ReadabilityAdapter is a mock implementation of readflow.ReadabilityAdapter.
type ReadabilityAdapter struct {
	DetectTitleFn func(html string) (readflow.FieldResult, error)
	DetectBodyFn  func(html string) (readflow.FieldResult, error)
}

func (a *ReadabilityAdapter) DetectTitle(html string) (readflow.FieldResult, error) {
	return a.DetectTitleFn(html)
}

func (a *ReadabilityAdapter) DetectBody(html string) (readflow.FieldResult, error) {
	return a.DetectBodyFn(html)
}

var _ readflow.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of readflow.LanguageDetector.
type LanguageDetector struct {
	DetectFn func(html string) (string, bool)
}

func (d *LanguageDetector) Detect(html string) (string, bool) {
	return d.DetectFn(html)
}
