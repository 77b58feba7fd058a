package mock

import "readflow"

var _ readflow.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of readflow.Extractor.
type Extractor struct {
	ProcessFn func(html string, url string) (*readflow.ExtractResult, error)
}

func (e *Extractor) Process(html string, url string) (*readflow.ExtractResult, error) {
	return e.ProcessFn(html, url)
}
