package mock

import "readflow"

var _ readflow.PostProcessor = (*PostProcessor)(nil)

// PostProcessor is a mock implementation of readflow.PostProcessor.
type PostProcessor struct {
	ProcessFn   func(contentHTML string, effectiveURL string, opts readflow.PostProcessOptions) (string, error)
	OpenGraphFn func(originalHTML string) map[string]string
	SummaryFn   func(html string, maxWords int) string
}

func (p *PostProcessor) Process(contentHTML string, effectiveURL string, opts readflow.PostProcessOptions) (string, error) {
	return p.ProcessFn(contentHTML, effectiveURL, opts)
}

func (p *PostProcessor) OpenGraph(originalHTML string) map[string]string {
	return p.OpenGraphFn(originalHTML)
}

func (p *PostProcessor) Summary(html string, maxWords int) string {
	return p.SummaryFn(html, maxWords)
}

var _ readflow.Converter = (*Converter)(nil)

// Converter is a mock implementation of readflow.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
