package readflow

// Converter converts HTML to Markdown. PostProcessor.Summary uses it to
// strip tags before word-counting.
type Converter interface {
	Convert(html string) (string, error)
}
