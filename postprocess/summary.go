package postprocess

import (
	"strings"

	"readflow"
)

// summarize strips tags via converter and truncates to maxWords,
// appending an ellipsis when truncated. maxWords<=0 uses
// readflow.DefaultSummaryWords.
func summarize(converter readflow.Converter, rawHTML string, maxWords int) string {
	if maxWords <= 0 {
		maxWords = readflow.DefaultSummaryWords
	}
	text, err := converter.Convert(rawHTML)
	if err != nil {
		text = rawHTML
	}

	words := strings.Fields(text)
	if len(words) <= maxWords {
		return strings.Join(words, " ")
	}
	return strings.Join(words[:maxWords], " ") + "..."
}
