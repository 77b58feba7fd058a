package mime

import (
	"fmt"
	"html"

	"readflow"
)

// Synthesize builds the HTML stub returned immediately for a response
// whose MimeDispatcher action is "link": an anchor for most types, an <img> for images, and a
// <pre>-wrapped body for text/plain.
//
// No PDF text-extraction library is available anywhere in this
// module's dependency set, so application/pdf falls back to the same
// anchor stub as other non-text link types rather than attempting to
// extract text from the body.
func Synthesize(info readflow.MimeInfo, rawURL string, body []byte) string {
	label := info.Name
	if label == "" {
		label = rawURL
	}

	switch info.Type {
	case "image":
		return fmt.Sprintf(`<img src="%s" alt="%s">`, html.EscapeString(rawURL), html.EscapeString(label))
	case "text":
		return fmt.Sprintf(`<pre>%s</pre>`, html.EscapeString(string(body)))
	default:
		return fmt.Sprintf(`<a href="%s">%s</a>`, html.EscapeString(rawURL), html.EscapeString(label))
	}
}
