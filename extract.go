package readflow

// ExtractResult holds the outcome of running the extraction engine over
// one fetched HTML document.
type ExtractResult struct {
	// Title is the resolved page title, from directives or heuristic.
	Title string

	// ContentHTML is the selected content block, serialized, before
	// post-processing.
	ContentHTML string

	// Language is the detected document language (e.g. "en"), or empty
	// if undetermined.
	Language string

	// NextPageURL is the resolved next_page_link target for this
	// document, or empty if none was found.
	NextPageURL string

	// OK reports whether a content block was produced at all (by
	// directives or heuristic). A false OK never carries an error.
	OK bool
}

// FieldResult is what the heuristic fallback (ReadabilityAdapter)
// contributes for a single missing field — title and body are detected
// independently, never as a single pass over both.
type FieldResult struct {
	Title       string
	ContentHTML string
	OK          bool
}

// ReadabilityAdapter is the external readability-style heuristic.
// Its DOM scoring internals are not redesigned here; only this contract
// is used by Extractor.
type ReadabilityAdapter interface {
	// DetectTitle returns a heuristic title for html, or OK=false if
	// none could be produced.
	DetectTitle(html string) (FieldResult, error)

	// DetectBody returns a heuristic content block for html, or
	// OK=false if none could be produced.
	DetectBody(html string) (FieldResult, error)
}

// LanguageDetector identifies the natural language of an HTML document.
// Implementations may use adapter-specific
// metadata (e.g. trafilatura's Metadata.Language) or fall back to
// standard meta/lang attributes.
type LanguageDetector interface {
	Detect(html string) (language string, ok bool)
}

// Extractor applies a host's SiteConfig directives, with heuristic
// fallback, to produce title/body/language/next-page information from
// HTML.
type Extractor interface {
	// Process parses html (already fetched from url) and returns the
	// extraction outcome. It never returns an error for missing
	// directives; see ExtractResult.OK.
	Process(html string, url string) (*ExtractResult, error)
}
