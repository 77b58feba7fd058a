package readflow

// LinkPolicy controls how <a> tags in the final content block are
// treated.
type LinkPolicy string

// Link policies.
const (
	LinkPolicyPreserve  LinkPolicy = "preserve"
	LinkPolicyFootnotes LinkPolicy = "footnotes"
	LinkPolicyRemove    LinkPolicy = "remove"
)

// PostProcessor sanitizes and normalizes an extracted content block
// into its final serialized form.
type PostProcessor interface {
	// Process runs absolutization, nesting collapse, link-policy
	// enforcement, whitespace normalization, and serialization over
	// contentHTML (the extractor's selected content block) relative to
	// effectiveURL, and returns the final article HTML.
	Process(contentHTML string, effectiveURL string, opts PostProcessOptions) (string, error)

	// OpenGraph extracts og:* meta properties from the original fetched
	// HTML.
	OpenGraph(originalHTML string) map[string]string

	// Summary strips tags from html and returns the first maxWords
	// words, appending an ellipsis if truncated. maxWords<=0 uses the
	// spec default of 55.
	Summary(html string, maxWords int) string
}

// PostProcessOptions configures one PostProcessor.Process call.
type PostProcessOptions struct {
	RewriteRelativeURLs bool
	LinkPolicy          LinkPolicy
	// IsWikipedia disables footnote link conversion for Wikipedia hosts.
	IsWikipedia bool
}
