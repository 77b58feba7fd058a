package readflow

// Parser selects the HTML parser a SiteConfig directs extraction to use.
type Parser string

// Supported parser values. ParserLibxml is the default when a SiteConfig
// does not declare parser.
const (
	ParserLibxml   Parser = "libxml"
	ParserHTML5Lib Parser = "html5lib"
)

// OptBool is a tri-state boolean: declared-true, declared-false, or
// undeclared. Merge semantics distinguish "undeclared"
// from "declared false", so this is never collapsed to a plain bool.
type OptBool struct {
	set   bool
	value bool
}

// BoolTrue returns a declared-true OptBool.
func BoolTrue() OptBool { return OptBool{set: true, value: true} }

// BoolFalse returns a declared-false OptBool.
func BoolFalse() OptBool { return OptBool{set: true, value: false} }

// IsSet reports whether the value was explicitly declared.
func (b OptBool) IsSet() bool { return b.set }

// Raw returns the declared value and whether it was set at all. Callers
// that need the undeclared/false distinction (e.g. merge) use this;
// callers that just want a usable boolean use Value.
func (b OptBool) Raw() (value bool, set bool) { return b.value, b.set }

// Value returns the declared value, or def if undeclared.
func (b OptBool) Value(def bool) bool {
	if !b.set {
		return def
	}
	return b.value
}

// Default values applied when a tri-state option is undeclared and the
// caller asks for a usable value rather than the raw tri-state.
const (
	DefaultTidy                = false
	DefaultPrune               = true
	DefaultAutodetectOnFailure = true
)

// FindReplace is one (find, replace) pair. SiteConfig keeps FindString
// and ReplaceString as two parallel slices rather than a slice of pairs
// to mirror the rule-file format directly (each is collected from a
// distinct key), but FindReplace is exposed for callers that want the
// paired view.
type FindReplace struct {
	Find    string
	Replace string
}

// SiteConfig is the directive set resolved for one hostname. Multi-valued fields preserve first-seen order and may be
// deduplicated on merge; Find/Replace are positionally paired and are
// never deduplicated.
type SiteConfig struct {
	Title            []string
	Body             []string
	Author           []string
	Date             []string
	Strip            []string
	StripIDOrClass   []string
	StripImageSrc    []string
	SinglePageLink   []string
	NextPageLink     []string
	HTTPHeader       []string
	TestURL          []string

	FindString    []string
	ReplaceString []string

	Tidy               OptBool
	Prune              OptBool
	AutodetectOnFailure OptBool
	ParserName         *string

	// CacheKey identifies the source rule file for cache indexing, or
	// is empty if the config was not loaded from a single named file
	// (e.g. the merged config returned by ConfigResolver.BuildForHost,
	// which clears CacheKey; Merge itself copies current's CacheKey).
	CacheKey string
}

// ParserOrDefault returns the configured parser, defaulting to
// ParserLibxml when undeclared.
func (c *SiteConfig) ParserOrDefault() Parser {
	if c.ParserName == nil || *c.ParserName == "" {
		return ParserLibxml
	}
	return Parser(*c.ParserName)
}

// FindReplacePairs returns the paired (find, replace) view of
// FindString/ReplaceString. The two slices are always index-aligned;
// callers must never mutate one without the other.
func (c *SiteConfig) FindReplacePairs() []FindReplace {
	n := len(c.FindString)
	if len(c.ReplaceString) < n {
		n = len(c.ReplaceString)
	}
	pairs := make([]FindReplace, n)
	for i := 0; i < n; i++ {
		pairs[i] = FindReplace{Find: c.FindString[i], Replace: c.ReplaceString[i]}
	}
	return pairs
}

// unionStrings appends to current each value of new not already
// present, preserving first-seen order. Merge uses it for every
// multi-valued field except FindString/ReplaceString, which concatenate
// without dedup. TestURL is multi-valued but append-only per the parsing
// rules and is unioned the same way here, since duplicate test URLs
// carry no meaning.
func unionStrings(current, new []string) []string {
	if len(new) == 0 {
		return current
	}
	seen := make(map[string]struct{}, len(current))
	for _, v := range current {
		seen[v] = struct{}{}
	}
	out := current
	for _, v := range new {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Merge merges new into current and returns the result as a new
// SiteConfig (current and new are not mutated).
// Merging any SiteConfig with an empty SiteConfig yields a value equal
// to the non-empty side.
func Merge(current, new *SiteConfig) *SiteConfig {
	out := &SiteConfig{
		Title:          unionStrings(append([]string{}, current.Title...), new.Title),
		Body:           unionStrings(append([]string{}, current.Body...), new.Body),
		Author:         unionStrings(append([]string{}, current.Author...), new.Author),
		Date:           unionStrings(append([]string{}, current.Date...), new.Date),
		Strip:          unionStrings(append([]string{}, current.Strip...), new.Strip),
		StripIDOrClass: unionStrings(append([]string{}, current.StripIDOrClass...), new.StripIDOrClass),
		StripImageSrc:  unionStrings(append([]string{}, current.StripImageSrc...), new.StripImageSrc),
		SinglePageLink: unionStrings(append([]string{}, current.SinglePageLink...), new.SinglePageLink),
		NextPageLink:   unionStrings(append([]string{}, current.NextPageLink...), new.NextPageLink),
		HTTPHeader:     unionStrings(append([]string{}, current.HTTPHeader...), new.HTTPHeader),
		TestURL:        unionStrings(append([]string{}, current.TestURL...), new.TestURL),

		FindString:    append(append([]string{}, current.FindString...), new.FindString...),
		ReplaceString: append(append([]string{}, current.ReplaceString...), new.ReplaceString...),

		Tidy:                current.Tidy,
		Prune:               current.Prune,
		AutodetectOnFailure: current.AutodetectOnFailure,
		ParserName:          current.ParserName,

		CacheKey: current.CacheKey,
	}

	if !out.Tidy.IsSet() {
		out.Tidy = new.Tidy
	}
	if !out.Prune.IsSet() {
		out.Prune = new.Prune
	}
	if !out.AutodetectOnFailure.IsSet() {
		out.AutodetectOnFailure = new.AutodetectOnFailure
	}
	if out.ParserName == nil {
		out.ParserName = new.ParserName
	}

	return out
}
