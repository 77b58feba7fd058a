package readflow

import (
	"context"
	"time"
)

// Result is the final record returned by Pipeline.Run.
type Result struct {
	Status      int
	HTML        string
	Title       string
	Language    string
	URL         string
	ContentType string
	OpenGraph   map[string]string
	Summary     string
}

// Pipeline orchestrates fetch → single-page promotion → extraction →
// multi-page composition → post-processing for a single article
// request. One Pipeline value may be used
// concurrently by multiple callers; it holds no per-request mutable
// state of its own.
type Pipeline interface {
	Run(ctx context.Context, rawURL string) (*Result, error)
}

// Config carries the options that shape extraction and post-processing
// behavior. NewConfig applies the documented defaults.
type Config struct {
	Debug               bool
	RewriteRelativeURLs bool
	SinglePage          bool
	MultiPage           bool
	ErrorMessage        string
	AllowedURLs         []string
	BlockedURLs         []string
	XSSFilter           bool
	ContentTypeExc      map[string]DispatchEntry
	ContentLinks        LinkPolicy
	SummaryWords        int

	HTTPClient    HTTPClientConfig
	Extractor     ExtractorConfig
	ConfigBuilder ConfigBuilderConfig
}

// HTTPClientConfig configures the Fetcher's underlying HTTP client.
type HTTPClientConfig struct {
	// Timeout bounds a single fetch, including redirects.
	Timeout time.Duration
}

// ExtractorConfig configures Extractor-level behavior that sits above
// a single Process call.
type ExtractorConfig struct {
	// LogXPathWarnings enables the once-per-occurrence warning logged
	// when a configured XPath expression fails to compile or evaluate.
	LogXPathWarnings bool
}

// ConfigBuilderConfig configures ConfigResolver-level behavior.
type ConfigBuilderConfig struct {
	// DisableWildcardMatch skips the ".example.com" wildcard fallback
	// in BuildForHost, requiring an exact per-host rule file.
	DisableWildcardMatch bool
}

// DefaultErrorMessage is shown in Result.HTML when extraction fails and
// Config.ErrorMessage was not set.
const DefaultErrorMessage = "Sorry, readflow was unable to automatically extract article content from this page."

// DefaultSummaryWords is the default word count for Summary.
const DefaultSummaryWords = 55

// DefaultHTTPClientTimeout bounds a single fetch when Config.HTTPClient.Timeout
// is left unset.
const DefaultHTTPClientTimeout = 10 * time.Second

// ConfigOption configures a Config via functional options, matching the
// teacher's Option func(*T) idiom.
type ConfigOption func(*Config)

// WithDebug enables verbose logging.
func WithDebug(v bool) ConfigOption { return func(c *Config) { c.Debug = v } }

// WithAllowedURLs sets the allow-list substrings.
func WithAllowedURLs(substrings []string) ConfigOption {
	return func(c *Config) { c.AllowedURLs = substrings }
}

// WithBlockedURLs sets the block-list substrings.
func WithBlockedURLs(substrings []string) ConfigOption {
	return func(c *Config) { c.BlockedURLs = substrings }
}

// WithContentLinks sets the link policy.
func WithContentLinks(policy LinkPolicy) ConfigOption {
	return func(c *Config) { c.ContentLinks = policy }
}

// WithContentTypeExc sets the MIME dispatch table.
func WithContentTypeExc(table map[string]DispatchEntry) ConfigOption {
	return func(c *Config) { c.ContentTypeExc = table }
}

// WithErrorMessage overrides the placeholder shown on extraction
// failure.
func WithErrorMessage(msg string) ConfigOption { return func(c *Config) { c.ErrorMessage = msg } }

// WithHTTPClientTimeout sets the Fetcher's request timeout.
func WithHTTPClientTimeout(d time.Duration) ConfigOption {
	return func(c *Config) { c.HTTPClient.Timeout = d }
}

// WithExtractorLogXPathWarnings toggles the Extractor's malformed-XPath
// warning log.
func WithExtractorLogXPathWarnings(v bool) ConfigOption {
	return func(c *Config) { c.Extractor.LogXPathWarnings = v }
}

// WithConfigBuilderDisableWildcardMatch disables the ConfigResolver's
// ".example.com" wildcard fallback, requiring an exact rule file per
// host.
func WithConfigBuilderDisableWildcardMatch(v bool) ConfigOption {
	return func(c *Config) { c.ConfigBuilder.DisableWildcardMatch = v }
}

// NewConfig returns a Config with its documented defaults applied,
// then overridden by opts in order.
func NewConfig(opts ...ConfigOption) *Config {
	c := &Config{
		RewriteRelativeURLs: true,
		SinglePage:          true,
		MultiPage:           true,
		ErrorMessage:        DefaultErrorMessage,
		ContentTypeExc:      DefaultDispatchTable(),
		ContentLinks:        LinkPolicyPreserve,
		SummaryWords:        DefaultSummaryWords,
		HTTPClient:          HTTPClientConfig{Timeout: DefaultHTTPClientTimeout},
		Extractor:           ExtractorConfig{LogXPathWarnings: true},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
