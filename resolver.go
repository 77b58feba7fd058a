package readflow

// ConfigFileStore maps a rule-file name (e.g. "example.com.txt") to an
// absolute path on disk. It is built once from a set
// of directories and treated as immutable afterward.
type ConfigFileStore interface {
	// Lookup returns the path for filename, or ok=false if no
	// directory contains it.
	Lookup(filename string) (path string, ok bool)
}

// ConfigResolver resolves and merges per-host SiteConfig directives.
// Implementations must tolerate concurrent readers with at-most-one
// builder per key. config.Resolver caches only the merged (site ∪
// global) config, under "<host>.merged"; unmerged site-specific lookups
// through LoadSiteConfig are not cached and re-read the rule file each
// time.
type ConfigResolver interface {
	// BuildForHost returns the merged SiteConfig for host (site-specific
	// ∪ global). When addToCache is true the merged result is cached
	// under "<host>.merged".
	BuildForHost(host string, addToCache bool) (*SiteConfig, error)

	// LoadSiteConfig returns the unmerged site-specific SiteConfig for
	// host, or ok=false if no rule file matches. When exactHostMatch is
	// true, wildcard lookup is skipped.
	LoadSiteConfig(host string, exactHostMatch bool) (cfg *SiteConfig, ok bool, err error)
}
