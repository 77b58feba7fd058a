package config

import (
	"os"
	"regexp"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
	"readflow"
)

// defaultHostPattern accepts dotted hostnames and IPv4-looking labels;
// it rejects anything containing whitespace or path/query characters
// that would indicate the caller passed a URL instead of a bare host.
var defaultHostPattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9\-\.]*[a-zA-Z0-9])?$`)

// maxHostLength is the longest hostname BuildForHost/LoadSiteConfig
// will accept.
const maxHostLength = 200

var _ readflow.ConfigResolver = (*Resolver)(nil)

// Resolver is the process-wide ConfigResolver. Its
// cache tolerates concurrent readers and deduplicates concurrent
// builders for the same key via singleflight, and merged entries are
// immutable once published.
type Resolver struct {
	store       readflow.ConfigFileStore
	hostPattern *regexp.Regexp

	disableWildcardMatch bool

	cache sync.Map // string -> *readflow.SiteConfig
	group singleflight.Group
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithDisableWildcardMatch skips the ".example.com" wildcard fallback
// in BuildForHost, requiring an exact per-host rule file.
func WithDisableWildcardMatch(v bool) Option {
	return func(r *Resolver) { r.disableWildcardMatch = v }
}

// New returns a Resolver backed by store. A nil hostPattern uses
// defaultHostPattern.
func New(store readflow.ConfigFileStore, hostPattern *regexp.Regexp, opts ...Option) *Resolver {
	if hostPattern == nil {
		hostPattern = defaultHostPattern
	}
	r := &Resolver{store: store, hostPattern: hostPattern}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Resolver) validateHost(host string) (string, error) {
	if host == "" {
		return "", readflow.Errorf(readflow.EINVALID, "empty host")
	}
	if len(host) > maxHostLength {
		return "", readflow.Errorf(readflow.EINVALID, "host %q exceeds %d characters", host, maxHostLength)
	}
	normalized := readflow.NormalizeHost(host)
	if !r.hostPattern.MatchString(normalized) {
		return "", readflow.Errorf(readflow.EINVALID, "host %q fails validation pattern", host)
	}
	return normalized, nil
}

// LoadSiteConfig implements readflow.ConfigResolver.
func (r *Resolver) LoadSiteConfig(host string, exactHostMatch bool) (*readflow.SiteConfig, bool, error) {
	host, err := r.validateHost(host)
	if err != nil {
		return nil, false, err
	}
	cfg, ok := r.loadUnmerged(host, exactHostMatch)
	return cfg, ok, nil
}

// loadUnmerged looks up host's rule file exactly first, then (unless
// exactHostMatch) tries a single wildcard level dropping the leftmost
// label. First match wins.
func (r *Resolver) loadUnmerged(host string, exactHostMatch bool) (*readflow.SiteConfig, bool) {
	if cfg, ok := r.loadFile(host+".txt", host); ok {
		return cfg, true
	}
	if exactHostMatch {
		return nil, false
	}

	parts := strings.SplitN(host, ".", 2)
	if len(parts) != 2 {
		return nil, false
	}
	wildcardHost := "." + parts[1]
	if cfg, ok := r.loadFile(wildcardHost+".txt", wildcardHost); ok {
		return cfg, true
	}
	return nil, false
}

func (r *Resolver) loadFile(filename string, cacheKey string) (*readflow.SiteConfig, bool) {
	path, ok := r.store.Lookup(filename)
	if !ok {
		return nil, false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}
	cfg, ok := ParseSiteConfig(string(data))
	if !ok {
		return nil, false
	}
	if cfg.CacheKey == "" {
		cfg.CacheKey = cacheKey
	}
	return cfg, true
}

// BuildForHost implements readflow.ConfigResolver.
func (r *Resolver) BuildForHost(host string, addToCache bool) (*readflow.SiteConfig, error) {
	host, err := r.validateHost(host)
	if err != nil {
		return nil, err
	}

	mergedKey := host + ".merged"
	if v, ok := r.cache.Load(mergedKey); ok {
		return v.(*readflow.SiteConfig), nil
	}

	v, err, _ := r.group.Do(mergedKey, func() (any, error) {
		if v, ok := r.cache.Load(mergedKey); ok {
			return v.(*readflow.SiteConfig), nil
		}

		site, ok := r.loadUnmerged(host, r.disableWildcardMatch)
		if !ok {
			site = &readflow.SiteConfig{}
		}

		merged := site
		if site.AutodetectOnFailure.Value(readflow.DefaultAutodetectOnFailure) {
			global, ok := r.loadUnmerged("global", true)
			if ok {
				merged = readflow.Merge(site, global)
			}
		}
		merged.CacheKey = ""

		if addToCache {
			r.cache.Store(mergedKey, merged)
		}
		return merged, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*readflow.SiteConfig), nil
}
