package mock

import "readflow"

var _ readflow.ConfigResolver = (*ConfigResolver)(nil)

// ConfigResolver is a mock implementation of readflow.ConfigResolver.
type ConfigResolver struct {
	BuildForHostFn   func(host string, addToCache bool) (*readflow.SiteConfig, error)
	LoadSiteConfigFn func(host string, exactHostMatch bool) (*readflow.SiteConfig, bool, error)
}

func (r *ConfigResolver) BuildForHost(host string, addToCache bool) (*readflow.SiteConfig, error) {
	return r.BuildForHostFn(host, addToCache)
}

func (r *ConfigResolver) LoadSiteConfig(host string, exactHostMatch bool) (*readflow.SiteConfig, bool, error) {
	return r.LoadSiteConfigFn(host, exactHostMatch)
}

var _ readflow.ConfigFileStore = (*ConfigFileStore)(nil)

// ConfigFileStore is a mock implementation of readflow.ConfigFileStore.
type ConfigFileStore struct {
	LookupFn func(filename string) (string, bool)
}

func (s *ConfigFileStore) Lookup(filename string) (string, bool) {
	return s.LookupFn(filename)
}
