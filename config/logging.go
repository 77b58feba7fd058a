package config

import (
	"log/slog"
	"time"

	"readflow"
)

var _ readflow.ConfigResolver = (*LoggingResolver)(nil)

// LoggingResolver wraps a ConfigResolver with debug logging, active
// when Config's "debug" option is enabled.
type LoggingResolver struct {
	next   readflow.ConfigResolver
	logger *slog.Logger
}

// NewLoggingResolver creates a new LoggingResolver.
func NewLoggingResolver(next readflow.ConfigResolver, logger *slog.Logger) *LoggingResolver {
	return &LoggingResolver{next: next, logger: logger}
}

// BuildForHost delegates to next and logs the host and duration.
func (r *LoggingResolver) BuildForHost(host string, addToCache bool) (*readflow.SiteConfig, error) {
	begin := time.Now()
	cfg, err := r.next.BuildForHost(host, addToCache)
	r.logger.Info("config resolved",
		"host", host,
		"cached", addToCache,
		"error", err,
		"duration", time.Since(begin),
	)
	return cfg, err
}

// LoadSiteConfig delegates to next and logs the host and match outcome.
func (r *LoggingResolver) LoadSiteConfig(host string, exactHostMatch bool) (*readflow.SiteConfig, bool, error) {
	begin := time.Now()
	cfg, ok, err := r.next.LoadSiteConfig(host, exactHostMatch)
	r.logger.Info("site config lookup",
		"host", host,
		"exact", exactHostMatch,
		"found", ok,
		"duration", time.Since(begin),
	)
	return cfg, ok, err
}
