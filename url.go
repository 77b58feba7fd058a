package readflow

import (
	"net/url"
	"strings"
)

// NormalizeURL rewrites feed:// to http://, prepends http:// to
// schemaless input, and otherwise returns the URL unchanged. It returns an error for a URL that cannot be
// parsed at all.
func NormalizeURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(trimmed, "feed://"):
		trimmed = "http://" + strings.TrimPrefix(trimmed, "feed://")
	case !strings.Contains(trimmed, "://"):
		trimmed = "http://" + trimmed
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return "", Errorf(EINVALID, "malformed URL %q: %v", raw, err)
	}
	if u.Host == "" {
		return "", Errorf(EINVALID, "malformed URL %q: missing host", raw)
	}
	return trimmed, nil
}

// URLPolicy implements the allowed_urls/blocked_urls substring policy.
// When Allowed is non-empty, a URL is allowed iff any
// entry case-insensitively occurs in it, and Blocked is ignored
// entirely. Otherwise a URL is blocked iff any Blocked entry
// case-insensitively occurs in it.
type URLPolicy struct {
	Allowed []string
	Blocked []string
}

// Check returns nil if rawURL passes the policy, or an EBLOCKED error
// naming the rejecting rule.
func (p *URLPolicy) Check(rawURL string) error {
	lower := strings.ToLower(rawURL)

	if len(p.Allowed) > 0 {
		for _, substr := range p.Allowed {
			if substr == "" {
				continue
			}
			if strings.Contains(lower, strings.ToLower(substr)) {
				return nil
			}
		}
		return Errorf(EBLOCKED, "url %q matches no allowed_urls entry", rawURL)
	}

	for _, substr := range p.Blocked {
		if substr == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(substr)) {
			return Errorf(EBLOCKED, "url %q matches blocked_urls entry %q", rawURL, substr)
		}
	}
	return nil
}

// Host returns the lowercased host of rawURL with a leading "www."
// stripped.
func Host(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", Errorf(EINVALID, "malformed URL %q: %v", rawURL, err)
	}
	return NormalizeHost(u.Hostname()), nil
}

// NormalizeHost lowercases host and strips a leading "www." label.
func NormalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	return strings.TrimPrefix(host, "www.")
}
