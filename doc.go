// Package readflow turns an arbitrary web URL into a clean, readable
// article. A fetch step retrieves the resource, a site-rules resolver
// selects per-host extraction directives, an extraction engine applies
// those directives (with automatic fallback to heuristic scoring) to the
// parsed HTML, and a post-processing stage sanitizes and normalizes the
// result.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., config/,
// xpath/, readability/, trafilatura/, http/).
package readflow
