// Package mime classifies a fetched response's Content-Type header
// against a configured dispatch table.
package mime

import (
	"regexp"
	"strings"

	"readflow"
)

var mimeRe = regexp.MustCompile(`([-\w]+)/([-\w+]+)`)

// Ensure Dispatcher implements readflow.MimeDispatcher at compile time.
var _ readflow.MimeDispatcher = (*Dispatcher)(nil)

// Dispatcher parses a Content-Type header and looks it up, first by
// full mime then by top-level type, against a configured table.
type Dispatcher struct {
	table map[string]readflow.DispatchEntry
}

// New builds a Dispatcher from a content_type_exc table;
// keys may be a full mime ("application/pdf") or a bare top-level type
// ("image").
func New(table map[string]readflow.DispatchEntry) *Dispatcher {
	normalized := make(map[string]readflow.DispatchEntry, len(table))
	for key, entry := range table {
		normalized[strings.ToLower(key)] = entry
	}
	return &Dispatcher{table: normalized}
}

// Dispatch classifies contentType. Lookup order is (full mime, then
// top-level type); the first hit populates Action and Name. A miss
// leaves MimeInfo.HasAction false.
func (d *Dispatcher) Dispatch(contentType string) readflow.MimeInfo {
	match := mimeRe.FindStringSubmatch(contentType)
	if match == nil {
		return readflow.MimeInfo{Mime: strings.TrimSpace(contentType)}
	}

	typ, subtype := strings.ToLower(match[1]), strings.ToLower(match[2])
	fullMime := typ + "/" + subtype

	info := readflow.MimeInfo{Mime: fullMime, Type: typ, Subtype: subtype}

	if entry, ok := d.table[fullMime]; ok {
		info.Action = entry.Action
		info.Name = entry.Name
		return info
	}
	if entry, ok := d.table[typ]; ok {
		info.Action = entry.Action
		info.Name = entry.Name
		return info
	}

	return info
}
