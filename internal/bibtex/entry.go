// Package bibtex loads BibTeX bibliography files into flat entry records.
package bibtex

import "strings"

// Entry represents one bibliographic record.
type Entry struct {
	// Type is the entry type (article, inproceedings, ...), lower-cased.
	Type string
	// Key is the citation key, preserved verbatim.
	Key string
	// Fields maps lower-cased field names to their resolved values.
	Fields map[string]string
}

// Get returns the first non-empty value among the named fields, trimmed.
// Field names are looked up as given; callers pass lower-case names.
func (e Entry) Get(keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(e.Fields[k]); v != "" {
			return v
		}
	}
	return ""
}
