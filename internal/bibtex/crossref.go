package bibtex

import "strings"

// ResolveCrossrefs applies one pass of crossref field inheritance: for
// every entry naming a parent via its crossref field, parent fields that
// are absent or empty on the child are copied in.
//
// The pass is deliberately non-transitive: entries are visited once in
// load order and a crossref chain of depth greater than one is not
// followed, so a child inherits whatever its parent holds at the moment
// the child is visited. When two entries share a citation key, the
// later one wins the index slot.
func ResolveCrossrefs(entries []Entry) {
	index := make(map[string]Entry, len(entries))
	for _, e := range entries {
		index[e.Key] = e
	}

	for _, e := range entries {
		key := strings.TrimSpace(e.Fields["crossref"])
		if key == "" {
			continue
		}
		parent, ok := index[key]
		if !ok {
			continue // unresolvable crossref: keep own fields
		}
		for field, value := range parent.Fields {
			if strings.TrimSpace(e.Fields[field]) == "" {
				e.Fields[field] = value
			}
		}
	}
}
