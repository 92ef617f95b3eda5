// Package render turns BibTeX entries into the HTML fragments of a
// publication list: per-entry records, venue lines, and the assembled
// year-grouped bibliography.
package render

import (
	"regexp"
	"strings"
)

// nameSepRe splits a BibTeX author/editor string on the " and "
// separator, case-insensitively.
var nameSepRe = regexp.MustCompile(`(?i)\s+and\s+`)

// splitNames splits an author/editor string into individual names,
// dropping empty fragments.
func splitNames(raw string) []string {
	var names []string
	for _, part := range nameSepRe.Split(raw, -1) {
		if p := strings.TrimSpace(part); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// formatName converts one name to "First Last" display form. Input in
// "Last, First" form is flipped on the first comma; anything else is
// passed through unchanged.
func formatName(name string) string {
	name = strings.TrimSpace(name)
	if last, first, ok := strings.Cut(name, ","); ok {
		return strings.TrimSpace(first) + " " + strings.TrimSpace(last)
	}
	return name
}

// FormatNameList formats a full author/editor string as a prose list:
// "A", "A and B", or "A, B, and C" with an Oxford comma.
func FormatNameList(raw string) string {
	names := splitNames(raw)
	for i, n := range names {
		names[i] = formatName(n)
	}
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + ", and " + names[len(names)-1]
}

// authorMatches reports whether filter appears anywhere in the name
// string, case-insensitively.
func authorMatches(nameStr, filter string) bool {
	return strings.Contains(strings.ToLower(nameStr), strings.ToLower(filter))
}
