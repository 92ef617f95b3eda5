package bibtex

import "strings"

// monthNumbers maps English month names and their three-letter
// abbreviations to integer form.
var monthNumbers = map[string]string{
	"jan": "1", "january": "1",
	"feb": "2", "february": "2",
	"mar": "3", "march": "3",
	"apr": "4", "april": "4",
	"may": "5",
	"jun": "6", "june": "6",
	"jul": "7", "july": "7",
	"aug": "8", "august": "8",
	"sep": "9", "september": "9",
	"oct": "10", "october": "10",
	"nov": "11", "november": "11",
	"dec": "12", "december": "12",
}

// NormalizeMonth converts a month field value to its integer form.
// Numeric values are kept as-is, as is anything unrecognized.
func NormalizeMonth(s string) string {
	v := strings.TrimSpace(s)
	if v == "" || isNumber(v) {
		return v
	}
	if n, ok := monthNumbers[strings.ToLower(v)]; ok {
		return n
	}
	return s
}
