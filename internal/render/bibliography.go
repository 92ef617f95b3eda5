package render

import (
	"sort"
	"strconv"
	"strings"

	"github.com/fcbond/bibhtml/internal/bibtex"
)

// undatedYear is the bucket label for entries with no year field.
const undatedYear = "undated"

// Bibliography renders the complete publication list as an HTML
// fragment: a decade-grouped navigation index, a separator, then one
// section per year in descending order with undated entries last.
//
// When authorFilter is non-empty, only entries whose author field (or
// editor field, when author is absent) contains the filter text
// case-insensitively are included. Entry order within a year follows
// the input order.
func Bibliography(entries []bibtex.Entry, authorFilter string) string {
	visible := entries
	if authorFilter != "" {
		visible = make([]bibtex.Entry, 0, len(entries))
		for _, e := range entries {
			if authorMatches(e.Get("author", "editor"), authorFilter) {
				visible = append(visible, e)
			}
		}
	}

	// Group by year, undated entries in their own bucket. Years are
	// collected in first-seen order so that equal sort values (several
	// non-numeric labels) stay deterministic.
	byYear := make(map[string][]bibtex.Entry)
	var years []string
	for _, e := range visible {
		year := e.Get("year")
		if year == "" {
			year = undatedYear
		}
		if _, ok := byYear[year]; !ok {
			years = append(years, year)
		}
		byYear[year] = append(byYear[year], e)
	}
	sort.SliceStable(years, func(i, j int) bool {
		return yearValue(years[i]) > yearValue(years[j])
	})

	// Year sections.
	sections := make([]string, 0, len(years))
	for _, year := range years {
		label := year
		if year == undatedYear {
			label = "Undated"
		}
		rendered := make([]string, 0, len(byYear[year]))
		for _, e := range byYear[year] {
			rendered = append(rendered, Entry(e))
		}
		sections = append(sections,
			`<h3 id="`+label+`">`+label+"</h3>\n<div class=\"bib-section\">\n\n"+
				strings.Join(rendered, "\n\n")+"\n\n</div>")
	}

	return navHTML(years) + "\n\n<hr>\n\n" + strings.Join(sections, "\n\n\n")
}

// navHTML builds the navigation index: one row per decade, most recent
// first, each year an in-page anchor. Years arrive sorted descending,
// so rows keep that order within each decade.
func navHTML(years []string) string {
	byDecade := make(map[int][]string)
	var decades []int
	for _, y := range years {
		n, err := strconv.Atoi(y)
		if err != nil || n < 0 {
			continue
		}
		decade := n - n%10
		if _, ok := byDecade[decade]; !ok {
			decades = append(decades, decade)
		}
		byDecade[decade] = append(byDecade[decade], y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(decades)))

	rows := make([]string, 0, len(decades))
	for _, decade := range decades {
		links := make([]string, 0, len(byDecade[decade]))
		for _, y := range byDecade[decade] {
			links = append(links, `<a href="#`+y+`">`+y+`</a>`)
		}
		rows = append(rows, strings.Join(links, " · "))
	}
	return "<p class=\"bib-nav\">\n  " + strings.Join(rows, "\n  <br>\n  ") + "\n</p>"
}

// yearValue maps a year label to its sort value; non-numeric labels
// (the undated bucket) sort below every real year.
func yearValue(y string) int {
	if n, err := strconv.Atoi(y); err == nil && n >= 0 {
		return n
	}
	return 0
}
