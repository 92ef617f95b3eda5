package render

import (
	"regexp"
	"strings"
	"testing"

	"github.com/fcbond/bibhtml/internal/bibtex"
)

func testEntries() []bibtex.Entry {
	mk := func(key, author, year string) bibtex.Entry {
		fields := map[string]string{"author": author, "title": "Title " + key}
		if year != "" {
			fields["year"] = year
		}
		return bibtex.Entry{Type: "misc", Key: key, Fields: fields}
	}
	return []bibtex.Entry{
		mk("a", "Bond, Francis", "2019"),
		mk("b", "Baldwin, Timothy", "2021"),
		mk("c", "Bond, Francis and Baldwin, Timothy", ""),
		mk("d", "Fellbaum, Christiane", "2005"),
		mk("e", "Bond, Francis", "2021"),
		mk("f", "Sag, Ivan", "2015"),
	}
}

func TestBibliographyYearOrdering(t *testing.T) {
	html := Bibliography(testEntries(), "")

	headingRe := regexp.MustCompile(`<h3 id="[^"]*">([^<]+)</h3>`)
	var got []string
	for _, m := range headingRe.FindAllStringSubmatch(html, -1) {
		got = append(got, m[1])
	}
	want := []string{"2021", "2019", "2015", "2005", "Undated"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("section order = %v, want %v", got, want)
	}
}

func TestBibliographyAuthorFilter(t *testing.T) {
	all := Bibliography(testEntries(), "")
	filtered := Bibliography(testEntries(), "baldwin")

	// Filtering is a subset by citation key ...
	for _, key := range []string{"b", "c"} {
		if !strings.Contains(filtered, `id="`+key+`"`) {
			t.Errorf("filtered output missing entry %q", key)
		}
		if !strings.Contains(all, `id="`+key+`"`) {
			t.Errorf("unfiltered output missing entry %q", key)
		}
	}
	// ... and every excluded entry lacks the substring.
	for _, key := range []string{"a", "d", "e", "f"} {
		if strings.Contains(filtered, `id="`+key+`"`) {
			t.Errorf("filtered output wrongly contains entry %q", key)
		}
	}
}

func TestBibliographyFilterMatchesEditorWhenNoAuthor(t *testing.T) {
	entries := []bibtex.Entry{{
		Type: "proceedings",
		Key:  "proc",
		Fields: map[string]string{
			"editor": "Bond, Francis",
			"title":  "Proceedings",
			"year":   "2020",
		},
	}}
	if got := Bibliography(entries, "bond"); !strings.Contains(got, `id="proc"`) {
		t.Errorf("editor-only entry not matched by author filter:\n%s", got)
	}
}

func TestBibliographyIdempotent(t *testing.T) {
	entries := testEntries()
	first := Bibliography(entries, "Bond")
	second := Bibliography(entries, "Bond")
	if first != second {
		t.Error("two renders of identical input differ")
	}
}

func TestBibliographyNav(t *testing.T) {
	html := Bibliography(testEntries(), "")
	nav := html[:strings.Index(html, "<hr>")]

	// Nav links only numeric years, grouped by decade, descending.
	for _, y := range []string{"2021", "2019", "2015", "2005"} {
		if !strings.Contains(nav, `<a href="#`+y+`">`+y+`</a>`) {
			t.Errorf("nav missing year link %s:\n%s", y, nav)
		}
	}
	if strings.Contains(nav, "Undated") || strings.Contains(nav, "undated") {
		t.Errorf("nav must not link the undated bucket:\n%s", nav)
	}

	// Three decades, three rows: 2020s, 2010s, 2000s.
	rows := strings.Split(nav, "<br>")
	if len(rows) != 3 {
		t.Fatalf("got %d decade rows, want 3:\n%s", len(rows), nav)
	}
	if !strings.Contains(rows[0], "2021") {
		t.Errorf("first decade row should hold 2021: %q", rows[0])
	}
	if !strings.Contains(rows[1], "2019") || !strings.Contains(rows[1], "2015") {
		t.Errorf("second decade row should hold 2019 and 2015: %q", rows[1])
	}
	if !strings.Contains(rows[1], "·") {
		t.Errorf("years within a row are separated by a middle dot: %q", rows[1])
	}
	if !strings.Contains(rows[2], "2005") {
		t.Errorf("third decade row should hold 2005: %q", rows[2])
	}
	if i19, i15 := strings.Index(rows[1], "2019"), strings.Index(rows[1], "2015"); i19 > i15 {
		t.Errorf("years within a decade must be descending: %q", rows[1])
	}
}

func TestBibliographyStructure(t *testing.T) {
	html := Bibliography(testEntries(), "")

	if !strings.HasPrefix(html, `<p class="bib-nav">`) {
		t.Errorf("output must start with the nav block, got %q", html[:40])
	}
	if !strings.Contains(html, "\n\n<hr>\n\n") {
		t.Error("nav and sections must be separated by a horizontal rule")
	}
	if !strings.Contains(html, `<h3 id="Undated">Undated</h3>`) {
		t.Error("undated section must use the Undated label as its anchor")
	}
	if !strings.Contains(html, `<div class="bib-section">`) {
		t.Error("each year section must wrap its entries in a container")
	}
}

func TestBibliographyEmptyFilterKeepsOrder(t *testing.T) {
	entries := testEntries()
	html := Bibliography(entries, "")

	// Both 2021 entries are present and keep input order within the year.
	idxB := strings.Index(html, `id="b"`)
	idxE := strings.Index(html, `id="e"`)
	if idxB == -1 || idxE == -1 {
		t.Fatal("expected both 2021 entries in output")
	}
	if idxB > idxE {
		t.Error("entries within a year must keep load order")
	}
}
