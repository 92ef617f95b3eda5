package render

import (
	"html"
	"strings"

	"github.com/fcbond/bibhtml/internal/bibtex"
)

// Entry renders a single entry as a styled <div> record: a meta line
// "<person> (<year>).", the title (hyperlinked when a URL is present),
// and the venue line when non-empty.
func Entry(e bibtex.Entry) string {
	year := e.Get("year")
	title := html.EscapeString(e.Get("title"))
	url := e.Get("url")
	author := e.Get("author")
	editor := e.Get("editor")

	// Person line: prefer author, fall back to editor.
	person := "Unknown"
	if raw := e.Get("author", "editor"); raw != "" {
		person = html.EscapeString(FormatNameList(raw))
		if author == "" && editor != "" {
			person += " (eds)"
		}
	}

	var titleEl string
	if url != "" {
		titleEl = `<a class="bib-title" href="` + html.EscapeString(url) + `">` + title + `</a>`
	} else {
		titleEl = `<span class="bib-title">` + title + `</span>`
	}

	var idAttr string
	if e.Key != "" {
		idAttr = ` id="` + html.EscapeString(e.Key) + `"`
	}

	var b strings.Builder
	b.WriteString(`<div class="bib-entry"` + idAttr + ">\n")
	b.WriteString(`  <span class="bib-meta">` + person + " (" + html.EscapeString(year) + ").</span>\n")
	b.WriteString("  " + titleEl + ".\n")
	if venue := Venue(e); venue != "" {
		b.WriteString(`  <span class="bib-venue">` + venue + "</span>\n")
	}
	b.WriteString("</div>")
	return b.String()
}
