package render

import (
	"html"
	"regexp"
	"strings"

	"github.com/fcbond/bibhtml/internal/bibtex"
)

// pageDashRe normalizes the hyphen(s) of a page range, with any
// surrounding whitespace, to a single en-dash.
var pageDashRe = regexp.MustCompile(`\s*-{1,2}\s*`)

// doiPrefixRe strips the resolver prefix from a DOI-shaped URL for
// display.
var doiPrefixRe = regexp.MustCompile(`^https?://(dx\.)?doi\.org/`)

// pages renders the pages field as "pp.&nbsp;<range>" with an en-dash,
// or "" when the field is absent.
func pages(e bibtex.Entry) string {
	p := e.Get("pages")
	if p == "" {
		return ""
	}
	p = pageDashRe.ReplaceAllString(p, "–")
	return "pp. " + html.EscapeString(p)
}

// doiLink renders a DOI as a "DOI: "-prefixed anchor. Bare DOIs resolve
// against doi.org; DOI-shaped URLs are used as-is with the resolver
// prefix stripped from the display text.
func doiLink(doi string) string {
	doi = strings.TrimSpace(doi)
	if doi == "" {
		return ""
	}
	url, display := "https://doi.org/"+doi, doi
	if strings.HasPrefix(doi, "http") {
		url = doi
		display = doiPrefixRe.ReplaceAllString(doi, "")
	}
	return `DOI: <a href="` + html.EscapeString(url) + `">` + html.EscapeString(display) + `</a>`
}

// venueFormats dispatches venue construction on the entry type. The
// rule set is closed; anything not listed here falls back to the note
// field (see Venue).
var venueFormats = map[string]func(bibtex.Entry) string{
	"inproceedings": func(e bibtex.Entry) string {
		var venue string
		if bt := e.Get("booktitle"); bt != "" {
			venue = "In <i>" + html.EscapeString(bt) + "</i>"
		}
		if addr := e.Get("address"); addr != "" {
			venue += ", " + html.EscapeString(addr)
		}
		if pp := pages(e); pp != "" {
			venue += ", " + pp
		}
		return venue
	},

	"article": func(e bibtex.Entry) string {
		var venue string
		if j := e.Get("journal"); j != "" {
			venue = "<i>" + html.EscapeString(j) + "</i>"
			if vol := e.Get("volume"); vol != "" {
				venue += " <b>" + html.EscapeString(vol) + "</b>"
				if num := e.Get("number"); num != "" {
					venue += "(" + html.EscapeString(num) + ")"
				}
			}
		}
		if pp := pages(e); pp != "" {
			if venue != "" {
				venue += ", "
			}
			venue += pp
		}
		return venue
	},

	"book": func(e bibtex.Entry) string {
		var parts []string
		for _, f := range []string{"series", "publisher", "address"} {
			if v := e.Get(f); v != "" {
				parts = append(parts, html.EscapeString(v))
			}
		}
		if isbn := e.Get("isbn"); isbn != "" {
			parts = append(parts, "ISBN "+html.EscapeString(isbn))
		}
		return strings.Join(parts, ". ")
	},

	"incollection": chapterVenue,
	"inbook":       chapterVenue,

	"phdthesis":     thesisVenue,
	"masterthesis":  thesisVenue,
	"mastersthesis": thesisVenue,

	"techreport": func(e bibtex.Entry) string {
		venue := "Technical Report"
		if num := e.Get("number"); num != "" {
			venue += " " + html.EscapeString(num)
		}
		if inst := e.Get("institution"); inst != "" {
			venue += ", " + html.EscapeString(inst)
		}
		return venue
	},

	"proceedings": func(e bibtex.Entry) string {
		var parts []string
		if pub := e.Get("publisher"); pub != "" {
			parts = append(parts, html.EscapeString(pub))
		}
		if addr := e.Get("address"); addr != "" {
			parts = append(parts, html.EscapeString(addr))
		}
		if isbn := e.Get("isbn"); isbn != "" {
			parts = append(parts, "ISBN "+html.EscapeString(isbn))
		}
		return strings.Join(parts, ", ")
	},
}

// chapterVenue renders incollection/inbook entries:
// "In <editors> (ed.), <booktitle> <publisher> pp. <pages>".
func chapterVenue(e bibtex.Entry) string {
	var parts []string
	if ed := e.Get("editor"); ed != "" {
		parts = append(parts, "In "+html.EscapeString(FormatNameList(ed))+" (ed.),")
	}
	if bt := e.Get("booktitle"); bt != "" {
		parts = append(parts, "<i>"+html.EscapeString(bt)+"</i>")
	}
	if pub := e.Get("publisher"); pub != "" {
		parts = append(parts, html.EscapeString(pub))
	}
	if pp := pages(e); pp != "" {
		parts = append(parts, pp)
	}
	return strings.Join(parts, " ")
}

// thesisVenue renders thesis entries with a doctoral or master's label.
func thesisVenue(e bibtex.Entry) string {
	venue := "Master's thesis"
	if strings.Contains(e.Type, "phd") {
		venue = "PhD thesis"
	}
	if school := e.Get("school"); school != "" {
		venue += ", " + html.EscapeString(school)
	}
	return venue
}

// Venue builds the venue/source HTML for one entry: the type-specific
// venue text, then any URL and DOI links, then a parenthesized note if
// its text is not already part of the result.
func Venue(e bibtex.Entry) string {
	var venue string
	if format, ok := venueFormats[e.Type]; ok {
		venue = format(e)
	} else {
		// unpublished, misc, ...
		venue = html.EscapeString(e.Get("note"))
	}

	var links []string
	if url := e.Get("url"); url != "" {
		display := html.EscapeString(url)
		if strings.Contains(url, "aclanthology") || strings.Contains(url, "aclweb.org/anthology") {
			display = "ACL Anthology"
		}
		links = append(links, `<a href="`+html.EscapeString(url)+`">`+display+`</a>`)
	}
	if doi := e.Get("doi"); doi != "" {
		links = append(links, doiLink(doi))
	}
	if len(links) > 0 {
		var sep string
		switch {
		case venue != "" && !strings.HasSuffix(venue, "."):
			sep = ". "
		case venue != "":
			sep = " "
		}
		venue += sep + strings.Join(links, "; ")
	}

	if note := e.Get("note"); note != "" && !strings.Contains(venue, html.EscapeString(note)) {
		venue += " (" + html.EscapeString(note) + ")"
	}

	return strings.TrimSpace(venue)
}
