package site

import "html/template"

// pageTemplate is parsed at init time to fail fast on template errors.
var pageTemplate *template.Template

func init() {
	pageTemplate = template.Must(template.New("page").Parse(pageHTML))
}

// pageData holds data for the page template. Body is pre-rendered HTML:
// either a page's configured content or the bibliography fragment,
// both trusted site-owner input.
type pageData struct {
	Title       string
	Description string
	Page        string
	Nav         []Page
	Body        template.HTML
}

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <meta name="description" content="{{.Description}}">
  <title>{{.Title}}</title>
  <style>
    body {
      font-family: Georgia, "Times New Roman", serif;
      max-width: 52em;
      margin: 0 auto;
      padding: 0 1em 3em;
      line-height: 1.5;
      color: #222;
    }
    nav.site-nav {
      border-bottom: 1px solid #ccc;
      padding: 0.8em 0;
      margin-bottom: 1.5em;
    }
    nav.site-nav a {
      margin-right: 1.2em;
      text-decoration: none;
    }
    nav.site-nav a.current {
      font-weight: bold;
    }
    .bib-entry {
      margin-bottom: 0.8em;
    }
    .bib-meta {
      display: block;
      color: #555;
    }
    .bib-title {
      font-size: 1.05em;
    }
    .bib-venue {
      display: block;
    }
    .bib-nav {
      line-height: 1.9;
    }
  </style>
</head>
<body>
  <nav class="site-nav">
    {{- range .Nav}}
    <a href="/{{.ID}}.html"{{if eq .ID $.Page}} class="current"{{end}}>{{.Name}}</a>
    {{- end}}
  </nav>
  <h1>{{.Title}}</h1>
{{.Body}}
</body>
</html>
`
