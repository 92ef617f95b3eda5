package site

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testServer() *Server {
	cfg := &Config{
		Listen:       DefaultListen,
		BibFiles:     []string{"unused.bib"},
		AuthorFilter: "Bond",
		Pages: []Page{
			{ID: "home", Name: "Home", Desc: "Humble home page", Content: "<p>Welcome!</p>"},
			{ID: "pubs", Name: "Publications"},
			{ID: "cv", Name: "CV"},
		},
	}
	bibHTML := `<p class="bib-nav"></p><div class="bib-entry" id="x"><i>JAIR</i></div>`
	return NewServer(cfg, bibHTML, nil)
}

func get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	testServer().Router().ServeHTTP(rec, req)
	return rec
}

func TestHomePage(t *testing.T) {
	rec := get(t, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<title>Home</title>") {
		t.Errorf("home page missing title:\n%s", body)
	}
	if !strings.Contains(body, "<p>Welcome!</p>") {
		t.Error("configured page content must be inserted unescaped")
	}
	if !strings.Contains(body, `href="/pubs.html"`) {
		t.Error("nav must link all configured pages")
	}
}

func TestPubsPageEmbedsBibliography(t *testing.T) {
	rec := get(t, "/pubs.html")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /pubs.html = %d, want 200", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<div class="bib-entry" id="x"><i>JAIR</i></div>`) {
		t.Errorf("bibliography fragment must be embedded verbatim:\n%s", body)
	}
}

func TestGenericPage(t *testing.T) {
	rec := get(t, "/cv.html")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /cv.html = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "<title>CV</title>") {
		t.Error("generic page must render from the nav table")
	}
}

func TestUnknownPage404(t *testing.T) {
	if rec := get(t, "/nope.html"); rec.Code != http.StatusNotFound {
		t.Errorf("GET /nope.html = %d, want 404", rec.Code)
	}
}

func TestContentTypeHeader(t *testing.T) {
	rec := get(t, "/")
	if got := rec.Header().Get("Content-Type"); got != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", got)
	}
}
