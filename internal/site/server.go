package site

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Server serves the site. The bibliography fragment is rendered once
// before construction and held immutable for the process lifetime;
// updated bib files take effect only on restart.
type Server struct {
	cfg     *Config
	bibHTML template.HTML
	logger  *slog.Logger
}

// NewServer builds a Server from validated config and the pre-rendered
// bibliography HTML fragment.
func NewServer(cfg *Config, bibHTML string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{cfg: cfg, bibHTML: template.HTML(bibHTML), logger: logger}
}

// Router creates a chi router with all site routes mounted.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		s.showPage(w, req, HomePageID)
	})
	r.Get("/{page}.html", func(w http.ResponseWriter, req *http.Request) {
		s.showPage(w, req, chi.URLParam(req, "page"))
	})

	// Static assets, including the .bib sources themselves.
	fileServer := http.StripPrefix("/static/", http.FileServer(http.Dir("static")))
	r.Get("/static/*", fileServer.ServeHTTP)

	return r
}

// showPage renders one page from the nav table. Unknown pages 404.
func (s *Server) showPage(w http.ResponseWriter, req *http.Request, id string) {
	page, ok := s.cfg.PageByID(id)
	if !ok {
		http.NotFound(w, req)
		return
	}

	body := template.HTML(page.Content)
	if page.ID == PubsPageID {
		body = s.bibHTML
	}

	data := pageData{
		Title:       page.Name,
		Description: page.Desc,
		Page:        page.ID,
		Nav:         s.cfg.Pages,
		Body:        body,
	}

	// Render to a buffer first so a template failure becomes a clean 500
	// instead of a half-written page.
	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		s.logger.Error("rendering page", "page", id, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// Run serves HTTP until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:    s.cfg.Listen,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", s.cfg.Listen)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return <-errCh
}
