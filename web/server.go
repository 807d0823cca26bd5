// Package web provides the interactive display surface: a form that takes
// a listing URL, a read-only results table, and a one-click spreadsheet
// download.
package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/mtoscano/cinelist"
	"github.com/mtoscano/cinelist/excel"
	"github.com/mtoscano/cinelist/scrape"
	"golang.org/x/sync/errgroup"
)

//go:embed templates/index.html
var templatesFS embed.FS

var indexTmpl = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

// Server serves the display surface. The surface owns session state (the
// submitted URL travels with each request); the scraping core stays pure.
type Server struct {
	Addr     string
	Scraper  *scrape.Scraper
	Exporter cinelist.Exporter

	srv *http.Server
}

// NewServer creates a new Server.
func NewServer(addr string, scraper *scrape.Scraper, exporter cinelist.Exporter) *Server {
	return &Server{Addr: addr, Scraper: scraper, Exporter: exporter}
}

// Handler returns the route handler, exposed separately for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /scrape", s.handleScrape)
	mux.HandleFunc("GET /export", s.handleExport)
	return mux
}

// Run serves until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.srv = &http.Server{Addr: s.Addr, Handler: s.Handler()}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := s.srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// pageData is the template payload for the index page.
type pageData struct {
	URL           string
	Error         string
	NotRecognized bool
	Result        *scrape.Result
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.render(w, pageData{})
}

func (s *Server) handleScrape(w http.ResponseWriter, r *http.Request) {
	url := r.FormValue("url")

	res, err := s.Scraper.Scrape(r.Context(), url)
	if err != nil {
		s.render(w, pageData{URL: url, Error: cinelist.ErrorMessage(err)})
		return
	}
	if !res.Recognized() {
		s.render(w, pageData{URL: url, NotRecognized: true})
		return
	}

	s.render(w, pageData{URL: url, Result: res})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	url := r.FormValue("url")

	res, err := s.Scraper.Scrape(r.Context(), url)
	if err != nil {
		http.Error(w, cinelist.ErrorMessage(err), http.StatusBadGateway)
		return
	}

	b, err := s.Exporter.Export(res.Dataset)
	if err != nil {
		http.Error(w, cinelist.ErrorMessage(err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", excel.DefaultFilename))
	_, _ = w.Write(b)
}

func (s *Server) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}
