package web

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"strings"

	"faicon/internal/binding"
	"faicon/internal/catalog"
	"faicon/internal/report"
	"faicon/internal/style"
	"faicon/internal/variant"
)

//go:embed static/*
var staticFS embed.FS

// Server serves catalog icons styled from query parameters.
type Server struct {
	catalog  *catalog.Catalog
	root     style.Style
	defaults func(catalog.Icon) style.Style
	log      *slog.Logger
}

// NewServer creates a server whose cascade is root, then defaults(icon), then
// the request's query layer. defaults may be nil.
func NewServer(c *catalog.Catalog, root style.Style, defaults func(catalog.Icon) style.Style, log *slog.Logger) *Server {
	if defaults == nil {
		defaults = func(catalog.Icon) style.Style { return style.New() }
	}
	if log == nil {
		log = slog.Default()
	}
	return &Server{catalog: c, root: root, defaults: defaults, log: log}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// Serve static files
	subFS, _ := fs.Sub(staticFS, "static")
	mux.Handle("/", http.FileServer(http.FS(subFS)))

	// API Endpoints
	mux.HandleFunc("GET /api/icons", s.handleIcons)
	mux.HandleFunc("GET /api/catalog.md", s.handleMarkdown)
	mux.HandleFunc("GET /api/report", s.handleReport)
	mux.HandleFunc("GET /icons/{file}", s.handleIcon)
	return mux
}

// StartServer listens on addr until the server fails.
func StartServer(addr string, s *Server) error {
	fmt.Printf("Starting faicon web server at http://localhost%s\n", displayAddr(addr))
	s.log.Info("web server listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, s.Handler()); err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return nil
}

func displayAddr(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return addr
	}
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i:]
	}
	return addr
}

func (s *Server) handleIcons(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report.Analyze(s.catalog)); err != nil {
		s.log.Warn("encode icons", slog.Any("err", err))
	}
}

func (s *Server) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown")
	w.Write([]byte(s.catalog.Markdown()))
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	verbose := r.URL.Query().Get("verbose") != ""
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(report.Generate(report.Analyze(s.catalog), verbose)))
}

// svgSink collects the pushes of one request's binding.
type svgSink struct {
	content   string
	overrides string
}

func (k *svgSink) PushContent(markup string) { k.content = markup }

func (k *svgSink) PushOverrides(text string) { k.overrides = text }

// render places the overrides in a <style> element right after the opening
// <svg> tag.
func (k *svgSink) render() string {
	if k.overrides == "" {
		return k.content
	}
	start := strings.Index(k.content, "<svg")
	if start < 0 {
		return k.content
	}
	end := strings.Index(k.content[start:], ">")
	if end < 0 {
		return k.content
	}
	end += start
	if k.content[end-1] == '/' {
		// Self-closing root: expand it so the style element has a parent.
		return k.content[:end-1] + "><style>" + k.overrides + "</style></svg>" + k.content[end+1:]
	}
	return k.content[:end+1] + "<style>" + k.overrides + "</style>" + k.content[end+1:]
}

func (s *Server) handleIcon(w http.ResponseWriter, r *http.Request) {
	name, ok := strings.CutSuffix(r.PathValue("file"), ".svg")
	if !ok {
		http.Error(w, "icon path must end in .svg", http.StatusNotFound)
		return
	}
	icon, ok := s.catalog.Lookup(name)
	if !ok {
		http.Error(w, "unknown icon "+name, http.StatusNotFound)
		return
	}
	layer, err := queryStyle(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sink := &svgSink{}
	b := binding.New(s.catalog, icon, sink, binding.WithLogger(s.log))
	b.StylePass(style.Cascade(s.root, s.defaults(icon), layer))

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("X-Icon-Variant", string(b.Slug()))
	w.Write([]byte(sink.render()))
}

func queryStyle(r *http.Request) (style.Style, error) {
	q := r.URL.Query()
	s := style.New()
	if raw := q.Get("variant"); raw != "" {
		v, err := variant.Parse(raw)
		if err != nil {
			return style.New(), err
		}
		s = s.WithVariant(v)
	}
	params := []struct {
		key  string
		prop style.Prop
	}{
		{"color", style.PropColor},
		{"primary", style.PropPrimary},
		{"secondary", style.PropSecondary},
	}
	var errs []error
	for _, p := range params {
		if !q.Has(p.key) {
			continue
		}
		o, err := style.ParseOption(q.Get(p.key))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.key, err))
			continue
		}
		s = s.WithOption(p.prop, o)
	}
	return s, errors.Join(errs...)
}
