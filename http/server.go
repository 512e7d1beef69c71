package http

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/pagemark"
	"github.com/google/uuid"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Server is the web presentation layer: list/search with highlighted
// snippets, add with overwrite confirmation, entry detail and delete.
// It holds no state of its own; all reads and writes go through the
// injected services.
type Server struct {
	pages     pagemark.PageService
	capturer  pagemark.Capturer
	t         pagemark.Translations
	logger    *slog.Logger
	templates *template.Template
	handler   http.Handler
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithTranslations sets the UI string catalog.
func WithTranslations(t pagemark.Translations) ServerOption {
	return func(s *Server) {
		s.t = t
	}
}

// NewServer creates a new Server.
func NewServer(pages pagemark.PageService, capturer pagemark.Capturer, opts ...ServerOption) *Server {
	s := &Server{
		pages:    pages,
		capturer: capturer,
		t:        pagemark.DefaultTranslations(),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /{$}", s.handleAdd)
	mux.HandleFunc("GET /list", s.handleIndex)
	mux.HandleFunc("GET /entry/{id}", s.handleEntry)
	mux.HandleFunc("POST /delete/{id}", s.handleDelete)
	s.handler = s.withRequestLog(mux)

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// withRequestLog tags every request with an id and logs its outcome.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		requestID := uuid.New().String()
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			"id", requestID,
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(begin),
		)
	})
}

// entryView is an Entry with highlighting applied for HTML rendering.
type entryView struct {
	ID        int64
	URL       template.HTML
	Snippet   template.HTML
	CreatedAt time.Time
	Truncated bool
}

// indexData is the template payload for the list/search view.
type indexData struct {
	T          pagemark.Translations
	Query      string
	Entries    []entryView
	PendingURL string
	Exists     bool
	ErrorMsg   string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.URL.Query().Get("q"))

	pages, err := s.pages.SearchPages(r.Context(), term)
	if err != nil {
		s.renderError(w, err)
		return
	}

	entries := make([]entryView, 0, len(pages))
	for _, p := range pages {
		entry := pagemark.NewEntry(p)
		entries = append(entries, entryView{
			ID:        entry.ID,
			URL:       highlightHTML(entry.URL, term),
			Snippet:   highlightHTML(entry.Snippet, term),
			CreatedAt: entry.CreatedAt,
			Truncated: entry.Truncated,
		})
	}

	data := indexData{
		T:          s.t,
		Query:      term,
		Entries:    entries,
		PendingURL: r.URL.Query().Get("url"),
		Exists:     r.URL.Query().Get("exists") == "1",
	}
	if r.URL.Query().Get("error") == "1" {
		data.ErrorMsg = s.t.Get("network_error")
	}

	s.render(w, "index.tmpl", data)
}

func (s *Server) handleAdd(w http.ResponseWriter, r *http.Request) {
	pageURL := strings.TrimSpace(r.FormValue("url"))
	confirm := r.FormValue("confirm_update") == "1"

	if pageURL == "" {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	_, err := s.capturer.Capture(r.Context(), pageURL, confirm)
	switch pagemark.ErrorCode(err) {
	case "":
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case pagemark.ECONFLICT:
		http.Redirect(w, r, "/?exists=1&url="+url.QueryEscape(pageURL), http.StatusSeeOther)
	default:
		s.logger.Warn("capture failed", "url", pageURL, "err", err)
		http.Redirect(w, r, "/?error=1&url="+url.QueryEscape(pageURL), http.StatusSeeOther)
	}
}

// entryData is the template payload for the detail view.
type entryData struct {
	T    pagemark.Translations
	Page *pagemark.Page
}

func (s *Server) handleEntry(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	page, err := s.pages.FindPageByID(r.Context(), id)
	if pagemark.ErrorCode(err) == pagemark.ENOTFOUND {
		w.WriteHeader(http.StatusNotFound)
		s.render(w, "notfound.tmpl", entryData{T: s.t})
		return
	}
	if err != nil {
		s.renderError(w, err)
		return
	}

	s.render(w, "entry.tmpl", entryData{T: s.t, Page: page})
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := s.pages.DeletePage(r.Context(), id); err != nil {
		s.renderError(w, err)
		return
	}

	target := r.Referer()
	if target == "" {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.logger.Error("render", "template", name, "err", err)
	}
}

func (s *Server) renderError(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "err", err)
	http.Error(w, pagemark.ErrorMessage(err), http.StatusInternalServerError)
}

// highlightHTML escapes text for HTML and wraps term matches in <mark>.
// Escaping happens per span so highlighting stays correct for text that
// needs escaping.
func highlightHTML(text, term string) template.HTML {
	var b strings.Builder
	for _, span := range pagemark.MatchSpans(text, term) {
		if span.Match {
			b.WriteString("<mark>")
			b.WriteString(template.HTMLEscapeString(span.Text))
			b.WriteString("</mark>")
		} else {
			b.WriteString(template.HTMLEscapeString(span.Text))
		}
	}
	return template.HTML(b.String())
}
