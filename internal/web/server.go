// Package web serves the portfolio as server-rendered HTML. All requests share
// one session, guarded by the server mutex.
package web

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"portfolio-cli/internal/model"
	"portfolio-cli/internal/projects"
	"portfolio-cli/internal/session"

	"go.uber.org/zap"
)

//go:embed templates/*.html static/*.css
var assetsFS embed.FS

type ServerConfig struct {
	Addr    string
	Session *session.Session
	Logger  *zap.Logger
}

type Server struct {
	mu    sync.Mutex
	cfg   ServerConfig
	sess  *session.Session
	tmpl  *template.Template
	log   *zap.Logger
	flash string
}

func NewServer(cfg ServerConfig) (*Server, error) {
	cfg.Addr = strings.TrimSpace(cfg.Addr)
	if cfg.Addr == "" {
		return nil, errors.New("web: addr is empty")
	}
	if cfg.Session == nil {
		return nil, errors.New("web: session is nil")
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	tmpl, err := template.New("base").Funcs(template.FuncMap{
		"trim": strings.TrimSpace,
		"join": strings.Join,
		"isPlaceholder": func(link string) bool {
			return strings.TrimSpace(link) == "" || link == model.LinkPlaceholder
		},
	}).ParseFS(assetsFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Server{cfg: cfg, sess: cfg.Session, tmpl: tmpl, log: log.Named("web")}, nil
}

func (s *Server) Addr() string { return s.cfg.Addr }

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /static/app.css", s.handleAppCSS)
	mux.HandleFunc("GET /api/projects", s.handleAPIProjects)

	mux.HandleFunc("GET /{$}", s.handleView(model.ViewHome))
	mux.HandleFunc("GET /dashboard", s.handleView(model.ViewDashboard))
	mux.HandleFunc("GET /projects", s.handleView(model.ViewProjects))
	mux.HandleFunc("GET /about", s.handleView(model.ViewAbout))
	mux.HandleFunc("GET /contact", s.handleView(model.ViewContact))

	mux.HandleFunc("POST /projects", s.handleProjectCreate)
	mux.HandleFunc("POST /projects/reset", s.handleProjectReset)
	mux.HandleFunc("POST /projects/{id}", s.handleProjectUpdate)
	mux.HandleFunc("POST /projects/{id}/select", s.handleProjectSelect)
	mux.HandleFunc("POST /projects/{id}/delete", s.handleProjectDelete)
	mux.HandleFunc("POST /theme", s.handleThemeToggle)
	mux.HandleFunc("POST /featured", s.handleFeaturedToggle)
	mux.HandleFunc("POST /contact", s.handleContact)
	return s.logRequests(mux)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

func redirectBack(w http.ResponseWriter, r *http.Request, fallback string) {
	ref := strings.TrimSpace(r.Header.Get("Referer"))
	if ref != "" {
		http.Redirect(w, r, ref, http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, fallback, http.StatusSeeOther)
}

func viewPath(v model.View) string {
	if v == model.ViewHome {
		return "/"
	}
	return "/" + string(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleAppCSS(w http.ResponseWriter, r *http.Request) {
	b, err := assetsFS.ReadFile("static/app.css")
	if err != nil || len(b) == 0 {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (s *Server) handleAPIProjects(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	ps := s.sess.Projects.List()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"data": ps})
}

func (s *Server) handleView(v model.View) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if err := s.sess.Navigate(v); err != nil {
			http.NotFound(w, r)
			return
		}
		s.renderLocked(w, http.StatusOK, pageOpts{})
	}
}

func formFromRequest(r *http.Request) session.Form {
	_ = r.ParseForm()
	return session.Form{
		Title: r.Form.Get("title"),
		Desc:  r.Form.Get("desc"),
		Tags:  r.Form.Get("tags"),
	}
}

// patchFromRequest sets only the fields that were posted.
func patchFromRequest(r *http.Request, form session.Form) projects.Patch {
	var patch projects.Patch
	if r.Form.Has("title") {
		patch.Title = &form.Title
	}
	if r.Form.Has("desc") {
		patch.Desc = &form.Desc
	}
	if r.Form.Has("tags") {
		patch.Tags = &form.Tags
	}
	return patch
}

func (s *Server) handleProjectCreate(w http.ResponseWriter, r *http.Request) {
	form := formFromRequest(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.sess.AddProject(projects.Draft{Title: form.Title, Desc: form.Desc, Tags: form.Tags})
	if err != nil {
		s.failLocked(w, err, form)
		return
	}
	s.log.Info("project added", zap.Int("id", p.ID))
	s.flash = "Added " + p.Title
	http.Redirect(w, r, "/projects", http.StatusSeeOther)
}

func (s *Server) handleProjectUpdate(w http.ResponseWriter, r *http.Request) {
	form := formFromRequest(r)

	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := projectIDFromPath(r)
	if err != nil {
		s.failLocked(w, err, form)
		return
	}
	patch := patchFromRequest(r, form)
	p, err := s.sess.UpdateProject(id, patch)
	if err != nil {
		s.failLocked(w, err, form)
		return
	}
	s.sess.ResetForm()
	s.log.Info("project updated", zap.Int("id", p.ID))
	s.flash = "Saved " + p.Title
	http.Redirect(w, r, "/projects", http.StatusSeeOther)
}

func (s *Server) handleProjectSelect(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := projectIDFromPath(r)
	if err == nil {
		err = s.sess.OpenProject(id)
	}
	if err != nil {
		s.failLocked(w, err, session.Form{})
		return
	}
	http.Redirect(w, r, "/projects", http.StatusSeeOther)
}

func (s *Server) handleProjectReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.sess.ResetForm()
	s.mu.Unlock()
	http.Redirect(w, r, "/projects", http.StatusSeeOther)
}

func (s *Server) handleProjectDelete(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := projectIDFromPath(r)
	if err == nil {
		err = s.sess.DeleteProject(id)
	}
	if err != nil {
		s.failLocked(w, err, session.Form{})
		return
	}
	s.log.Info("project deleted", zap.Int("id", id))
	s.flash = "Project deleted"
	http.Redirect(w, r, "/projects", http.StatusSeeOther)
}

func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.sess.ToggleTheme()
	v := s.sess.View()
	s.mu.Unlock()
	redirectBack(w, r, viewPath(v))
}

func (s *Server) handleFeaturedToggle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.sess.ToggleFeatured()
	s.mu.Unlock()
	redirectBack(w, r, "/")
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()
	msg := contactForm{
		Name:    strings.TrimSpace(r.Form.Get("name")),
		Email:   strings.TrimSpace(r.Form.Get("email")),
		Message: strings.TrimSpace(r.Form.Get("message")),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.sess.Navigate(model.ViewContact)
	if msg.Name == "" || msg.Message == "" {
		s.renderLocked(w, http.StatusUnprocessableEntity, pageOpts{
			flash:   "Name and message are required",
			isError: true,
			contact: msg,
		})
		return
	}
	s.log.Info("contact message", zap.String("name", msg.Name), zap.Int("length", len(msg.Message)))
	s.flash = "Thanks " + msg.Name + ", your message was noted."
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}

type idError struct{ raw string }

func (e idError) Error() string { return "invalid project id: " + e.raw }
func (e idError) Unwrap() error { return projects.ErrNotFound }

func projectIDFromPath(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("id"))
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, idError{raw: raw}
	}
	return id, nil
}

// failLocked re-renders the projects view with the error as a flash.
func (s *Server) failLocked(w http.ResponseWriter, err error, form session.Form) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, projects.ErrInvalid):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, projects.ErrNotFound):
		status = http.StatusNotFound
	}
	s.log.Warn("project request failed", zap.Int("status", status), zap.Error(err))
	_ = s.sess.Navigate(model.ViewProjects)
	s.renderLocked(w, status, pageOpts{flash: err.Error(), isError: true, form: &form})
}

func (s *Server) renderLocked(w http.ResponseWriter, status int, opts pageOpts) {
	if opts.flash == "" && s.flash != "" {
		opts.flash = s.flash
	}
	s.flash = ""
	vm := buildPage(s.sess, opts)

	var b strings.Builder
	if err := s.tmpl.ExecuteTemplate(&b, string(vm.View)+".html", vm); err != nil {
		s.log.Error("render", zap.String("view", string(vm.View)), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, b.String())
}
