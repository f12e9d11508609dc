package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"html/template"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"capstone/internal/middleware"
	"capstone/internal/repo"
	"capstone/internal/upload"
)

type Handler struct {
	repo          *repo.Repo
	files         *upload.Store
	tmplDir       string
	staticDir     string
	maxUpload     int64
	sessionSecret string
	cookieDomain  string
	logger        *zap.Logger
	validate      *validator.Validate
	now           func() time.Time
}

func New(r *repo.Repo, files *upload.Store, tmplDir, sessionSecret, cookieDomain string, logger *zap.Logger) *Handler {
	return &Handler{
		repo:          r,
		files:         files,
		tmplDir:       tmplDir,
		staticDir:     "static",
		maxUpload:     maxUploadSize,
		sessionSecret: sessionSecret,
		cookieDomain:  cookieDomain,
		logger:        logger,
		validate:      validator.New(),
		now:           time.Now,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.CleanPath)
	r.Use(middleware.Session(h.repo))

	fs := http.StripPrefix("/static/", staticFiles(http.Dir(h.staticDir)))
	r.Handle("/static/*", fs)

	r.Get("/", h.handleHome)
	r.Get("/about", h.handleAbout)
	r.Get("/logout", h.handleLogout)

	// User realm
	r.Get("/signup", h.handleSignupForm)
	r.Post("/signup", h.handleSignup)
	r.Get("/login", h.handleLoginForm)
	r.Post("/login", h.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(h.requireUser)

		r.Get("/user/dashboard", h.handleUserDashboard)
		r.Get("/enroll/{id}", h.handleEnroll)
		r.Get("/project/{id}", h.handleProjectView)
	})

	// Admin realm
	r.Get("/admin/login", h.handleAdminLoginForm)
	r.Post("/admin/login", h.handleAdminLogin)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAdmin)

		r.Get("/admin/dashboard", h.handleAdminDashboard)
		r.Get("/admin/create-project", h.handleCreateProjectForm)
		r.With(limitBody(h.maxUpload)).Post("/admin/create-project", h.handleCreateProject)
		r.Get("/admin/enrollments/{id}", h.handleRoster)
	})

	return r
}

func (h *Handler) requireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !middleware.IdentityFromContext(r.Context()).IsUser() {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !middleware.IdentityFromContext(r.Context()).IsAdmin() {
			http.Redirect(w, r, "/admin/login", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// staticFiles serves files by name only. Directory paths are 404 so upload
// folders cannot be listed.
func staticFiles(root http.FileSystem) http.Handler {
	files := http.FileServer(root)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		if f, err := root.Open(r.URL.Path); err == nil {
			info, err := f.Stat()
			f.Close()
			if err != nil || info.IsDir() {
				http.NotFound(w, r)
				return
			}
		}
		files.ServeHTTP(w, r)
	})
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, view any) {
	funcMap := template.FuncMap{
		"formatDate": func(t time.Time) string {
			return t.Local().Format("02 Jan 2006 15:04")
		},
	}

	data := map[string]any{
		"Identity": middleware.IdentityFromContext(r.Context()),
		"View":     view,
	}
	if token := h.generateCSRF(r); token != "" {
		data["CSRFToken"] = token
	}

	tmpl, err := template.New("").Funcs(funcMap).ParseFiles(
		filepath.Join(h.tmplDir, "base.html"),
		filepath.Join(h.tmplDir, page),
	)
	if err != nil {
		h.serverError(w, "template parse", err, zap.String("page", page))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "base", data); err != nil {
		h.logger.Error("template execute", zap.String("page", page), zap.Error(err))
	}
}

func (h *Handler) serverError(w http.ResponseWriter, msg string, err error, fields ...zap.Field) {
	h.logger.Error(msg, append(fields, zap.Error(err))...)
	http.Error(w, "Internal error", http.StatusInternalServerError)
}

func (h *Handler) csrfToken(sessionToken string) string {
	mac := hmac.New(sha256.New, []byte(h.sessionSecret))
	mac.Write([]byte(sessionToken))
	return hex.EncodeToString(mac.Sum(nil))[:32]
}

func (h *Handler) generateCSRF(r *http.Request) string {
	cookie, err := r.Cookie(middleware.SessionCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return h.csrfToken(cookie.Value)
}

func (h *Handler) validateCSRF(r *http.Request) bool {
	expected := h.generateCSRF(r)
	if expected == "" {
		return false
	}
	token := r.FormValue("csrf_token")
	if token == "" {
		token = r.Header.Get("X-CSRF-Token")
	}
	return hmac.Equal([]byte(token), []byte(expected))
}
