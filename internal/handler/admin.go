package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"capstone/internal/middleware"
	"capstone/internal/models"
	"capstone/internal/upload"
)

const maxUploadSize = 64 << 20

func (h *Handler) handleAdminDashboard(w http.ResponseWriter, r *http.Request) {
	projects, err := h.repo.AdminListProjects(r.Context())
	if err != nil {
		h.serverError(w, "admin list projects", err)
		return
	}

	users, err := h.repo.CountUsers(r.Context())
	if err != nil {
		h.serverError(w, "count users", err)
		return
	}

	h.render(w, r, "admin/dashboard.html", newAdminDashboardView(projects, users))
}

func (h *Handler) handleCreateProjectForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "admin/create_project.html", nil)
}

func (h *Handler) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	// The token lives in the multipart body, so parse first.
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		h.logger.Debug("create project: bad form", zap.Error(err))
		h.render(w, r, "admin/create_project.html", nil)
		return
	}
	if !h.validateCSRF(r) {
		http.Error(w, "Invalid CSRF token", http.StatusForbidden)
		return
	}

	_, image, _ := r.FormFile("image")
	_, pdf, _ := r.FormFile("pdf")

	imagePath, pdfPath, err := h.files.SaveProjectFiles(image, pdf)
	if errors.Is(err, upload.ErrInvalidFile) {
		h.logger.Debug("create project: rejected upload", zap.Error(err))
		h.render(w, r, "admin/create_project.html", nil)
		return
	}
	if err != nil {
		h.serverError(w, "save project files", err)
		return
	}

	admin := middleware.IdentityFromContext(r.Context())
	id, err := h.repo.CreateProject(r.Context(), models.Project{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		ImagePath:   imagePath,
		PDFPath:     pdfPath,
		CreatedBy:   admin.ID,
		CreatedAt:   h.now(),
	})
	if err != nil {
		h.serverError(w, "create project", err)
		return
	}
	h.logger.Info("project created", zap.Int64("project_id", id), zap.Int64("admin_id", admin.ID))

	http.Redirect(w, r, "/admin/dashboard", http.StatusFound)
}

func (h *Handler) handleRoster(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	entries, err := h.repo.ListRoster(r.Context(), id)
	if err != nil {
		h.serverError(w, "list roster", err, zap.Int64("project_id", id))
		return
	}

	h.render(w, r, "admin/enrollments.html", newRosterView(id, entries))
}

func limitBody(n int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, n)
			next.ServeHTTP(w, r)
		})
	}
}
