package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"capstone/internal/middleware"
)

func (h *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "home.html", nil)
}

func (h *Handler) handleAbout(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "about.html", nil)
}

func (h *Handler) handleUserDashboard(w http.ResponseWriter, r *http.Request) {
	user := middleware.IdentityFromContext(r.Context())

	projects, err := h.repo.ListProjects(r.Context())
	if err != nil {
		h.serverError(w, "list projects", err)
		return
	}

	enrolledIDs, err := h.repo.ListEnrolledProjectIDs(r.Context(), user.ID)
	if err != nil {
		h.serverError(w, "list enrollments", err)
		return
	}

	h.render(w, r, "user/dashboard.html", newDashboardView(user.Name, projects, enrolledIDs))
}

func (h *Handler) handleEnroll(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	user := middleware.IdentityFromContext(r.Context())
	inserted, err := h.repo.Enroll(r.Context(), user.ID, id, user.Name, h.now())
	if err != nil {
		h.serverError(w, "enroll", err, zap.Int64("project_id", id))
		return
	}
	if inserted {
		h.logger.Info("enrolled", zap.Int64("user_id", user.ID), zap.Int64("project_id", id))
	}

	http.Redirect(w, r, "/user/dashboard", http.StatusFound)
}

func (h *Handler) handleProjectView(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	user := middleware.IdentityFromContext(r.Context())

	// Only enrolled users may see a project.
	enrollment, err := h.repo.GetEnrollment(r.Context(), user.ID, id)
	if errors.Is(err, sql.ErrNoRows) {
		http.Redirect(w, r, "/user/dashboard", http.StatusFound)
		return
	}
	if err != nil {
		h.serverError(w, "get enrollment", err)
		return
	}

	project, err := h.repo.GetProject(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		h.serverError(w, "get project", err)
		return
	}

	h.render(w, r, "user/project_view.html", newProjectView(project, enrollment))
}
