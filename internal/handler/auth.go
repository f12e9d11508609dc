package handler

import (
	"net/http"

	"go.uber.org/zap"

	"capstone/internal/middleware"
	"capstone/internal/models"
	"capstone/internal/repo"
)

type signupForm struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

type credentialsForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func (h *Handler) handleSignupForm(w http.ResponseWriter, r *http.Request) {
	if middleware.IdentityFromContext(r.Context()).IsUser() {
		http.Redirect(w, r, "/user/dashboard", http.StatusFound)
		return
	}
	h.render(w, r, "auth/user_signup.html", nil)
}

func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	if middleware.IdentityFromContext(r.Context()).IsUser() {
		http.Redirect(w, r, "/user/dashboard", http.StatusFound)
		return
	}

	form := signupForm{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := h.validate.Struct(form); err != nil {
		h.logger.Debug("signup rejected", zap.Error(err))
		h.render(w, r, "auth/user_signup.html", nil)
		return
	}

	if _, err := h.repo.CreateUser(r.Context(), form.Name, form.Email, form.Password); err != nil {
		h.serverError(w, "create user", err)
		return
	}

	http.Redirect(w, r, "/login", http.StatusFound)
}

func (h *Handler) handleLoginForm(w http.ResponseWriter, r *http.Request) {
	if middleware.IdentityFromContext(r.Context()).IsUser() {
		http.Redirect(w, r, "/user/dashboard", http.StatusFound)
		return
	}
	h.render(w, r, "auth/user_login.html", nil)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	if middleware.IdentityFromContext(r.Context()).IsUser() {
		http.Redirect(w, r, "/user/dashboard", http.StatusFound)
		return
	}

	form := credentialsForm{Email: r.PostFormValue("email"), Password: r.PostFormValue("password")}
	if err := h.validate.Struct(form); err != nil {
		h.render(w, r, "auth/user_login.html", nil)
		return
	}

	user, err := h.repo.FindUserByCredentials(r.Context(), form.Email, form.Password)
	if err != nil {
		h.serverError(w, "find user", err)
		return
	}
	if user == nil {
		h.logger.Debug("login failed", zap.String("realm", string(models.UserKind)))
		h.render(w, r, "auth/user_login.html", nil)
		return
	}

	if err := h.startSession(w, r, models.UserIdentity(user.ID, user.Name)); err != nil {
		h.serverError(w, "start session", err)
		return
	}
	http.Redirect(w, r, "/user/dashboard", http.StatusFound)
}

func (h *Handler) handleAdminLoginForm(w http.ResponseWriter, r *http.Request) {
	if middleware.IdentityFromContext(r.Context()).IsAdmin() {
		http.Redirect(w, r, "/admin/dashboard", http.StatusFound)
		return
	}
	h.render(w, r, "auth/admin_login.html", nil)
}

func (h *Handler) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if middleware.IdentityFromContext(r.Context()).IsAdmin() {
		http.Redirect(w, r, "/admin/dashboard", http.StatusFound)
		return
	}

	form := credentialsForm{Email: r.PostFormValue("email"), Password: r.PostFormValue("password")}
	if err := h.validate.Struct(form); err != nil {
		h.render(w, r, "auth/admin_login.html", nil)
		return
	}

	admin, err := h.repo.FindAdminByCredentials(r.Context(), form.Email, form.Password)
	if err != nil {
		h.serverError(w, "find admin", err)
		return
	}
	if admin == nil {
		h.logger.Debug("login failed", zap.String("realm", string(models.AdminKind)))
		h.render(w, r, "auth/admin_login.html", nil)
		return
	}

	if err := h.startSession(w, r, models.AdminIdentity(admin.ID)); err != nil {
		h.serverError(w, "start session", err)
		return
	}
	http.Redirect(w, r, "/admin/dashboard", http.StatusFound)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.endSession(w, r)
	http.Redirect(w, r, "/", http.StatusFound)
}

// startSession drops whatever session the request carried and binds a fresh
// token to id.
func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, id models.Identity) error {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil && cookie.Value != "" {
		if err := h.repo.DeleteSession(r.Context(), cookie.Value); err != nil {
			return err
		}
	}

	token := repo.GenerateToken()
	if err := h.repo.CreateSession(r.Context(), token, id); err != nil {
		return err
	}

	secure := r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https"
	cookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		MaxAge:   int(repo.SessionTTL.Seconds()),
		SameSite: http.SameSiteLaxMode,
	}
	if h.cookieDomain != "" {
		cookie.Domain = h.cookieDomain
	}
	http.SetCookie(w, cookie)
	return nil
}

func (h *Handler) endSession(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		if err := h.repo.DeleteSession(r.Context(), cookie.Value); err != nil {
			h.logger.Warn("delete session", zap.Error(err))
		}
	}

	logoutCookie := &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	}
	if h.cookieDomain != "" {
		logoutCookie.Domain = h.cookieDomain
	}
	http.SetCookie(w, logoutCookie)
}
