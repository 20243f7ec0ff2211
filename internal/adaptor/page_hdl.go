package adaptor

import (
	"net/http"
	"path/filepath"

	"inventory-backend/internal/usecase"
	"inventory-backend/pkg/middleware"
	"inventory-backend/pkg/utils"

	"go.uber.org/zap"
)

// PageHandler serves the static HTML pages of the browser client.
type PageHandler struct {
	auth   usecase.AuthService
	webDir string
	log    *zap.Logger
}

func NewPageHandler(auth usecase.AuthService, config *utils.Config, log *zap.Logger) *PageHandler {
	return &PageHandler{
		auth:   auth,
		webDir: config.App.WebDir,
		log:    log,
	}
}

// Login handles GET /login
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.webDir, "login.html"))
}

// Registration handles GET /registration
func (h *PageHandler) Registration(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.webDir, "registration.html"))
}

// ResetPassword handles GET /reset-password.html
func (h *PageHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	http.ServeFile(w, r, filepath.Join(h.webDir, "reset-password.html"))
}

// Dashboard handles GET /dashboard: anonymous visitors land on /login.
func (h *PageHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	var sessionToken string
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		sessionToken = cookie.Value
	}

	user, err := h.auth.CurrentUser(r.Context(), sessionToken)
	if err != nil {
		h.log.Error("Failed to check session for dashboard", zap.Error(err))
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	if user == nil {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.webDir, "dashboard.html"))
}
