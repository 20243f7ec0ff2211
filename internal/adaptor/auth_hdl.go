package adaptor

import (
	"encoding/json"
	"net/http"

	"inventory-backend/internal/data/entity"
	"inventory-backend/internal/dto/request"
	"inventory-backend/internal/dto/response"
	"inventory-backend/internal/usecase"
	"inventory-backend/pkg/middleware"
	"inventory-backend/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	config  *utils.Config
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, config *utils.Config, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		config:  config,
		log:     log,
	}
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseJSON(w, http.StatusBadRequest, response.AuthResult{
			Success: false, Message: "Invalid request body",
		})
		return
	}

	if err := h.service.Register(r.Context(), &req); err != nil {
		code := statusForError(err)
		h.logAuthError("register", err, code)
		utils.ResponseJSON(w, code, response.AuthResult{
			Success: false, Message: clientMessage(err, code),
		})
		return
	}

	utils.ResponseSuccess(w, response.AuthResult{
		Success: true, Message: "Registration successful",
	})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseJSON(w, http.StatusBadRequest, response.AuthResult{
			Success: false, Message: "Invalid request body",
		})
		return
	}

	session, err := h.service.Login(r.Context(), &req)
	if err != nil {
		code := statusForError(err)
		h.logAuthError("login", err, code)
		utils.ResponseJSON(w, code, response.AuthResult{
			Success: false, Message: clientMessage(err, code),
		})
		return
	}

	// The session row is durably inserted by now, so the cookie is usable
	// on the very next request.
	h.setSessionCookie(w, session)

	utils.ResponseSuccess(w, response.AuthResult{
		Success: true, Message: "Login successful",
	})
}

// Logout handles GET /logout. Always redirects to /login, session or not.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		if err := h.service.Logout(r.Context(), cookie.Value); err != nil {
			// Redirect regardless; the cookie is cleared either way
			h.log.Warn("Logout failed", zap.Error(err))
		}
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

// CurrentUser handles GET /current-user. An anonymous request is not an
// error; it answers {success:false,user:null}.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	var sessionToken string
	if cookie, err := r.Cookie(middleware.SessionCookie); err == nil {
		sessionToken = cookie.Value
	}

	user, err := h.service.CurrentUser(r.Context(), sessionToken)
	if err != nil {
		h.log.Error("Failed to resolve current user", zap.Error(err))
		utils.ResponseInternalError(w, "Server error")
		return
	}

	utils.ResponseSuccess(w, response.CurrentUserResponse{
		Success: user != nil,
		User:    user,
	})
}

// ForgotPassword handles POST /api/forgot-password
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	preview, err := h.service.ForgotPassword(r.Context(), &req)
	if err != nil {
		code := statusForError(err)
		h.logAuthError("forgot-password", err, code)
		utils.ResponseJSON(w, code, utils.MessageResponse{Message: clientMessage(err, code)})
		return
	}

	utils.ResponseSuccess(w, response.ForgotPasswordResponse{
		Message: "Password reset email sent",
		Preview: preview,
	})
}

// ResetPassword handles POST /reset-password
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		code := statusForError(err)
		h.logAuthError("reset-password", err, code)
		utils.ResponseJSON(w, code, utils.MessageResponse{Message: clientMessage(err, code)})
		return
	}

	utils.ResponseSuccess(w, utils.MessageResponse{
		Message: "Password has been reset successfully",
	})
}

// ==================== HELPERS ====================

// setSessionCookie mirrors the session attributes the browser client relies
// on. Secure stays false here; a TLS deployment should flip it.
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, session *entity.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token.String(),
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   false,
	})
}

func (h *AuthHandler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) logAuthError(operation string, err error, code int) {
	if code == http.StatusInternalServerError {
		h.log.Error("Failed to "+operation, zap.Error(err))
		return
	}
	h.log.Warn(operation+" rejected", zap.Error(err), zap.Int("status", code))
}
