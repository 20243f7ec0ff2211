package wire

import (
	"inventory-backend/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	// ==================== PUBLIC ROUTES ====================
	// The session cookie, when present, is resolved inside the handlers;
	// none of these require authentication.
	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)
	r.Get("/logout", authHandler.Logout)
	r.Get("/current-user", authHandler.CurrentUser)

	// Password reset: two-phase handshake
	r.Post("/api/forgot-password", authHandler.ForgotPassword)
	r.Post("/reset-password", authHandler.ResetPassword)
}
