package middleware

import (
	"net/http"

	"inventory-backend/internal/data/entity"
	"inventory-backend/internal/data/repository"
	"inventory-backend/pkg/utils"

	"go.uber.org/zap"
)

// SessionCookie is the name of the opaque session-token cookie.
const SessionCookie = "session_token"

// AuthSession validates the session cookie and puts the login-time identity
// snapshot on the request context. Runs before any mutating handler it guards.
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), cookie.Value)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}

			ctx := utils.SetSessionUser(r.Context(), utils.SessionUser{
				ID:    session.UserID,
				Name:  session.Name,
				Email: session.Email,
				Role:  string(session.Role),
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Shopkeeper gates an endpoint on the privileged role. The check reads the
// role snapshotted at login, not the current user row.
func Shopkeeper(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetSessionUser(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Unauthorized")
				return
			}

			if user.Role != string(entity.RoleShopkeeper) {
				logger.Warn("Role check: access denied",
					zap.String("user_id", user.ID.String()),
					zap.String("role", user.Role),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseForbidden(w, "Access denied")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
