package wire

import (
	"inventory-backend/internal/adaptor"
	"inventory-backend/internal/data/repository"
	"inventory-backend/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// wireUser configures user administration, gated on a valid session AND the
// Shopkeeper role.
func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.With(
		middleware.AuthSession(repo.Session, log),
		middleware.Shopkeeper(log),
	).Route("/api/users", func(r chi.Router) {
		r.Get("/", userHandler.GetAllUsers)
		r.Put("/{id}", userHandler.UpdateUserRole)
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
