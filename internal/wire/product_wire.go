package wire

import (
	"inventory-backend/internal/adaptor"
	"inventory-backend/internal/data/repository"
	"inventory-backend/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// The dashboard listing backs the landing page and needs no session.
	r.Get("/api/products/dashboard", productHandler.Dashboard)

	// ==================== PROTECTED ROUTES ====================
	r.With(
		middleware.AuthSession(repo.Session, log),
		middleware.Shopkeeper(log),
	).Route("/api/products", func(r chi.Router) {
		r.Post("/", productHandler.Create)
		r.Put("/{id}", productHandler.Update)
		r.Delete("/{id}", productHandler.Delete)
	})
}
