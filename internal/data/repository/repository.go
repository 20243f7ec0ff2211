package repository

import (
	"inventory-backend/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Reset   ResetRepository
	Product ProductRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Reset:   NewResetRepository(db, log),
		Product: NewProductRepository(db, log),
	}
}
