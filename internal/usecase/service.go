package usecase

import (
	"inventory-backend/internal/data/repository"
	"inventory-backend/pkg/mailer"
	"inventory-backend/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Product ProductService
}

func NewService(repo *repository.Repository, config *utils.Config, mail mailer.Mailer, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, mail, log),
		User:    NewUserService(repo.User, log),
		Product: NewProductService(repo.Product, log),
	}
}
