package adaptor

import (
	"net/http"
	"strings"

	"inventory-backend/internal/usecase"
	"inventory-backend/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Product *ProductHandler
	Page    *PageHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, config, log),
		User:    NewUserHandler(service.User, log),
		Product: NewProductHandler(service.Product, log),
		Page:    NewPageHandler(service.Auth, config, log),
	}
}

// statusForError classifies service errors by message. Services return
// client-facing messages for expected failures and generic ones for
// internal failures, which fall through to 500.
func statusForError(err error) int {
	msg := strings.ToLower(err.Error())

	switch {
	case strings.Contains(msg, "not found"),
		strings.Contains(msg, "no account"):
		return http.StatusNotFound

	case strings.Contains(msg, "already registered"),
		strings.Contains(msg, "not registered"),
		strings.Contains(msg, "incorrect password"),
		strings.Contains(msg, "invalid role"),
		strings.Contains(msg, "invalid user id"),
		strings.Contains(msg, "invalid product id"),
		strings.Contains(msg, "cannot delete"),
		strings.Contains(msg, "invalid token"),
		strings.Contains(msg, "token has expired"),
		strings.Contains(msg, "token is required"),
		strings.Contains(msg, "validation failed"),
		strings.Contains(msg, "required"):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// clientMessage hides internal error details behind a generic message.
func clientMessage(err error, code int) string {
	if code == http.StatusInternalServerError {
		return "Server error"
	}
	return err.Error()
}
