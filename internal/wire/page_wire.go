package wire

import (
	"net/http"

	"inventory-backend/internal/adaptor"
	"inventory-backend/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func wirePages(r chi.Router, pageHandler *adaptor.PageHandler, config *utils.Config) {
	r.Get("/login", pageHandler.Login)
	r.Get("/registration", pageHandler.Registration)
	r.Get("/reset-password.html", pageHandler.ResetPassword)
	r.Get("/dashboard", pageHandler.Dashboard)

	// Static assets
	fileServer := http.FileServer(http.Dir(config.App.WebDir))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))
}
