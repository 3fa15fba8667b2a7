package routers

import (
	"scorequest/user/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func AuthRoutes(r *chi.Mux, authHandler *handlers.AuthHandler) {
	r.Post("/login", authHandler.LoginHandler) // User login
}
