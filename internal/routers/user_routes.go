package routers

import (
	"net/http"

	"scorequest/user/internal/handlers"

	"github.com/go-chi/chi/v5"
)

// UserRoutes mounts the account endpoints. Mutating routes sit behind
// the authenticate middleware; the directory, registration, liveness
// and password-verification routes are public.
func UserRoutes(r *chi.Mux, userHandler *handlers.UserHandler, authenticate func(http.Handler) http.Handler) {
	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.ListUsersHandler)
		r.Post("/", userHandler.RegisterHandler)
		r.Get("/check", userHandler.CheckHandler)
		r.Post("/username/{username}", userHandler.VerifyPasswordHandler)
		r.Get("/{id}", userHandler.GetUserHandler)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)
			r.Put("/", userHandler.UpdateUserHandler)
			r.Delete("/", userHandler.DeleteUserHandler)
			r.Get("/token", userHandler.CheckTokenHandler)
			r.Put("/{id}", userHandler.UpdateUserHandler)
			r.Delete("/{id}", userHandler.DeleteUserHandler)
		})
	})
}
