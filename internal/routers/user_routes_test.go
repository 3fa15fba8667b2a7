package routers

import (
	"net/http"
	"testing"

	"scorequest/user/internal/handlers"

	"github.com/go-chi/chi/v5"
)

func TestUserRoutesRegistered(t *testing.T) {
	r := chi.NewRouter()
	passthrough := func(next http.Handler) http.Handler { return next }
	UserRoutes(r, &handlers.UserHandler{}, passthrough)

	expected := map[string]struct{}{
		"GET /users/":                     {},
		"POST /users/":                    {},
		"PUT /users/":                     {},
		"DELETE /users/":                  {},
		"GET /users/check":                {},
		"GET /users/token":                {},
		"GET /users/{id}":                 {},
		"PUT /users/{id}":                 {},
		"DELETE /users/{id}":              {},
		"POST /users/username/{username}": {},
	}

	if err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		key := method + " " + route
		delete(expected, key)
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	if len(expected) != 0 {
		t.Fatalf("missing routes: %v", expected)
	}
}
