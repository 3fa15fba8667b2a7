package middlewares

import (
	"context"
	"errors"
	"net/http"

	"scorequest/user/internal/models"
	"scorequest/user/internal/repositories"
	"scorequest/user/internal/utils"

	"go.uber.org/zap"
)

type contextKey string

const principalKey contextKey = "principal"

// PrincipalFrom returns the authenticated principal attached by
// Authenticate, if any.
func PrincipalFrom(ctx context.Context) (models.Principal, bool) {
	p, ok := ctx.Value(principalKey).(models.Principal)
	return p, ok
}

// WithPrincipal attaches a principal to the context. Exported for
// handler tests.
func WithPrincipal(ctx context.Context, p models.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// Authenticate verifies the bearer token and resolves the current
// account. The token is only trusted as an identity pointer: role and
// points are always re-read from storage, so a stale token signed when
// the account was still an admin grants nothing after a demotion.
func Authenticate(repo repositories.UserRepository, secret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := utils.VerifyToken(r, secret)
			if err != nil {
				if errors.Is(err, utils.ErrMissingAuthHeader) {
					utils.JSONError(w, http.StatusUnauthorized, "No token provided")
					return
				}
				utils.JSONError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			user, err := repo.GetByID(r.Context(), claims.ID)
			if err != nil {
				if errors.Is(err, repositories.ErrUserNotFound) {
					utils.JSONError(w, http.StatusNotFound, "Token not valid")
					return
				}
				logger.Error("principal lookup failed", zap.String("id", claims.ID), zap.Error(err))
				utils.JSONInternalError(w, err.Error())
				return
			}

			principal := models.Principal{
				ID:       user.ID.Hex(),
				Username: user.Username,
				Role:     user.Role,
				Points:   user.Points,
			}
			next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
		})
	}
}
