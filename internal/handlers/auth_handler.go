package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"scorequest/user/internal/models"
	"scorequest/user/internal/repositories"
	"scorequest/user/internal/utils"

	"go.uber.org/zap"
)

// AuthHandler manages the login endpoint.
type AuthHandler struct {
	Repo      repositories.UserRepository
	JWTSecret string
	TokenTTL  time.Duration
	Logger    *zap.Logger
}

func NewAuthHandler(repo repositories.UserRepository, secret string, ttl time.Duration, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{Repo: repo, JWTSecret: secret, TokenTTL: ttl, Logger: logger}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginHandler authenticates credentials and issues a bearer token.
// Unknown username and wrong password produce the same response, so
// the endpoint cannot be used to enumerate accounts.
func (h *AuthHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.Repo.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			utils.JSONError(w, http.StatusForbidden, "Invalid username/password")
			return
		}
		h.Logger.Error("login lookup failed", zap.Error(err))
		utils.JSONInternalError(w, err.Error())
		return
	}
	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		utils.JSONError(w, http.StatusForbidden, "Invalid username/password")
		return
	}

	token, err := utils.IssueToken(user, h.JWTSecret, h.TokenTTL)
	if err != nil {
		h.Logger.Error("failed to sign token", zap.Error(err))
		utils.JSONInternalError(w, err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, models.LoginResponse{
		Token:   token,
		Message: "Login successful",
		User:    user.Public(),
	})
}
