package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"scorequest/user/internal/middlewares"
	"scorequest/user/internal/models"
	"scorequest/user/internal/repositories"
	"scorequest/user/internal/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// UserHandler manages the account CRUD endpoints.
type UserHandler struct {
	Repo   repositories.UserRepository
	Logger *zap.Logger
}

func NewUserHandler(repo repositories.UserRepository, logger *zap.Logger) *UserHandler {
	return &UserHandler{Repo: repo, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Points   int    `json:"points"`
}

type updateRequest struct {
	Username *string      `json:"username"`
	Password *string      `json:"password"`
	Points   *int         `json:"points"`
	Role     *models.Role `json:"role"`
}

type verifyPasswordRequest struct {
	Password string `json:"password"`
}

// writeRepoError maps storage errors onto the HTTP taxonomy.
func (h *UserHandler) writeRepoError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repositories.ErrUserNotFound):
		utils.JSONError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, repositories.ErrDuplicateUsername):
		utils.JSONError(w, http.StatusConflict, repositories.ErrDuplicateUsername.Error())
	default:
		h.Logger.Error("storage failure", zap.Error(err))
		utils.JSONInternalError(w, err.Error())
	}
}

// CheckHandler is the liveness endpoint.
func (h *UserHandler) CheckHandler(w http.ResponseWriter, _ *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]string{"message": "I am alive"})
}

// ListUsersHandler returns the public directory: every account without
// password or role.
func (h *UserHandler) ListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := h.Repo.List(r.Context())
	if err != nil {
		h.writeRepoError(w, err)
		return
	}

	out := make([]models.PublicUser, 0, len(users))
	for i := range users {
		out = append(out, users[i].Public())
	}
	utils.JSON(w, http.StatusOK, out)
}

// GetUserHandler retrieves a single account by id, stripped of
// password and role.
func (h *UserHandler) GetUserHandler(w http.ResponseWriter, r *http.Request) {
	user, err := h.Repo.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeRepoError(w, err)
		return
	}
	utils.JSON(w, http.StatusOK, user.Public())
}

// RegisterHandler creates a new account. The username runs through the
// pattern and profanity checks, the password is hashed before anything
// touches storage.
func (h *UserHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateUsername(req.Username); err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.JSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	user := &models.User{
		Username:     req.Username,
		Role:         models.RoleUser,
		PasswordHash: hash,
		Points:       req.Points,
	}
	created, err := h.Repo.Create(r.Context(), user)
	if err != nil {
		h.writeRepoError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.UserResponse{
		Message: "user created",
		User:    created.Public(),
	})
}

// VerifyPasswordHandler reports whether the supplied password matches
// the named account. The response is a bare boolean either way, so it
// reveals nothing about which part was wrong.
func (h *UserHandler) VerifyPasswordHandler(w http.ResponseWriter, r *http.Request) {
	var req verifyPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	user, err := h.Repo.GetByUsername(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		h.writeRepoError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, utils.CheckPassword(req.Password, user.PasswordHash))
}

// UpdateUserHandler applies a partial update. Plain users always update
// themselves; admins may target the id in the route. Role changes are
// dropped unless the caller is an admin.
func (h *UserHandler) UpdateUserHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middlewares.PrincipalFrom(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.JSONError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.Username != nil {
		if err := utils.ValidateUsername(*req.Username); err != nil {
			utils.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	targetID, err := resolveTargetID(principal, chi.URLParam(r, "id"))
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "User not found")
		return
	}

	update := repositories.UserUpdate{
		Username: req.Username,
		Points:   req.Points,
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			utils.JSONError(w, http.StatusBadRequest, err.Error())
			return
		}
		update.PasswordHash = &hash
	}
	if req.Role != nil && principal.IsAdmin() {
		if *req.Role != models.RoleUser && *req.Role != models.RoleAdmin {
			utils.JSONError(w, http.StatusBadRequest, "invalid role")
			return
		}
		update.Role = req.Role
	}

	updated, err := h.Repo.Update(r.Context(), targetID, update)
	if err != nil {
		h.writeRepoError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.UserResponse{
		Message: "user updated",
		User:    updated.Public(),
	})
}

// DeleteUserHandler removes an account with the same self-vs-admin
// target resolution as update.
func (h *UserHandler) DeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middlewares.PrincipalFrom(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	targetID, err := resolveTargetID(principal, chi.URLParam(r, "id"))
	if err != nil {
		utils.JSONError(w, http.StatusNotFound, "User not found")
		return
	}

	deleted, err := h.Repo.Delete(r.Context(), targetID)
	if err != nil {
		h.writeRepoError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.UserResponse{
		Message: "user deleted",
		User:    deleted.Public(),
	})
}

// CheckTokenHandler confirms the bearer token maps to a live account
// and echoes the current state back.
func (h *UserHandler) CheckTokenHandler(w http.ResponseWriter, r *http.Request) {
	principal, ok := middlewares.PrincipalFrom(r.Context())
	if !ok {
		utils.JSONError(w, http.StatusUnauthorized, "No token provided")
		return
	}

	user, err := h.Repo.GetByID(r.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			utils.JSONError(w, http.StatusNotFound, "Token not valid")
			return
		}
		h.writeRepoError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, models.TokenUserResponse{
		Message: "Token valid",
		User: models.Principal{
			ID:       user.ID.Hex(),
			Username: user.Username,
			Role:     user.Role,
			Points:   user.Points,
		},
	})
}
