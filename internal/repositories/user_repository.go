package repositories

import (
	"context"
	"errors"

	"scorequest/user/internal/models"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")
)

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	Username     *string
	PasswordHash *string
	Points       *int
	Role         *models.Role
}

// UserRepository captures the persistence operations required by
// handlers and middleware.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*models.User, error)
	Delete(ctx context.Context, id string) (*models.User, error)
}
