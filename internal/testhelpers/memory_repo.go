package testhelpers

import (
	"context"
	"sync"
	"testing"

	"scorequest/user/internal/models"
	"scorequest/user/internal/repositories"
	"scorequest/user/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryRepo is an in-memory UserRepository for tests, mirroring the
// mongo repository's error mapping.
type MemoryRepo struct {
	mu    sync.Mutex
	users map[string]models.User
}

var _ repositories.UserRepository = (*MemoryRepo)(nil)

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{users: make(map[string]models.User)}
}

func (m *MemoryRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == user.Username {
			return nil, repositories.ErrDuplicateUsername
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	m.users[user.ID.Hex()] = *user
	return user, nil
}

func (m *MemoryRepo) List(_ context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]models.User, 0, len(m.users))
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, nil
}

func (m *MemoryRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return &u, nil
}

func (m *MemoryRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == username {
			out := u
			return &out, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (m *MemoryRepo) Update(_ context.Context, id string, update repositories.UserUpdate) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	if update.Username != nil {
		for otherID, other := range m.users {
			if otherID != id && other.Username == *update.Username {
				return nil, repositories.ErrDuplicateUsername
			}
		}
		u.Username = *update.Username
	}
	if update.PasswordHash != nil {
		u.PasswordHash = *update.PasswordHash
	}
	if update.Points != nil {
		u.Points = *update.Points
	}
	if update.Role != nil {
		u.Role = *update.Role
	}
	m.users[id] = u
	return &u, nil
}

func (m *MemoryRepo) Delete(_ context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	delete(m.users, id)
	return &u, nil
}

// SeedUser inserts an account with a real bcrypt hash and fails the
// test on any error.
func SeedUser(t *testing.T, repo *MemoryRepo, username, password string, role models.Role, points int) *models.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	user, err := repo.Create(context.Background(), &models.User{
		Username:     username,
		Role:         role,
		PasswordHash: hash,
		Points:       points,
	})
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}
