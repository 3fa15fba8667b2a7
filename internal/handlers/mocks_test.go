package handlers

import (
	"context"

	"scorequest/user/internal/models"
	"scorequest/user/internal/repositories"
)

type mockUserRepo struct {
	createFn        func(*models.User) (*models.User, error)
	listFn          func() ([]models.User, error)
	getByIDFn       func(string) (*models.User, error)
	getByUsernameFn func(string) (*models.User, error)
	updateFn        func(string, repositories.UserUpdate) (*models.User, error)
	deleteFn        func(string) (*models.User, error)
}

func (m *mockUserRepo) Create(_ context.Context, user *models.User) (*models.User, error) {
	if m.createFn == nil {
		panic("unexpected call to Create")
	}
	return m.createFn(user)
}

func (m *mockUserRepo) List(_ context.Context) ([]models.User, error) {
	if m.listFn == nil {
		panic("unexpected call to List")
	}
	return m.listFn()
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if m.getByIDFn == nil {
		panic("unexpected call to GetByID")
	}
	return m.getByIDFn(id)
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if m.getByUsernameFn == nil {
		panic("unexpected call to GetByUsername")
	}
	return m.getByUsernameFn(username)
}

func (m *mockUserRepo) Update(_ context.Context, id string, update repositories.UserUpdate) (*models.User, error) {
	if m.updateFn == nil {
		panic("unexpected call to Update")
	}
	return m.updateFn(id, update)
}

func (m *mockUserRepo) Delete(_ context.Context, id string) (*models.User, error) {
	if m.deleteFn == nil {
		panic("unexpected call to Delete")
	}
	return m.deleteFn(id)
}
