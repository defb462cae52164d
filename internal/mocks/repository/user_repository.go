// Package repository provides hand-written testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a testify mock for repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmailAccount(ctx context.Context, email string) (*entity.User, *entity.Account, error) {
	args := m.Called(ctx, email)

	var user *entity.User
	if u, ok := args.Get(0).(*entity.User); ok {
		user = u
	}
	var account *entity.Account
	if a, ok := args.Get(1).(*entity.Account); ok {
		account = a
	}

	return user, account, args.Error(2)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)

	return args.Error(0)
}
