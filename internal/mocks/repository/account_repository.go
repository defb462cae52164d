package repository

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a testify mock for repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) CreateEmailAccount(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *MockAccountRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Account, error) {
	args := m.Called(ctx, userID)
	if accounts, ok := args.Get(0).([]*entity.Account); ok {
		return accounts, args.Error(1)
	}

	return nil, args.Error(1)
}
