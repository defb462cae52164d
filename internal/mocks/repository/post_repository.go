package repository

import (
	"context"

	"quill/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockPostRepository is a testify mock for repository.PostRepository.
type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) FindPublished(ctx context.Context, limit int) ([]*entity.Post, error) {
	args := m.Called(ctx, limit)
	if posts, ok := args.Get(0).([]*entity.Post); ok {
		return posts, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockPostRepository) Create(ctx context.Context, post *entity.Post) error {
	args := m.Called(ctx, post)

	return args.Error(0)
}
