package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// CreatePostInput defines the data required to create a new post.
type CreatePostInput struct {
	AuthorID  int64
	Title     string
	Body      string
	Published bool
}

// PostUsecase defines the interface for blog post operations.
type PostUsecase interface {
	// ListPublished returns the most recent published posts, newest first.
	ListPublished(ctx context.Context) ([]*entity.Post, error)

	// Create persists a new post for the given author.
	Create(ctx context.Context, input *CreatePostInput) (*entity.Post, error)
}
