package repository

import (
	"context"
	"errors"

	"quill/internal/domain/entity"
)

// ErrPostNotFound is returned when a post is not found.
var ErrPostNotFound = errors.New("post not found")

// PostRepository defines persistence operations for blog posts.
type PostRepository interface {
	// FindPublished retrieves published posts, newest first, up to limit.
	FindPublished(ctx context.Context, limit int) ([]*entity.Post, error)

	// Create persists a new post entity and fills in its generated ID.
	Create(ctx context.Context, post *entity.Post) error
}
