package impl

import (
	"context"
	"log/slog"

	deliverycontext "quill/internal/delivery/context"
	"quill/internal/domain/entity"
	"quill/internal/domain/repository"
	"quill/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// publishedPostsLimit caps how many posts the landing listing returns.
const publishedPostsLimit = 5

// postService implements the PostUsecase interface.
type postService struct {
	postRepo repository.PostRepository
	logger   *slog.Logger
}

// PostServiceParams holds dependencies for postService, injected by Fx.
type PostServiceParams struct {
	fx.In

	PostRepo repository.PostRepository
	Logger   *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		postRepo: params.PostRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPublished returns the most recent published posts, newest first.
func (srv *postService) ListPublished(ctx context.Context) ([]*entity.Post, error) {
	posts, err := srv.postRepo.FindPublished(ctx, publishedPostsLimit)
	if err != nil {
		srv.log(ctx).Error("Failed to list published posts", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list published posts")
	}

	return posts, nil
}

// Create persists a new post for the given author.
func (srv *postService) Create(ctx context.Context, input *usecase.CreatePostInput) (*entity.Post, error) {
	authorID := input.AuthorID
	post := &entity.Post{
		AuthorID:  &authorID,
		Title:     input.Title,
		Body:      input.Body,
		Published: input.Published,
	}

	if err := srv.postRepo.Create(ctx, post); err != nil {
		srv.log(ctx).Error("Failed to create post", slog.Int64("authorID", input.AuthorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create post")
	}

	srv.log(ctx).Debug("Post created", slog.Int64("postID", post.ID), slog.Int64("authorID", input.AuthorID))

	return post, nil
}
