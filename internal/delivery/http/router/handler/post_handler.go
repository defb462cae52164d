package handler

import (
	"log/slog"
	"net/http"
	"time"

	"quill/internal/delivery/http/middleware"
	"quill/internal/delivery/http/response"
	"quill/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler holds dependencies for blog post handlers.
type PostHandler struct {
	posts  usecase.PostUsecase
	logger *slog.Logger
}

// NewPostHandler is the constructor for PostHandler, injected by Fx.
func NewPostHandler(posts usecase.PostUsecase, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		posts:  posts,
		logger: logger,
	}
}

type createPostRequest struct {
	Title     string `json:"title" validate:"required,max=255"`
	Body      string `json:"body" validate:"required"`
	Published bool   `json:"published"`
}

type postResponse struct {
	ID        int64     `json:"id"`
	AuthorID  *int64    `json:"author_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
}

// ListPublished returns the most recent published posts.
func (h *PostHandler) ListPublished(c echo.Context) error {
	posts, err := h.posts.ListPublished(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]postResponse, 0, len(posts))
	for _, post := range posts {
		out = append(out, postResponse{
			ID:        post.ID,
			AuthorID:  post.AuthorID,
			Title:     post.Title,
			Body:      post.Body,
			Published: post.Published,
			CreatedAt: post.CreatedAt,
		})
	}

	return response.Success(c, http.StatusOK, out, "Posts retrieved successfully")
}

// Create persists a new post authored by the session user.
func (h *PostHandler) Create(c echo.Context) error {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "No authenticated user on this request")
	}

	var input createPostRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid post input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	post, err := h.posts.Create(c.Request().Context(), &usecase.CreatePostInput{
		AuthorID:  user.ID,
		Title:     input.Title,
		Body:      input.Body,
		Published: input.Published,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, postResponse{
		ID:        post.ID,
		AuthorID:  post.AuthorID,
		Title:     post.Title,
		Body:      post.Body,
		Published: post.Published,
		CreatedAt: post.CreatedAt,
	}, "Post created successfully")
}
