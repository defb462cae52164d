package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// SignupInput defines the data required to register a new user.
type SignupInput struct {
	Username string
	Email    string
	Password string
}

// SignupOutput returns the newly created user's basic information.
type SignupOutput struct {
	User *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Signup registers a new user together with their email credential
	// account. Both records are written atomically.
	Signup(ctx context.Context, input *SignupInput) (*SignupOutput, error)
}
