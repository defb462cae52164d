// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"quill/internal/domain/entity"
)

// Credentials is a login submission as received from the client.
type Credentials struct {
	Email    string
	Password string
}

// AuthUsecase verifies credentials and resolves users by ID. It is the
// contract session handling builds on.
type AuthUsecase interface {
	// Authenticate checks the submitted credentials against the stored
	// email account. It returns the matching user on success and (nil, nil)
	// when the email is unknown or the password is wrong; the two cases are
	// indistinguishable to the caller. An error means the check itself
	// could not be carried out.
	Authenticate(ctx context.Context, creds Credentials) (*entity.User, error)

	// GetUser resolves a user by ID. It returns (nil, nil) when no such
	// user exists.
	GetUser(ctx context.Context, id int64) (*entity.User, error)
}
