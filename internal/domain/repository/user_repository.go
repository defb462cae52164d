// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"quill/internal/domain/entity"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmailAccount retrieves the user owning an email-kind account
	// matching the given address, together with that account. When several
	// accounts share the address, the one with the lowest account ID wins.
	FindByEmailAccount(ctx context.Context, email string) (*entity.User, *entity.Account, error)

	// Create persists a new user entity and fills in its generated ID.
	Create(ctx context.Context, user *entity.User) error
}
