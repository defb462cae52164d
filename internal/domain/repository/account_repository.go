package repository

import (
	"context"

	"quill/internal/domain/entity"
)

// AccountRepository defines persistence operations for credential accounts.
type AccountRepository interface {
	// CreateEmailAccount persists a new email-kind account for a user
	// and fills in its generated ID. Kind is forced to email.
	CreateEmailAccount(ctx context.Context, account *entity.Account) error

	// FindByUserID retrieves all accounts belonging to a user.
	FindByUserID(ctx context.Context, userID int64) ([]*entity.Account, error)
}
