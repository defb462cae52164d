package postgres

import (
	"context"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	userM := new(model.UserModel)
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(userM).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		// Otherwise, return the original database error.
		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(userM), nil
}

// FindByEmailAccount retrieves the user owning an email-kind account with the
// given address. Only accounts that actually carry a password are considered,
// and when several accounts share the address the lowest account ID wins.
func (repo *userRepository) FindByEmailAccount(ctx context.Context, email string) (*entity.User, *entity.Account, error) {
	accountM := new(model.AccountModel)
	err := repo.db.WithContext(ctx).
		Where("type = ? AND email = ? AND password IS NOT NULL AND password <> ''",
			string(entity.AccountKindEmail), email).
		Order("id").
		First(accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, repository.ErrUserNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find account by email")
	}

	userM := new(model.UserModel)
	err = repo.db.WithContext(ctx).
		Where("id = ?", accountM.UserID).
		First(userM).Error

	if err != nil {
		// An account without its user means the join is empty.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, repository.ErrUserNotFound
		}

		return nil, nil, errors.Wrap(err, "failed to find user for account")
	}

	return toUserDomain(userM), toAccountDomain(accountM), nil
}

// Create persists a new user entity to the database and fills in the
// generated ID and creation timestamp.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateUsername.WrapMessage("username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamp
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Username:  data.Username,
		CreatedAt: data.CreatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:       data.ID,
		Username: data.Username,
	}
}
