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

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// CreateEmailAccount persists a new email-kind account and fills in the
// generated ID. The kind is forced to email regardless of the input.
func (repo *accountRepository) CreateEmailAccount(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)
	accountM.Kind = string(entity.AccountKindEmail)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("account references missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.Kind = entity.AccountKindEmail

	return nil
}

// FindByUserID retrieves all accounts belonging to a user, ordered by ID.
func (repo *accountRepository) FindByUserID(ctx context.Context, userID int64) ([]*entity.Account, error) {
	var accountMs []*model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&accountMs).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find accounts by user id")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for _, accountM := range accountMs {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:           data.ID,
		UserID:       data.UserID,
		Kind:         entity.AccountKind(data.Kind),
		Email:        data.Email,
		PasswordHash: data.Password,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:       data.ID,
		UserID:   data.UserID,
		Kind:     string(data.Kind),
		Email:    data.Email,
		Password: data.PasswordHash,
	}
}
