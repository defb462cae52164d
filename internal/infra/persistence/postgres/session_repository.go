package postgres

import (
	"context"
	"time"

	"quill/internal/domain/entity"
	domainerrors "quill/internal/domain/errors"
	"quill/internal/domain/repository"
	"quill/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the domain.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new session record.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("session token collision")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("session references missing user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	return nil
}

// FindByToken retrieves a session by its opaque token.
func (repo *sessionRepository) FindByToken(ctx context.Context, token string) (*entity.Session, error) {
	sessionM := new(model.SessionModel)
	err := repo.db.WithContext(ctx).
		Where("session_token = ?", token).
		First(sessionM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by token")
	}

	return toSessionDomain(sessionM), nil
}

// DeleteByToken removes a session by its opaque token. Deleting a token that
// does not exist is not an error.
func (repo *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	err := repo.db.WithContext(ctx).
		Where("session_token = ?", token).
		Delete(&model.SessionModel{}).Error

	if err != nil {
		return errors.Wrap(err, "failed to delete session by token")
	}

	return nil
}

// DeleteExpired removes all sessions past their expiry and reports how many
// rows were removed.
func (repo *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires <= ?", time.Now()).
		Delete(&model.SessionModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:      data.ID,
		Token:   data.SessionToken,
		UserID:  data.UserID,
		Expires: data.Expires,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:           data.ID,
		SessionToken: data.Token,
		UserID:       data.UserID,
		Expires:      data.Expires,
	}
}
