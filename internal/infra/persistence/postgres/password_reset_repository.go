package postgres

import (
	"context"
	"time"

	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/repository"
	"recruit/internal/infra/persistence/model"
	"recruit/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type passwordResetRepository struct {
	db *gorm.DB
}

// NewPasswordResetRepository is the constructor for passwordResetRepository.
func NewPasswordResetRepository(db *gorm.DB) repository.PasswordResetRepository {
	return &passwordResetRepository{db: db}
}

// Create persists a reset. TokenHash must already be the SHA-256 hex of the
// emailed token.
func (repo *passwordResetRepository) Create(ctx context.Context, reset *entity.PasswordReset) error {
	resetM := fromPasswordResetDomain(reset)

	if err := repo.db.WithContext(ctx).Create(resetM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("reset token already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid user reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create password reset")
	}

	reset.ID = resetM.ID
	reset.CreatedAt = resetM.CreatedAt

	return nil
}

func (repo *passwordResetRepository) FindByToken(ctx context.Context, token string) (*entity.PasswordReset, error) {
	var resetM model.PasswordResetModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ?", util.HashToken(token)).
		First(&resetM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrResetNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toPasswordResetDomain(&resetM), nil
}

// ConsumeByToken deletes the reset in a single statement so two concurrent
// resets with the same token cannot both succeed.
func (repo *passwordResetRepository) ConsumeByToken(ctx context.Context, token string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("token_hash = ?", util.HashToken(token)).
		Delete(&model.PasswordResetModel{})
	if result.Error != nil {
		return false, errors.WithStack(result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (repo *passwordResetRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.PasswordResetModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (repo *passwordResetRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&model.PasswordResetModel{})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

func toPasswordResetDomain(data *model.PasswordResetModel) *entity.PasswordReset {
	if data == nil {
		return nil
	}

	return &entity.PasswordReset{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

func fromPasswordResetDomain(data *entity.PasswordReset) *model.PasswordResetModel {
	if data == nil {
		return nil
	}

	return &model.PasswordResetModel{
		ID:        data.ID,
		UserID:    data.UserID,
		TokenHash: data.TokenHash,
		ExpiresAt: data.ExpiresAt,
	}
}
