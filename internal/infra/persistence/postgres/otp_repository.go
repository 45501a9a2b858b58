package postgres

import (
	"context"
	"time"

	"recruit/internal/domain/entity"
	"recruit/internal/domain/repository"
	"recruit/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type otpRepository struct {
	db *gorm.DB
}

// NewOTPRepository is the constructor for the PostgreSQL-backed OTP store.
func NewOTPRepository(db *gorm.DB) repository.OTPRepository {
	return &otpRepository{db: db}
}

// Save upserts on (email, role), so the newest code supersedes any earlier one.
func (repo *otpRepository) Save(ctx context.Context, record *entity.OTPRecord) error {
	otpM := &model.OTPModel{
		Email:     entity.NormalizeEmail(record.Email),
		Role:      string(record.Role),
		OTPHash:   record.OTPHash,
		ExpiresAt: record.ExpiresAt,
		CreatedAt: record.CreatedAt,
	}
	if otpM.CreatedAt.IsZero() {
		otpM.CreatedAt = time.Now()
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}, {Name: "role"}},
			DoUpdates: clause.AssignmentColumns([]string{"otp_hash", "expires_at", "created_at"}),
		}).
		Create(otpM).Error
	if err != nil {
		return errors.Wrap(err, "failed to save otp")
	}

	return nil
}

func (repo *otpRepository) FindValid(ctx context.Context, email string, role entity.Role, now time.Time) (*entity.OTPRecord, error) {
	var otpM model.OTPModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND role = ? AND expires_at >= ?", entity.NormalizeEmail(email), string(role), now).
		First(&otpM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOTPNotFound
		}

		return nil, errors.WithStack(err)
	}

	return &entity.OTPRecord{
		Email:     otpM.Email,
		Role:      entity.Role(otpM.Role),
		OTPHash:   otpM.OTPHash,
		ExpiresAt: otpM.ExpiresAt,
		CreatedAt: otpM.CreatedAt,
	}, nil
}

// ConsumeIfMatch is a conditional DELETE. Postgres row locking guarantees only
// one of several concurrent callers observes RowsAffected == 1.
func (repo *otpRepository) ConsumeIfMatch(ctx context.Context, email string, role entity.Role, otpHash string) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("email = ? AND role = ? AND otp_hash = ?", entity.NormalizeEmail(email), string(role), otpHash).
		Delete(&model.OTPModel{})
	if result.Error != nil {
		return false, errors.WithStack(result.Error)
	}

	return result.RowsAffected == 1, nil
}

func (repo *otpRepository) Delete(ctx context.Context, email string, role entity.Role) error {
	if err := repo.db.WithContext(ctx).
		Where("email = ? AND role = ?", entity.NormalizeEmail(email), string(role)).
		Delete(&model.OTPModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (repo *otpRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at < ?", now).
		Delete(&model.OTPModel{})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}
