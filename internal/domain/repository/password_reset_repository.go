package repository

import (
	"context"
	"errors"
	"time"

	"recruit/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrResetNotFound is returned when no reset record matches a token.
var ErrResetNotFound = errors.New("password reset not found")

// PasswordResetRepository stores pending password resets. Methods taking a
// raw token hash it before touching storage.
type PasswordResetRepository interface {
	Create(ctx context.Context, reset *entity.PasswordReset) error

	FindByToken(ctx context.Context, token string) (*entity.PasswordReset, error)

	// ConsumeByToken deletes the record for token and reports whether one existed.
	ConsumeByToken(ctx context.Context, token string) (bool, error)

	DeleteByUserID(ctx context.Context, userID uuid.UUID) error

	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
