package repository

import (
	"context"
	"errors"
	"time"

	"recruit/internal/domain/entity"
)

// ErrOTPNotFound is returned when no unexpired code exists for a key.
var ErrOTPNotFound = errors.New("otp not found")

// OTPRepository stores one-time codes keyed by (email, role).
type OTPRepository interface {
	// Save stores the record, replacing any previous record for the same key.
	Save(ctx context.Context, record *entity.OTPRecord) error

	// FindValid returns the record for the key if it has not expired at now.
	FindValid(ctx context.Context, email string, role entity.Role, now time.Time) (*entity.OTPRecord, error)

	// ConsumeIfMatch deletes the record only if its hash still equals otpHash.
	// It reports whether a record was deleted. Concurrent callers see at most one true.
	ConsumeIfMatch(ctx context.Context, email string, role entity.Role, otpHash string) (bool, error)

	Delete(ctx context.Context, email string, role entity.Role) error

	// DeleteExpired purges records expired at now and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
