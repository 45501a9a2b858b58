package entity

import (
	"time"

	"github.com/google/uuid"
)

// PasswordReset is a pending password reset. Only the SHA-256 of the emailed
// token is stored.
type PasswordReset struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the reset is past its expiry at now.
func (r *PasswordReset) IsExpired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
