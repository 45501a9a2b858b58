package repository

import (
	"context"
	"errors"

	"recruit/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when a credential lookup finds nothing.
var ErrAuthNotFound = errors.New("authentication method not found")

// AuthRepository persists account credentials.
type AuthRepository interface {
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication looks a credential up by provider subject.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)

	FindAuthenticationByUserIDAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error)

	UpdatePasswordHash(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// UpdateProviderUserID keeps the local credential subject in sync with the account email.
	UpdateProviderUserID(ctx context.Context, userID uuid.UUID, provider entity.ProviderType, providerUserID string) error
}
