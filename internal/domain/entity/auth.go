package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ProviderType names the sign-in method of an account.
type ProviderType string

const (
	ProviderTypeLocal    ProviderType = "local"
	ProviderTypeGoogle   ProviderType = "google"
	ProviderTypeLinkedIn ProviderType = "linkedin"
)

// ErrUnknownProvider is returned by ParseProvider for values outside the enumeration.
var ErrUnknownProvider = errors.New("unknown provider")

func (p ProviderType) String() string {
	return string(p)
}

// IsValid checks if the provider is a known value.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderTypeLocal, ProviderTypeGoogle, ProviderTypeLinkedIn:
		return true
	default:
		return false
	}
}

// ParseProvider converts untrusted input into a ProviderType.
func ParseProvider(s string) (ProviderType, error) {
	provider := ProviderType(s)
	if !provider.IsValid() {
		return "", errors.Wrapf(ErrUnknownProvider, "%q", s)
	}

	return provider, nil
}

// Authentication is the credential backing an account.
// Local credentials carry a bcrypt PasswordHash and use the user's email as
// ProviderUserID; social credentials carry the provider's subject id and no hash.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       ProviderType
	ProviderUserID string
	PasswordHash   string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
