package service

import (
	"context"

	"recruit/internal/domain/entity"
)

// OAuthUser is the identity asserted by a social provider.
type OAuthUser struct {
	ID            string // Provider subject, e.g. Google's "sub" claim.
	Email         string
	Name          string
	Provider      entity.ProviderType
	EmailVerified bool
}

// OAuthAuthService verifies provider ID tokens.
type OAuthAuthService interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)

	GetProvider() entity.ProviderType
}
