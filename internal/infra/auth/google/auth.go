// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"recruit/config"
	"recruit/internal/domain/entity"
	"recruit/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

// validateFunc matches idtoken.Validate.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService for Google.
type AuthServiceImpl struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken checks signature, audience and expiry through Google's
// published keys, then the issuer and email verification claims.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google client id is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	user, err := toOAuthUser(payload)
	if err != nil {
		s.logger.Warn("Google ID token claims rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	s.logger.Debug("Google ID token verified", slog.String("subject", user.ID))

	return user, nil
}

func (s *AuthServiceImpl) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func toOAuthUser(payload *idtoken.Payload) (*service.OAuthUser, error) {
	if !validIssuers[payload.Issuer] {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	email, _ := payload.Claims["email"].(string)
	if email == "" {
		return nil, errors.New("email claim missing")
	}

	verified, _ := payload.Claims["email_verified"].(bool)
	if !verified {
		return nil, errors.New("email not verified")
	}

	name, _ := payload.Claims["name"].(string)

	return &service.OAuthUser{
		ID:            payload.Subject,
		Email:         email,
		Name:          name,
		Provider:      entity.ProviderTypeGoogle,
		EmailVerified: verified,
	}, nil
}
