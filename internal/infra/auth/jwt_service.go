package auth

import (
	"time"

	"recruit/config"
	"recruit/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultIssuer = "recruit"

// jwtService signs access and refresh tokens with separate HS256 secrets so a
// leaked refresh secret cannot mint access tokens and vice versa.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}
	if cfg.SecretKey.Access == cfg.SecretKey.Refresh {
		return nil, errors.New("access and refresh secrets must differ")
	}

	svc := &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     15 * time.Minute,
		refreshTTL:    7 * 24 * time.Hour,
		issuer:        defaultIssuer,
		now:           time.Now,
	}

	if cfg.JWT != nil {
		if cfg.JWT.AccessTTL > 0 {
			svc.accessTTL = cfg.JWT.AccessTTL
		}
		if cfg.JWT.RefreshTTL > 0 {
			svc.refreshTTL = cfg.JWT.RefreshTTL
		}
		if cfg.JWT.Issuer != "" {
			svc.issuer = cfg.JWT.Issuer
		}
	}

	return svc, nil
}

func (s *jwtService) IssueAccessToken(subject service.Subject) (string, error) {
	return s.sign(subject, service.TokenTypeAccess, s.accessTTL, s.accessSecret)
}

func (s *jwtService) IssueRefreshToken(subject service.Subject) (string, error) {
	return s.sign(subject, service.TokenTypeRefresh, s.refreshTTL, s.refreshSecret)
}

func (s *jwtService) VerifyAccessToken(token string) (*service.Claims, error) {
	return s.verify(token, service.TokenTypeAccess, s.accessSecret)
}

func (s *jwtService) VerifyRefreshToken(token string) (*service.Claims, error) {
	return s.verify(token, service.TokenTypeRefresh, s.refreshSecret)
}

func (s *jwtService) sign(subject service.Subject, tokenType string, ttl time.Duration, secret []byte) (string, error) {
	if subject.UserID == uuid.Nil {
		return "", errors.New("token subject is required")
	}
	if !subject.Role.IsValid() {
		return "", errors.Errorf("unknown role %q", subject.Role)
	}

	now := s.now()
	claims := service.Claims{
		UserID: subject.UserID,
		Role:   subject.Role,
		Type:   tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.UserID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) verify(token, tokenType string, secret []byte) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(service.ErrTokenExpired, err.Error())
		}

		return nil, errors.Wrap(service.ErrInvalidSignature, err.Error())
	}

	if claims.Type != tokenType || claims.UserID == uuid.Nil || claims.Subject != claims.UserID.String() || !claims.Role.IsValid() {
		return nil, errors.Wrapf(service.ErrInvalidSignature, "unexpected %s token claims", tokenType)
	}

	return claims, nil
}
