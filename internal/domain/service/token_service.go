package service

import (
	"errors"

	"recruit/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	// ErrInvalidSignature covers malformed tokens, bad signatures and tokens of the wrong type.
	ErrInvalidSignature = errors.New("invalid token signature")
	// ErrTokenExpired is returned for well-signed tokens past their expiry.
	ErrTokenExpired = errors.New("token expired")
)

// Subject identifies who a session token is minted for.
type Subject struct {
	UserID uuid.UUID
	Role   entity.Role
}

// Claims are the custom JWT claims shared by access and refresh tokens.
type Claims struct {
	UserID uuid.UUID   `json:"uid"`
	Role   entity.Role `json:"role"`
	Type   string      `json:"type"`
	jwt.RegisteredClaims
}

// TokenService mints and verifies stateless session tokens.
type TokenService interface {
	IssueAccessToken(subject Subject) (string, error)

	IssueRefreshToken(subject Subject) (string, error)

	VerifyAccessToken(token string) (*Claims, error)

	VerifyRefreshToken(token string) (*Claims, error)
}
