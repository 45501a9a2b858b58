package middleware

import (
	"log/slog"
	"slices"
	"strings"

	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/service"
	"recruit/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRole   = "role"
)

// AuthMiddleware validates bearer access tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid access token and stores its subject on the
// echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized
		}

		scheme, token, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header must be a bearer token")
		}

		claims, err := m.tokenSvc.VerifyAccessToken(strings.TrimSpace(token))
		switch {
		case errors.Is(err, service.ErrTokenExpired):
			return domainerrors.ErrSessionExpired
		case err != nil:
			return domainerrors.ErrInvalidSignature
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRole, claims.Role)

		ctx := deliverycontext.WithLogAttrs(c.Request().Context(), slog.String("user_id", claims.UserID.String()))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRole lets the request through only for the given roles. It must run
// after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := GetRole(c)
			if !ok {
				return domainerrors.ErrUnauthorized
			}
			if !slices.Contains(roles, role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated user's ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetRole returns the authenticated user's role.
func GetRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(contextKeyRole).(entity.Role)

	return role, ok
}
