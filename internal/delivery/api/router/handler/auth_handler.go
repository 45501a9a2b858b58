// Package handler contains the HTTP handlers for the API server.
package handler

import (
	"log/slog"
	"net/http"

	"recruit/config"
	"recruit/internal/delivery/api/middleware"
	"recruit/internal/delivery/api/response"
	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const forgotPasswordMessage = "If an account exists for this email, a reset link has been sent."

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves the registration, login and password routes.
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	cookie    refreshCookie
	accessTTL int64
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	h := &AuthHandler{
		authUC: params.AuthUC,
		cookie: newRefreshCookie(params.Config),
		logger: params.Logger,
	}
	if params.Config.JWT != nil {
		h.accessTTL = int64(params.Config.JWT.AccessTTL.Seconds())
	}

	return h
}

func (h *AuthHandler) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger)
}

// respondWithSession sets the refresh cookie and returns the access token.
func (h *AuthHandler) respondWithSession(c echo.Context, status int, out *usecase.AuthOutput) error {
	h.cookie.set(c, out.RefreshToken)

	return response.Success(c, status, &SessionResponse{
		AccessToken: out.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   h.accessTTL,
		User:        toUserResponse(out.User),
	})
}

// SendOtp handles POST /auth/send-otp.
func (h *AuthHandler) SendOtp(c echo.Context) error {
	var req SendOtpRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.SendOtp(c.Request().Context(), &usecase.SendOtpInput{
		Email: req.Email,
		Role:  entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, toOtpSentResponse(out))
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.VerifyRegistration(c.Request().Context(), &usecase.VerifyRegistrationInput{
		Email:    req.Email,
		Otp:      req.Otp,
		Password: req.Password,
		FullName: req.FullName,
		Role:     entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondWithSession(c, http.StatusCreated, out)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondWithSession(c, http.StatusOK, out)
}

// RefreshToken handles POST /auth/refresh. The cookie wins over the body. The
// refresh token is not rotated, so the cookie is left untouched.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	token := readRefreshCookie(c)
	if token == "" {
		var req RefreshRequest
		if err := c.Bind(&req); err != nil {
			return domainerrors.ErrValidationFailed.WrapMessage("malformed request body")
		}
		token = req.RefreshToken
	}

	out, err := h.authUC.RefreshToken(c.Request().Context(), &usecase.RefreshTokenInput{RefreshToken: token})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &SessionResponse{
		AccessToken: out.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   h.accessTTL,
		User:        toUserResponse(out.User),
	})
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	if err := h.authUC.Logout(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}
	h.cookie.clear(c)

	return response.NoContent(c)
}

// ForgotPassword handles POST /auth/forgot-password. Unknown addresses and
// delivery failures get the same answer as a successful request.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.authUC.ForgotPassword(c.Request().Context(), &usecase.ForgotPasswordInput{Email: req.Email})
	if errors.Is(err, domainerrors.ErrNotificationFailed) {
		h.log(c).Warn("Password reset mail not delivered", slog.Any("error", err))
	} else if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, &MessageResponse{Message: forgotPasswordMessage})
}

// ResetPassword handles POST /auth/reset-password.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err := h.authUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &MessageResponse{Message: "Password has been reset."})
}

// GoogleSignIn handles POST /oauth/google.
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var req GoogleSignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.GoogleSignIn(c.Request().Context(), &usecase.GoogleSignInInput{
		IDToken: req.IDToken,
		Role:    entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondWithSession(c, http.StatusOK, out)
}
