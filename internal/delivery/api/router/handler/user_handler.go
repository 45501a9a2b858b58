package handler

import (
	"log/slog"
	"net/http"

	"recruit/internal/delivery/api/middleware"
	"recruit/internal/delivery/api/response"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AuthUC    usecase.AuthUsecase
	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// UserHandler serves routes about the authenticated user's own account.
type UserHandler struct {
	authUC    usecase.AuthUsecase
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		authUC:    params.AuthUC,
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// Me handles GET /user/me.
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	user, err := h.accountUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// RequestEmailUpdate handles POST /user/email/request.
func (h *UserHandler) RequestEmailUpdate(c echo.Context) error {
	userID, okID := middleware.GetUserID(c)
	role, okRole := middleware.GetRole(c)
	if !okID || !okRole {
		return domainerrors.ErrUnauthorized
	}

	var req RequestEmailUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.RequestEmailUpdate(c.Request().Context(), &usecase.RequestEmailUpdateInput{
		UserID:   userID,
		Role:     role,
		NewEmail: req.NewEmail,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, toOtpSentResponse(out))
}

// VerifyEmailUpdate handles POST /user/email/verify.
func (h *UserHandler) VerifyEmailUpdate(c echo.Context) error {
	userID, okID := middleware.GetUserID(c)
	role, okRole := middleware.GetRole(c)
	if !okID || !okRole {
		return domainerrors.ErrUnauthorized
	}

	var req VerifyEmailUpdateRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.authUC.VerifyEmailUpdate(c.Request().Context(), &usecase.VerifyEmailUpdateInput{
		UserID:   userID,
		Role:     role,
		NewEmail: req.NewEmail,
		Otp:      req.Otp,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
