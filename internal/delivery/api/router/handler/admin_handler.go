package handler

import (
	"log/slog"
	"net/http"

	"recruit/internal/delivery/api/middleware"
	"recruit/internal/delivery/api/response"
	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultPageSize = 50

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AdminHandler serves account administration routes.
type AdminHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// ListUsers handles GET /admin/users?role=&active=&limit=&offset=.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	var (
		roleParam string
		active    *bool
		limit     = defaultPageSize
		offset    int
	)

	err := echo.QueryParamsBinder(c).
		String("role", &roleParam).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError()
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid query parameters")
	}

	if raw := c.QueryParam("active"); raw != "" {
		var v bool
		if err := echo.QueryParamsBinder(c).Bool("active", &v).BindError(); err != nil {
			return domainerrors.ErrValidationFailed.WrapMessage("active must be a boolean")
		}
		active = &v
	}

	input := &usecase.ListUsersInput{Active: active, Limit: limit, Offset: offset}
	if roleParam != "" {
		role, err := entity.ParseRole(roleParam)
		if err != nil {
			return domainerrors.ErrInvalidRole.WrapMessage(err.Error())
		}
		input.Role = &role
	}

	out, err := h.accountUC.ListUsers(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	users := make([]*UserResponse, 0, len(out.Users))
	for _, u := range out.Users {
		users = append(users, toUserResponse(u))
	}

	return response.Success(c, http.StatusOK, &UserListResponse{
		Users:  users,
		Total:  out.Total,
		Limit:  limit,
		Offset: offset,
	})
}

// SetUserActive handles PATCH /admin/users/:id/active.
func (h *AdminHandler) SetUserActive(c echo.Context) error {
	actorID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("user id must be a UUID")
	}

	var req SetUserActiveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.accountUC.SetUserActive(c.Request().Context(), &usecase.SetUserActiveInput{
		ActorID: actorID,
		UserID:  userID,
		Active:  *req.Active,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
