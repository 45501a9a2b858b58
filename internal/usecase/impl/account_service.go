package impl

import (
	"context"
	"log/slog"

	deliverycontext "recruit/internal/delivery/context"
	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/repository"
	"recruit/internal/domain/service"
	"recruit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const maxListLimit = 200

// accountService implements the AccountUsecase interface.
type accountService struct {
	userRepo repository.UserRepository
	tracker  service.ActivityTracker
	logger   *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	UserRepo        repository.UserRepository
	ActivityTracker service.ActivityTracker
	Logger          *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		userRepo: params.UserRepo,
		tracker:  params.ActivityTracker,
		logger:   params.Logger,
	}
}

func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile returns the account of userID.
func (srv *accountService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// ListUsers pages through accounts, newest first.
func (srv *accountService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) (*usecase.ListUsersOutput, error) {
	if input.Role != nil && !input.Role.IsValid() {
		return nil, domainerrors.ErrInvalidRole
	}
	if input.Limit < 0 || input.Offset < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("limit and offset must not be negative")
	}

	limit := input.Limit
	if limit > maxListLimit {
		limit = maxListLimit
	}

	users, total, err := srv.userRepo.List(ctx, entity.UserFilter{
		Role:   input.Role,
		Active: input.Active,
		Limit:  limit,
		Offset: input.Offset,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.ListUsersOutput{Users: users, Total: total}, nil
}

// SetUserActive soft-(de)activates an account. Admins cannot deactivate
// themselves.
func (srv *accountService) SetUserActive(ctx context.Context, input *usecase.SetUserActiveInput) (*entity.User, error) {
	if input.ActorID == input.UserID && !input.Active {
		return nil, domainerrors.ErrForbidden.WrapMessage("admins cannot deactivate their own account")
	}

	user, err := srv.userRepo.FindByID(ctx, input.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if user.Active == input.Active {
		return user, nil
	}

	if err := srv.userRepo.SetActive(ctx, user.ID, input.Active); err != nil {
		return nil, errors.Wrap(err, "failed to update user status")
	}
	user.Active = input.Active

	action := entity.ActionUserDeactivated
	if input.Active {
		action = entity.ActionUserActivated
	}
	actorID := input.ActorID
	srv.tracker.Track(ctx, entity.ActivityEvent{
		UserID:     &actorID,
		Action:     action,
		EntityType: "user",
		EntityID:   user.ID.String(),
	})

	srv.log(ctx).Info("User status changed",
		slog.Any("actorID", input.ActorID),
		slog.Any("userID", user.ID),
		slog.Bool("active", input.Active),
	)

	return user, nil
}
