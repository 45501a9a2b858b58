package usecase

import (
	"context"

	"recruit/internal/domain/entity"

	"github.com/google/uuid"
)

// ListUsersInput filters the admin user listing. Nil filters match everything.
type ListUsersInput struct {
	Role   *entity.Role
	Active *bool
	Limit  int
	Offset int
}

// ListUsersOutput is one page of users plus the unpaged total.
type ListUsersOutput struct {
	Users []*entity.User
	Total int64
}

// SetUserActiveInput (de)activates an account on behalf of an admin.
type SetUserActiveInput struct {
	ActorID uuid.UUID
	UserID  uuid.UUID
	Active  bool
}

// AccountUsecase covers profile reads and admin moderation.
type AccountUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	ListUsers(ctx context.Context, input *ListUsersInput) (*ListUsersOutput, error)
	SetUserActive(ctx context.Context, input *SetUserActiveInput) (*entity.User, error)
}
