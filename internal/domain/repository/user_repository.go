// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"recruit/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user lookup finds nothing.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists accounts. Emails are passed already normalized.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create inserts the user. A duplicate email yields ErrUserAlreadyExists.
	Create(ctx context.Context, user *entity.User) error

	// UpdateEmail changes the user's email. A duplicate email yields ErrUserAlreadyExists.
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error

	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	List(ctx context.Context, filter entity.UserFilter) ([]*entity.User, int64, error)
}
