package repository

import (
	"context"

	"recruit/internal/domain/entity"
)

// ActivityRepository appends audit events.
type ActivityRepository interface {
	Create(ctx context.Context, event *entity.ActivityEvent) error
}
