package service

import (
	"context"

	"recruit/internal/domain/entity"
)

// ActivityTracker records audit events. Track never blocks the caller on
// storage and never reports failures back.
type ActivityTracker interface {
	Track(ctx context.Context, event entity.ActivityEvent)
}
