package postgres

import (
	"context"

	"recruit/internal/domain/entity"
	domainerrors "recruit/internal/domain/errors"
	"recruit/internal/domain/repository"
	"recruit/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository is the constructor for activityRepository.
func NewActivityRepository(db *gorm.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (repo *activityRepository) Create(ctx context.Context, event *entity.ActivityEvent) error {
	activityM := &model.ActivityLogModel{
		ID:         event.ID,
		UserID:     event.UserID,
		Action:     event.Action,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		Metadata:   datatypes.JSONMap(event.Metadata),
	}

	if err := repo.db.WithContext(ctx).Create(activityM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record activity")
	}

	event.ID = activityM.ID
	event.CreatedAt = activityM.CreatedAt

	return nil
}
