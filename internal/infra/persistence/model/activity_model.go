package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActivityLogModel mirrors the 'activity_logs' table.
type ActivityLogModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID     *uuid.UUID `gorm:"type:uuid;index"`
	Action     string     `gorm:"type:varchar(64);not null;index"`
	EntityType string     `gorm:"type:varchar(32)"`
	EntityID   string     `gorm:"type:varchar(64)"`
	Metadata   datatypes.JSONMap
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
