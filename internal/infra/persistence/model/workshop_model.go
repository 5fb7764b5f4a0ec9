package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// WorkshopModel mirrors the 'workshops' table.
type WorkshopModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title         string          `gorm:"type:text;not null"`
	Description   string          `gorm:"type:text;not null"`
	EventStart    time.Time       `gorm:"not null"`
	EventDuration int             `gorm:"not null"`
	Capacity      int             `gorm:"not null"`
	ThumbnailURL  *string         `gorm:"type:text"`
	Metadata      json.RawMessage `gorm:"type:jsonb"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkshopModel) TableName() string {
	return "workshops"
}
