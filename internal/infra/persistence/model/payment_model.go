package model

import (
	"time"

	"github.com/google/uuid"
)

// PaymentInfoModel mirrors the 'payment_infos' table. The reference is assigned by a sequence.
type PaymentInfoModel struct {
	UserID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PaymentReference int64     `gorm:"not null;unique;autoIncrement"`
	Status           string    `gorm:"type:text;not null;default:UNPAID"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentInfoModel) TableName() string {
	return "payment_infos"
}
