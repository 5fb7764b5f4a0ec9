package model

import (
	"time"

	"github.com/google/uuid"
)

// ResidencyAddressModel mirrors the 'residency_addresses' table, keyed by user.
type ResidencyAddressModel struct {
	UserID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	StreetNameAndNumber *string   `gorm:"type:text"`
	PostalCode          *int64
	City                *string `gorm:"type:text"`
	Country             *string `gorm:"type:text"`
	AdditionalInfo      *string `gorm:"type:text"`
	CreatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResidencyAddressModel) TableName() string {
	return "residency_addresses"
}

// FoodPreferenceModel mirrors the 'food_preferences' table.
type FoodPreferenceModel struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Description string    `gorm:"type:text;primaryKey"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FoodPreferenceModel) TableName() string {
	return "food_preferences"
}
