// Package model holds the GORM structs mirroring the externally managed database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserInfoModel mirrors the 'user_infos' table. Rows are created by a trigger on auth.users.
type UserInfoModel struct {
	UserID                    uuid.UUID  `gorm:"type:uuid;primaryKey"`
	PublicID                  uuid.UUID  `gorm:"type:uuid;not null;unique"`
	Email                     string     `gorm:"type:text;not null"`
	PhoneNumber               *string    `gorm:"type:text"`
	DateOfBirth               *time.Time `gorm:"type:date"`
	Gender                    *string    `gorm:"type:text"`
	Accomodation              *string    `gorm:"type:text"`
	ModeOfTransport           *string    `gorm:"type:text"`
	BreakfastTuesday          bool       `gorm:"not null;default:false"`
	BreakfastWednesday        bool       `gorm:"not null;default:false"`
	BreakfastThursday         bool       `gorm:"not null;default:false"`
	BreakfastFriday           bool       `gorm:"not null;default:false"`
	RoomMatePreferences       *string    `gorm:"type:text"`
	OtherRemarks              *string    `gorm:"type:text"`
	HasDeutschlandTicket      bool       `gorm:"not null;default:false"`
	WantsToVisitTemple        bool       `gorm:"not null;default:false"`
	HasEndowment              bool       `gorm:"not null;default:false"`
	IsTempleStaff             bool       `gorm:"not null;default:false"`
	WantsToProvideTempleStaff bool       `gorm:"not null;default:false"`
	WantsToAttendBaptism      bool       `gorm:"not null;default:false"`
	AgreesToRecordings        bool       `gorm:"not null;default:false"`
	CreatedAt                 time.Time

	PublicInfo       *PublicInfoModel       `gorm:"foreignKey:PublicID;references:PublicID"`
	Role             *RoleModel             `gorm:"foreignKey:UserID;references:UserID"`
	PaymentInfo      *PaymentInfoModel      `gorm:"foreignKey:UserID;references:UserID"`
	ResidencyAddress *ResidencyAddressModel `gorm:"foreignKey:UserID;references:UserID"`
	FoodPreferences  []FoodPreferenceModel  `gorm:"foreignKey:UserID;references:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserInfoModel) TableName() string {
	return "user_infos"
}

// PublicInfoModel mirrors the 'public_infos' table, the part of a profile other attendees see.
type PublicInfoModel struct {
	PublicID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName *string   `gorm:"type:text"`
	LastName  *string   `gorm:"type:text"`
	AvatarURL *string   `gorm:"type:text"`
	WardID    *int64
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PublicInfoModel) TableName() string {
	return "public_infos"
}

// RoleModel mirrors the 'roles' table.
type RoleModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role   string    `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (RoleModel) TableName() string {
	return "roles"
}
