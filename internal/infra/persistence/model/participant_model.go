package model

import "github.com/google/uuid"

// ParticipantModel mirrors the 'participants' view.
type ParticipantModel struct {
	FirstName           *string
	LastName            *string
	Email               *string
	PhoneNumber         *string
	Gender              *string
	DateOfBirth         *string `gorm:"column:date_of_birth"`
	StakeName           *string
	WardName            *string
	NeedsPlaceToSleep   *bool
	WantsBreakfast      *bool
	FoodPreferences     *string
	StreetNameAndNumber *string
	PostalCode          *int64
	City                *string
	CountryOfResidency  *string
	PaymentStatus       string
}

// TableName explicitly sets the table name for GORM.
func (ParticipantModel) TableName() string {
	return "participants"
}

// RegisteredUserRow is one row returned by get_registered_users().
type RegisteredUserRow struct {
	PublicID  uuid.UUID
	FirstName *string
	LastName  *string
	WardName  *string
	StakeName *string
	AvatarURL *string
}
