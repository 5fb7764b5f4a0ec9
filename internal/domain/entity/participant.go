package entity

import "github.com/google/uuid"

// Participant is one row of the participants view used for the admin export.
type Participant struct {
	FirstName           *string
	LastName            *string
	Email               *string
	PhoneNumber         *string
	Gender              *string
	DateOfBirth         *string
	StakeName           *string
	WardName            *string
	NeedsPlaceToSleep   bool
	WantsBreakfast      bool
	FoodPreferences     *string
	StreetNameAndNumber *string
	PostalCode          *int64
	City                *string
	CountryOfResidency  *string
	PaymentStatus       PaymentStatus
}

// RegisteredUser is the public listing of attendees.
type RegisteredUser struct {
	PublicID  uuid.UUID `json:"public_id"`
	FirstName *string   `json:"first_name"`
	LastName  *string   `json:"last_name"`
	WardName  *string   `json:"ward_name"`
	StakeName *string   `json:"stake_name"`
	AvatarURL *string   `json:"avatar_url"`
}
