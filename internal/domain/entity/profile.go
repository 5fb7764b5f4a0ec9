package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus tracks the attendee fee. Transitions only move forward.
type PaymentStatus string

const (
	PaymentStatusUnpaid          PaymentStatus = "UNPAID"
	PaymentStatusPendingApproval PaymentStatus = "PENDING_APPROVAL"
	PaymentStatusConfirmed       PaymentStatus = "CONFIRMED"
)

// IsValid checks if the status is one of the three known values.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPendingApproval, PaymentStatusConfirmed:
		return true
	default:
		return false
	}
}

// BreakfastPreferences records which event mornings the attendee wants breakfast.
type BreakfastPreferences struct {
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
}

// Any reports whether breakfast was requested on at least one day.
func (b BreakfastPreferences) Any() bool {
	return b.Tuesday || b.Wednesday || b.Thursday || b.Friday
}

// ResidentialAddress is the attendee's home address.
type ResidentialAddress struct {
	UserID              uuid.UUID
	StreetNameAndNumber string
	PostalCode          string
	City                string
	CountryISO          string
	AdditionalInfo      *string
}

// FoodPreference is one free-text dietary note.
type FoodPreference struct {
	Description string `json:"description"`
}

// UserProfile is the assembled view over user_infos, public_infos, payment_infos,
// roles, residency_addresses and food_preferences for a single account.
type UserProfile struct {
	// identity
	UserID   uuid.UUID
	PublicID uuid.UUID
	Role     Role

	// public
	FirstName string
	LastName  string
	AvatarURL string
	WardID    *int64

	// contact
	Email       string
	PhoneNumber string
	DateOfBirth string
	Gender      *string

	// logistics
	Accomodation              string
	ModeOfTransport           string
	BreakfastPreferences      *BreakfastPreferences
	RoomMatePreferences       Optional[string]
	OtherRemarks              Optional[string]
	HasDeutschlandTicket      bool
	WantsToVisitTemple        bool
	HasEndowment              bool
	IsTempleStaff             bool
	WantsToProvideTempleStaff bool
	WantsToAttendBaptism      bool
	AgreesToRecordings        bool

	// payment
	PaymentStatus    PaymentStatus
	PaymentReference *int64

	ResidentialAddress *ResidentialAddress
	FoodPreferences    []FoodPreference

	CreatedAt time.Time
}

// HasPaid reports whether an admin confirmed the payment.
func (p *UserProfile) HasPaid() bool {
	return p != nil && p.PaymentStatus == PaymentStatusConfirmed
}

// RegistrationData is what the registration form may write. Server-managed fields
// (public id, email, avatar, role, payment) are deliberately absent.
type RegistrationData struct {
	FirstName                 string
	LastName                  string
	WardID                    *int64
	PhoneNumber               string
	DateOfBirth               string
	Gender                    string
	Accomodation              string
	ModeOfTransport           string
	BreakfastPreferences      BreakfastPreferences
	RoomMatePreferences       Optional[string]
	OtherRemarks              Optional[string]
	HasDeutschlandTicket      bool
	WantsToVisitTemple        bool
	HasEndowment              bool
	IsTempleStaff             bool
	WantsToProvideTempleStaff bool
	WantsToAttendBaptism      bool
	AgreesToRecordings        bool
	Address                   ResidentialAddress
	FoodPreferences           []FoodPreference
}
