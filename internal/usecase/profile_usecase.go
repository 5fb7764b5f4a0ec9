// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the registration data operations of an attendee.
type ProfileUsecase interface {
	// GetInfo loads the profile with the select options of the registration form.
	// An empty address row is created first so the form always has one to edit.
	GetInfo(ctx context.Context, userID uuid.UUID) (*ProfileInfo, error)

	// SubmitRegistration validates the form and writes address, profile fields and
	// food preferences in one transaction.
	SubmitRegistration(ctx context.Context, userID uuid.UUID, input *RegistrationInput) error
}

// ProfileInfo is the registration page model.
type ProfileInfo struct {
	Profile       *entity.UserProfile `json:"profile"`
	Lookups       *entity.LookupLists `json:"lookups"`
	InfosProvided bool                `json:"infos_provided"`
}

// --- Input DTOs ---

// RegistrationInput carries the raw registration form values. Yes/no fields arrive as
// "true"/"false"; breakfast preferences as a JSON object. A nil pointer means the field
// was not part of the submission.
type RegistrationInput struct {
	FirstName       string
	LastName        string
	WardID          string
	PhoneNumber     string
	DateOfBirth     string
	Gender          string
	Accomodation    string
	ModeOfTransport string

	BreakfastPreferences string
	RoomMatePreferences  *string
	OtherRemarks         *string

	HasDeutschlandTicket      string
	WantsToVisitTemple        string
	HasEndowment              string
	IsTempleStaff             string
	WantsToProvideTempleStaff string
	WantsToAttendBaptism      string
	AgreesToRecordings        string

	StreetNameAndNumber   string
	PostalCode            string
	City                  string
	Country               string
	AdditionalAddressInfo *string

	FoodPreferences []string
}
