package validation

import (
	"github.com/TimDev9492/chad-website/internal/domain/entity"

	"github.com/google/uuid"
)

// HasInfosProvided reports whether the profile holds everything the event needs before payment.
// Checks run in order and stop at the first failure; a nil profile is incomplete.
func HasInfosProvided(p *entity.UserProfile) bool {
	return p != nil &&
		isValidUser(p) &&
		hasDefaultedFields(p) &&
		hasPersonalFields(p) &&
		hasStructuredFields(p) &&
		p.Accomodation != "" &&
		p.ModeOfTransport != "" &&
		IsValidPostalAddress(
			p.ResidentialAddress.StreetNameAndNumber,
			p.ResidentialAddress.City,
			p.ResidentialAddress.PostalCode,
			p.ResidentialAddress.CountryISO,
		)
}

func isValidUser(p *entity.UserProfile) bool {
	return p.UserID != uuid.Nil && p.PublicID != uuid.Nil && p.Role != ""
}

func hasDefaultedFields(p *entity.UserProfile) bool {
	return p.AvatarURL != "" && p.PaymentStatus.IsValid() && p.PaymentReference != nil
}

func hasPersonalFields(p *entity.UserProfile) bool {
	return p.FirstName != "" &&
		p.LastName != "" &&
		IsValidEmailAddress(p.Email) &&
		IsValidPhoneNumber(p.PhoneNumber) &&
		IsValidDate(p.DateOfBirth) &&
		p.Gender != nil
}

// hasStructuredFields only checks presence. Room mate preferences and remarks may be blank
// but must have been answered.
func hasStructuredFields(p *entity.UserProfile) bool {
	return p.ResidentialAddress != nil &&
		p.FoodPreferences != nil &&
		p.BreakfastPreferences != nil &&
		p.RoomMatePreferences.IsSet() &&
		p.OtherRemarks.IsSet()
}
