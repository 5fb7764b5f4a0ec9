package impl

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/domain/validation"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/usecase"
)

const maxFoodPreferenceLength = 200

// parseRegistration turns the raw form into RegistrationData. The first invalid field
// decides the returned error; store lookups only fail the request on store errors.
func (srv *profileService) parseRegistration(ctx context.Context, in *usecase.RegistrationInput) (*entity.RegistrationData, error) {
	if in == nil {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed)
	}

	data := &entity.RegistrationData{
		FirstName:           strings.TrimSpace(in.FirstName),
		LastName:            strings.TrimSpace(in.LastName),
		PhoneNumber:         strings.TrimSpace(in.PhoneNumber),
		DateOfBirth:         strings.TrimSpace(in.DateOfBirth),
		Gender:              strings.TrimSpace(in.Gender),
		Accomodation:        strings.TrimSpace(in.Accomodation),
		ModeOfTransport:     strings.TrimSpace(in.ModeOfTransport),
		RoomMatePreferences: optionalText(in.RoomMatePreferences),
		OtherRemarks:        optionalText(in.OtherRemarks),
		Address: entity.ResidentialAddress{
			StreetNameAndNumber: strings.TrimSpace(in.StreetNameAndNumber),
			PostalCode:          strings.TrimSpace(in.PostalCode),
			City:                strings.TrimSpace(in.City),
			CountryISO:          strings.TrimSpace(in.Country),
			AdditionalInfo:      optionalText(in.AdditionalAddressInfo).Ptr(),
		},
	}

	if data.FirstName == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidFirstName)
	}
	if data.LastName == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidLastName)
	}
	if !validation.IsValidPhoneNumber(data.PhoneNumber) {
		return nil, errors.WithStack(domainerrors.ErrInvalidPhoneNumber)
	}
	if !validation.IsValidDate(data.DateOfBirth) {
		return nil, errors.WithStack(domainerrors.ErrInvalidDateOfBirth)
	}

	wardID, err := parseWardID(in.WardID)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidWard.WithDetails(in.WardID))
	}
	data.WardID = wardID

	if err := srv.checkGender(ctx, data.Gender); err != nil {
		return nil, err
	}
	if err := srv.checkAddress(ctx, &data.Address); err != nil {
		return nil, err
	}

	breakfast, ok := parseBreakfastPreferences(in.BreakfastPreferences)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrInvalidBreakfastPreferences)
	}
	data.BreakfastPreferences = breakfast

	validAccomodation, err := validation.IsValidAccomodation(ctx, srv.lookupRepo, data.Accomodation)
	if err != nil {
		return nil, err
	}
	if !validAccomodation {
		return nil, errors.WithStack(domainerrors.ErrInvalidAccomodation)
	}

	validTransport, err := validation.IsValidModeOfTransport(ctx, srv.lookupRepo, data.ModeOfTransport)
	if err != nil {
		return nil, err
	}
	if !validTransport {
		return nil, errors.WithStack(domainerrors.ErrInvalidModeOfTransport)
	}

	if err := parseFlags(in, data); err != nil {
		return nil, err
	}

	if data.WantsToProvideTempleStaff && !data.IsTempleStaff {
		return nil, errors.WithStack(domainerrors.ErrTempleStaffRequired)
	}

	foodPreferences, err := normalizeFoodPreferences(in.FoodPreferences)
	if err != nil {
		return nil, err
	}
	data.FoodPreferences = foodPreferences

	return data, nil
}

func (srv *profileService) checkGender(ctx context.Context, gender string) error {
	if gender == "" {
		return errors.WithStack(domainerrors.ErrInvalidGender)
	}

	ok, err := srv.lookupRepo.GenderExists(ctx, gender)
	if err != nil {
		return errors.Wrap(err, "failed to look up gender")
	}
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidGender)
	}

	return nil
}

func (srv *profileService) checkAddress(ctx context.Context, address *entity.ResidentialAddress) error {
	if !validation.IsValidPostalAddress(address.StreetNameAndNumber, address.City, address.PostalCode, address.CountryISO) {
		return errors.WithStack(domainerrors.ErrInvalidAddress)
	}

	ok, err := srv.lookupRepo.CountryExists(ctx, address.CountryISO)
	if err != nil {
		return errors.Wrap(err, "failed to look up country")
	}
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidAddress.WithDetails("unknown country " + address.CountryISO))
	}

	return nil
}

func parseFlags(in *usecase.RegistrationInput, data *entity.RegistrationData) error {
	flags := []struct {
		name string
		raw  string
		dst  *bool
	}{
		{"has_deutschland_ticket", in.HasDeutschlandTicket, &data.HasDeutschlandTicket},
		{"wants_to_visit_temple", in.WantsToVisitTemple, &data.WantsToVisitTemple},
		{"has_endowment", in.HasEndowment, &data.HasEndowment},
		{"is_temple_staff", in.IsTempleStaff, &data.IsTempleStaff},
		{"wants_to_provide_temple_staff", in.WantsToProvideTempleStaff, &data.WantsToProvideTempleStaff},
		{"wants_to_attend_baptism", in.WantsToAttendBaptism, &data.WantsToAttendBaptism},
		{"agrees_to_recordings", in.AgreesToRecordings, &data.AgreesToRecordings},
	}

	for _, flag := range flags {
		value, err := validation.StrToBool(strings.TrimSpace(flag.raw))
		if err != nil {
			return errors.Wrap(domainerrors.ErrInvalidBooleanField.WithDetails(flag.name), err.Error())
		}
		*flag.dst = value
	}

	return nil
}

// parseWardID accepts an empty value as "no ward".
func parseWardID(raw string) (*int64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return nil, errors.Errorf("invalid ward id %q", raw)
	}

	return &id, nil
}

func parseBreakfastPreferences(raw string) (entity.BreakfastPreferences, bool) {
	var decoded any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return entity.BreakfastPreferences{}, false
	}
	if !validation.IsValidBreakfastPreferences(decoded) {
		return entity.BreakfastPreferences{}, false
	}

	days, _ := decoded.(map[string]any)
	day := func(name string) bool {
		v, _ := days[name].(bool)

		return v
	}

	return entity.BreakfastPreferences{
		Tuesday:   day("tuesday"),
		Wednesday: day("wednesday"),
		Thursday:  day("thursday"),
		Friday:    day("friday"),
	}, true
}

// normalizeFoodPreferences trims, drops blanks and duplicates while keeping the order.
func normalizeFoodPreferences(raw []string) ([]entity.FoodPreference, error) {
	prefs := make([]entity.FoodPreference, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, description := range raw {
		description = strings.TrimSpace(description)
		if description == "" {
			continue
		}
		if utf8.RuneCountInString(description) > maxFoodPreferenceLength {
			return nil, errors.WithStack(domainerrors.ErrInvalidFoodPreferences)
		}
		if _, dup := seen[description]; dup {
			continue
		}
		seen[description] = struct{}{}
		prefs = append(prefs, entity.FoodPreference{Description: description})
	}

	return prefs, nil
}

// optionalText keeps the difference between a field that was not submitted and one left blank.
func optionalText(raw *string) entity.Optional[string] {
	if raw == nil {
		return entity.Optional[string]{}
	}

	return entity.Some(strings.TrimSpace(*raw))
}
