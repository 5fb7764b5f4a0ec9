package postgres

import (
	"strconv"
	"time"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/infra/persistence/model"

	"github.com/google/uuid"
)

const dateLayout = time.DateOnly

func derefString(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// nullIfEmpty maps blank form input onto NULL.
func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func toUserProfileDomain(m *model.UserInfoModel) *entity.UserProfile {
	if m == nil {
		return nil
	}

	profile := &entity.UserProfile{
		UserID:          m.UserID,
		PublicID:        m.PublicID,
		Email:           m.Email,
		PhoneNumber:     derefString(m.PhoneNumber),
		Gender:          m.Gender,
		Accomodation:    derefString(m.Accomodation),
		ModeOfTransport: derefString(m.ModeOfTransport),
		BreakfastPreferences: &entity.BreakfastPreferences{
			Tuesday:   m.BreakfastTuesday,
			Wednesday: m.BreakfastWednesday,
			Thursday:  m.BreakfastThursday,
			Friday:    m.BreakfastFriday,
		},
		RoomMatePreferences:       entity.OptionalFromPtr(m.RoomMatePreferences),
		OtherRemarks:              entity.OptionalFromPtr(m.OtherRemarks),
		HasDeutschlandTicket:      m.HasDeutschlandTicket,
		WantsToVisitTemple:        m.WantsToVisitTemple,
		HasEndowment:              m.HasEndowment,
		IsTempleStaff:             m.IsTempleStaff,
		WantsToProvideTempleStaff: m.WantsToProvideTempleStaff,
		WantsToAttendBaptism:      m.WantsToAttendBaptism,
		AgreesToRecordings:        m.AgreesToRecordings,
		FoodPreferences:           make([]entity.FoodPreference, 0, len(m.FoodPreferences)),
		CreatedAt:                 m.CreatedAt,
	}

	if m.DateOfBirth != nil {
		profile.DateOfBirth = m.DateOfBirth.Format(dateLayout)
	}

	if m.PublicInfo != nil {
		profile.FirstName = derefString(m.PublicInfo.FirstName)
		profile.LastName = derefString(m.PublicInfo.LastName)
		profile.AvatarURL = derefString(m.PublicInfo.AvatarURL)
		profile.WardID = m.PublicInfo.WardID
	}

	if m.Role != nil {
		profile.Role = entity.Role(m.Role.Role)
	}

	if m.PaymentInfo != nil {
		ref := m.PaymentInfo.PaymentReference
		profile.PaymentStatus = entity.PaymentStatus(m.PaymentInfo.Status)
		profile.PaymentReference = &ref
	}

	if m.ResidencyAddress != nil {
		profile.ResidentialAddress = toAddressDomain(m.ResidencyAddress)
	}

	for _, fp := range m.FoodPreferences {
		profile.FoodPreferences = append(profile.FoodPreferences, entity.FoodPreference{Description: fp.Description})
	}

	return profile
}

func toAddressDomain(m *model.ResidencyAddressModel) *entity.ResidentialAddress {
	address := &entity.ResidentialAddress{
		UserID:              m.UserID,
		StreetNameAndNumber: derefString(m.StreetNameAndNumber),
		City:                derefString(m.City),
		CountryISO:          derefString(m.Country),
		AdditionalInfo:      m.AdditionalInfo,
	}
	if m.PostalCode != nil {
		address.PostalCode = strconv.FormatInt(*m.PostalCode, 10)
	}

	return address
}

// fromAddressDomain builds the row for an upsert. A postal code that is not a number is stored as NULL.
func fromAddressDomain(a *entity.ResidentialAddress) *model.ResidencyAddressModel {
	m := &model.ResidencyAddressModel{
		UserID:              a.UserID,
		StreetNameAndNumber: nullIfEmpty(a.StreetNameAndNumber),
		City:                nullIfEmpty(a.City),
		Country:             nullIfEmpty(a.CountryISO),
		AdditionalInfo:      a.AdditionalInfo,
	}
	if code, err := strconv.ParseInt(a.PostalCode, 10, 64); err == nil {
		m.PostalCode = &code
	}

	return m
}

func toPaymentInfoDomain(m *model.PaymentInfoModel) *entity.PaymentInfo {
	return &entity.PaymentInfo{
		UserID:           m.UserID,
		PaymentReference: m.PaymentReference,
		Status:           entity.PaymentStatus(m.Status),
		CreatedAt:        m.CreatedAt,
	}
}

func toWorkshopDomain(m *model.WorkshopModel) *entity.Workshop {
	return &entity.Workshop{
		ID:            m.ID,
		Title:         m.Title,
		Description:   m.Description,
		EventStart:    m.EventStart,
		EventDuration: m.EventDuration,
		Capacity:      m.Capacity,
		ThumbnailURL:  m.ThumbnailURL,
		Metadata:      m.Metadata,
	}
}

func toSongSuggestionDomain(m *model.SongSuggestionModel) *entity.SongSuggestion {
	likedBy := make([]uuid.UUID, 0, len(m.Likes))
	for _, like := range m.Likes {
		likedBy = append(likedBy, like.PublicID)
	}

	return &entity.SongSuggestion{
		ID:            m.ID,
		SpotifyID:     m.SpotifyID,
		Name:          m.Name,
		Artists:       []string(m.Artists),
		Album:         m.Album,
		Duration:      m.Duration,
		Popularity:    m.Popularity,
		ReleaseDate:   m.ReleaseDate,
		CoverImageURL: m.CoverImageURL,
		SpotifyURL:    m.SpotifyURL,
		SubmittedBy:   m.SubmittedBy,
		LikedBy:       likedBy,
		CreatedAt:     m.CreatedAt,
	}
}

func fromSongSuggestionDomain(s *entity.SongSuggestion) *model.SongSuggestionModel {
	return &model.SongSuggestionModel{
		ID:            s.ID,
		SpotifyID:     s.SpotifyID,
		Name:          s.Name,
		Artists:       s.Artists,
		Album:         s.Album,
		Duration:      s.Duration,
		Popularity:    s.Popularity,
		ReleaseDate:   s.ReleaseDate,
		CoverImageURL: s.CoverImageURL,
		SpotifyURL:    s.SpotifyURL,
		SubmittedBy:   s.SubmittedBy,
	}
}

func toParticipantDomain(m *model.ParticipantModel) *entity.Participant {
	p := &entity.Participant{
		FirstName:           m.FirstName,
		LastName:            m.LastName,
		Email:               m.Email,
		PhoneNumber:         m.PhoneNumber,
		Gender:              m.Gender,
		DateOfBirth:         m.DateOfBirth,
		StakeName:           m.StakeName,
		WardName:            m.WardName,
		FoodPreferences:     m.FoodPreferences,
		StreetNameAndNumber: m.StreetNameAndNumber,
		PostalCode:          m.PostalCode,
		City:                m.City,
		CountryOfResidency:  m.CountryOfResidency,
		PaymentStatus:       entity.PaymentStatus(m.PaymentStatus),
	}
	if m.NeedsPlaceToSleep != nil {
		p.NeedsPlaceToSleep = *m.NeedsPlaceToSleep
	}
	if m.WantsBreakfast != nil {
		p.WantsBreakfast = *m.WantsBreakfast
	}

	return p
}
