package handler

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/TimDev9492/chad-website/internal/delivery/api/response"
	"github.com/TimDev9492/chad-website/internal/delivery/api/validator"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	AvatarUC  usecase.AvatarUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the registration form and the profile picture upload.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	avatarUC  usecase.AvatarUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		avatarUC:  params.AvatarUC,
		logger:    params.Logger,
	}
}

// AvatarResponse carries the new picture URL.
type AvatarResponse struct {
	AvatarURL string `json:"avatar_url"`
}

// GetInfo handles GET /user/info.
func (h *ProfileHandler) GetInfo(c echo.Context) error {
	state, err := requireSession(c)
	if err != nil {
		return err
	}

	info, err := h.profileUC.GetInfo(c.Request().Context(), state.Claims.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, info)
}

// SubmitInfo handles POST /user/info.
func (h *ProfileHandler) SubmitInfo(c echo.Context) error {
	state, err := requireSession(c)
	if err != nil {
		return err
	}

	var form RegistrationForm
	if err := c.Bind(&form); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration form")
	}
	form.trim()
	if err := c.Validate(&form); err != nil {
		return response.HandleAppError(c, registrationValidationError(err))
	}

	if err := h.profileUC.SubmitRegistration(c.Request().Context(), state.Claims.UserID, form.toInput()); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Message(c, "Deine Angaben wurden gespeichert.")
}

// UploadAvatar handles POST /user/avatar with either a multipart "avatar" file or a
// "data_url" field.
func (h *ProfileHandler) UploadAvatar(c echo.Context) error {
	state, err := requireProfile(c)
	if err != nil {
		return err
	}

	mimeType, data, err := readAvatar(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	avatarURL, err := h.avatarUC.UploadAvatar(c.Request().Context(), state.Profile.PublicID, mimeType, data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AvatarResponse{AvatarURL: avatarURL})
}

// RegistrationForm is the urlencoded registration form. The optional free-text fields
// stay nil when the form did not contain them at all.
type RegistrationForm struct {
	FirstName       string `form:"first_name" validate:"required"`
	LastName        string `form:"last_name" validate:"required"`
	PhoneNumber     string `form:"phone_number" validate:"e164phone"`
	DateOfBirth     string `form:"date_of_birth" validate:"isodate"`
	WardID          string `form:"ward_id"`
	Gender          string `form:"gender"`
	Accomodation    string `form:"accomodation"`
	ModeOfTransport string `form:"mode_of_transport"`

	BreakfastPreferences string  `form:"breakfast_preferences"`
	RoomMatePreferences  *string `form:"room_mate_preferences"`
	OtherRemarks         *string `form:"other_remarks"`

	HasDeutschlandTicket      string `form:"has_deutschland_ticket"`
	WantsToVisitTemple        string `form:"wants_to_visit_temple"`
	HasEndowment              string `form:"has_endowment"`
	IsTempleStaff             string `form:"is_temple_staff"`
	WantsToProvideTempleStaff string `form:"wants_to_provide_temple_staff"`
	WantsToAttendBaptism      string `form:"wants_to_attend_baptism"`
	AgreesToRecordings        string `form:"agrees_to_recordings"`

	StreetNameAndNumber   string  `form:"street_name_and_number"`
	PostalCode            string  `form:"postal_code"`
	City                  string  `form:"city"`
	Country               string  `form:"country"`
	AdditionalAddressInfo *string `form:"additional_address_info"`

	FoodPreferences []string `form:"food_preferences"`
}

// registrationFieldErrors maps validated form fields to the error the form shows for them.
var registrationFieldErrors = map[string]*domainerrors.BaseError{
	"FirstName":   domainerrors.ErrInvalidFirstName,
	"LastName":    domainerrors.ErrInvalidLastName,
	"PhoneNumber": domainerrors.ErrInvalidPhoneNumber,
	"DateOfBirth": domainerrors.ErrInvalidDateOfBirth,
}

func registrationValidationError(err error) error {
	if field, ok := validator.FirstField(err); ok {
		if fieldErr, known := registrationFieldErrors[field]; known {
			return errors.WithStack(fieldErr)
		}
	}

	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err)))
}

func (f *RegistrationForm) trim() {
	f.FirstName = strings.TrimSpace(f.FirstName)
	f.LastName = strings.TrimSpace(f.LastName)
	f.PhoneNumber = strings.TrimSpace(f.PhoneNumber)
	f.DateOfBirth = strings.TrimSpace(f.DateOfBirth)
}

func (f *RegistrationForm) toInput() *usecase.RegistrationInput {
	return &usecase.RegistrationInput{
		FirstName:       f.FirstName,
		LastName:        f.LastName,
		WardID:          f.WardID,
		PhoneNumber:     f.PhoneNumber,
		DateOfBirth:     f.DateOfBirth,
		Gender:          f.Gender,
		Accomodation:    f.Accomodation,
		ModeOfTransport: f.ModeOfTransport,

		BreakfastPreferences: f.BreakfastPreferences,
		RoomMatePreferences:  f.RoomMatePreferences,
		OtherRemarks:         f.OtherRemarks,

		HasDeutschlandTicket:      f.HasDeutschlandTicket,
		WantsToVisitTemple:        f.WantsToVisitTemple,
		HasEndowment:              f.HasEndowment,
		IsTempleStaff:             f.IsTempleStaff,
		WantsToProvideTempleStaff: f.WantsToProvideTempleStaff,
		WantsToAttendBaptism:      f.WantsToAttendBaptism,
		AgreesToRecordings:        f.AgreesToRecordings,

		StreetNameAndNumber:   f.StreetNameAndNumber,
		PostalCode:            f.PostalCode,
		City:                  f.City,
		Country:               f.Country,
		AdditionalAddressInfo: f.AdditionalAddressInfo,

		FoodPreferences: f.FoodPreferences,
	}
}

func readAvatar(c echo.Context) (string, []byte, error) {
	if fileHeader, err := c.FormFile("avatar"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return "", nil, errors.Wrap(err, "failed to open avatar upload")
		}
		defer file.Close()

		data, err := io.ReadAll(file)
		if err != nil {
			return "", nil, errors.Wrap(err, "failed to read avatar upload")
		}

		return fileHeader.Header.Get(echo.HeaderContentType), data, nil
	}

	dataURL := c.FormValue("data_url")
	if dataURL == "" {
		return "", nil, errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("avatar or data_url is required"))
	}

	return parseDataURL(dataURL)
}

// parseDataURL decodes data:<mime>;base64,<payload>.
func parseDataURL(raw string) (string, []byte, error) {
	meta, payload, ok := strings.Cut(strings.TrimPrefix(raw, "data:"), ",")
	if !ok || !strings.HasPrefix(raw, "data:") {
		return "", nil, errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("malformed data url"))
	}

	mimeType, isBase64 := strings.CutSuffix(meta, ";base64")
	if !isBase64 {
		return "", nil, errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("data url must be base64 encoded"))
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("invalid base64 payload"))
	}

	return mimeType, data, nil
}
