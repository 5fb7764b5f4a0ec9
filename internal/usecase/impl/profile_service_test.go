package impl

import (
	"context"
	"testing"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	mockRepo "github.com/TimDev9492/chad-website/internal/mocks/repository"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	txManager   *mockRepo.MockTransactionManager
	profileRepo *mockRepo.MockProfileRepository
	addressRepo *mockRepo.MockAddressRepository
	lookupRepo  *mockRepo.MockLookupRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	addressRepo := mockRepo.NewMockAddressRepository(t)
	lookupRepo := mockRepo.NewMockLookupRepository(t)

	service := NewProfileService(ProfileServiceParams{
		TxManager:   txManager,
		ProfileRepo: profileRepo,
		AddressRepo: addressRepo,
		LookupRepo:  lookupRepo,
		Logger:      newDiscardLogger(),
	})

	return profileServiceFixtures{
		service:     service,
		txManager:   txManager,
		profileRepo: profileRepo,
		addressRepo: addressRepo,
		lookupRepo:  lookupRepo,
	}
}

func validRegistrationInput() *usecase.RegistrationInput {
	return &usecase.RegistrationInput{
		FirstName:                 "Anna",
		LastName:                  "Schmidt",
		WardID:                    "3",
		PhoneNumber:               "+491701234567",
		DateOfBirth:               "2001-04-12",
		Gender:                    "female",
		Accomodation:              "Turnhalle",
		ModeOfTransport:           "Zug",
		BreakfastPreferences:      `{"tuesday":true,"wednesday":false,"friday":true}`,
		RoomMatePreferences:       ptr(""),
		OtherRemarks:              ptr("Komme später"),
		HasDeutschlandTicket:      "true",
		WantsToVisitTemple:        "TRUE",
		HasEndowment:              "false",
		IsTempleStaff:             "false",
		WantsToProvideTempleStaff: "false",
		WantsToAttendBaptism:      "false",
		AgreesToRecordings:        "true",
		StreetNameAndNumber:       "Hauptstraße 1",
		PostalCode:                "10115",
		City:                      "Berlin",
		Country:                   "DE",
		FoodPreferences:           []string{"vegetarisch", " laktosefrei ", "vegetarisch", ""},
	}
}

func (fx profileServiceFixtures) expectValidLookups(ctx context.Context) {
	fx.lookupRepo.EXPECT().GenderExists(ctx, "female").Return(true, nil)
	fx.lookupRepo.EXPECT().CountryExists(ctx, "DE").Return(true, nil)
	fx.lookupRepo.EXPECT().AccomodationExists(ctx, "Turnhalle").Return(true, nil)
	fx.lookupRepo.EXPECT().ModeOfTransportExists(ctx, "Zug").Return(true, nil)
}

func TestProfileService_GetInfo_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	profile := &entity.UserProfile{UserID: userID, FirstName: "Anna"}

	fx.addressRepo.EXPECT().EnsureExists(ctx, userID).Return(&entity.ResidentialAddress{UserID: userID}, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(profile, nil)
	fx.lookupRepo.EXPECT().ListGenders(ctx).Return([]string{"female", "male"}, nil)
	fx.lookupRepo.EXPECT().ListCountries(ctx).Return([]*entity.Country{{ISOCode: "DE"}}, nil)
	fx.lookupRepo.EXPECT().ListAccomodations(ctx).Return([]*entity.Accomodation{{Name: "Turnhalle"}}, nil)
	fx.lookupRepo.EXPECT().ListMeansOfTransport(ctx).Return([]string{"Zug"}, nil)

	info, err := fx.service.GetInfo(ctx, userID)

	require.NoError(t, err)
	assert.Same(t, profile, info.Profile)
	assert.Equal(t, []string{"female", "male"}, info.Lookups.Genders)
	assert.Len(t, info.Lookups.Countries, 1)
	assert.False(t, info.InfosProvided)
}

func TestProfileService_GetInfo_ProfileNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.addressRepo.EXPECT().EnsureExists(ctx, userID).Return(&entity.ResidentialAddress{UserID: userID}, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	info, err := fx.service.GetInfo(ctx, userID)

	require.Error(t, err)
	assert.Nil(t, info)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestProfileService_SubmitRegistration_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.expectValidLookups(ctx)

	var saved *entity.RegistrationData
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		foodRepo := mockRepo.NewMockFoodPreferenceRepository(t)

		factory.EXPECT().AddressRepo().Return(addressRepo)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		factory.EXPECT().FoodPreferenceRepo().Return(foodRepo)

		addressRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(a *entity.ResidentialAddress) bool {
			return a.UserID == userID && a.PostalCode == "10115" && a.CountryISO == "DE"
		})).Return(nil)
		profileRepo.EXPECT().UpdateRegistration(ctx, userID, mock.AnythingOfType("*entity.RegistrationData")).
			Run(func(_ context.Context, _ uuid.UUID, data *entity.RegistrationData) {
				saved = data
			}).
			Return(nil)
		foodRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)
		foodRepo.EXPECT().CreateMany(ctx, userID, []entity.FoodPreference{
			{Description: "vegetarisch"},
			{Description: "laktosefrei"},
		}).Return(nil)
	})

	err := fx.service.SubmitRegistration(ctx, userID, validRegistrationInput())

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "Anna", saved.FirstName)
	assert.Equal(t, int64(3), *saved.WardID)
	assert.True(t, saved.HasDeutschlandTicket)
	assert.True(t, saved.WantsToVisitTemple)
	assert.False(t, saved.HasEndowment)
	assert.Equal(t, entity.BreakfastPreferences{Tuesday: true, Friday: true}, saved.BreakfastPreferences)

	roomMate, ok := saved.RoomMatePreferences.Get()
	assert.True(t, ok)
	assert.Empty(t, roomMate)
	assert.True(t, saved.OtherRemarks.IsSet())
}

func TestProfileService_SubmitRegistration_PassesAdditionalAddressInfo(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.expectValidLookups(ctx)

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		foodRepo := mockRepo.NewMockFoodPreferenceRepository(t)

		factory.EXPECT().AddressRepo().Return(addressRepo)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		factory.EXPECT().FoodPreferenceRepo().Return(foodRepo)

		addressRepo.EXPECT().Upsert(ctx, mock.MatchedBy(func(a *entity.ResidentialAddress) bool {
			return a.AdditionalInfo != nil && *a.AdditionalInfo == "Hinterhaus, 2. OG"
		})).Return(nil)
		profileRepo.EXPECT().UpdateRegistration(ctx, userID, mock.Anything).Return(nil)
		foodRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)
		foodRepo.EXPECT().CreateMany(ctx, userID, mock.Anything).Return(nil)
	})

	in := validRegistrationInput()
	in.AdditionalAddressInfo = ptr(" Hinterhaus, 2. OG ")

	require.NoError(t, fx.service.SubmitRegistration(ctx, userID, in))
}

func TestProfileService_SubmitRegistration_TempleStaffRuleBlocksWrites(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	fx.expectValidLookups(ctx)

	input := validRegistrationInput()
	input.WantsToProvideTempleStaff = "true"
	input.IsTempleStaff = "false"

	err := fx.service.SubmitRegistration(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrTempleStaffRequired))
	fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestProfileService_SubmitRegistration_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *usecase.RegistrationInput)
		wantErr error
	}{
		{
			name:    "missing first name",
			mutate:  func(in *usecase.RegistrationInput) { in.FirstName = "  " },
			wantErr: domainerrors.ErrInvalidFirstName,
		},
		{
			name:    "phone without country code",
			mutate:  func(in *usecase.RegistrationInput) { in.PhoneNumber = "01701234567" },
			wantErr: domainerrors.ErrInvalidPhoneNumber,
		},
		{
			name:    "calendar-invalid birthday",
			mutate:  func(in *usecase.RegistrationInput) { in.DateOfBirth = "2004-02-30" },
			wantErr: domainerrors.ErrInvalidDateOfBirth,
		},
		{
			name:    "non-numeric ward",
			mutate:  func(in *usecase.RegistrationInput) { in.WardID = "abc" },
			wantErr: domainerrors.ErrInvalidWard,
		},
		{
			name:    "empty gender",
			mutate:  func(in *usecase.RegistrationInput) { in.Gender = "" },
			wantErr: domainerrors.ErrInvalidGender,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			input := validRegistrationInput()
			tt.mutate(input)

			err := fx.service.SubmitRegistration(context.Background(), uuid.New(), input)

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestProfileService_SubmitRegistration_InvalidBreakfast(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	fx.lookupRepo.EXPECT().GenderExists(ctx, "female").Return(true, nil)
	fx.lookupRepo.EXPECT().CountryExists(ctx, "DE").Return(true, nil)

	input := validRegistrationInput()
	input.BreakfastPreferences = `{"monday":true}`

	err := fx.service.SubmitRegistration(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidBreakfastPreferences))
}

func TestProfileService_SubmitRegistration_InvalidBooleanField(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	fx.expectValidLookups(ctx)

	input := validRegistrationInput()
	input.HasEndowment = "yes"

	err := fx.service.SubmitRegistration(ctx, uuid.New(), input)

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "INVALID_BOOLEAN_FIELD", appErr.ErrorCode())
	assert.Equal(t, "has_endowment", appErr.Details())
}

func TestProfileService_SubmitRegistration_UnknownAccomodation(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	fx.lookupRepo.EXPECT().GenderExists(ctx, "female").Return(true, nil)
	fx.lookupRepo.EXPECT().CountryExists(ctx, "DE").Return(true, nil)
	fx.lookupRepo.EXPECT().AccomodationExists(ctx, "Turnhalle").Return(false, nil)

	err := fx.service.SubmitRegistration(ctx, uuid.New(), validRegistrationInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidAccomodation))
}

func TestProfileService_SubmitRegistration_LookupStoreErrorPropagates(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	storeErr := errors.New("connection reset")
	fx.lookupRepo.EXPECT().GenderExists(ctx, "female").Return(true, nil)
	fx.lookupRepo.EXPECT().CountryExists(ctx, "DE").Return(true, nil)
	fx.lookupRepo.EXPECT().AccomodationExists(ctx, "Turnhalle").Return(false, storeErr)

	err := fx.service.SubmitRegistration(ctx, uuid.New(), validRegistrationInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, storeErr))

	var appErr domainerrors.AppError
	assert.False(t, errors.As(err, &appErr))
}

func TestProfileService_SubmitRegistration_AddressFailureStopsPipeline(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.expectValidLookups(ctx)

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		factory.EXPECT().AddressRepo().Return(addressRepo)
		addressRepo.EXPECT().Upsert(ctx, mock.Anything).
			Return(errors.New(`pq: password authentication failed for user "chad_admin"`))
	})

	err := fx.service.SubmitRegistration(ctx, userID, validRegistrationInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAddressSaveFailed))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode())

	// The driver text is kept for the log but never reaches the client fields.
	assert.Contains(t, err.Error(), "chad_admin")
	assert.Empty(t, appErr.Details())
	assert.NotContains(t, appErr.Message(), "chad_admin")
}

func TestProfileService_SubmitRegistration_FoodFailureReportsStep(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.expectValidLookups(ctx)

	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		foodRepo := mockRepo.NewMockFoodPreferenceRepository(t)

		factory.EXPECT().AddressRepo().Return(addressRepo)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		factory.EXPECT().FoodPreferenceRepo().Return(foodRepo)

		addressRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)
		profileRepo.EXPECT().UpdateRegistration(ctx, userID, mock.Anything).Return(nil)
		foodRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)
		foodRepo.EXPECT().CreateMany(ctx, userID, mock.Anything).Return(errors.New("insert failed"))
	})

	err := fx.service.SubmitRegistration(ctx, userID, validRegistrationInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrFoodPreferencesSaveFailed))
}

func TestProfileService_SubmitRegistration_FoodPreferencesIdempotent(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	want := []entity.FoodPreference{{Description: "vegetarisch"}, {Description: "laktosefrei"}}

	var stored []entity.FoodPreference
	fx.expectValidLookups(ctx)
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		foodRepo := mockRepo.NewMockFoodPreferenceRepository(t)

		factory.EXPECT().AddressRepo().Return(addressRepo)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		factory.EXPECT().FoodPreferenceRepo().Return(foodRepo)

		addressRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)
		profileRepo.EXPECT().UpdateRegistration(ctx, userID, mock.Anything).Return(nil)
		foodRepo.EXPECT().DeleteByUserID(ctx, userID).
			Run(func(context.Context, uuid.UUID) { stored = nil }).
			Return(nil)
		foodRepo.EXPECT().CreateMany(ctx, userID, mock.Anything).
			Run(func(_ context.Context, _ uuid.UUID, prefs []entity.FoodPreference) {
				stored = append(stored, prefs...)
			}).
			Return(nil)
	})

	for range 2 {
		require.NoError(t, fx.service.SubmitRegistration(ctx, userID, validRegistrationInput()))
		assert.Equal(t, want, stored)
	}
}

func TestProfileService_SubmitRegistration_UnsubmittedRemarksStayUnset(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.expectValidLookups(ctx)

	input := validRegistrationInput()
	input.RoomMatePreferences = nil
	input.OtherRemarks = ptr("")

	var saved *entity.RegistrationData
	expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		addressRepo := mockRepo.NewMockAddressRepository(t)
		profileRepo := mockRepo.NewMockProfileRepository(t)
		foodRepo := mockRepo.NewMockFoodPreferenceRepository(t)

		factory.EXPECT().AddressRepo().Return(addressRepo)
		factory.EXPECT().ProfileRepo().Return(profileRepo)
		factory.EXPECT().FoodPreferenceRepo().Return(foodRepo)

		addressRepo.EXPECT().Upsert(ctx, mock.Anything).Return(nil)
		profileRepo.EXPECT().UpdateRegistration(ctx, userID, mock.Anything).
			Run(func(_ context.Context, _ uuid.UUID, data *entity.RegistrationData) { saved = data }).
			Return(nil)
		foodRepo.EXPECT().DeleteByUserID(ctx, userID).Return(nil)
		foodRepo.EXPECT().CreateMany(ctx, userID, mock.Anything).Return(nil)
	})

	require.NoError(t, fx.service.SubmitRegistration(ctx, userID, input))
	require.NotNil(t, saved)
	assert.False(t, saved.RoomMatePreferences.IsSet())
	assert.True(t, saved.OtherRemarks.IsSet())
}
