package impl

import (
	"context"
	"testing"
	"time"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	"github.com/TimDev9492/chad-website/internal/domain/service"
	mockRepo "github.com/TimDev9492/chad-website/internal/mocks/repository"
	mockService "github.com/TimDev9492/chad-website/internal/mocks/service"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	service     usecase.SessionUsecase
	verifier    *mockService.MockTokenVerifier
	profileRepo *mockRepo.MockProfileRepository
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	verifier := mockService.NewMockTokenVerifier(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)

	return sessionServiceFixtures{
		service: NewSessionService(SessionServiceParams{
			Verifier:    verifier,
			ProfileRepo: profileRepo,
			Logger:      newDiscardLogger(),
		}),
		verifier:    verifier,
		profileRepo: profileRepo,
	}
}

func completeProfile(userID uuid.UUID) *entity.UserProfile {
	reference := int64(100042)
	gender := "female"

	return &entity.UserProfile{
		UserID:               userID,
		PublicID:             uuid.New(),
		Role:                 entity.RoleUser,
		FirstName:            "Anna",
		LastName:             "Schmidt",
		AvatarURL:            "https://example.com/a.png",
		Email:                "anna@example.com",
		PhoneNumber:          "+491701234567",
		DateOfBirth:          "2001-04-12",
		Gender:               &gender,
		Accomodation:         "Turnhalle",
		ModeOfTransport:      "Zug",
		BreakfastPreferences: &entity.BreakfastPreferences{Tuesday: true},
		RoomMatePreferences:  entity.Some(""),
		OtherRemarks:         entity.Null[string](),
		PaymentStatus:        entity.PaymentStatusConfirmed,
		PaymentReference:     &reference,
		ResidentialAddress: &entity.ResidentialAddress{
			UserID:              userID,
			StreetNameAndNumber: "Hauptstraße 1",
			PostalCode:          "10115",
			City:                "Berlin",
			CountryISO:          "DE",
		},
		FoodPreferences: []entity.FoodPreference{},
	}
}

func TestSessionService_Resolve_WithCompleteProfile(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	claims := &entity.SessionClaims{UserID: userID, Email: "anna@example.com", ExpiresAt: time.Now().Add(time.Hour)}

	fx.verifier.EXPECT().VerifyAccessToken("token").Return(claims, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(completeProfile(userID), nil)

	state, err := fx.service.Resolve(ctx, "token")

	require.NoError(t, err)
	assert.Same(t, claims, state.Claims)
	assert.True(t, state.InfosProvided)
	assert.True(t, state.HasPaid)
	assert.False(t, state.IsAdmin())
}

func TestSessionService_Resolve_ProfileLoadFailureKeepsSession(t *testing.T) {
	fx := createTestSessionService(t)

	ctx := context.Background()
	userID := uuid.New()
	claims := &entity.SessionClaims{UserID: userID}

	fx.verifier.EXPECT().VerifyAccessToken("token").Return(claims, nil)
	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	state, err := fx.service.Resolve(ctx, "token")

	require.NoError(t, err)
	assert.Nil(t, state.Profile)
	assert.False(t, state.InfosProvided)
	assert.False(t, state.HasPaid)
}

func TestSessionService_Resolve_InvalidToken(t *testing.T) {
	fx := createTestSessionService(t)

	fx.verifier.EXPECT().VerifyAccessToken("expired").Return(nil, errors.Wrap(service.ErrInvalidToken, "token is expired"))

	state, err := fx.service.Resolve(context.Background(), "expired")

	require.Error(t, err)
	assert.Nil(t, state)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}

func TestSessionService_Resolve_EmptyToken(t *testing.T) {
	fx := createTestSessionService(t)

	_, err := fx.service.Resolve(context.Background(), " ")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
}
