package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/domain/service"
	mockRepo "github.com/TimDev9492/chad-website/internal/mocks/repository"
	mockService "github.com/TimDev9492/chad-website/internal/mocks/service"
	mockUsecase "github.com/TimDev9492/chad-website/internal/mocks/usecase"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type webhookServiceFixtures struct {
	service     usecase.WebhookUsecase
	avatars     *mockUsecase.MockAvatarUsecase
	profileRepo *mockRepo.MockProfileRepository
	mailer      *mockService.MockMailer
}

func createTestWebhookService(t *testing.T) webhookServiceFixtures {
	avatars := mockUsecase.NewMockAvatarUsecase(t)
	profileRepo := mockRepo.NewMockProfileRepository(t)
	mailer := mockService.NewMockMailer(t)

	return webhookServiceFixtures{
		service: NewWebhookService(WebhookServiceParams{
			Avatars:     avatars,
			ProfileRepo: profileRepo,
			Mailer:      mailer,
			Logger:      newDiscardLogger(),
		}),
		avatars:     avatars,
		profileRepo: profileRepo,
		mailer:      mailer,
	}
}

func rawJSON(t *testing.T, v any) json.RawMessage {
	t.Helper()

	data, err := json.Marshal(v)
	require.NoError(t, err)

	return data
}

func TestWebhookService_Dispatch_UnsupportedTable(t *testing.T) {
	fx := createTestWebhookService(t)

	_, err := fx.service.Dispatch(context.Background(), &entity.WebhookPayload{
		Type:   entity.WebhookInsert,
		Schema: "public",
		Table:  "unknown_table",
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedTable))

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "unsupported table", appErr.Message())
	assert.Equal(t, "public.unknown_table", appErr.Details())
}

func TestWebhookService_Dispatch_InvalidType(t *testing.T) {
	fx := createTestWebhookService(t)

	_, err := fx.service.Dispatch(context.Background(), &entity.WebhookPayload{Type: "TRUNCATE", Schema: "storage", Table: "objects"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidWebhookPayload))
}

func TestWebhookService_StorageInsert_Reconciles(t *testing.T) {
	fx := createTestWebhookService(t)

	ctx := context.Background()
	createdAt := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	fx.avatars.EXPECT().ReconcileAvatars(ctx, mock.MatchedBy(func(r *entity.StorageObjectRecord) bool {
		return r.Name == "abc.png" && r.CreatedAt.Equal(createdAt)
	})).Return(1, nil)

	msg, err := fx.service.Dispatch(ctx, &entity.WebhookPayload{
		Type:   entity.WebhookInsert,
		Schema: "storage",
		Table:  "objects",
		Record: rawJSON(t, map[string]any{"bucket_id": "avatars", "name": "abc.png", "created_at": createdAt}),
	})

	require.NoError(t, err)
	assert.Equal(t, "Successfully deleted 1 file!", msg)
}

func TestWebhookService_StorageUpdate_Rejected(t *testing.T) {
	fx := createTestWebhookService(t)

	record := rawJSON(t, map[string]any{"bucket_id": "avatars", "name": "abc.png"})

	_, err := fx.service.Dispatch(context.Background(), &entity.WebhookPayload{
		Type:      entity.WebhookUpdate,
		Schema:    "storage",
		Table:     "objects",
		Record:    record,
		OldRecord: record,
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedEventType))
	fx.avatars.AssertNotCalled(t, "ReconcileAvatars", mock.Anything, mock.Anything)
}

func TestWebhookService_StorageDelete_Rejected(t *testing.T) {
	fx := createTestWebhookService(t)

	_, err := fx.service.Dispatch(context.Background(), &entity.WebhookPayload{
		Type:      entity.WebhookDelete,
		Schema:    "storage",
		Table:     "objects",
		Record:    json.RawMessage("null"),
		OldRecord: rawJSON(t, map[string]any{"bucket_id": "avatars", "name": "abc.png"}),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedEventType))
}

func TestWebhookService_StorageOtherBucket_Rejected(t *testing.T) {
	fx := createTestWebhookService(t)

	_, err := fx.service.Dispatch(context.Background(), &entity.WebhookPayload{
		Type:   entity.WebhookInsert,
		Schema: "storage",
		Table:  "objects",
		Record: rawJSON(t, map[string]any{"bucket_id": "images", "name": "cover.png"}),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedBucket))
}

func TestWebhookService_AuthUserInsert_Google(t *testing.T) {
	fx := createTestWebhookService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().SyncOAuthProfile(ctx, userID, entity.OAuthProfile{
		FirstName: "Anna Lena",
		LastName:  "Schmidt",
		AvatarURL: "https://lh3.googleusercontent.com/a/pic",
	}).Return(nil)

	msg, err := fx.service.Dispatch(ctx, &entity.WebhookPayload{
		Type:   entity.WebhookInsert,
		Schema: "auth",
		Table:  "users",
		Record: rawJSON(t, map[string]any{
			"id":                userID,
			"raw_app_meta_data": map[string]any{"provider": "google"},
			"raw_user_meta_data": map[string]any{
				"full_name":  "Anna Lena Schmidt",
				"avatar_url": "https://lh3.googleusercontent.com/a/pic",
			},
		}),
	})

	require.NoError(t, err)
	assert.Equal(t, "Synced profile from google", msg)
}

func TestWebhookService_AuthUserInsert_EmailIsNoop(t *testing.T) {
	fx := createTestWebhookService(t)

	msg, err := fx.service.Dispatch(context.Background(), &entity.WebhookPayload{
		Type:   entity.WebhookInsert,
		Schema: "auth",
		Table:  "users",
		Record: rawJSON(t, map[string]any{"id": uuid.New(), "raw_app_meta_data": map[string]any{"provider": "email"}}),
	})

	require.NoError(t, err)
	assert.Contains(t, msg, "Nothing to sync")
}

func TestWebhookService_AuthUserInsert_UnknownProvider(t *testing.T) {
	fx := createTestWebhookService(t)

	_, err := fx.service.Dispatch(context.Background(), &entity.WebhookPayload{
		Type:   entity.WebhookInsert,
		Schema: "auth",
		Table:  "users",
		Record: rawJSON(t, map[string]any{"id": uuid.New(), "raw_app_meta_data": map[string]any{"provider": "github"}}),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedAuthProvider))
}

func TestWebhookService_AuthUserUpdate_Rejected(t *testing.T) {
	fx := createTestWebhookService(t)

	_, err := fx.service.Dispatch(context.Background(), &entity.WebhookPayload{Type: entity.WebhookUpdate, Schema: "auth", Table: "users"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedEventType))
}

func TestWebhookService_PaymentConfirmed_SendsMail(t *testing.T) {
	fx := createTestWebhookService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.UserProfile{
		UserID:    userID,
		Email:     "anna@example.com",
		FirstName: "Anna",
	}, nil)
	fx.mailer.EXPECT().SendPaymentConfirmation(ctx, service.PaymentConfirmationMail{
		To:               "anna@example.com",
		FirstName:        "Anna",
		PaymentReference: 100042,
	}).Return(nil)

	msg, err := fx.service.Dispatch(ctx, &entity.WebhookPayload{
		Type:      entity.WebhookUpdate,
		Schema:    "public",
		Table:     "payment_infos",
		Record:    rawJSON(t, map[string]any{"user_id": userID, "payment_reference": 100042, "status": "CONFIRMED"}),
		OldRecord: rawJSON(t, map[string]any{"user_id": userID, "payment_reference": 100042, "status": "PENDING_APPROVAL"}),
	})

	require.NoError(t, err)
	assert.Equal(t, "Sent payment confirmation to anna@example.com", msg)
}

func TestWebhookService_PaymentOtherTransition_Noop(t *testing.T) {
	fx := createTestWebhookService(t)

	userID := uuid.New()

	msg, err := fx.service.Dispatch(context.Background(), &entity.WebhookPayload{
		Type:      entity.WebhookUpdate,
		Schema:    "public",
		Table:     "payment_infos",
		Record:    rawJSON(t, map[string]any{"user_id": userID, "payment_reference": 7, "status": "PENDING_APPROVAL"}),
		OldRecord: rawJSON(t, map[string]any{"user_id": userID, "payment_reference": 7, "status": "UNPAID"}),
	})

	require.NoError(t, err)
	assert.Equal(t, "No action required", msg)
	fx.mailer.AssertNotCalled(t, "SendPaymentConfirmation", mock.Anything, mock.Anything)
}

func TestWebhookService_PaymentInsert_Rejected(t *testing.T) {
	fx := createTestWebhookService(t)

	_, err := fx.service.Dispatch(context.Background(), &entity.WebhookPayload{
		Type:   entity.WebhookInsert,
		Schema: "public",
		Table:  "payment_infos",
		Record: rawJSON(t, map[string]any{"user_id": uuid.New(), "payment_reference": 7, "status": "UNPAID"}),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnsupportedEventType))
}

func TestWebhookService_PaymentMailFailure(t *testing.T) {
	fx := createTestWebhookService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.UserProfile{Email: "anna@example.com"}, nil)
	fx.mailer.EXPECT().SendPaymentConfirmation(ctx, mock.Anything).Return(errors.New("rate limited"))

	_, err := fx.service.Dispatch(ctx, &entity.WebhookPayload{
		Type:      entity.WebhookUpdate,
		Schema:    "public",
		Table:     "payment_infos",
		Record:    rawJSON(t, map[string]any{"user_id": userID, "payment_reference": 1, "status": "CONFIRMED"}),
		OldRecord: rawJSON(t, map[string]any{"user_id": userID, "payment_reference": 1, "status": "UNPAID"}),
	})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrMailSendFailed))
}
