package impl

import (
	"context"
	"net/http"
	"testing"

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

type participantServiceFixtures struct {
	service         usecase.ParticipantUsecase
	participantRepo *mockRepo.MockParticipantRepository
	roleRepo        *mockRepo.MockRoleRepository
	auth            *mockService.MockAuthService
	sheetWriter     *mockService.MockParticipantSheetWriter
}

func createTestParticipantService(t *testing.T) participantServiceFixtures {
	participantRepo := mockRepo.NewMockParticipantRepository(t)
	roleRepo := mockRepo.NewMockRoleRepository(t)
	auth := mockService.NewMockAuthService(t)
	sheetWriter := mockService.NewMockParticipantSheetWriter(t)

	return participantServiceFixtures{
		service: NewParticipantService(ParticipantServiceParams{
			ParticipantRepo: participantRepo,
			RoleRepo:        roleRepo,
			Auth:            auth,
			SheetWriter:     sheetWriter,
			Logger:          newDiscardLogger(),
		}),
		participantRepo: participantRepo,
		roleRepo:        roleRepo,
		auth:            auth,
		sheetWriter:     sheetWriter,
	}
}

func TestParticipantService_ListRegistered(t *testing.T) {
	fx := createTestParticipantService(t)

	ctx := context.Background()
	users := []*entity.RegisteredUser{{PublicID: uuid.New(), FirstName: ptr("Anna")}}

	fx.participantRepo.EXPECT().FindRegisteredUsers(ctx).Return(users, nil)

	got, err := fx.service.ListRegistered(ctx)

	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestParticipantService_AuthorizeExport(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		token    string
		setup    func(fx participantServiceFixtures, ctx context.Context)
		wantCode int
	}{
		{
			name:  "admin",
			token: "token",
			setup: func(fx participantServiceFixtures, ctx context.Context) {
				fx.auth.EXPECT().GetUser(ctx, "token").Return(&entity.AuthUser{ID: userID}, nil)
				fx.roleRepo.EXPECT().FindByUserID(ctx, userID).Return(entity.RoleAdmin, nil)
			},
		},
		{
			name:     "missing token",
			setup:    func(participantServiceFixtures, context.Context) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:  "invalid token",
			token: "token",
			setup: func(fx participantServiceFixtures, ctx context.Context) {
				fx.auth.EXPECT().GetUser(ctx, "token").Return(nil, service.ErrAuthRejected)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:  "regular user",
			token: "token",
			setup: func(fx participantServiceFixtures, ctx context.Context) {
				fx.auth.EXPECT().GetUser(ctx, "token").Return(&entity.AuthUser{ID: userID}, nil)
				fx.roleRepo.EXPECT().FindByUserID(ctx, userID).Return(entity.RoleUser, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name:  "no role row",
			token: "token",
			setup: func(fx participantServiceFixtures, ctx context.Context) {
				fx.auth.EXPECT().GetUser(ctx, "token").Return(&entity.AuthUser{ID: userID}, nil)
				fx.roleRepo.EXPECT().FindByUserID(ctx, userID).Return("", repository.ErrRoleNotFound)
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:  "role lookup failure",
			token: "token",
			setup: func(fx participantServiceFixtures, ctx context.Context) {
				fx.auth.EXPECT().GetUser(ctx, "token").Return(&entity.AuthUser{ID: userID}, nil)
				fx.roleRepo.EXPECT().FindByUserID(ctx, userID).Return("", errors.New("connection reset"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestParticipantService(t)

			ctx := context.Background()
			tt.setup(fx, ctx)

			err := fx.service.AuthorizeExport(ctx, tt.token)

			if tt.wantCode == 0 {
				assert.NoError(t, err)

				return
			}
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantCode, appErr.HTTPCode())
		})
	}
}

func TestParticipantService_Export(t *testing.T) {
	fx := createTestParticipantService(t)

	ctx := context.Background()
	participants := []*entity.Participant{{FirstName: ptr("Anna")}}
	workbook := []byte("PK\x03\x04")

	fx.participantRepo.EXPECT().
		FindForExport(ctx, []entity.PaymentStatus{entity.PaymentStatusConfirmed}).
		Return(participants, nil)
	fx.sheetWriter.EXPECT().Write(participants).Return(workbook, nil)

	got, err := fx.service.Export(ctx, []string{"CONFIRMED"})

	require.NoError(t, err)
	assert.Equal(t, workbook, got)
}

func TestParticipantService_Export_InvalidStatus(t *testing.T) {
	fx := createTestParticipantService(t)

	_, err := fx.service.Export(context.Background(), []string{"PAID"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPaymentStatus))
}

func TestParticipantService_Export_WriterFailure(t *testing.T) {
	fx := createTestParticipantService(t)

	ctx := context.Background()

	fx.participantRepo.EXPECT().FindForExport(ctx, []entity.PaymentStatus{}).Return([]*entity.Participant{}, nil)
	fx.sheetWriter.EXPECT().Write([]*entity.Participant{}).Return(nil, errors.New("disk full"))

	_, err := fx.service.Export(ctx, nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrExportFailed))
}
