package impl

import (
	"context"
	"testing"

	"github.com/TimDev9492/chad-website/config"
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

type paymentServiceFixtures struct {
	service     usecase.PaymentUsecase
	txManager   *mockRepo.MockTransactionManager
	paymentRepo *mockRepo.MockPaymentRepository
	lookupRepo  *mockRepo.MockLookupRepository
	qrcode      *mockService.MockQRCodeService
}

func createTestPaymentService(t *testing.T) paymentServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	paymentRepo := mockRepo.NewMockPaymentRepository(t)
	lookupRepo := mockRepo.NewMockLookupRepository(t)
	qrcode := mockService.NewMockQRCodeService(t)

	cfg := &config.Config{
		Payment: &config.PaymentConfig{
			FallbackPrice: 60,
			AccountHolder: "CHAD e.V.",
			IBAN:          "DE02120300000000202051",
			BIC:           "BYLADEM1001",
		},
	}

	return paymentServiceFixtures{
		service: NewPaymentService(PaymentServiceParams{
			TxManager:   txManager,
			PaymentRepo: paymentRepo,
			LookupRepo:  lookupRepo,
			QRCode:      qrcode,
			Config:      cfg,
			Logger:      newDiscardLogger(),
		}),
		txManager:   txManager,
		paymentRepo: paymentRepo,
		lookupRepo:  lookupRepo,
		qrcode:      qrcode,
	}
}

func TestPaymentService_GetOverview(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	countries := []*entity.Country{{ISOCode: "DE", Name: "Deutschland"}}

	fx.paymentRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.PaymentInfo{
		UserID:           userID,
		PaymentReference: 100042,
		Status:           entity.PaymentStatusUnpaid,
	}, nil)
	fx.lookupRepo.EXPECT().ListCountries(ctx).Return(countries, nil)
	fx.paymentRepo.EXPECT().GetUserPrice(ctx, userID).Return(45, nil)

	overview, err := fx.service.GetOverview(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, float64(45), overview.Price)
	require.NotNil(t, overview.PaymentReference)
	assert.Equal(t, int64(100042), *overview.PaymentReference)
	assert.Equal(t, entity.PaymentStatusUnpaid, overview.PaymentStatus)
	assert.Equal(t, "DE02120300000000202051", overview.Bank.IBAN)
	assert.Equal(t, countries, overview.Countries)
}

func TestPaymentService_GetOverview_PriceFallback(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.paymentRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.PaymentInfo{
		UserID: userID, PaymentReference: 7, Status: entity.PaymentStatusUnpaid,
	}, nil)
	fx.lookupRepo.EXPECT().ListCountries(ctx).Return([]*entity.Country{{ISOCode: "DE"}}, nil)
	fx.paymentRepo.EXPECT().GetUserPrice(ctx, userID).Return(0, errors.New("function failed"))

	overview, err := fx.service.GetOverview(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, float64(60), overview.Price)
	assert.Empty(t, overview.Countries)
}

func TestPaymentService_GetOverview_CountriesFailure(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.paymentRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.PaymentInfo{
		UserID: userID, PaymentReference: 7, Status: entity.PaymentStatusUnpaid,
	}, nil)
	fx.lookupRepo.EXPECT().ListCountries(ctx).Return(nil, errors.New("connection reset"))

	overview, err := fx.service.GetOverview(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, float64(60), overview.Price)
	assert.NotNil(t, overview.Countries)
	assert.Empty(t, overview.Countries)
}

func TestPaymentService_GetOverview_NoPaymentRow(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.paymentRepo.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrPaymentNotFound)

	_, err := fx.service.GetOverview(ctx, userID)

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestPaymentService_ReportTransfer(t *testing.T) {
	tests := []struct {
		name       string
		status     entity.PaymentStatus
		transition error
		wantErr    error
	}{
		{name: "unpaid moves to pending", status: entity.PaymentStatusUnpaid},
		{name: "pending stays pending", status: entity.PaymentStatusPendingApproval},
		{name: "confirmed is final", status: entity.PaymentStatusConfirmed, wantErr: domainerrors.ErrPaymentStateConflict},
		{
			name:       "concurrent change",
			status:     entity.PaymentStatusUnpaid,
			transition: repository.ErrPaymentStatusMismatch,
			wantErr:    domainerrors.ErrPaymentStateConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPaymentService(t)

			ctx := context.Background()
			userID := uuid.New()

			expectTransaction(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				paymentRepo := mockRepo.NewMockPaymentRepository(t)
				factory.EXPECT().PaymentRepo().Return(paymentRepo)
				paymentRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.PaymentInfo{
					UserID: userID, PaymentReference: 1, Status: tt.status,
				}, nil)
				if tt.status == entity.PaymentStatusUnpaid {
					paymentRepo.EXPECT().
						TransitionStatus(ctx, userID, entity.PaymentStatusUnpaid, entity.PaymentStatusPendingApproval).
						Return(tt.transition)
				}
			})

			err := fx.service.ReportTransfer(ctx, userID)

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}
}

func TestPaymentService_PaymentQR(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()
	userID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.paymentRepo.EXPECT().FindByUserID(ctx, userID).Return(&entity.PaymentInfo{
		UserID: userID, PaymentReference: 100042, Status: entity.PaymentStatusUnpaid,
	}, nil)
	fx.lookupRepo.EXPECT().ListCountries(ctx).Return([]*entity.Country{}, nil)
	fx.paymentRepo.EXPECT().GetUserPrice(ctx, userID).Return(45, nil)
	fx.qrcode.EXPECT().GeneratePaymentQR(service.PaymentTransfer{
		Bank: entity.BankDetails{
			AccountHolder: "CHAD e.V.",
			IBAN:          "DE02120300000000202051",
			BIC:           "BYLADEM1001",
		},
		Amount:    45,
		Reference: "100042",
	}).Return(png, nil)

	got, err := fx.service.PaymentQR(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestPaymentService_ConfirmPayment(t *testing.T) {
	fx := createTestPaymentService(t)

	ctx := context.Background()

	fx.paymentRepo.EXPECT().ConfirmByReference(ctx, int64(100042)).Return("anna@example.com", nil)

	email, err := fx.service.ConfirmPayment(ctx, " 100042 ")

	require.NoError(t, err)
	assert.Equal(t, "anna@example.com", email)
}

func TestPaymentService_ConfirmPayment_Errors(t *testing.T) {
	tests := []struct {
		name      string
		reference string
		repoErr   error
		wantErr   *domainerrors.BaseError
	}{
		{name: "missing reference", reference: "", wantErr: domainerrors.ErrPaymentReferenceMissing},
		{name: "not a number", reference: "abc", wantErr: domainerrors.ErrPaymentNotFound},
		{name: "unknown reference", reference: "9", repoErr: repository.ErrPaymentNotFound, wantErr: domainerrors.ErrPaymentNotFound},
		{name: "store failure", reference: "9", repoErr: errors.New("connection reset"), wantErr: domainerrors.ErrPaymentUpdateFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPaymentService(t)

			ctx := context.Background()
			if tt.repoErr != nil {
				fx.paymentRepo.EXPECT().ConfirmByReference(ctx, int64(9)).Return("", tt.repoErr)
			}

			_, err := fx.service.ConfirmPayment(ctx, tt.reference)

			require.Error(t, err)
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantErr.HTTPCode(), appErr.HTTPCode())
			assert.Equal(t, tt.wantErr.ErrorCode(), appErr.ErrorCode())
		})
	}
}
