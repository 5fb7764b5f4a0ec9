package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	"github.com/TimDev9492/chad-website/internal/domain/service"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const defaultFallbackPrice = 60

// paymentService implements the PaymentUsecase interface.
type paymentService struct {
	txManager     repository.TransactionManager
	paymentRepo   repository.PaymentRepository
	lookupRepo    repository.LookupRepository
	qrcode        service.QRCodeService
	bank          entity.BankDetails
	fallbackPrice float64
	logger        *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PaymentRepo repository.PaymentRepository
	LookupRepo  repository.LookupRepository
	QRCode      service.QRCodeService
	Config      *config.Config
	Logger      *slog.Logger
}

// NewPaymentService is the constructor for paymentService.
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	srv := &paymentService{
		txManager:     params.TxManager,
		paymentRepo:   params.PaymentRepo,
		lookupRepo:    params.LookupRepo,
		qrcode:        params.QRCode,
		fallbackPrice: defaultFallbackPrice,
		logger:        params.Logger,
	}

	if params.Config != nil && params.Config.Payment != nil {
		payment := params.Config.Payment
		srv.bank = entity.BankDetails{
			AccountHolder: payment.AccountHolder,
			IBAN:          payment.IBAN,
			BIC:           payment.BIC,
		}
		if payment.FallbackPrice > 0 {
			srv.fallbackPrice = payment.FallbackPrice
		}
	}

	return srv
}

// GetOverview assembles the payments page.
func (srv *paymentService) GetOverview(ctx context.Context, userID uuid.UUID) (*entity.PaymentOverview, error) {
	payment, err := srv.findPayment(ctx, userID)
	if err != nil {
		return nil, err
	}

	price, countries := srv.resolvePrice(ctx, userID)
	reference := payment.PaymentReference

	return &entity.PaymentOverview{
		Price:            price,
		PaymentReference: &reference,
		PaymentStatus:    payment.Status,
		Bank:             srv.bank,
		Countries:        countries,
	}, nil
}

// ReportTransfer moves UNPAID to PENDING_APPROVAL. Reporting twice is a no-op; a confirmed
// payment cannot be reported again.
func (srv *paymentService) ReportTransfer(ctx context.Context, userID uuid.UUID) error {
	srv.logger.Info("Reporting transfer", "userID", userID)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.PaymentRepo()

		payment, err := paymentRepo.FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentNotFound) {
				return errors.Wrap(domainerrors.ErrPaymentNotFound, "payment not found")
			}

			return errors.Wrap(err, "failed to find payment")
		}

		switch payment.Status {
		case entity.PaymentStatusPendingApproval:
			return nil
		case entity.PaymentStatusConfirmed:
			return errors.WithStack(domainerrors.ErrPaymentStateConflict)
		}

		err = paymentRepo.TransitionStatus(ctx, userID, entity.PaymentStatusUnpaid, entity.PaymentStatusPendingApproval)
		if err != nil {
			if errors.Is(err, repository.ErrPaymentStatusMismatch) {
				return errors.WithStack(domainerrors.ErrPaymentStateConflict)
			}

			return errors.Wrap(err, "failed to update payment status")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to report transfer")
	}

	return nil
}

// PaymentQR encodes the transfer the attendee has to make.
func (srv *paymentService) PaymentQR(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	payment, err := srv.findPayment(ctx, userID)
	if err != nil {
		return nil, err
	}

	price, _ := srv.resolvePrice(ctx, userID)

	png, err := srv.qrcode.GeneratePaymentQR(service.PaymentTransfer{
		Bank:      srv.bank,
		Amount:    price,
		Reference: strconv.FormatInt(payment.PaymentReference, 10),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment qr code")
	}

	return png, nil
}

// ConfirmPayment is the admin action. Confirming an already confirmed reference succeeds again.
func (srv *paymentService) ConfirmPayment(ctx context.Context, reference string) (string, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return "", errors.WithStack(domainerrors.ErrPaymentReferenceMissing)
	}

	ref, err := strconv.ParseInt(reference, 10, 64)
	if err != nil {
		return "", errors.WithStack(domainerrors.ErrPaymentNotFound.WithDetails(reference))
	}

	email, err := srv.paymentRepo.ConfirmByReference(ctx, ref)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return "", errors.WithStack(domainerrors.ErrPaymentNotFound.WithDetails(reference))
		}
		srv.logger.Error("Error updating payment status", "reference", ref, "error", err)

		return "", errors.Wrapf(domainerrors.ErrPaymentUpdateFailed, "failed to confirm payment: %v", err)
	}

	srv.logger.Info("Payment confirmed", "reference", ref)

	return email, nil
}

func (srv *paymentService) findPayment(ctx context.Context, userID uuid.UUID) (*entity.PaymentInfo, error) {
	payment, err := srv.paymentRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "payment not found")
		}

		return nil, errors.Wrap(err, "failed to find payment")
	}

	return payment, nil
}

// resolvePrice never fails: any error yields the fallback price and no countries.
func (srv *paymentService) resolvePrice(ctx context.Context, userID uuid.UUID) (float64, []*entity.Country) {
	countries, err := srv.lookupRepo.ListCountries(ctx)
	if err != nil {
		srv.logger.Error("Error fetching countries", "error", err)

		return srv.fallbackPrice, []*entity.Country{}
	}

	price, err := srv.paymentRepo.GetUserPrice(ctx, userID)
	if err != nil {
		srv.logger.Error("Error fetching user price", "userID", userID, "error", err)

		return srv.fallbackPrice, []*entity.Country{}
	}

	return price, countries
}
