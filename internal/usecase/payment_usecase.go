package usecase

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"

	"github.com/google/uuid"
)

// PaymentUsecase covers the event fee from the attendee and the admin side.
type PaymentUsecase interface {
	// GetOverview returns price, reference, status and bank details. Any pricing
	// failure falls back to the configured price and an empty country list.
	GetOverview(ctx context.Context, userID uuid.UUID) (*entity.PaymentOverview, error)

	// ReportTransfer marks an unpaid fee as waiting for admin approval.
	ReportTransfer(ctx context.Context, userID uuid.UUID) error

	// PaymentQR renders a SEPA transfer QR code (PNG) prefilled with price and reference.
	PaymentQR(ctx context.Context, userID uuid.UUID) ([]byte, error)

	// ConfirmPayment marks the payment with the given reference as confirmed and
	// returns the attendee's email.
	ConfirmPayment(ctx context.Context, reference string) (string, error)
}
