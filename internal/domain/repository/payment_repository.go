package repository

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrPaymentNotFound is returned when no payment_infos row matches.
	ErrPaymentNotFound = errors.New("payment info not found")
	// ErrPaymentStatusMismatch is returned when a conditional status update finds a different current status.
	ErrPaymentStatusMismatch = errors.New("payment status does not match expected status")
)

// PaymentRepository persists payment_infos and evaluates the stored pricing function.
type PaymentRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PaymentInfo, error)

	// ConfirmByReference sets CONFIRMED for the row with the given reference and returns the attendee's email.
	ConfirmByReference(ctx context.Context, reference int64) (string, error)

	// TransitionStatus moves the user's status from one value to another, failing with
	// ErrPaymentStatusMismatch if the current status differs.
	TransitionStatus(ctx context.Context, userID uuid.UUID, from, to entity.PaymentStatus) error

	// GetUserPrice evaluates get_user_price for the user.
	GetUserPrice(ctx context.Context, userID uuid.UUID) (float64, error)
}
