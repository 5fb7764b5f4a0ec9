package repository

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
)

// ParticipantRepository reads the participants view and the registered users function.
type ParticipantRepository interface {
	// FindForExport returns participants whose payment status is in statuses; an empty filter returns all.
	FindForExport(ctx context.Context, statuses []entity.PaymentStatus) ([]*entity.Participant, error)

	FindRegisteredUsers(ctx context.Context) ([]*entity.RegisteredUser, error)
}
