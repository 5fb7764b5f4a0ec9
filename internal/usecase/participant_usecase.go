package usecase

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
)

// ParticipantUsecase defines the attendee listings.
type ParticipantUsecase interface {
	ListRegistered(ctx context.Context) ([]*entity.RegisteredUser, error)

	// AuthorizeExport resolves the bearer token through the auth service and requires the admin role.
	AuthorizeExport(ctx context.Context, accessToken string) error

	// Export renders the participant workbook, keeping only the given payment statuses.
	// An empty filter exports everyone.
	Export(ctx context.Context, statuses []string) ([]byte, error)
}
