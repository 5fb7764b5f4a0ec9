package usecase

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
)

// WebhookUsecase routes database change notifications to their handlers.
type WebhookUsecase interface {
	// Dispatch looks the payload's "{schema}.{table}" key up and runs its handler.
	// It returns the message reported back to the database.
	Dispatch(ctx context.Context, payload *entity.WebhookPayload) (string, error)
}
