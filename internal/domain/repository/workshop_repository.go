package repository

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/errors"

	"github.com/google/uuid"
)

// ErrWorkshopNotFound is returned when no workshop has the given id.
var ErrWorkshopNotFound = errors.New("workshop not found")

type WorkshopRepository interface {
	// FindAll returns workshops ordered by start time.
	FindAll(ctx context.Context) ([]*entity.Workshop, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Workshop, error)
}
