package usecase

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
)

// WorkshopUsecase defines the read-only workshop catalogue.
type WorkshopUsecase interface {
	// ListByTimeSlot groups workshops by their start time in the event's timezone.
	ListByTimeSlot(ctx context.Context) (*WorkshopSchedule, error)

	// GetWorkshop parses the id and loads the workshop.
	GetWorkshop(ctx context.Context, id string) (*entity.Workshop, error)
}

// WorkshopSchedule lists the slots in chronological order next to the grouping.
type WorkshopSchedule struct {
	Slots     []string               `json:"slots"`
	Workshops entity.WorkshopsByTime `json:"workshops"`
}
