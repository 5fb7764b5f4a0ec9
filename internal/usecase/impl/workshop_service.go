package impl

import (
	"context"
	"log/slog"
	"slices"
	"time"
	_ "time/tzdata"

	"github.com/TimDev9492/chad-website/internal/domain/constants"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const workshopSlotLayout = "2006-01-02 15:04"

// workshopService implements the WorkshopUsecase interface.
type workshopService struct {
	workshopRepo repository.WorkshopRepository
	location     *time.Location
	logger       *slog.Logger
}

// WorkshopServiceParams holds dependencies for WorkshopService, injected by Fx.
type WorkshopServiceParams struct {
	fx.In

	WorkshopRepo repository.WorkshopRepository
	Logger       *slog.Logger
}

// NewWorkshopService is the constructor for workshopService.
func NewWorkshopService(params WorkshopServiceParams) usecase.WorkshopUsecase {
	location, err := time.LoadLocation(constants.EventTimezone)
	if err != nil {
		params.Logger.Warn("Event timezone unavailable, grouping workshops in UTC", "error", err)
		location = time.UTC
	}

	return &workshopService{
		workshopRepo: params.WorkshopRepo,
		location:     location,
		logger:       params.Logger,
	}
}

func (srv *workshopService) ListByTimeSlot(ctx context.Context) (*usecase.WorkshopSchedule, error) {
	workshops, err := srv.workshopRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workshops")
	}

	schedule := &usecase.WorkshopSchedule{
		Slots:     []string{},
		Workshops: entity.WorkshopsByTime{},
	}
	for _, workshop := range workshops {
		slot := workshop.EventStart.In(srv.location).Format(workshopSlotLayout)
		if _, ok := schedule.Workshops[slot]; !ok {
			schedule.Slots = append(schedule.Slots, slot)
		}
		schedule.Workshops[slot] = append(schedule.Workshops[slot], workshop)
	}
	// The layout sorts lexically in chronological order.
	slices.Sort(schedule.Slots)

	return schedule, nil
}

func (srv *workshopService) GetWorkshop(ctx context.Context, id string) (*entity.Workshop, error) {
	workshopID, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.WithStack(domainerrors.ErrInvalidWorkshopID.WithDetails(id))
	}

	workshop, err := srv.workshopRepo.FindByID(ctx, workshopID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkshopNotFound) {
			return nil, errors.WithStack(domainerrors.ErrWorkshopNotFound)
		}

		return nil, errors.Wrap(err, "failed to find workshop")
	}

	return workshop, nil
}
