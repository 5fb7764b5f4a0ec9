package postgres

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type workshopRepository struct {
	db *gorm.DB
}

// NewWorkshopRepository is the constructor for workshopRepository.
func NewWorkshopRepository(db *gorm.DB) repository.WorkshopRepository {
	return &workshopRepository{db: db}
}

func (repo *workshopRepository) FindAll(ctx context.Context) ([]*entity.Workshop, error) {
	var rows []model.WorkshopModel
	if err := repo.db.WithContext(ctx).Order("event_start").Order("title").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list workshops")
	}

	workshops := make([]*entity.Workshop, 0, len(rows))
	for i := range rows {
		workshops = append(workshops, toWorkshopDomain(&rows[i]))
	}

	return workshops, nil
}

func (repo *workshopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Workshop, error) {
	var workshopM model.WorkshopModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&workshopM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkshopNotFound
		}

		return nil, errors.Wrap(err, "failed to find workshop")
	}

	return toWorkshopDomain(&workshopM), nil
}
