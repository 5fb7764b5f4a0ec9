package postgres

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type foodPreferenceRepository struct {
	db *gorm.DB
}

// NewFoodPreferenceRepository is the constructor for foodPreferenceRepository.
func NewFoodPreferenceRepository(db *gorm.DB) repository.FoodPreferenceRepository {
	return &foodPreferenceRepository{db: db}
}

func (repo *foodPreferenceRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]entity.FoodPreference, error) {
	var rows []model.FoodPreferenceModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find food preferences")
	}

	prefs := make([]entity.FoodPreference, 0, len(rows))
	for _, row := range rows {
		prefs = append(prefs, entity.FoodPreference{Description: row.Description})
	}

	return prefs, nil
}

func (repo *foodPreferenceRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.FoodPreferenceModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete food preferences")
	}

	return nil
}

func (repo *foodPreferenceRepository) CreateMany(ctx context.Context, userID uuid.UUID, prefs []entity.FoodPreference) error {
	if len(prefs) == 0 {
		return nil
	}

	rows := make([]model.FoodPreferenceModel, 0, len(prefs))
	for _, pref := range prefs {
		rows = append(rows, model.FoodPreferenceModel{UserID: userID, Description: pref.Description})
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Omit("created_at").
		Create(&rows).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create food preferences")
	}

	return nil
}
