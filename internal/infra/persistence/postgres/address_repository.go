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

// addressRepository implements repository.AddressRepository using GORM.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

func (repo *addressRepository) Upsert(ctx context.Context, address *entity.ResidentialAddress) error {
	addressM := fromAddressDomain(address)
	updates, omits := addressUpsertColumns(address)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns(updates),
		}).
		Omit(omits...).
		Create(addressM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) || isCheckConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrInvalidAddress, err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert residency address")
	}

	return nil
}

// addressUpsertColumns returns the columns an upsert overwrites and the ones it leaves
// alone. additional_info keeps its stored value when the form did not send the field.
func addressUpsertColumns(address *entity.ResidentialAddress) ([]string, []string) {
	updates := []string{"street_name_and_number", "city", "postal_code", "country"}
	if address.AdditionalInfo == nil {
		return updates, []string{"created_at", "additional_info"}
	}

	return append(updates, "additional_info"), []string{"created_at"}
}

func (repo *addressRepository) EnsureExists(ctx context.Context, userID uuid.UUID) (*entity.ResidentialAddress, error) {
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Select("user_id").
		Create(&model.ResidencyAddressModel{UserID: userID}).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create residency address")
	}

	var addressM model.ResidencyAddressModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find residency address")
	}

	return toAddressDomain(&addressM), nil
}
