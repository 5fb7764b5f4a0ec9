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

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{db: db}
}

func (repo *roleRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (entity.Role, error) {
	var roleM model.RoleModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrRoleNotFound
		}

		return "", errors.Wrap(err, "failed to find role")
	}

	return entity.Role(roleM.Role), nil
}
