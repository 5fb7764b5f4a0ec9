package postgres

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type participantRepository struct {
	db *gorm.DB
}

// NewParticipantRepository is the constructor for participantRepository.
func NewParticipantRepository(db *gorm.DB) repository.ParticipantRepository {
	return &participantRepository{db: db}
}

func (repo *participantRepository) FindForExport(ctx context.Context, statuses []entity.PaymentStatus) ([]*entity.Participant, error) {
	query := repo.db.WithContext(ctx).Model(&model.ParticipantModel{})
	if len(statuses) > 0 {
		values := make([]string, 0, len(statuses))
		for _, status := range statuses {
			values = append(values, string(status))
		}
		query = query.Where("payment_status IN ?", values)
	}

	var rows []model.ParticipantModel
	if err := query.Order("last_name").Order("first_name").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read participants")
	}

	participants := make([]*entity.Participant, 0, len(rows))
	for i := range rows {
		participants = append(participants, toParticipantDomain(&rows[i]))
	}

	return participants, nil
}

func (repo *participantRepository) FindRegisteredUsers(ctx context.Context) ([]*entity.RegisteredUser, error) {
	var rows []model.RegisteredUserRow
	if err := repo.db.WithContext(ctx).Raw("SELECT * FROM get_registered_users()").Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to read registered users")
	}

	users := make([]*entity.RegisteredUser, 0, len(rows))
	for _, row := range rows {
		users = append(users, &entity.RegisteredUser{
			PublicID:  row.PublicID,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			WardName:  row.WardName,
			StakeName: row.StakeName,
			AvatarURL: row.AvatarURL,
		})
	}

	return users, nil
}
