package postgres

import (
	"context"
	"time"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// profileRepository implements repository.ProfileRepository over user_infos and public_infos.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.UserProfile, error) {
	var m model.UserInfoModel
	err := repo.db.WithContext(ctx).
		Preload("PublicInfo").
		Preload("Role").
		Preload("PaymentInfo").
		Preload("ResidencyAddress").
		Preload("FoodPreferences").
		Where("user_id = ?", userID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user id")
	}

	return toUserProfileDomain(&m), nil
}

func (repo *profileRepository) UpdateRegistration(ctx context.Context, userID uuid.UUID, data *entity.RegistrationData) error {
	var dateOfBirth *time.Time
	if data.DateOfBirth != "" {
		parsed, err := time.Parse(dateLayout, data.DateOfBirth)
		if err != nil {
			return errors.Wrap(err, "failed to parse date of birth")
		}
		dateOfBirth = &parsed
	}

	updates := map[string]any{
		"phone_number":                  nullIfEmpty(data.PhoneNumber),
		"date_of_birth":                 dateOfBirth,
		"gender":                        nullIfEmpty(data.Gender),
		"breakfast_tuesday":             data.BreakfastPreferences.Tuesday,
		"breakfast_wednesday":           data.BreakfastPreferences.Wednesday,
		"breakfast_thursday":            data.BreakfastPreferences.Thursday,
		"breakfast_friday":              data.BreakfastPreferences.Friday,
		"accomodation":                  nullIfEmpty(data.Accomodation),
		"mode_of_transport":             nullIfEmpty(data.ModeOfTransport),
		"has_deutschland_ticket":        data.HasDeutschlandTicket,
		"wants_to_visit_temple":         data.WantsToVisitTemple,
		"has_endowment":                 data.HasEndowment,
		"is_temple_staff":               data.IsTempleStaff,
		"wants_to_provide_temple_staff": data.WantsToProvideTempleStaff,
		"wants_to_attend_baptism":       data.WantsToAttendBaptism,
		"agrees_to_recordings":          data.AgreesToRecordings,
	}
	// Unset answers keep their stored value; Null clears it.
	if data.RoomMatePreferences.IsSet() {
		updates["room_mate_preferences"] = data.RoomMatePreferences.Ptr()
	}
	if data.OtherRemarks.IsSet() {
		updates["other_remarks"] = data.OtherRemarks.Ptr()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserInfoModel{}).
		Where("user_id = ?", userID).
		Updates(updates)
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) || isForeignKeyConstraintViolation(result.Error) {
			return errors.Wrap(domainerrors.ErrProfileSaveFailed, result.Error.Error())
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user info")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	publicID, err := repo.publicIDOf(ctx, userID)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).
		Model(&model.PublicInfoModel{}).
		Where("public_id = ?", publicID).
		Updates(map[string]any{
			"first_name": nullIfEmpty(data.FirstName),
			"last_name":  nullIfEmpty(data.LastName),
			"ward_id":    data.WardID,
		}).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(domainerrors.ErrInvalidWard, err.Error())
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update public info")
	}

	return nil
}

func (repo *profileRepository) UpdateAvatarURL(ctx context.Context, publicID uuid.UUID, avatarURL string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PublicInfoModel{}).
		Where("public_id = ?", publicID).
		Update("avatar_url", avatarURL)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update avatar url")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

func (repo *profileRepository) SyncOAuthProfile(ctx context.Context, userID uuid.UUID, profile entity.OAuthProfile) error {
	updates := map[string]any{}
	if profile.FirstName != "" {
		updates["first_name"] = profile.FirstName
	}
	if profile.LastName != "" {
		updates["last_name"] = profile.LastName
	}
	if profile.AvatarURL != "" {
		updates["avatar_url"] = profile.AvatarURL
	}
	if len(updates) == 0 {
		return nil
	}

	publicID, err := repo.publicIDOf(ctx, userID)
	if err != nil {
		return err
	}

	err = repo.db.WithContext(ctx).
		Model(&model.PublicInfoModel{}).
		Where("public_id = ?", publicID).
		Updates(updates).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to sync oauth profile")
	}

	return nil
}

func (repo *profileRepository) CountRegistered(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserInfoModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count user infos")
	}

	return count, nil
}

func (repo *profileRepository) publicIDOf(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var ids []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.UserInfoModel{}).
		Where("user_id = ?", userID).
		Limit(1).
		Pluck("public_id", &ids).Error
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to look up public id")
	}
	if len(ids) == 0 {
		return uuid.Nil, repository.ErrProfileNotFound
	}

	return ids[0], nil
}
