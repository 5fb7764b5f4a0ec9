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
)

type songRepository struct {
	db *gorm.DB
}

// NewSongRepository is the constructor for songRepository.
func NewSongRepository(db *gorm.DB) repository.SongRepository {
	return &songRepository{db: db}
}

func (repo *songRepository) FindAllWithLikes(ctx context.Context) ([]*entity.SongSuggestion, error) {
	var rows []model.SongSuggestionModel
	if err := repo.db.WithContext(ctx).Preload("Likes").Order("created_at").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list song suggestions")
	}

	songs := make([]*entity.SongSuggestion, 0, len(rows))
	for i := range rows {
		songs = append(songs, toSongSuggestionDomain(&rows[i]))
	}

	return songs, nil
}

func (repo *songRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SongSuggestion, error) {
	var songM model.SongSuggestionModel
	if err := repo.db.WithContext(ctx).Preload("Likes").Where("id = ?", id).First(&songM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSongNotFound
		}

		return nil, errors.Wrap(err, "failed to find song suggestion")
	}

	return toSongSuggestionDomain(&songM), nil
}

func (repo *songRepository) Create(ctx context.Context, suggestion *entity.SongSuggestion) error {
	songM := fromSongSuggestionDomain(suggestion)
	if songM.ID == uuid.Nil {
		songM.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Omit("Likes").Create(songM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSuggestion
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create song suggestion")
	}

	suggestion.ID = songM.ID
	suggestion.CreatedAt = songM.CreatedAt

	return nil
}

func (repo *songRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SongSuggestionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete song suggestion")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSongNotFound
	}

	return nil
}

func (repo *songRepository) Like(ctx context.Context, songID, publicID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Create(&model.SongSuggestionLikeModel{PublicID: publicID, SongID: songID}).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateLike
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSongNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to like song suggestion")
	}

	return nil
}

// Unlike treats removing a missing like as success.
func (repo *songRepository) Unlike(ctx context.Context, songID, publicID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("song_id = ? AND public_id = ?", songID, publicID).
		Delete(&model.SongSuggestionLikeModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to unlike song suggestion")
	}

	return nil
}
