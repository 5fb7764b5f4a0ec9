package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SongSuggestionModel mirrors the 'song_suggestions' table.
type SongSuggestionModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SpotifyID     string         `gorm:"type:text;not null;unique"`
	Name          string         `gorm:"type:text;not null"`
	Artists       pq.StringArray `gorm:"type:text[]"`
	Album         string         `gorm:"type:text"`
	Duration      int
	Popularity    int
	ReleaseDate   string    `gorm:"type:text"`
	CoverImageURL string    `gorm:"type:text"`
	SpotifyURL    string    `gorm:"type:text"`
	SubmittedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt     time.Time

	Likes []SongSuggestionLikeModel `gorm:"foreignKey:SongID;references:ID"`
}

// TableName explicitly sets the table name for GORM.
func (SongSuggestionModel) TableName() string {
	return "song_suggestions"
}

// SongSuggestionLikeModel mirrors the 'song_suggestion_likes' table.
type SongSuggestionLikeModel struct {
	PublicID uuid.UUID `gorm:"type:uuid;primaryKey"`
	SongID   uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (SongSuggestionLikeModel) TableName() string {
	return "song_suggestion_likes"
}
