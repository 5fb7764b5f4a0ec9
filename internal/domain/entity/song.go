package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// SongSearchResult is a track returned by the music search.
type SongSearchResult struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Artists       []string `json:"artists"`
	Album         string   `json:"album"`
	ReleaseDate   string   `json:"releaseDate"`
	Duration      int      `json:"duration"`
	Popularity    int      `json:"popularity"`
	CoverImageURL string   `json:"coverImageUrl"`
	SpotifyURL    string   `json:"spotifyUrl"`
}

// SongSuggestion is a track proposed for the dance evening together with who liked it.
type SongSuggestion struct {
	ID            uuid.UUID   `json:"id"`
	SpotifyID     string      `json:"spotify_id"`
	Name          string      `json:"name"`
	Artists       []string    `json:"artists"`
	Album         string      `json:"album"`
	Duration      int         `json:"duration"`
	Popularity    int         `json:"popularity"`
	ReleaseDate   string      `json:"release_date"`
	CoverImageURL string      `json:"cover_image_url"`
	SpotifyURL    string      `json:"spotify_url"`
	SubmittedBy   uuid.UUID   `json:"submitted_by"`
	LikedBy       []uuid.UUID `json:"song_suggestion_likes"`
	CreatedAt     time.Time   `json:"created_at"`
}

// LikeCount is the number of attendees who liked the suggestion.
func (s *SongSuggestion) LikeCount() int {
	return len(s.LikedBy)
}

// SortByLikes orders suggestions by descending like count. Ties keep their relative order.
func SortByLikes(suggestions []*SongSuggestion) {
	slices.SortStableFunc(suggestions, func(a, b *SongSuggestion) int {
		return b.LikeCount() - a.LikeCount()
	})
}
