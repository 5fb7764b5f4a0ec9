package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Workshop is a session attendees can join. The application only reads them.
type Workshop struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Description   string          `json:"description"`
	EventStart    time.Time       `json:"event_start"`
	EventDuration int             `json:"event_duration"`
	Capacity      int             `json:"capacity"`
	ThumbnailURL  *string         `json:"thumbnail_url"`
	Metadata      json.RawMessage `json:"metadata"`
}

// WorkshopsByTime groups workshops by their formatted start slot.
type WorkshopsByTime map[string][]*Workshop
