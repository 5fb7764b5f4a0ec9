package entity

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WebhookEventType is the change kind a database webhook reports.
type WebhookEventType string

const (
	WebhookInsert WebhookEventType = "INSERT"
	WebhookUpdate WebhookEventType = "UPDATE"
	WebhookDelete WebhookEventType = "DELETE"
)

// IsValid checks if the type is one of the three change kinds.
func (t WebhookEventType) IsValid() bool {
	switch t {
	case WebhookInsert, WebhookUpdate, WebhookDelete:
		return true
	default:
		return false
	}
}

// WebhookPayload is the raw body of a database webhook. Records stay undecoded
// until the dispatch key selects a schema for them.
type WebhookPayload struct {
	Type      WebhookEventType `json:"type"`
	Table     string           `json:"table"`
	Schema    string           `json:"schema"`
	Record    json.RawMessage  `json:"record"`
	OldRecord json.RawMessage  `json:"old_record"`
}

// DispatchKey is "{schema}.{table}".
func (p *WebhookPayload) DispatchKey() string {
	return p.Schema + "." + p.Table
}

// StorageObjectRecord is a row of storage.objects.
type StorageObjectRecord struct {
	ID        string    `json:"id"`
	BucketID  string    `json:"bucket_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// PublicIDPrefix is the part of the object name before the first dot, ignoring folders.
func (r *StorageObjectRecord) PublicIDPrefix() string {
	name := r.Name
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.Index(name, "."); i >= 0 {
		name = name[:i]
	}

	return name
}

// AuthUserRecord is a row of auth.users.
type AuthUserRecord struct {
	ID              uuid.UUID      `json:"id"`
	Email           string         `json:"email"`
	RawAppMetaData  AppMetaData    `json:"raw_app_meta_data"`
	RawUserMetaData map[string]any `json:"raw_user_meta_data"`
}

// AppMetaData is the provider information the auth service stores per user.
type AppMetaData struct {
	Provider  string   `json:"provider"`
	Providers []string `json:"providers"`
}

// OAuthProfile is the name and picture an identity provider reported at sign up.
type OAuthProfile struct {
	FirstName string
	LastName  string
	AvatarURL string
}

// GoogleProfile extracts the profile fields Google puts into raw_user_meta_data.
func (r *AuthUserRecord) GoogleProfile() OAuthProfile {
	meta := r.RawUserMetaData
	profile := OAuthProfile{
		FirstName: metaString(meta, "given_name"),
		LastName:  metaString(meta, "family_name"),
		AvatarURL: firstNonEmpty(metaString(meta, "avatar_url"), metaString(meta, "picture")),
	}

	if profile.FirstName == "" && profile.LastName == "" {
		fullName := strings.TrimSpace(firstNonEmpty(metaString(meta, "full_name"), metaString(meta, "name")))
		if i := strings.LastIndex(fullName, " "); i > 0 {
			profile.FirstName = fullName[:i]
			profile.LastName = fullName[i+1:]
		} else {
			profile.FirstName = fullName
		}
	}

	return profile
}

// PaymentInfoRecord is a row of public.payment_infos.
type PaymentInfoRecord struct {
	UserID           uuid.UUID     `json:"user_id"`
	PaymentReference int64         `json:"payment_reference"`
	Status           PaymentStatus `json:"status"`
}

// StorageObjectEvent is a change on storage.objects.
type StorageObjectEvent struct {
	Type      WebhookEventType
	Record    *StorageObjectRecord
	OldRecord *StorageObjectRecord
}

// PaymentInfoEvent is a change on public.payment_infos.
type PaymentInfoEvent struct {
	Type      WebhookEventType
	Record    *PaymentInfoRecord
	OldRecord *PaymentInfoRecord
}

// BecameConfirmed reports a transition into CONFIRMED from any other status.
func (e *PaymentInfoEvent) BecameConfirmed() bool {
	if e.Type != WebhookUpdate || e.Record == nil || e.OldRecord == nil {
		return false
	}

	return e.OldRecord.Status != PaymentStatusConfirmed && e.Record.Status == PaymentStatusConfirmed
}

// DecodeRecord unmarshals a webhook record. A missing or JSON null record yields nil.
func DecodeRecord[T any](raw json.RawMessage) (*T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	record := new(T)
	if err := json.Unmarshal(raw, record); err != nil {
		return nil, err
	}

	return record, nil
}

func metaString(meta map[string]any, key string) string {
	if v, ok := meta[key].(string); ok {
		return strings.TrimSpace(v)
	}

	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
