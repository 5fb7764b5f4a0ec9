// Package constants holds fixed values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

const (
	// ParticipantLimit caps the number of registrations the event accepts.
	ParticipantLimit = 250

	AvatarBucket = "avatars"
	ImageBucket  = "images"

	DefaultAvatarURL  = "https://api.dicebear.com/9.x/thumbs/svg?seed=chad"
	CoverFallbackPath = "cover-fallback.png"

	// EventTimezone is used to group workshops into time slots.
	EventTimezone = "Europe/Berlin"
)

// Auth providers reported in raw_app_meta_data.provider.
const (
	ProviderGoogle = "google"
	ProviderEmail  = "email"
	ProviderPhone  = "phone"
)
