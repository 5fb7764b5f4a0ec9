package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthUser is the account as the external auth service reports it.
type AuthUser struct {
	ID    uuid.UUID
	Email string
}

// Session is an issued access/refresh token pair.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
	User         AuthUser
}

// SessionClaims are the verified claims of an access token.
type SessionClaims struct {
	UserID    uuid.UUID
	Email     string
	Role      string
	ExpiresAt time.Time
}
