package usecase

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
)

// SessionUsecase turns an access token into the request's session state.
type SessionUsecase interface {
	// Resolve verifies the token and loads the profile. An invalid token returns
	// domainerrors.ErrUnauthorized. A profile that cannot be loaded yields a session
	// without profile, so the completeness flags stay false.
	Resolve(ctx context.Context, accessToken string) (*SessionState, error)
}

// SessionState is what route protection and handlers know about the caller.
type SessionState struct {
	Claims        *entity.SessionClaims
	Profile       *entity.UserProfile
	InfosProvided bool
	HasPaid       bool
}

// IsAdmin reports whether the loaded profile carries the admin role.
func (s *SessionState) IsAdmin() bool {
	return s != nil && s.Profile != nil && s.Profile.Role.IsAdmin()
}
