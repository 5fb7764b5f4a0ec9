package impl

import (
	"context"
	"log/slog"
	"strings"

	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	"github.com/TimDev9492/chad-website/internal/domain/service"
	"github.com/TimDev9492/chad-website/internal/domain/validation"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	verifier    service.TokenVerifier
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Verifier    service.TokenVerifier
	ProfileRepo repository.ProfileRepository
	Logger      *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		verifier:    params.Verifier,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
}

// Resolve verifies the token locally and attaches the profile when it can be loaded.
func (srv *sessionService) Resolve(ctx context.Context, accessToken string) (*usecase.SessionState, error) {
	if strings.TrimSpace(accessToken) == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	claims, err := srv.verifier.VerifyAccessToken(accessToken)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrUnauthorized, "failed to verify access token: %v", err)
	}

	state := &usecase.SessionState{Claims: claims}

	profile, err := srv.profileRepo.FindByUserID(ctx, claims.UserID)
	if err != nil {
		// The session stays valid; without a profile the completeness flags are false.
		srv.logger.Warn("Failed to load profile for session", "userID", claims.UserID, "error", err)

		return state, nil
	}

	state.Profile = profile
	state.InfosProvided = validation.HasInfosProvided(profile)
	state.HasPaid = profile.HasPaid()

	return state, nil
}
