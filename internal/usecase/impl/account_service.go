package impl

import (
	"context"
	"log/slog"
	"strings"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/domain/constants"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	"github.com/TimDev9492/chad-website/internal/domain/service"
	"github.com/TimDev9492/chad-website/internal/domain/validation"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"go.uber.org/fx"
	"golang.org/x/oauth2"
)

const pkceMethodS256 = "s256"

// accountService implements the AccountUsecase interface.
type accountService struct {
	auth        service.AuthService
	profileRepo repository.ProfileRepository
	siteURL     string
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Auth        service.AuthService
	ProfileRepo repository.ProfileRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	srv := &accountService{
		auth:        params.Auth,
		profileRepo: params.ProfileRepo,
		logger:      params.Logger,
	}
	if params.Config != nil && params.Config.Supabase != nil {
		srv.siteURL = strings.TrimRight(params.Config.Supabase.SiteURL, "/")
	}

	return srv
}

func (srv *accountService) SignIn(ctx context.Context, input *usecase.SignInInput) (*entity.Session, error) {
	if input == nil || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	session, err := srv.auth.SignInWithPassword(ctx, strings.TrimSpace(input.Email), input.Password)
	if err != nil {
		return nil, srv.mapAuthError(err, domainerrors.ErrInvalidCredentials, "sign in")
	}

	srv.logger.Info("User signed in", "userID", session.User.ID)

	return session, nil
}

func (srv *accountService) SignUp(ctx context.Context, input *usecase.SignUpInput) (string, error) {
	if input == nil {
		return "", errors.WithStack(domainerrors.ErrValidationFailed)
	}

	email := strings.TrimSpace(input.Email)
	if !validation.IsValidEmailAddress(email) {
		return "", errors.WithStack(domainerrors.ErrInvalidEmail)
	}
	if input.Password == "" {
		return "", errors.WithStack(domainerrors.ErrInvalidPassword)
	}

	registered, err := srv.profileRepo.CountRegistered(ctx)
	if err != nil {
		return "", errors.Wrap(err, "failed to count registrations")
	}
	if registered >= constants.ParticipantLimit {
		srv.logger.Warn("Sign up rejected, participant limit reached", "registered", registered)

		return "", errors.WithStack(domainerrors.ErrRegistrationClosed)
	}

	verifier, pkce := newPKCE()
	if err := srv.auth.SignUp(ctx, email, input.Password, srv.siteURL+"/user", pkce); err != nil {
		return "", srv.mapAuthError(err, domainerrors.ErrSignUpFailed, "sign up")
	}

	srv.logger.Info("Sign up requested")

	return verifier, nil
}

// SignOut revokes the session upstream. A missing token means there is nothing to revoke.
func (srv *accountService) SignOut(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return nil
	}

	if err := srv.auth.SignOut(ctx, accessToken); err != nil {
		return srv.mapAuthError(err, domainerrors.ErrUnauthorized, "sign out")
	}

	return nil
}

func (srv *accountService) ExchangeCode(ctx context.Context, code, codeVerifier string) (*entity.Session, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errors.WithStack(domainerrors.ErrAuthCodeMissing)
	}

	session, err := srv.auth.ExchangeCodeForSession(ctx, code, codeVerifier)
	if err != nil {
		return nil, srv.mapAuthError(err, domainerrors.ErrUnauthorized, "exchange code")
	}

	return session, nil
}

func (srv *accountService) ResetPassword(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if !validation.IsValidEmailAddress(email) {
		return "", errors.WithStack(domainerrors.ErrInvalidEmail)
	}

	verifier, pkce := newPKCE()
	if err := srv.auth.ResetPasswordForEmail(ctx, email, srv.siteURL+"/user/update-password", pkce); err != nil {
		return "", srv.mapAuthError(err, domainerrors.ErrInvalidEmail, "reset password")
	}

	return verifier, nil
}

func (srv *accountService) ResendSignup(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if !validation.IsValidEmailAddress(email) {
		return errors.WithStack(domainerrors.ErrInvalidEmail)
	}

	if err := srv.auth.ResendSignup(ctx, email, srv.siteURL+"/user"); err != nil {
		return srv.mapAuthError(err, domainerrors.ErrInvalidEmail, "resend signup")
	}

	return nil
}

func (srv *accountService) UpdateEmail(ctx context.Context, accessToken, email string) error {
	if accessToken == "" {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	email = strings.TrimSpace(email)
	if !validation.IsValidEmailAddress(email) {
		return errors.WithStack(domainerrors.ErrInvalidEmail)
	}

	if err := srv.auth.UpdateEmail(ctx, accessToken, email); err != nil {
		return srv.mapAuthError(err, domainerrors.ErrInvalidEmail, "update email")
	}

	return nil
}

func (srv *accountService) UpdatePassword(ctx context.Context, accessToken, password string) error {
	if accessToken == "" {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}
	if password == "" {
		return errors.WithStack(domainerrors.ErrInvalidPassword)
	}

	if err := srv.auth.UpdatePassword(ctx, accessToken, password); err != nil {
		return srv.mapAuthError(err, domainerrors.ErrInvalidPassword, "update password")
	}

	return nil
}

// mapAuthError turns auth service failures into client errors. The upstream message is
// logged but never shown.
func (srv *accountService) mapAuthError(err error, rejected *domainerrors.BaseError, action string) error {
	srv.logger.Warn("Auth service call failed", "action", action, "error", err)

	switch {
	case errors.Is(err, service.ErrAuthRejected):
		return errors.Wrap(rejected, action)
	case errors.Is(err, service.ErrAuthUnavailable):
		return errors.Wrap(domainerrors.ErrAuthServiceFailed, action)
	default:
		return errors.Wrapf(err, "failed to %s", action)
	}
}

func newPKCE() (string, service.PKCE) {
	verifier := oauth2.GenerateVerifier()

	return verifier, service.PKCE{
		Challenge: oauth2.S256ChallengeFromVerifier(verifier),
		Method:    pkceMethodS256,
	}
}
