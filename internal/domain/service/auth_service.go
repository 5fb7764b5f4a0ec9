package service

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/errors"
)

var (
	// ErrAuthRejected is returned when the auth service refuses a request (wrong password, bad code...).
	ErrAuthRejected = errors.New("auth service rejected the request")
	// ErrAuthUnavailable is returned when the auth service could not be reached or answered 5xx.
	ErrAuthUnavailable = errors.New("auth service unavailable")
)

// PKCE carries the challenge sent along with flows that end in an emailed link.
type PKCE struct {
	Challenge string
	Method    string
}

// AuthService is the hosted authentication service. The application never stores
// credentials itself; it forwards them and keeps the returned tokens in cookies.
type AuthService interface {
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error)
	SignUp(ctx context.Context, email, password, redirectTo string, pkce PKCE) error
	SignOut(ctx context.Context, accessToken string) error
	GetUser(ctx context.Context, accessToken string) (*entity.AuthUser, error)
	UpdateEmail(ctx context.Context, accessToken, email string) error
	UpdatePassword(ctx context.Context, accessToken, password string) error
	ResetPasswordForEmail(ctx context.Context, email, redirectTo string, pkce PKCE) error
	ResendSignup(ctx context.Context, email, redirectTo string) error
	ExchangeCodeForSession(ctx context.Context, authCode, codeVerifier string) (*entity.Session, error)
}
