package usecase

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
)

// AccountUsecase forwards account operations to the hosted auth service.
type AccountUsecase interface {
	SignIn(ctx context.Context, input *SignInInput) (*entity.Session, error)

	// SignUp registers the account and returns the PKCE verifier the confirmation
	// link has to be exchanged with.
	SignUp(ctx context.Context, input *SignUpInput) (string, error)

	SignOut(ctx context.Context, accessToken string) error

	// ExchangeCode trades the code from an emailed link for a session.
	ExchangeCode(ctx context.Context, code, codeVerifier string) (*entity.Session, error)

	// ResetPassword sends a reset link and returns its PKCE verifier.
	ResetPassword(ctx context.Context, email string) (string, error)

	ResendSignup(ctx context.Context, email string) error
	UpdateEmail(ctx context.Context, accessToken, email string) error
	UpdatePassword(ctx context.Context, accessToken, password string) error
}

// --- Input DTOs ---

// SignInInput defines the login form.
type SignInInput struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// SignUpInput defines the registration form.
type SignUpInput struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}
