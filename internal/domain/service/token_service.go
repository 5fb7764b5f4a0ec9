package service

import (
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/errors"
)

// ErrInvalidToken is returned for malformed, expired or wrongly signed access tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenVerifier validates access tokens issued by the auth service.
type TokenVerifier interface {
	VerifyAccessToken(tokenString string) (*entity.SessionClaims, error)
}
