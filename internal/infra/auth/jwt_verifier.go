// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/TimDev9492/chad-website/config"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/domain/service"
	"github.com/TimDev9492/chad-website/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const accessTokenAudience = "authenticated"

// accessClaims is the claim set the auth service puts into access tokens.
type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// jwtVerifier checks HS256 access tokens against the project's JWT secret.
type jwtVerifier struct {
	secret []byte
	now    func() time.Time
}

// NewJWTVerifier is the constructor for jwtVerifier.
func NewJWTVerifier(cfg *config.Config) (service.TokenVerifier, error) {
	if cfg.Supabase == nil || cfg.Supabase.JWTSecret == "" {
		return nil, errors.New("supabase jwt secret must be provided")
	}

	return &jwtVerifier{
		secret: []byte(cfg.Supabase.JWTSecret),
		now:    time.Now,
	}, nil
}

func (v *jwtVerifier) VerifyAccessToken(tokenString string) (*entity.SessionClaims, error) {
	if tokenString == "" {
		return nil, service.ErrInvalidToken
	}

	claims := &accessClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithAudience(accessTokenAudience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, err.Error())
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidToken, "subject is not a uuid")
	}

	return &entity.SessionClaims{
		UserID:    userID,
		Email:     claims.Email,
		Role:      claims.Role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
