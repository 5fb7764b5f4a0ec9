package repository

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/errors"

	"github.com/google/uuid"
)

// ErrRoleNotFound is returned when the user has no roles row.
var ErrRoleNotFound = errors.New("role not found")

// RoleRepository reads the roles table.
type RoleRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) (entity.Role, error)
}
