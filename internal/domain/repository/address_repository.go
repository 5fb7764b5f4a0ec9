// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when a user has no residency address row.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository persists residency_addresses, one row per user.
type AddressRepository interface {
	// Upsert writes the address keyed by user id, creating the row if needed.
	Upsert(ctx context.Context, address *entity.ResidentialAddress) error

	// EnsureExists returns the address row for the user, creating an empty one first if missing.
	EnsureExists(ctx context.Context, userID uuid.UUID) (*entity.ResidentialAddress, error)
}
