package repository

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
)

// LookupRepository reads the allow-list tables behind the registration form's select fields.
type LookupRepository interface {
	ListGenders(ctx context.Context) ([]string, error)
	ListCountries(ctx context.Context) ([]*entity.Country, error)
	ListAccomodations(ctx context.Context) ([]*entity.Accomodation, error)
	ListMeansOfTransport(ctx context.Context) ([]string, error)

	GenderExists(ctx context.Context, name string) (bool, error)
	CountryExists(ctx context.Context, isoCode string) (bool, error)
	AccomodationExists(ctx context.Context, name string) (bool, error)
	ModeOfTransportExists(ctx context.Context, name string) (bool, error)
}
