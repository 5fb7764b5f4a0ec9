package postgres

import (
	"context"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/infra/persistence/model"

	"gorm.io/gorm"
)

type lookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository is the constructor for lookupRepository.
func NewLookupRepository(db *gorm.DB) repository.LookupRepository {
	return &lookupRepository{db: db}
}

func (repo *lookupRepository) ListGenders(ctx context.Context) ([]string, error) {
	return repo.pluckNames(ctx, &model.GenderModel{})
}

func (repo *lookupRepository) ListCountries(ctx context.Context) ([]*entity.Country, error) {
	var rows []model.CountryModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	countries := make([]*entity.Country, 0, len(rows))
	for _, row := range rows {
		countries = append(countries, &entity.Country{
			ISOCode:        row.ISOCode,
			CountryCode:    row.CountryCode,
			Name:           row.Name,
			FlagEmoji:      row.FlagEmoji,
			CurrencyISO:    row.CurrencyISOCode,
			CurrencySymbol: row.CurrencySymbol,
			PriceBase:      row.PriceBase,
			IsPlaceholder:  row.IsPlaceholder,
		})
	}

	return countries, nil
}

func (repo *lookupRepository) ListAccomodations(ctx context.Context) ([]*entity.Accomodation, error) {
	var rows []model.AccomodationModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accomodations")
	}

	accomodations := make([]*entity.Accomodation, 0, len(rows))
	for _, row := range rows {
		accomodations = append(accomodations, &entity.Accomodation{Name: row.Name, Discount: row.Discount})
	}

	return accomodations, nil
}

func (repo *lookupRepository) ListMeansOfTransport(ctx context.Context) ([]string, error) {
	return repo.pluckNames(ctx, &model.MeansOfTransportModel{})
}

func (repo *lookupRepository) GenderExists(ctx context.Context, name string) (bool, error) {
	return repo.exists(ctx, &model.GenderModel{}, "name", name)
}

func (repo *lookupRepository) CountryExists(ctx context.Context, isoCode string) (bool, error) {
	return repo.exists(ctx, &model.CountryModel{}, "iso_code", isoCode)
}

func (repo *lookupRepository) AccomodationExists(ctx context.Context, name string) (bool, error) {
	return repo.exists(ctx, &model.AccomodationModel{}, "name", name)
}

func (repo *lookupRepository) ModeOfTransportExists(ctx context.Context, name string) (bool, error) {
	return repo.exists(ctx, &model.MeansOfTransportModel{}, "name", name)
}

func (repo *lookupRepository) pluckNames(ctx context.Context, table any) ([]string, error) {
	var names []string
	if err := repo.db.WithContext(ctx).Model(table).Order("name").Pluck("name", &names).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list lookup names")
	}

	return names, nil
}

func (repo *lookupRepository) exists(ctx context.Context, table any, column, value string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(table).Where(column+" = ?", value).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "failed to look up %s", column)
	}

	return count > 0, nil
}
