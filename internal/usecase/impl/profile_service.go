// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	"github.com/TimDev9492/chad-website/internal/domain/validation"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	profileRepo repository.ProfileRepository
	addressRepo repository.AddressRepository
	lookupRepo  repository.LookupRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProfileRepo repository.ProfileRepository
	AddressRepo repository.AddressRepository
	LookupRepo  repository.LookupRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		profileRepo: params.ProfileRepo,
		addressRepo: params.AddressRepo,
		lookupRepo:  params.LookupRepo,
		logger:      params.Logger,
	}
}

// GetInfo loads the profile and the form's select options.
func (srv *profileService) GetInfo(ctx context.Context, userID uuid.UUID) (*usecase.ProfileInfo, error) {
	srv.logger.Debug("Getting registration info", "userID", userID)

	if _, err := srv.addressRepo.EnsureExists(ctx, userID); err != nil {
		return nil, errors.Wrap(err, "failed to ensure address row")
	}

	profile, err := srv.profileRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	lookups, err := srv.loadLookups(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.ProfileInfo{
		Profile:       profile,
		Lookups:       lookups,
		InfosProvided: validation.HasInfosProvided(profile),
	}, nil
}

// SubmitRegistration validates the whole form before anything is written.
func (srv *profileService) SubmitRegistration(ctx context.Context, userID uuid.UUID, input *usecase.RegistrationInput) error {
	srv.logger.Info("Submitting registration", "userID", userID)

	data, err := srv.parseRegistration(ctx, input)
	if err != nil {
		return err
	}
	data.Address.UserID = userID

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Residential address
		if err := repoFactory.AddressRepo().Upsert(ctx, &data.Address); err != nil {
			srv.logger.Error("Failed to save address", "userID", userID, "error", err)

			return errors.Wrapf(domainerrors.ErrAddressSaveFailed, "failed to upsert address: %v", err)
		}

		// 2. Personal and logistics fields
		if err := repoFactory.ProfileRepo().UpdateRegistration(ctx, userID, data); err != nil {
			if errors.Is(err, domainerrors.ErrInvalidWard) {
				return errors.WithStack(err)
			}
			srv.logger.Error("Failed to save profile fields", "userID", userID, "error", err)

			return errors.Wrapf(domainerrors.ErrProfileSaveFailed, "failed to update profile: %v", err)
		}

		// 3. Food preferences are replaced as a whole
		foodRepo := repoFactory.FoodPreferenceRepo()
		if err := foodRepo.DeleteByUserID(ctx, userID); err != nil {
			srv.logger.Error("Failed to clear food preferences", "userID", userID, "error", err)

			return errors.Wrapf(domainerrors.ErrFoodPreferencesSaveFailed, "failed to delete food preferences: %v", err)
		}
		if err := foodRepo.CreateMany(ctx, userID, data.FoodPreferences); err != nil {
			srv.logger.Error("Failed to insert food preferences", "userID", userID, "error", err)

			return errors.Wrapf(domainerrors.ErrFoodPreferencesSaveFailed, "failed to insert food preferences: %v", err)
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to submit registration")
	}

	srv.logger.Info("Registration saved", "userID", userID)

	return nil
}

func (srv *profileService) loadLookups(ctx context.Context) (*entity.LookupLists, error) {
	genders, err := srv.lookupRepo.ListGenders(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list genders")
	}

	countries, err := srv.lookupRepo.ListCountries(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list countries")
	}

	accomodations, err := srv.lookupRepo.ListAccomodations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accomodations")
	}

	meansOfTransport, err := srv.lookupRepo.ListMeansOfTransport(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list means of transport")
	}

	return &entity.LookupLists{
		Genders:          genders,
		Countries:        countries,
		Accomodations:    accomodations,
		MeansOfTransport: meansOfTransport,
	}, nil
}
