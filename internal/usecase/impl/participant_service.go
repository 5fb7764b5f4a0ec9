package impl

import (
	"context"
	"log/slog"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	"github.com/TimDev9492/chad-website/internal/domain/service"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"go.uber.org/fx"
)

// participantService implements the ParticipantUsecase interface.
type participantService struct {
	participantRepo repository.ParticipantRepository
	roleRepo        repository.RoleRepository
	auth            service.AuthService
	sheetWriter     service.ParticipantSheetWriter
	logger          *slog.Logger
}

// ParticipantServiceParams holds dependencies for ParticipantService, injected by Fx.
type ParticipantServiceParams struct {
	fx.In

	ParticipantRepo repository.ParticipantRepository
	RoleRepo        repository.RoleRepository
	Auth            service.AuthService
	SheetWriter     service.ParticipantSheetWriter
	Logger          *slog.Logger
}

// NewParticipantService is the constructor for participantService.
func NewParticipantService(params ParticipantServiceParams) usecase.ParticipantUsecase {
	return &participantService{
		participantRepo: params.ParticipantRepo,
		roleRepo:        params.RoleRepo,
		auth:            params.Auth,
		sheetWriter:     params.SheetWriter,
		logger:          params.Logger,
	}
}

func (srv *participantService) ListRegistered(ctx context.Context) ([]*entity.RegisteredUser, error) {
	users, err := srv.participantRepo.FindRegisteredUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list registered users")
	}
	if users == nil {
		users = []*entity.RegisteredUser{}
	}

	return users, nil
}

func (srv *participantService) AuthorizeExport(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		return errors.WithStack(domainerrors.ErrUnauthorized.WithDetails("Missing Authorization header"))
	}

	user, err := srv.auth.GetUser(ctx, accessToken)
	if err != nil {
		if errors.Is(err, service.ErrAuthUnavailable) {
			return errors.Wrap(domainerrors.ErrAuthServiceFailed, "failed to resolve user")
		}

		return errors.Wrap(domainerrors.ErrUnauthorized.WithDetails("Invalid token"), err.Error())
	}

	// Every account gets a roles row on sign-up, a missing one is a data fault and not a denial.
	role, err := srv.roleRepo.FindByUserID(ctx, user.ID)
	if err != nil {
		srv.logger.Error("Failed to load role", "userID", user.ID, "missing", errors.Is(err, repository.ErrRoleNotFound), "error", err)

		return errors.Wrap(domainerrors.ErrInternalError.WithDetails("Failed to fetch user role"), err.Error())
	}

	if !role.IsAdmin() {
		srv.logger.Warn("Export denied", "userID", user.ID, "role", role)

		return errors.WithStack(domainerrors.ErrForbidden)
	}

	return nil
}

func (srv *participantService) Export(ctx context.Context, statuses []string) ([]byte, error) {
	filter := make([]entity.PaymentStatus, 0, len(statuses))
	for _, raw := range statuses {
		status := entity.PaymentStatus(raw)
		if !status.IsValid() {
			return nil, errors.WithStack(domainerrors.ErrInvalidPaymentStatus.WithDetails(raw))
		}
		filter = append(filter, status)
	}

	participants, err := srv.participantRepo.FindForExport(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load participants")
	}

	workbook, err := srv.sheetWriter.Write(participants)
	if err != nil {
		srv.logger.Error("Failed to render participant workbook", "error", err)

		return nil, errors.Wrap(domainerrors.ErrExportFailed, err.Error())
	}

	srv.logger.Info("Participants exported", "count", len(participants), "statuses", statuses)

	return workbook, nil
}
