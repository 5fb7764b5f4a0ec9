package impl

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/TimDev9492/chad-website/internal/domain/constants"
	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	"github.com/TimDev9492/chad-website/internal/domain/service"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/usecase"

	"go.uber.org/fx"
)

// Dispatch keys of the tables the database sends change notifications for.
const (
	tableStorageObjects = "storage.objects"
	tableAuthUsers      = "auth.users"
	tablePaymentInfos   = "public.payment_infos"
)

type webhookHandlerFunc func(ctx context.Context, payload *entity.WebhookPayload) (string, error)

// webhookService implements the WebhookUsecase interface.
type webhookService struct {
	avatars     usecase.AvatarUsecase
	profileRepo repository.ProfileRepository
	mailer      service.Mailer
	logger      *slog.Logger

	handlers map[string]webhookHandlerFunc
}

// WebhookServiceParams holds dependencies for WebhookService, injected by Fx.
type WebhookServiceParams struct {
	fx.In

	Avatars     usecase.AvatarUsecase
	ProfileRepo repository.ProfileRepository
	Mailer      service.Mailer
	Logger      *slog.Logger
}

// NewWebhookService is the constructor for webhookService.
func NewWebhookService(params WebhookServiceParams) usecase.WebhookUsecase {
	srv := &webhookService{
		avatars:     params.Avatars,
		profileRepo: params.ProfileRepo,
		mailer:      params.Mailer,
		logger:      params.Logger,
	}

	srv.handlers = map[string]webhookHandlerFunc{
		tableStorageObjects: srv.handleStorageObject,
		tableAuthUsers:      srv.handleAuthUser,
		tablePaymentInfos:   srv.handlePaymentInfo,
	}

	return srv
}

// Dispatch routes the payload by exact "{schema}.{table}" match.
func (srv *webhookService) Dispatch(ctx context.Context, payload *entity.WebhookPayload) (string, error) {
	if payload == nil || !payload.Type.IsValid() {
		return "", errors.WithStack(domainerrors.ErrInvalidWebhookPayload)
	}

	key := payload.DispatchKey()
	handler, ok := srv.handlers[key]
	if !ok {
		srv.logger.Warn("Webhook for unsupported table", "table", key, "type", payload.Type)

		return "", errors.WithStack(domainerrors.ErrUnsupportedTable.WithDetails(key))
	}

	srv.logger.Info("Dispatching webhook", "table", key, "type", payload.Type)

	return handler(ctx, payload)
}

func (srv *webhookService) handleStorageObject(ctx context.Context, payload *entity.WebhookPayload) (string, error) {
	event, err := decodeStorageObjectEvent(payload)
	if err != nil {
		return "", err
	}

	subject := event.Record
	if subject == nil {
		subject = event.OldRecord
	}
	if subject == nil {
		return "", errors.WithStack(domainerrors.ErrInvalidWebhookPayload.WithDetails("missing record"))
	}
	if subject.BucketID != constants.AvatarBucket {
		return "", errors.WithStack(domainerrors.ErrUnsupportedBucket.WithDetails(subject.BucketID))
	}

	if event.Type != entity.WebhookInsert {
		return "", unsupportedEvent(event.Type)
	}

	deleted, err := srv.avatars.ReconcileAvatars(ctx, event.Record)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("Successfully deleted %d %s!", deleted, plural(deleted, "file", "files")), nil
}

func (srv *webhookService) handleAuthUser(ctx context.Context, payload *entity.WebhookPayload) (string, error) {
	if payload.Type != entity.WebhookInsert {
		return "", unsupportedEvent(payload.Type)
	}

	record, err := entity.DecodeRecord[entity.AuthUserRecord](payload.Record)
	if err != nil || record == nil {
		return "", invalidRecord(err)
	}

	provider := record.RawAppMetaData.Provider
	switch provider {
	case constants.ProviderGoogle:
		if err := srv.profileRepo.SyncOAuthProfile(ctx, record.ID, record.GoogleProfile()); err != nil {
			srv.logger.Error("Failed to sync OAuth profile", "userID", record.ID, "provider", provider, "error", err)

			return "", errors.Wrapf(domainerrors.ErrProfileSyncFailed, "failed to sync oauth profile: %v", err)
		}

		return "Synced profile from " + provider, nil
	case constants.ProviderEmail, constants.ProviderPhone:
		return "Nothing to sync for provider " + provider, nil
	default:
		return "", errors.WithStack(domainerrors.ErrUnsupportedAuthProvider.WithDetails(provider))
	}
}

func (srv *webhookService) handlePaymentInfo(ctx context.Context, payload *entity.WebhookPayload) (string, error) {
	if payload.Type != entity.WebhookUpdate {
		return "", unsupportedEvent(payload.Type)
	}

	event, err := decodePaymentInfoEvent(payload)
	if err != nil {
		return "", err
	}
	if event.Record == nil || event.OldRecord == nil {
		return "", errors.WithStack(domainerrors.ErrInvalidWebhookPayload.WithDetails("update without old record"))
	}

	if !event.BecameConfirmed() {
		return "No action required", nil
	}

	profile, err := srv.profileRepo.FindByUserID(ctx, event.Record.UserID)
	if err != nil {
		return "", errors.Wrap(err, "failed to load profile for payment confirmation")
	}

	mail := service.PaymentConfirmationMail{
		To:               profile.Email,
		FirstName:        profile.FirstName,
		PaymentReference: event.Record.PaymentReference,
	}
	if err := srv.mailer.SendPaymentConfirmation(ctx, mail); err != nil {
		srv.logger.Error("Failed to send payment confirmation", "userID", event.Record.UserID, "error", err)

		return "", errors.Wrapf(domainerrors.ErrMailSendFailed, "failed to send payment confirmation: %v", err)
	}

	srv.logger.Info("Sent payment confirmation", "userID", event.Record.UserID, "reference", event.Record.PaymentReference)

	return "Sent payment confirmation to " + profile.Email, nil
}

func decodeStorageObjectEvent(payload *entity.WebhookPayload) (*entity.StorageObjectEvent, error) {
	record, err := entity.DecodeRecord[entity.StorageObjectRecord](payload.Record)
	if err != nil {
		return nil, invalidRecord(err)
	}
	oldRecord, err := entity.DecodeRecord[entity.StorageObjectRecord](payload.OldRecord)
	if err != nil {
		return nil, invalidRecord(err)
	}

	return &entity.StorageObjectEvent{Type: payload.Type, Record: record, OldRecord: oldRecord}, nil
}

func decodePaymentInfoEvent(payload *entity.WebhookPayload) (*entity.PaymentInfoEvent, error) {
	record, err := entity.DecodeRecord[entity.PaymentInfoRecord](payload.Record)
	if err != nil {
		return nil, invalidRecord(err)
	}
	oldRecord, err := entity.DecodeRecord[entity.PaymentInfoRecord](payload.OldRecord)
	if err != nil {
		return nil, invalidRecord(err)
	}

	return &entity.PaymentInfoEvent{Type: payload.Type, Record: record, OldRecord: oldRecord}, nil
}

func unsupportedEvent(eventType entity.WebhookEventType) error {
	return errors.WithStack(domainerrors.ErrUnsupportedEventType.WithDetails(
		fmt.Sprintf("This webhook doesn't support %s events", eventType),
	))
}

func invalidRecord(err error) error {
	if err == nil {
		return errors.WithStack(domainerrors.ErrInvalidWebhookPayload.WithDetails("missing record"))
	}

	return errors.Wrapf(domainerrors.ErrInvalidWebhookPayload.WithDetails("record could not be decoded"), "failed to decode record: %v", err)
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
