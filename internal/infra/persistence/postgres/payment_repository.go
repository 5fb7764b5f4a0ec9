package postgres

import (
	"context"
	"encoding/json"

	"github.com/TimDev9492/chad-website/internal/domain/entity"
	domainerrors "github.com/TimDev9492/chad-website/internal/domain/errors"
	"github.com/TimDev9492/chad-website/internal/domain/repository"
	"github.com/TimDev9492/chad-website/internal/errors"
	"github.com/TimDev9492/chad-website/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository is the constructor for paymentRepository.
func NewPaymentRepository(db *gorm.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (repo *paymentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.PaymentInfo, error) {
	var paymentM model.PaymentInfoModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&paymentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "failed to find payment info")
	}

	return toPaymentInfoDomain(&paymentM), nil
}

// ConfirmByReference is idempotent: confirming an already confirmed row succeeds again.
func (repo *paymentRepository) ConfirmByReference(ctx context.Context, reference int64) (string, error) {
	var emails []string
	err := repo.db.WithContext(ctx).Raw(
		`UPDATE payment_infos p SET status = ?
		   FROM user_infos u
		  WHERE p.payment_reference = ? AND u.user_id = p.user_id
		RETURNING u.email`,
		string(entity.PaymentStatusConfirmed), reference,
	).Scan(&emails).Error
	if err != nil {
		return "", domainerrors.NewDatabaseExecuteError(err, "failed to confirm payment")
	}
	if len(emails) == 0 {
		return "", repository.ErrPaymentNotFound
	}

	return emails[0], nil
}

func (repo *paymentRepository) TransitionStatus(ctx context.Context, userID uuid.UUID, from, to entity.PaymentStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.PaymentInfoModel{}).
		Where("user_id = ? AND status = ?", userID, string(from)).
		Update("status", string(to))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update payment status")
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.PaymentInfoModel{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check payment info")
	}
	if count == 0 {
		return repository.ErrPaymentNotFound
	}

	return repository.ErrPaymentStatusMismatch
}

// GetUserPrice calls get_user_price(), which reads the caller from request.jwt.claims.
// The claim is set transaction-locally so it never leaks to other pooled connections.
func (repo *paymentRepository) GetUserPrice(ctx context.Context, userID uuid.UUID) (float64, error) {
	claims, err := json.Marshal(map[string]string{"sub": userID.String(), "role": "authenticated"})
	if err != nil {
		return 0, errors.Wrap(err, "failed to encode jwt claims")
	}

	var price *float64
	err = repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT set_config('request.jwt.claims', ?, true)", string(claims)).Error; err != nil {
			return errors.Wrap(err, "failed to set jwt claims")
		}

		return tx.Raw("SELECT get_user_price()").Scan(&price).Error
	})
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to evaluate user price")
	}
	if price == nil {
		return 0, repository.ErrPaymentNotFound
	}

	return *price, nil
}
