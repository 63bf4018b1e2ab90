package repository

import (
	"context"
	"errors"

	"storefront-api/internal/models"

	"gorm.io/gorm"
)

type PaymentIntentRepo interface {
	Create(ctx context.Context, pi *models.PaymentIntent) error
	GetByTxRef(ctx context.Context, txRef string) (*models.PaymentIntent, error)

	// MarkProcessing claims the intent for verification:
	// UPDATE ... SET status='processing' WHERE tx_ref=? AND status='Pending'.
	// Returns false when the row was not in Pending, i.e. another call
	// holds it or it is already terminal.
	MarkProcessing(ctx context.Context, txRef string) (bool, error)

	// ResetToPending releases a processing claim after a provider
	// communication failure so the caller can retry verification.
	ResetToPending(ctx context.Context, txRef string) (bool, error)

	Complete(ctx context.Context, txRef string, gatewayTransactionID int64) error
	Fail(ctx context.Context, txRef string) error

	// WithTx runs fn against tx-bound repos in one database transaction.
	WithTx(ctx context.Context, fn func(intents PaymentIntentRepo, orders OrderRepo, products ProductRepo, variants VariantRepo) error) error
}

type paymentIntentRepo struct{ db *gorm.DB }

func NewPaymentIntentRepo(db *gorm.DB) PaymentIntentRepo { return &paymentIntentRepo{db: db} }

func (r *paymentIntentRepo) Create(ctx context.Context, pi *models.PaymentIntent) error {
	return r.db.WithContext(ctx).Create(pi).Error
}

func (r *paymentIntentRepo) GetByTxRef(ctx context.Context, txRef string) (*models.PaymentIntent, error) {
	var pi models.PaymentIntent
	err := r.db.WithContext(ctx).First(&pi, "tx_ref = ?", txRef).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &pi, err
}

func (r *paymentIntentRepo) MarkProcessing(ctx context.Context, txRef string) (bool, error) {
	tx := r.db.WithContext(ctx).Exec(`
UPDATE payment_intents
SET status = @processing,
    updated_at = now()
WHERE tx_ref = @ref
  AND status = @pending
`, map[string]any{
		"ref":        txRef,
		"processing": models.PaymentIntentProcessing,
		"pending":    models.PaymentIntentPending,
	})
	return tx.RowsAffected > 0, tx.Error
}

func (r *paymentIntentRepo) ResetToPending(ctx context.Context, txRef string) (bool, error) {
	tx := r.db.WithContext(ctx).Exec(`
UPDATE payment_intents
SET status = @pending,
    updated_at = now()
WHERE tx_ref = @ref
  AND status = @processing
`, map[string]any{
		"ref":        txRef,
		"pending":    models.PaymentIntentPending,
		"processing": models.PaymentIntentProcessing,
	})
	return tx.RowsAffected > 0, tx.Error
}

func (r *paymentIntentRepo) Complete(ctx context.Context, txRef string, gatewayTransactionID int64) error {
	return r.db.WithContext(ctx).Model(&models.PaymentIntent{}).
		Where("tx_ref = ?", txRef).
		Updates(map[string]any{
			"status":                 models.PaymentIntentCompleted,
			"gateway_transaction_id": gatewayTransactionID,
		}).Error
}

func (r *paymentIntentRepo) Fail(ctx context.Context, txRef string) error {
	return r.db.WithContext(ctx).Model(&models.PaymentIntent{}).
		Where("tx_ref = ?", txRef).
		Update("status", models.PaymentIntentFailed).Error
}

func (r *paymentIntentRepo) WithTx(ctx context.Context, fn func(intents PaymentIntentRepo, orders OrderRepo, products ProductRepo, variants VariantRepo) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&paymentIntentRepo{db: tx}, &orderRepo{db: tx}, &productRepo{db: tx}, &variantRepo{db: tx})
	})
}
