package repository

import (
	"context"
	"errors"

	"storefront-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderRepo interface {
	Create(ctx context.Context, o *models.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error)
	UpdatePaymentResult(ctx context.Context, orderNumber string, status models.OrderStatus, paymentStatus models.PaymentStatus) error
	SetTracking(ctx context.Context, orderNumber, trackingNumber string) error
}

type orderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) OrderRepo { return &orderRepo{db: db} }

func (r *orderRepo) Create(ctx context.Context, o *models.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).First(&ord, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	var ord models.Order
	err := r.db.WithContext(ctx).First(&ord, "order_number = ?", orderNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ord, err
}

func (r *orderRepo) UpdatePaymentResult(ctx context.Context, orderNumber string, status models.OrderStatus, paymentStatus models.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).
		Where("order_number = ?", orderNumber).
		Updates(map[string]any{
			"status":         status,
			"payment_status": paymentStatus,
		}).Error
}

func (r *orderRepo) SetTracking(ctx context.Context, orderNumber, trackingNumber string) error {
	return r.db.WithContext(ctx).Model(&models.Order{}).
		Where("order_number = ?", orderNumber).
		Updates(map[string]any{
			"tracking_number": trackingNumber,
			"status":          models.OrderStatusShipped,
		}).Error
}
