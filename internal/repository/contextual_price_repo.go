package repository

import (
	"context"
	"errors"

	"storefront-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ContextualPriceRepo interface {
	GetForProductCountry(ctx context.Context, productID uuid.UUID, country string) (*models.ContextualPrice, error)
}

type contextualPriceRepo struct{ db *gorm.DB }

func NewContextualPriceRepo(db *gorm.DB) ContextualPriceRepo {
	return &contextualPriceRepo{db: db}
}

func (r *contextualPriceRepo) GetForProductCountry(ctx context.Context, productID uuid.UUID, country string) (*models.ContextualPrice, error) {
	var cp models.ContextualPrice
	err := r.db.WithContext(ctx).
		First(&cp, "product_id = ? AND country = ?", productID, country).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &cp, err
}
