package repository

import (
	"context"
	"errors"

	"storefront-api/internal/models"

	"gorm.io/gorm"
)

type VariantRepo interface {
	GetByID(ctx context.Context, id int64) (*models.ProductVariant, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.ProductVariant, error)

	// DecrementQuantity subtracts qty from the variant's on-hand stock.
	DecrementQuantity(ctx context.Context, id int64, qty int) error
}

type variantRepo struct{ db *gorm.DB }

func NewVariantRepo(db *gorm.DB) VariantRepo { return &variantRepo{db: db} }

func (r *variantRepo) GetByID(ctx context.Context, id int64) (*models.ProductVariant, error) {
	var v models.ProductVariant
	err := r.db.WithContext(ctx).First(&v, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &v, err
}

func (r *variantRepo) GetByIDs(ctx context.Context, ids []int64) ([]models.ProductVariant, error) {
	var list []models.ProductVariant
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error
	return list, err
}

func (r *variantRepo) DecrementQuantity(ctx context.Context, id int64, qty int) error {
	return r.db.WithContext(ctx).Exec(`
UPDATE product_variants
SET quantity = quantity - @q
WHERE id = @vid
`, map[string]any{
		"vid": id,
		"q":   qty,
	}).Error
}
