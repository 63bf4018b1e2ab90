package repository

import (
	"context"
	"errors"

	"storefront-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductRepo interface {
	Create(ctx context.Context, p *models.Product) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	ListByCountry(ctx context.Context, country string) ([]models.Product, error)

	// DecrementTotalInventory subtracts qty from the product aggregate
	// counter. No floor check: stock is validated at checkout time.
	DecrementTotalInventory(ctx context.Context, id uuid.UUID, qty int) error
}

type productRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) ProductRepo { return &productRepo{db: db} }

func (r *productRepo) Create(ctx context.Context, p *models.Product) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	var p models.Product
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Preload("Media").
		Preload("Metafields").
		Preload("ContextualPrices").
		First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &p, err
}

func (r *productRepo) List(ctx context.Context) ([]models.Product, error) {
	var list []models.Product
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Preload("Media").
		Preload("Metafields").
		Preload("ContextualPrices").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *productRepo) ListByCountry(ctx context.Context, country string) ([]models.Product, error) {
	var list []models.Product
	err := r.db.WithContext(ctx).
		Preload("Variants").
		Preload("Media").
		Preload("Metafields").
		Preload("ContextualPrices", "country = ?", country).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *productRepo) DecrementTotalInventory(ctx context.Context, id uuid.UUID, qty int) error {
	return r.db.WithContext(ctx).Exec(`
UPDATE products
SET total_inventory = total_inventory - @q,
    updated_at = now()
WHERE id = @pid
`, map[string]any{
		"pid": id,
		"q":   qty,
	}).Error
}
