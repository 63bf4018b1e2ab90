package service

import (
	"context"
	"fmt"
	"strings"

	"storefront-api/internal/models"
	"storefront-api/internal/repository"

	"github.com/google/uuid"
)

type ProductService interface {
	Create(ctx context.Context, p *models.Product) error
	Get(ctx context.Context, id uuid.UUID) (*models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	ListByCountry(ctx context.Context, country string) ([]models.Product, error)
}

type productService struct {
	products repository.ProductRepo
}

func NewProductService(products repository.ProductRepo) ProductService {
	return &productService{products: products}
}

func (s *productService) Create(ctx context.Context, p *models.Product) error {
	if strings.TrimSpace(p.Title) == "" {
		return ErrTitleRequired
	}
	// aggregate counter mirrors the variant stock at creation time
	if p.TotalInventory == 0 {
		for _, v := range p.Variants {
			p.TotalInventory += v.Quantity
		}
	}
	return s.products.Create(ctx, p)
}

func (s *productService) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	p, err := s.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("%w: id %s", ErrProductNotFound, id)
	}
	return p, nil
}

func (s *productService) List(ctx context.Context) ([]models.Product, error) {
	return s.products.List(ctx)
}

func (s *productService) ListByCountry(ctx context.Context, country string) ([]models.Product, error) {
	return s.products.ListByCountry(ctx, strings.ToUpper(strings.TrimSpace(country)))
}
