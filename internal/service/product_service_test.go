package service_test

import (
	"context"
	"errors"
	"testing"

	"storefront-api/internal/models"
	"storefront-api/internal/service"

	"github.com/google/uuid"
)

func TestProductCreate_TitleRequired(t *testing.T) {
	svc := service.NewProductService(&MockProductRepo{})

	err := svc.Create(context.Background(), &models.Product{Title: "   "})
	if !errors.Is(err, service.ErrTitleRequired) {
		t.Fatalf("expected ErrTitleRequired, got %v", err)
	}
}

func TestProductCreate_AggregatesInventory(t *testing.T) {
	var created *models.Product
	repo := &MockProductRepo{
		CreateFunc: func(ctx context.Context, p *models.Product) error {
			created = p
			return nil
		},
	}
	svc := service.NewProductService(repo)

	p := &models.Product{
		Title: "Oversized Tee",
		Variants: []models.ProductVariant{
			{Title: "sm", Quantity: 3},
			{Title: "md", Quantity: 5},
		},
	}
	if err := svc.Create(context.Background(), p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.TotalInventory != 8 {
		t.Fatalf("total inventory = %d, want 8", created.TotalInventory)
	}
}

func TestProductGet_NotFound(t *testing.T) {
	svc := service.NewProductService(&MockProductRepo{})

	_, err := svc.Get(context.Background(), uuid.New())
	if !errors.Is(err, service.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductListByCountry_NormalizesCode(t *testing.T) {
	var gotCountry string
	repo := &MockProductRepo{
		ListByCountryFunc: func(ctx context.Context, country string) ([]models.Product, error) {
			gotCountry = country
			return nil, nil
		},
	}
	svc := service.NewProductService(repo)

	if _, err := svc.ListByCountry(context.Background(), " ng "); err != nil {
		t.Fatalf("ListByCountry: %v", err)
	}
	if gotCountry != "NG" {
		t.Fatalf("country passed to repo = %q, want NG", gotCountry)
	}
}
