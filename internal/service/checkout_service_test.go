package service_test

import (
	"context"
	"errors"
	"testing"

	"storefront-api/internal/models"
	"storefront-api/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func checkoutFixture() (*MockVariantRepo, *MockProductRepo, *MockPriceRepo) {
	productID := uuid.New()

	variants := &MockVariantRepo{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.ProductVariant, error) {
			if id != 7 {
				return nil, nil
			}
			return &models.ProductVariant{ID: 7, Title: "md", Price: 25000, Quantity: 10, ProductID: productID}, nil
		},
	}
	products := &MockProductRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*models.Product, error) {
			if id != productID {
				return nil, nil
			}
			return &models.Product{ID: productID, Title: "Oversized Tee", TotalInventory: 10}, nil
		},
	}
	prices := &MockPriceRepo{
		GetForProductCountryFunc: func(ctx context.Context, pid uuid.UUID, country string) (*models.ContextualPrice, error) {
			switch country {
			case "NG":
				return &models.ContextualPrice{Amount: 25000, CurrencyCode: "NGN", Country: "NG", ProductID: pid}, nil
			case "US":
				return &models.ContextualPrice{Amount: 30, CurrencyCode: "USD", Country: "US", ProductID: pid}, nil
			case "GB":
				return &models.ContextualPrice{Amount: 25, CurrencyCode: "GBP", Country: "GB", ProductID: pid}, nil
			}
			return nil, nil
		},
	}
	return variants, products, prices
}

func TestCalculateCheckout_Nigeria(t *testing.T) {
	variants, products, prices := checkoutFixture()
	svc := service.NewCheckoutService(variants, products, prices, testResolver(), zap.NewNop())

	res, err := svc.CalculateCheckout(context.Background(), service.CheckoutInput{
		Items:   []service.CheckoutItem{{VariantID: 7, Quantity: 2}},
		Country: "NG",
	})
	if err != nil {
		t.Fatalf("CalculateCheckout: %v", err)
	}

	if res.Total.Amount != 50000 || res.Total.Currency != "NGN" {
		t.Fatalf("subtotal = %+v, want 50000 NGN", res.Total)
	}
	if res.Tax.Amount != 3750 {
		t.Fatalf("tax = %v, want 3750", res.Tax.Amount)
	}

	if len(res.ShippingOptions) != 2 {
		t.Fatalf("expected 2 shipping options, got %d", len(res.ShippingOptions))
	}
	within, outside := res.ShippingOptions[0], res.ShippingOptions[1]
	if within.Zone != "within_lagos" || within.Total.Amount != 55750 {
		t.Errorf("within_lagos total = %+v, want 55750", within.Total)
	}
	if outside.Zone != "outside_lagos" || outside.Total.Amount != 58750 {
		t.Errorf("outside_lagos total = %+v, want 58750", outside.Total)
	}

	if len(res.Products) != 1 {
		t.Fatalf("expected 1 product line, got %d", len(res.Products))
	}
	line := res.Products[0]
	if line.Name != "Oversized Tee" || line.Variant != "md" || line.TotalPrice != 50000 {
		t.Fatalf("unexpected product line: %+v", line)
	}
}

func TestCalculateCheckout_USDBucket(t *testing.T) {
	variants, products, prices := checkoutFixture()
	svc := service.NewCheckoutService(variants, products, prices, testResolver(), zap.NewNop())

	// CA is in the USD zone, so it buys at US prices with zero tax
	res, err := svc.CalculateCheckout(context.Background(), service.CheckoutInput{
		Items:   []service.CheckoutItem{{VariantID: 7, Quantity: 1}},
		Country: "CA",
	})
	if err != nil {
		t.Fatalf("CalculateCheckout: %v", err)
	}
	if res.Total.Amount != 30 || res.Total.Currency != "USD" {
		t.Fatalf("subtotal = %+v, want 30 USD", res.Total)
	}
	if res.Tax.Amount != 0 {
		t.Fatalf("tax = %v, want 0", res.Tax.Amount)
	}
	if len(res.ShippingOptions) != 1 || res.ShippingOptions[0].Total.Amount != 65 {
		t.Fatalf("unexpected shipping options: %+v", res.ShippingOptions)
	}
}

func TestCalculateCheckout_InsufficientStock(t *testing.T) {
	variants, products, prices := checkoutFixture()
	svc := service.NewCheckoutService(variants, products, prices, testResolver(), zap.NewNop())

	_, err := svc.CalculateCheckout(context.Background(), service.CheckoutInput{
		Items:   []service.CheckoutItem{{VariantID: 7, Quantity: 11}},
		Country: "NG",
	})
	if !errors.Is(err, service.ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestCalculateCheckout_VariantNotFound(t *testing.T) {
	variants, products, prices := checkoutFixture()
	svc := service.NewCheckoutService(variants, products, prices, testResolver(), zap.NewNop())

	_, err := svc.CalculateCheckout(context.Background(), service.CheckoutInput{
		Items:   []service.CheckoutItem{{VariantID: 999, Quantity: 1}},
		Country: "NG",
	})
	if !errors.Is(err, service.ErrVariantNotFound) {
		t.Fatalf("expected ErrVariantNotFound, got %v", err)
	}
}

func TestCalculateCheckout_PriceNotFound(t *testing.T) {
	variants, products, _ := checkoutFixture()
	prices := &MockPriceRepo{}
	svc := service.NewCheckoutService(variants, products, prices, testResolver(), zap.NewNop())

	_, err := svc.CalculateCheckout(context.Background(), service.CheckoutInput{
		Items:   []service.CheckoutItem{{VariantID: 7, Quantity: 1}},
		Country: "NG",
	})
	if !errors.Is(err, service.ErrPriceNotFound) {
		t.Fatalf("expected ErrPriceNotFound, got %v", err)
	}
}

func TestCalculateCheckout_InputGuards(t *testing.T) {
	variants, products, prices := checkoutFixture()
	svc := service.NewCheckoutService(variants, products, prices, testResolver(), zap.NewNop())
	ctx := context.Background()

	_, err := svc.CalculateCheckout(ctx, service.CheckoutInput{Country: "NG"})
	if !errors.Is(err, service.ErrEmptyItems) {
		t.Fatalf("expected ErrEmptyItems, got %v", err)
	}

	_, err = svc.CalculateCheckout(ctx, service.CheckoutInput{
		Items: []service.CheckoutItem{{VariantID: 7, Quantity: 1}},
	})
	if !errors.Is(err, service.ErrCountryRequired) {
		t.Fatalf("expected ErrCountryRequired, got %v", err)
	}

	_, err = svc.CalculateCheckout(ctx, service.CheckoutInput{
		Items:   []service.CheckoutItem{{VariantID: 7, Quantity: 0}},
		Country: "NG",
	})
	if !errors.Is(err, service.ErrQuantityInvalid) {
		t.Fatalf("expected ErrQuantityInvalid, got %v", err)
	}
}
