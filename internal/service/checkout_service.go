package service

import (
	"context"
	"fmt"
	"strings"

	"storefront-api/internal/repository"

	"go.uber.org/zap"
)

type checkoutService struct {
	variants repository.VariantRepo
	products repository.ProductRepo
	prices   repository.ContextualPriceRepo
	shipping ShippingResolver
	log      *zap.Logger
}

func NewCheckoutService(
	variants repository.VariantRepo,
	products repository.ProductRepo,
	prices repository.ContextualPriceRepo,
	shipping ShippingResolver,
	log *zap.Logger,
) CheckoutService {
	return &checkoutService{
		variants: variants,
		products: products,
		prices:   prices,
		shipping: shipping,
		log:      log,
	}
}

type calculatedItem struct {
	productName string
	variantName string
	quantity    int
	unitPrice   float64
	lineTotal   float64
	currency    string
}

func (s *checkoutService) CalculateCheckout(ctx context.Context, in CheckoutInput) (*CheckoutResult, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}
	country := strings.ToUpper(strings.TrimSpace(in.Country))
	if country == "" {
		return nil, ErrCountryRequired
	}

	calculated, err := s.validateAndCalculateItems(ctx, in.Items, country)
	if err != nil {
		return nil, err
	}

	priced := make([]PricedItem, 0, len(calculated))
	for _, it := range calculated {
		priced = append(priced, PricedItem{
			UnitPrice: it.unitPrice,
			Quantity:  it.quantity,
			LineTotal: it.lineTotal,
			Currency:  it.currency,
		})
	}

	subtotal, err := CalculateSubtotal(priced)
	if err != nil {
		return nil, err
	}

	tax := CalculateTax(country, subtotal)
	zones := s.shipping.ZonesFor(country)

	options := make([]ShippingQuote, 0, len(zones.Zones))
	for _, z := range zones.Zones {
		options = append(options, ShippingQuote{
			Zone:           z.Zone,
			ZoneName:       z.ZoneName,
			States:         z.States,
			ShippingMethod: z.ShippingMethod,
			Total: Money{
				Amount:   Round2(subtotal.Amount + z.ShippingMethod.Cost + tax.Amount),
				Currency: subtotal.Currency,
			},
		})
	}

	products := make([]CheckoutProduct, 0, len(calculated))
	for _, it := range calculated {
		products = append(products, CheckoutProduct{
			Name:       it.productName,
			Variant:    it.variantName,
			Currency:   it.currency,
			UnitPrice:  it.unitPrice,
			Quantity:   it.quantity,
			TotalPrice: it.lineTotal,
		})
	}

	return &CheckoutResult{
		Total:           subtotal,
		Tax:             tax,
		ShippingOptions: options,
		Products:        products,
	}, nil
}

// priceBucket maps an arbitrary country to the contextual-price buckets
// the catalog is priced in: members of the USD zone buy at US prices,
// members of the GBP zone at GB prices, everyone else at NG prices.
func (s *checkoutService) priceBucket(country string) string {
	for _, c := range s.shipping.CountriesInZone("international_usd") {
		if c == country {
			return "US"
		}
	}
	for _, c := range s.shipping.CountriesInZone("international_gbp") {
		if c == country {
			return "GB"
		}
	}
	return "NG"
}

func (s *checkoutService) validateAndCalculateItems(ctx context.Context, items []CheckoutItem, country string) ([]calculatedItem, error) {
	bucket := s.priceBucket(country)

	calculated := make([]calculatedItem, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, fmt.Errorf("%w: variant %d", ErrQuantityInvalid, item.VariantID)
		}

		variant, err := s.variants.GetByID(ctx, item.VariantID)
		if err != nil {
			return nil, err
		}
		if variant == nil {
			return nil, fmt.Errorf("%w: id %d", ErrVariantNotFound, item.VariantID)
		}

		product, err := s.products.GetByID(ctx, variant.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: id %s", ErrProductNotFound, variant.ProductID)
		}

		if variant.Quantity < item.Quantity {
			return nil, fmt.Errorf("%w: %q has %d available, %d requested",
				ErrInsufficientStock, product.Title, variant.Quantity, item.Quantity)
		}

		price, err := s.prices.GetForProductCountry(ctx, variant.ProductID, bucket)
		if err != nil {
			return nil, err
		}
		if price == nil {
			return nil, fmt.Errorf("%w: product %s in country %s", ErrPriceNotFound, variant.ProductID, country)
		}

		calculated = append(calculated, calculatedItem{
			productName: product.Title,
			variantName: variant.Title,
			quantity:    item.Quantity,
			unitPrice:   price.Amount,
			lineTotal:   Round2(price.Amount * float64(item.Quantity)),
			currency:    price.CurrencyCode,
		})
	}

	return calculated, nil
}
