package dto

import "storefront-api/internal/service"

// CheckoutItemRequest is one line of a cart being priced.
type CheckoutItemRequest struct {
	ProductVariantID int64 `json:"productVariantId" binding:"required"`
	Quantity         int   `json:"quantity" binding:"required,min=1"`
}

// LocationRequest carries the destination used for shipping and tax.
type LocationRequest struct {
	Country string `json:"country" binding:"required"`
}

// CheckoutCalculateRequest prices a cart for a destination country.
type CheckoutCalculateRequest struct {
	Items    []CheckoutItemRequest `json:"items" binding:"required,min=1,dive"`
	Location LocationRequest       `json:"location" binding:"required"`
}

func (r CheckoutCalculateRequest) ToInput() service.CheckoutInput {
	items := make([]service.CheckoutItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, service.CheckoutItem{VariantID: it.ProductVariantID, Quantity: it.Quantity})
	}
	return service.CheckoutInput{Items: items, Country: r.Location.Country}
}
