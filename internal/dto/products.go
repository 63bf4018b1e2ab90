package dto

import "storefront-api/internal/models"

// CreateVariantRequest is one sellable variation of a product.
type CreateVariantRequest struct {
	Title    string  `json:"title" binding:"required"`
	Price    float64 `json:"price" binding:"required,gt=0"`
	Quantity int     `json:"quantity" binding:"min=0"`
}

// CreateContextualPriceRequest is a per-country price for the product.
type CreateContextualPriceRequest struct {
	Country  string  `json:"country" binding:"required,len=2"`
	Currency string  `json:"currency" binding:"required,len=3"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
}

// CreateMediaRequest attaches an image to the product.
type CreateMediaRequest struct {
	URL      string `json:"url" binding:"required,url"`
	Type     string `json:"type" binding:"omitempty,oneof=image video"`
	Position int    `json:"position"`
}

// CreateMetafieldRequest is an arbitrary key/value annotation.
type CreateMetafieldRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// CreateProductRequest adds a catalog product with variants and prices.
type CreateProductRequest struct {
	Title            string                         `json:"title" binding:"required"`
	Description      string                         `json:"description"`
	Variants         []CreateVariantRequest         `json:"variants" binding:"required,min=1,dive"`
	ContextualPrices []CreateContextualPriceRequest `json:"contextualPrices" binding:"omitempty,dive"`
	Media            []CreateMediaRequest           `json:"media" binding:"omitempty,dive"`
	Metafields       []CreateMetafieldRequest       `json:"metafields" binding:"omitempty,dive"`
}

func (r CreateProductRequest) ToModel() *models.Product {
	p := &models.Product{
		Title:       r.Title,
		Description: r.Description,
	}
	for _, v := range r.Variants {
		p.Variants = append(p.Variants, models.ProductVariant{
			Title:    v.Title,
			Price:    v.Price,
			Quantity: v.Quantity,
		})
	}
	for _, cp := range r.ContextualPrices {
		p.ContextualPrices = append(p.ContextualPrices, models.ContextualPrice{
			Country:      cp.Country,
			CurrencyCode: cp.Currency,
			Amount:       cp.Amount,
		})
	}
	for _, m := range r.Media {
		p.Media = append(p.Media, models.ProductMedia{
			URL:      m.URL,
			Type:     m.Type,
			Position: m.Position,
		})
	}
	for _, mf := range r.Metafields {
		p.Metafields = append(p.Metafields, models.ProductMetafield{
			Key:   mf.Key,
			Value: mf.Value,
		})
	}
	return p
}
