package dto

import "storefront-api/internal/service"

// CustomerInfoRequest is the buyer snapshot stored on the order.
type CustomerInfoRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
}

// OrderItemRequest is a purchased line frozen at checkout prices.
type OrderItemRequest struct {
	ProductID   string  `json:"productId" binding:"required"`
	VariantID   int64   `json:"variantId" binding:"required"`
	ProductName string  `json:"productName" binding:"required"`
	VariantName string  `json:"variantName"`
	Quantity    int     `json:"quantity" binding:"required,min=1"`
	UnitPrice   float64 `json:"unitPrice" binding:"required,gt=0"`
	LineTotal   float64 `json:"lineTotal" binding:"required,gt=0"`
	Image       string  `json:"image"`
}

// ShippingAddressRequest is the delivery address snapshot.
type ShippingAddressRequest struct {
	Address    string `json:"address" binding:"required"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country" binding:"required"`
}

// CreateOrderRequest records an order with the totals the client
// confirmed at checkout.
type CreateOrderRequest struct {
	Subtotal       float64 `json:"subtotal" binding:"required,gt=0"`
	TaxPercentage  float64 `json:"taxPercentage"`
	TaxAmount      float64 `json:"taxAmount"`
	ShippingType   string  `json:"shippingType" binding:"required"`
	ShippingAmount float64 `json:"shippingAmount"`
	OrderTotal     float64 `json:"orderTotal" binding:"required,gt=0"`
	Currency       string  `json:"currency" binding:"required,len=3"`

	Customer CustomerInfoRequest    `json:"customer" binding:"required"`
	Items    []OrderItemRequest     `json:"items" binding:"required,min=1,dive"`
	Shipping ShippingAddressRequest `json:"shipping" binding:"required"`
}

func (r CreateOrderRequest) ToInput() service.CreateOrderInput {
	items := make([]service.OrderItemInput, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, service.OrderItemInput{
			ProductID:   it.ProductID,
			VariantID:   it.VariantID,
			ProductName: it.ProductName,
			VariantName: it.VariantName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
			Image:       it.Image,
		})
	}
	return service.CreateOrderInput{
		Subtotal:       r.Subtotal,
		TaxPercentage:  r.TaxPercentage,
		TaxAmount:      r.TaxAmount,
		ShippingType:   r.ShippingType,
		ShippingAmount: r.ShippingAmount,
		OrderTotal:     r.OrderTotal,
		Currency:       r.Currency,
		Customer: service.CustomerInfo{
			FirstName: r.Customer.FirstName,
			LastName:  r.Customer.LastName,
			Email:     r.Customer.Email,
			Phone:     r.Customer.Phone,
		},
		Items: items,
		Shipping: service.ShippingInfo{
			Address:    r.Shipping.Address,
			City:       r.Shipping.City,
			State:      r.Shipping.State,
			PostalCode: r.Shipping.PostalCode,
			Country:    r.Shipping.Country,
		},
	}
}
