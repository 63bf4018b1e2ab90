package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
	PaymentStatusFailed  PaymentStatus = "Failed"
)

// PaymentIntentStatus never regresses: Pending -> processing -> Completed|Failed.
type PaymentIntentStatus string

const (
	PaymentIntentPending    PaymentIntentStatus = "Pending"
	PaymentIntentProcessing PaymentIntentStatus = "processing"
	PaymentIntentCompleted  PaymentIntentStatus = "Completed"
	PaymentIntentFailed     PaymentIntentStatus = "Failed"
)

type Product struct {
	ID             uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Title          string    `gorm:"type:text;not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	TotalInventory int       `gorm:"not null;default:0" json:"totalInventory"`

	Variants         []ProductVariant   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"variants,omitempty"`
	Media            []ProductMedia     `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"media,omitempty"`
	Metafields       []ProductMetafield `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"metafields,omitempty"`
	ContextualPrices []ContextualPrice  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"contextualPrices,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}

func (Product) TableName() string { return "products" }

type ProductVariant struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string    `gorm:"type:text;not null" json:"title"` // size label: xs, sm, md, ...
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity  int       `gorm:"not null;default:0" json:"quantity"` // on-hand stock, >= 0
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"productId"`
}

func (ProductVariant) TableName() string { return "product_variants" }

// ContextualPrice holds the unit price of a product for one country bucket.
// At most one row per (product_id, country).
type ContextualPrice struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Amount       float64   `gorm:"type:decimal(10,2);not null" json:"amount"`
	CurrencyCode string    `gorm:"type:char(3);not null" json:"currencyCode"`
	Country      string    `gorm:"type:char(2);not null;uniqueIndex:ux_contextual_prices_product_country" json:"country"`
	ProductID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:ux_contextual_prices_product_country" json:"productId"`
}

func (ContextualPrice) TableName() string { return "contextual_prices" }

type ProductMedia struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	URL       string    `gorm:"type:text;not null" json:"url"`
	Type      string    `gorm:"type:text;default:'image'" json:"type"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"productId"`
}

func (ProductMedia) TableName() string { return "product_media" }

type ProductMetafield struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Key       string    `gorm:"type:text;not null" json:"key"` // size_guide, model_height, model_size
	Value     string    `gorm:"type:text;not null" json:"value"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index" json:"productId"`
}

func (ProductMetafield) TableName() string { return "product_metafields" }

// Snapshot types embedded in orders as jsonb. Copies, not references:
// historical orders must not change when the catalog does.

type CustomerDetails struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type OrderLineItem struct {
	ProductID   string  `json:"productId"`
	VariantID   int64   `json:"variantId"`
	ProductName string  `json:"productName"`
	VariantName string  `json:"variantName"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	LineTotal   float64 `json:"lineTotal"`
	Image       string  `json:"image,omitempty"`
}

type ProductDetails struct {
	Items []OrderLineItem `json:"items"`
}

type ShippingDetails struct {
	Address    string `json:"address"`
	City       string `json:"city,omitempty"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country"`
}

type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	OrderNumber string    `gorm:"type:text;not null;uniqueIndex" json:"orderNumber"`

	Status        OrderStatus   `gorm:"type:text;not null;default:'Pending';index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:text;not null;default:'Pending'" json:"paymentStatus"`

	Subtotal       float64 `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	TaxPercentage  float64 `gorm:"type:decimal(10,2);not null;default:0" json:"taxPercentage"`
	TaxAmount      float64 `gorm:"type:decimal(10,2);not null;default:0" json:"taxAmount"`
	ShippingType   string  `gorm:"type:text;not null" json:"shippingType"`
	ShippingAmount float64 `gorm:"type:decimal(10,2);not null;default:0" json:"shippingAmount"`
	OrderTotal     float64 `gorm:"type:decimal(10,2);not null" json:"orderTotal"`
	Currency       string  `gorm:"type:char(3);not null;default:'NGN'" json:"currency"`

	CustomerDetails CustomerDetails `gorm:"type:jsonb;serializer:json" json:"customerDetails"`
	ProductDetails  ProductDetails  `gorm:"type:jsonb;serializer:json" json:"productDetails"`
	ShippingDetails ShippingDetails `gorm:"type:jsonb;serializer:json" json:"shippingDetails"`

	TrackingNumber *string `gorm:"type:text" json:"trackingNumber,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now();index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}

func (Order) TableName() string { return "orders" }

// PaymentIntent pins the amount and currency we expect the gateway to
// confirm. Correlated to the order by order_number, not a FK.
type PaymentIntent struct {
	ID     uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TxRef  string              `gorm:"type:text;not null;uniqueIndex" json:"txRef"`
	Status PaymentIntentStatus `gorm:"type:text;not null;default:'Pending';index" json:"status"`

	ExpectedAmount   float64 `gorm:"type:decimal(10,2);not null" json:"expectedAmount"`
	ExpectedCurrency string  `gorm:"type:char(3);not null" json:"expectedCurrency"`

	// set only when the gateway confirms the transaction
	GatewayTransactionID *int64 `gorm:"type:bigint" json:"gatewayTransactionId,omitempty"`

	OrderNumber string `gorm:"type:text;not null;index" json:"orderNumber"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updatedAt"`
}

func (PaymentIntent) TableName() string { return "payment_intents" }
