package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"storefront-api/internal/models"
	"storefront-api/internal/repository"

	"github.com/nanorand/nanorand"
	"go.uber.org/zap"
)

const defaultCurrency = "NGN"

type orderService struct {
	orders      repository.OrderRepo
	payments    PaymentService
	frontendURL string
	log         *zap.Logger
	now         func() time.Time
}

func NewOrderService(orders repository.OrderRepo, payments PaymentService, frontendURL string, log *zap.Logger) OrderService {
	return &orderService{
		orders:      orders,
		payments:    payments,
		frontendURL: frontendURL,
		log:         log,
		now:         time.Now,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, in CreateOrderInput) (*CreateOrderResponse, error) {
	if len(in.Items) == 0 {
		return nil, ErrEmptyItems
	}
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return nil, fmt.Errorf("%w: variant %d", ErrQuantityInvalid, it.VariantID)
		}
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	orderNumber, err := newOrderNumber()
	if err != nil {
		return nil, err
	}

	fullName := strings.TrimSpace(in.Customer.FirstName + " " + in.Customer.LastName)
	now := s.now()

	items := make([]models.OrderLineItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, models.OrderLineItem{
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

	order := &models.Order{
		OrderNumber:    orderNumber,
		Status:         models.OrderStatusPending,
		PaymentStatus:  models.PaymentStatusPending,
		Subtotal:       in.Subtotal,
		TaxPercentage:  in.TaxPercentage,
		TaxAmount:      in.TaxAmount,
		ShippingType:   in.ShippingType,
		ShippingAmount: in.ShippingAmount,
		OrderTotal:     in.OrderTotal,
		Currency:       currency,
		CustomerDetails: models.CustomerDetails{
			Email: in.Customer.Email,
			Name:  fullName,
			Phone: in.Customer.Phone,
		},
		ProductDetails: models.ProductDetails{Items: items},
		ShippingDetails: models.ShippingDetails{
			Address:    in.Shipping.Address,
			City:       in.Shipping.City,
			State:      in.Shipping.State,
			PostalCode: in.Shipping.PostalCode,
			Country:    in.Shipping.Country,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, err
	}

	// If initiation fails the order stays Pending with no payment link;
	// /payments/initialize can be called again for this order number.
	initiated, err := s.payments.InitiatePayment(ctx, InitiatePaymentInput{
		Amount:      in.OrderTotal,
		Currency:    currency,
		RedirectURL: s.frontendURL + "/orders/verify-payment",
		OrderNumber: orderNumber,
		Customer: GatewayCustomer{
			Email:       in.Customer.Email,
			PhoneNumber: in.Customer.Phone,
			Name:        fullName,
		},
	})
	if err != nil {
		s.log.Error("payment initiation failed for created order",
			zap.String("order_number", orderNumber), zap.Error(err))
		return nil, err
	}

	return &CreateOrderResponse{
		Message:     "Order created successfully",
		FullName:    fullName,
		OrderID:     order.ID,
		OrderNumber: orderNumber,
		PaymentLink: initiated.Link,
	}, nil
}

func newOrderNumber() (string, error) {
	n, err := nanorand.Gen(10)
	if err != nil {
		return "", fmt.Errorf("generate order number: %w", err)
	}
	return "ORD-" + n, nil
}
