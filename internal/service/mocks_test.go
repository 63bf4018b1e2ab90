package service_test

import (
	"context"

	"storefront-api/internal/models"
	"storefront-api/internal/repository"
	"storefront-api/internal/service"
	"storefront-api/internal/shipping"

	"github.com/google/uuid"
)

// MockVariantRepo
type MockVariantRepo struct {
	GetByIDFunc           func(ctx context.Context, id int64) (*models.ProductVariant, error)
	GetByIDsFunc          func(ctx context.Context, ids []int64) ([]models.ProductVariant, error)
	DecrementQuantityFunc func(ctx context.Context, id int64, qty int) error
}

func (m *MockVariantRepo) GetByID(ctx context.Context, id int64) (*models.ProductVariant, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockVariantRepo) GetByIDs(ctx context.Context, ids []int64) ([]models.ProductVariant, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockVariantRepo) DecrementQuantity(ctx context.Context, id int64, qty int) error {
	if m.DecrementQuantityFunc != nil {
		return m.DecrementQuantityFunc(ctx, id, qty)
	}
	return nil
}

// MockProductRepo
type MockProductRepo struct {
	CreateFunc                  func(ctx context.Context, p *models.Product) error
	GetByIDFunc                 func(ctx context.Context, id uuid.UUID) (*models.Product, error)
	ListFunc                    func(ctx context.Context) ([]models.Product, error)
	ListByCountryFunc           func(ctx context.Context, country string) ([]models.Product, error)
	DecrementTotalInventoryFunc func(ctx context.Context, id uuid.UUID, qty int) error
}

func (m *MockProductRepo) Create(ctx context.Context, p *models.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *MockProductRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockProductRepo) List(ctx context.Context) ([]models.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func (m *MockProductRepo) ListByCountry(ctx context.Context, country string) ([]models.Product, error) {
	if m.ListByCountryFunc != nil {
		return m.ListByCountryFunc(ctx, country)
	}
	return nil, nil
}

func (m *MockProductRepo) DecrementTotalInventory(ctx context.Context, id uuid.UUID, qty int) error {
	if m.DecrementTotalInventoryFunc != nil {
		return m.DecrementTotalInventoryFunc(ctx, id, qty)
	}
	return nil
}

// MockPriceRepo
type MockPriceRepo struct {
	GetForProductCountryFunc func(ctx context.Context, productID uuid.UUID, country string) (*models.ContextualPrice, error)
}

func (m *MockPriceRepo) GetForProductCountry(ctx context.Context, productID uuid.UUID, country string) (*models.ContextualPrice, error) {
	if m.GetForProductCountryFunc != nil {
		return m.GetForProductCountryFunc(ctx, productID, country)
	}
	return nil, nil
}

// MockOrderRepo
type MockOrderRepo struct {
	CreateFunc              func(ctx context.Context, o *models.Order) error
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*models.Order, error)
	GetByOrderNumberFunc    func(ctx context.Context, orderNumber string) (*models.Order, error)
	UpdatePaymentResultFunc func(ctx context.Context, orderNumber string, status models.OrderStatus, paymentStatus models.PaymentStatus) error
	SetTrackingFunc         func(ctx context.Context, orderNumber, trackingNumber string) error
}

func (m *MockOrderRepo) Create(ctx context.Context, o *models.Order) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, o)
	}
	return nil
}

func (m *MockOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockOrderRepo) GetByOrderNumber(ctx context.Context, orderNumber string) (*models.Order, error) {
	if m.GetByOrderNumberFunc != nil {
		return m.GetByOrderNumberFunc(ctx, orderNumber)
	}
	return nil, nil
}

func (m *MockOrderRepo) UpdatePaymentResult(ctx context.Context, orderNumber string, status models.OrderStatus, paymentStatus models.PaymentStatus) error {
	if m.UpdatePaymentResultFunc != nil {
		return m.UpdatePaymentResultFunc(ctx, orderNumber, status, paymentStatus)
	}
	return nil
}

func (m *MockOrderRepo) SetTracking(ctx context.Context, orderNumber, trackingNumber string) error {
	if m.SetTrackingFunc != nil {
		return m.SetTrackingFunc(ctx, orderNumber, trackingNumber)
	}
	return nil
}

// MockIntentRepo
type MockIntentRepo struct {
	CreateFunc         func(ctx context.Context, pi *models.PaymentIntent) error
	GetByTxRefFunc     func(ctx context.Context, txRef string) (*models.PaymentIntent, error)
	MarkProcessingFunc func(ctx context.Context, txRef string) (bool, error)
	ResetToPendingFunc func(ctx context.Context, txRef string) (bool, error)
	CompleteFunc       func(ctx context.Context, txRef string, gatewayTransactionID int64) error
	FailFunc           func(ctx context.Context, txRef string) error
	WithTxFunc         func(ctx context.Context, fn func(intents repository.PaymentIntentRepo, orders repository.OrderRepo, products repository.ProductRepo, variants repository.VariantRepo) error) error
}

func (m *MockIntentRepo) Create(ctx context.Context, pi *models.PaymentIntent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, pi)
	}
	return nil
}

func (m *MockIntentRepo) GetByTxRef(ctx context.Context, txRef string) (*models.PaymentIntent, error) {
	if m.GetByTxRefFunc != nil {
		return m.GetByTxRefFunc(ctx, txRef)
	}
	return nil, nil
}

func (m *MockIntentRepo) MarkProcessing(ctx context.Context, txRef string) (bool, error) {
	if m.MarkProcessingFunc != nil {
		return m.MarkProcessingFunc(ctx, txRef)
	}
	return true, nil
}

func (m *MockIntentRepo) ResetToPending(ctx context.Context, txRef string) (bool, error) {
	if m.ResetToPendingFunc != nil {
		return m.ResetToPendingFunc(ctx, txRef)
	}
	return true, nil
}

func (m *MockIntentRepo) Complete(ctx context.Context, txRef string, gatewayTransactionID int64) error {
	if m.CompleteFunc != nil {
		return m.CompleteFunc(ctx, txRef, gatewayTransactionID)
	}
	return nil
}

func (m *MockIntentRepo) Fail(ctx context.Context, txRef string) error {
	if m.FailFunc != nil {
		return m.FailFunc(ctx, txRef)
	}
	return nil
}

func (m *MockIntentRepo) WithTx(ctx context.Context, fn func(intents repository.PaymentIntentRepo, orders repository.OrderRepo, products repository.ProductRepo, variants repository.VariantRepo) error) error {
	if m.WithTxFunc != nil {
		return m.WithTxFunc(ctx, fn)
	}
	return fn(m, &MockOrderRepo{}, &MockProductRepo{}, &MockVariantRepo{})
}

// MockGateway
type MockGateway struct {
	CreatePaymentFunc     func(ctx context.Context, req service.CreatePaymentRequest) (service.CreatePaymentResult, error)
	VerifyTransactionFunc func(ctx context.Context, transactionID int64) (service.GatewayTransaction, error)
}

func (m *MockGateway) CreatePayment(ctx context.Context, req service.CreatePaymentRequest) (service.CreatePaymentResult, error) {
	if m.CreatePaymentFunc != nil {
		return m.CreatePaymentFunc(ctx, req)
	}
	return service.CreatePaymentResult{Link: "https://pay.example/link"}, nil
}

func (m *MockGateway) VerifyTransaction(ctx context.Context, transactionID int64) (service.GatewayTransaction, error) {
	if m.VerifyTransactionFunc != nil {
		return m.VerifyTransactionFunc(ctx, transactionID)
	}
	return service.GatewayTransaction{}, nil
}

// MockEventBus
type MockEventBus struct {
	PublishOrderConfirmedFunc func(ctx context.Context, e service.OrderConfirmedEvent) error
	PublishOrderShippedFunc   func(ctx context.Context, e service.OrderShippedEvent) error
}

func (m *MockEventBus) PublishOrderConfirmed(ctx context.Context, e service.OrderConfirmedEvent) error {
	if m.PublishOrderConfirmedFunc != nil {
		return m.PublishOrderConfirmedFunc(ctx, e)
	}
	return nil
}

func (m *MockEventBus) PublishOrderShipped(ctx context.Context, e service.OrderShippedEvent) error {
	if m.PublishOrderShippedFunc != nil {
		return m.PublishOrderShippedFunc(ctx, e)
	}
	return nil
}

// MockPaymentService
type MockPaymentService struct {
	InitiatePaymentFunc func(ctx context.Context, in service.InitiatePaymentInput) (*service.InitiatePaymentResult, error)
	VerifyPaymentFunc   func(ctx context.Context, in service.VerifyPaymentInput) (*service.VerifyPaymentResult, error)
	ShipOrderFunc       func(ctx context.Context, in service.ShipOrderInput) (*models.Order, error)
}

func (m *MockPaymentService) InitiatePayment(ctx context.Context, in service.InitiatePaymentInput) (*service.InitiatePaymentResult, error) {
	if m.InitiatePaymentFunc != nil {
		return m.InitiatePaymentFunc(ctx, in)
	}
	return &service.InitiatePaymentResult{Link: "https://pay.example/link", TxRef: "storefront-test"}, nil
}

func (m *MockPaymentService) VerifyPayment(ctx context.Context, in service.VerifyPaymentInput) (*service.VerifyPaymentResult, error) {
	if m.VerifyPaymentFunc != nil {
		return m.VerifyPaymentFunc(ctx, in)
	}
	return &service.VerifyPaymentResult{Status: "successful", Success: true}, nil
}

func (m *MockPaymentService) ShipOrder(ctx context.Context, in service.ShipOrderInput) (*models.Order, error) {
	if m.ShipOrderFunc != nil {
		return m.ShipOrderFunc(ctx, in)
	}
	return nil, nil
}

// testResolver is backed by the real rate table so zone costs in tests
// match production behavior.
func testResolver() *shipping.Resolver {
	r, err := shipping.NewResolver()
	if err != nil {
		panic(err)
	}
	return r
}
