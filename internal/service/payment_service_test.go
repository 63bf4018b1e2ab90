package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"storefront-api/internal/models"
	"storefront-api/internal/repository"
	"storefront-api/internal/service"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const testTxRef = "storefront-abc123"

func pendingIntent() *models.PaymentIntent {
	return &models.PaymentIntent{
		TxRef:            testTxRef,
		Status:           models.PaymentIntentPending,
		ExpectedAmount:   55750,
		ExpectedCurrency: "NGN",
		OrderNumber:      "ORD-1234567890",
	}
}

func paidOrder() *models.Order {
	return &models.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-1234567890",
		Status:      models.OrderStatusPending,
		OrderTotal:  55750,
		Currency:    "NGN",
		CustomerDetails: models.CustomerDetails{
			Email: "buyer@example.com",
			Name:  "Ada Obi",
		},
		ProductDetails: models.ProductDetails{
			Items: []models.OrderLineItem{
				{ProductID: uuid.NewString(), VariantID: 7, Quantity: 2, UnitPrice: 25000, LineTotal: 50000},
			},
		},
	}
}

func TestInitiatePayment(t *testing.T) {
	var created *models.PaymentIntent
	intents := &MockIntentRepo{
		CreateFunc: func(ctx context.Context, pi *models.PaymentIntent) error {
			created = pi
			return nil
		},
	}
	var gotReq service.CreatePaymentRequest
	gateway := &MockGateway{
		CreatePaymentFunc: func(ctx context.Context, req service.CreatePaymentRequest) (service.CreatePaymentResult, error) {
			gotReq = req
			return service.CreatePaymentResult{Link: "https://pay.example/hosted"}, nil
		},
	}
	svc := service.NewPaymentService(intents, &MockOrderRepo{}, gateway, nil, zap.NewNop())

	res, err := svc.InitiatePayment(context.Background(), service.InitiatePaymentInput{
		Amount:      55750.004,
		OrderNumber: "ORD-1234567890",
		RedirectURL: "https://shop.example/orders/verify-payment",
		Customer:    service.GatewayCustomer{Email: "buyer@example.com", Name: "Ada Obi"},
	})
	if err != nil {
		t.Fatalf("InitiatePayment: %v", err)
	}

	if created == nil {
		t.Fatal("intent was not persisted")
	}
	if created.Status != models.PaymentIntentPending {
		t.Errorf("intent status = %q, want Pending", created.Status)
	}
	if created.ExpectedAmount != 55750 {
		t.Errorf("expected amount = %v, want rounded 55750", created.ExpectedAmount)
	}
	if created.ExpectedCurrency != "NGN" {
		t.Errorf("expected currency = %q, want default NGN", created.ExpectedCurrency)
	}
	if !strings.HasPrefix(created.TxRef, "storefront-") {
		t.Errorf("tx_ref = %q, want storefront- prefix", created.TxRef)
	}

	if gotReq.TxRef != created.TxRef {
		t.Errorf("gateway tx_ref = %q, intent tx_ref = %q", gotReq.TxRef, created.TxRef)
	}
	if res.Link != "https://pay.example/hosted" || res.TxRef != created.TxRef {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestInitiatePayment_GatewayError(t *testing.T) {
	intents := &MockIntentRepo{}
	gateway := &MockGateway{
		CreatePaymentFunc: func(ctx context.Context, req service.CreatePaymentRequest) (service.CreatePaymentResult, error) {
			return service.CreatePaymentResult{}, errors.New("boom")
		},
	}
	svc := service.NewPaymentService(intents, &MockOrderRepo{}, gateway, nil, zap.NewNop())

	_, err := svc.InitiatePayment(context.Background(), service.InitiatePaymentInput{
		Amount:      100,
		OrderNumber: "ORD-1",
	})
	if !errors.Is(err, service.ErrPaymentInitFailed) {
		t.Fatalf("expected ErrPaymentInitFailed, got %v", err)
	}
}

func TestVerifyPayment_IdempotentOnCompleted(t *testing.T) {
	intent := pendingIntent()
	intent.Status = models.PaymentIntentCompleted

	gatewayCalled := false
	intents := &MockIntentRepo{
		GetByTxRefFunc: func(ctx context.Context, txRef string) (*models.PaymentIntent, error) {
			return intent, nil
		},
	}
	gateway := &MockGateway{
		VerifyTransactionFunc: func(ctx context.Context, id int64) (service.GatewayTransaction, error) {
			gatewayCalled = true
			return service.GatewayTransaction{}, nil
		},
	}
	svc := service.NewPaymentService(intents, &MockOrderRepo{}, gateway, nil, zap.NewNop())

	res, err := svc.VerifyPayment(context.Background(), service.VerifyPaymentInput{TxRef: testTxRef, TransactionID: 42})
	if err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}
	if !res.Success || res.Status != "successful" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if gatewayCalled {
		t.Fatal("provider must not be contacted for a completed intent")
	}
}

func TestVerifyPayment_RejectsProcessingAndFailed(t *testing.T) {
	intent := pendingIntent()
	intents := &MockIntentRepo{
		GetByTxRefFunc: func(ctx context.Context, txRef string) (*models.PaymentIntent, error) {
			return intent, nil
		},
	}
	svc := service.NewPaymentService(intents, &MockOrderRepo{}, &MockGateway{}, nil, zap.NewNop())
	ctx := context.Background()

	intent.Status = models.PaymentIntentProcessing
	_, err := svc.VerifyPayment(ctx, service.VerifyPaymentInput{TxRef: testTxRef})
	if !errors.Is(err, service.ErrPaymentInProcessing) {
		t.Fatalf("expected ErrPaymentInProcessing, got %v", err)
	}

	intent.Status = models.PaymentIntentFailed
	_, err = svc.VerifyPayment(ctx, service.VerifyPaymentInput{TxRef: testTxRef})
	if !errors.Is(err, service.ErrPaymentAlreadyFailed) {
		t.Fatalf("expected ErrPaymentAlreadyFailed, got %v", err)
	}
}

func TestVerifyPayment_UnknownTxRef(t *testing.T) {
	svc := service.NewPaymentService(&MockIntentRepo{}, &MockOrderRepo{}, &MockGateway{}, nil, zap.NewNop())

	_, err := svc.VerifyPayment(context.Background(), service.VerifyPaymentInput{TxRef: "storefront-missing"})
	if !errors.Is(err, service.ErrPaymentIntentNotFound) {
		t.Fatalf("expected ErrPaymentIntentNotFound, got %v", err)
	}
}

func TestVerifyPayment_LostClaim(t *testing.T) {
	intents := &MockIntentRepo{
		GetByTxRefFunc: func(ctx context.Context, txRef string) (*models.PaymentIntent, error) {
			return pendingIntent(), nil
		},
		MarkProcessingFunc: func(ctx context.Context, txRef string) (bool, error) {
			// another verifier won the CAS between the read and the claim
			return false, nil
		},
	}
	svc := service.NewPaymentService(intents, &MockOrderRepo{}, &MockGateway{}, nil, zap.NewNop())

	_, err := svc.VerifyPayment(context.Background(), service.VerifyPaymentInput{TxRef: testTxRef})
	if !errors.Is(err, service.ErrPaymentInProcessing) {
		t.Fatalf("expected ErrPaymentInProcessing, got %v", err)
	}
}

func TestVerifyPayment_GatewayDown_ReleasesClaim(t *testing.T) {
	released := false
	intents := &MockIntentRepo{
		GetByTxRefFunc: func(ctx context.Context, txRef string) (*models.PaymentIntent, error) {
			return pendingIntent(), nil
		},
		ResetToPendingFunc: func(ctx context.Context, txRef string) (bool, error) {
			released = true
			return true, nil
		},
	}
	gateway := &MockGateway{
		VerifyTransactionFunc: func(ctx context.Context, id int64) (service.GatewayTransaction, error) {
			return service.GatewayTransaction{}, errors.New("connection refused")
		},
	}
	svc := service.NewPaymentService(intents, &MockOrderRepo{}, gateway, nil, zap.NewNop())

	_, err := svc.VerifyPayment(context.Background(), service.VerifyPaymentInput{TxRef: testTxRef, TransactionID: 42})
	if !errors.Is(err, service.ErrGatewayUnavailable) {
		t.Fatalf("expected ErrGatewayUnavailable, got %v", err)
	}
	if !released {
		t.Fatal("processing claim was not released")
	}
}

func TestVerifyPayment_AmountMismatch_Fails(t *testing.T) {
	failed := false
	intents := &MockIntentRepo{
		GetByTxRefFunc: func(ctx context.Context, txRef string) (*models.PaymentIntent, error) {
			return pendingIntent(), nil
		},
		FailFunc: func(ctx context.Context, txRef string) error {
			failed = true
			return nil
		},
		WithTxFunc: func(ctx context.Context, fn func(repository.PaymentIntentRepo, repository.OrderRepo, repository.ProductRepo, repository.VariantRepo) error) error {
			t.Fatal("transaction must not run on mismatch")
			return nil
		},
	}
	gateway := &MockGateway{
		VerifyTransactionFunc: func(ctx context.Context, id int64) (service.GatewayTransaction, error) {
			return service.GatewayTransaction{ID: 42, TxRef: testTxRef, Amount: 100, Currency: "NGN", Status: "successful"}, nil
		},
	}
	svc := service.NewPaymentService(intents, &MockOrderRepo{}, gateway, nil, zap.NewNop())

	_, err := svc.VerifyPayment(context.Background(), service.VerifyPaymentInput{TxRef: testTxRef, TransactionID: 42})
	if !errors.Is(err, service.ErrPaymentMismatch) {
		t.Fatalf("expected ErrPaymentMismatch, got %v", err)
	}
	if !failed {
		t.Fatal("intent was not marked Failed")
	}
}

func TestVerifyPayment_MismatchFailWriteError_ReleasesClaim(t *testing.T) {
	released := false
	intents := &MockIntentRepo{
		GetByTxRefFunc: func(ctx context.Context, txRef string) (*models.PaymentIntent, error) {
			return pendingIntent(), nil
		},
		FailFunc: func(ctx context.Context, txRef string) error {
			return errors.New("connection reset")
		},
		ResetToPendingFunc: func(ctx context.Context, txRef string) (bool, error) {
			released = true
			return true, nil
		},
	}
	gateway := &MockGateway{
		VerifyTransactionFunc: func(ctx context.Context, id int64) (service.GatewayTransaction, error) {
			return service.GatewayTransaction{ID: 42, TxRef: testTxRef, Amount: 100, Currency: "NGN", Status: "successful"}, nil
		},
	}
	svc := service.NewPaymentService(intents, &MockOrderRepo{}, gateway, nil, zap.NewNop())

	_, err := svc.VerifyPayment(context.Background(), service.VerifyPaymentInput{TxRef: testTxRef, TransactionID: 42})
	if err == nil {
		t.Fatal("expected the Fail write error to surface")
	}
	if errors.Is(err, service.ErrPaymentMismatch) {
		t.Fatalf("expected the storage error, got %v", err)
	}
	if !released {
		t.Fatal("processing claim was not released")
	}
}

func TestVerifyPayment_StatusMismatch_Fails(t *testing.T) {
	intents := &MockIntentRepo{
		GetByTxRefFunc: func(ctx context.Context, txRef string) (*models.PaymentIntent, error) {
			return pendingIntent(), nil
		},
	}
	gateway := &MockGateway{
		VerifyTransactionFunc: func(ctx context.Context, id int64) (service.GatewayTransaction, error) {
			return service.GatewayTransaction{ID: 42, Amount: 55750, Currency: "NGN", Status: "pending"}, nil
		},
	}
	svc := service.NewPaymentService(intents, &MockOrderRepo{}, gateway, nil, zap.NewNop())

	_, err := svc.VerifyPayment(context.Background(), service.VerifyPaymentInput{TxRef: testTxRef, TransactionID: 42})
	if !errors.Is(err, service.ErrPaymentMismatch) {
		t.Fatalf("expected ErrPaymentMismatch, got %v", err)
	}
}

func TestVerifyPayment_Success(t *testing.T) {
	order := paidOrder()

	completed := false
	var updatedStatus models.OrderStatus
	var updatedPayment models.PaymentStatus
	variantDecrements := map[int64]int{}
	productDecrements := 0

	txIntents := &MockIntentRepo{
		CompleteFunc: func(ctx context.Context, txRef string, gatewayTransactionID int64) error {
			if gatewayTransactionID != 42 {
				t.Errorf("gateway transaction id = %d, want 42", gatewayTransactionID)
			}
			completed = true
			return nil
		},
	}
	txOrders := &MockOrderRepo{
		GetByOrderNumberFunc: func(ctx context.Context, orderNumber string) (*models.Order, error) {
			return order, nil
		},
		UpdatePaymentResultFunc: func(ctx context.Context, orderNumber string, status models.OrderStatus, paymentStatus models.PaymentStatus) error {
			updatedStatus = status
			updatedPayment = paymentStatus
			return nil
		},
	}
	txVariants := &MockVariantRepo{
		DecrementQuantityFunc: func(ctx context.Context, id int64, qty int) error {
			variantDecrements[id] += qty
			return nil
		},
	}
	txProducts := &MockProductRepo{
		DecrementTotalInventoryFunc: func(ctx context.Context, id uuid.UUID, qty int) error {
			productDecrements += qty
			return nil
		},
	}

	intents := &MockIntentRepo{
		GetByTxRefFunc: func(ctx context.Context, txRef string) (*models.PaymentIntent, error) {
			return pendingIntent(), nil
		},
		WithTxFunc: func(ctx context.Context, fn func(repository.PaymentIntentRepo, repository.OrderRepo, repository.ProductRepo, repository.VariantRepo) error) error {
			return fn(txIntents, txOrders, txProducts, txVariants)
		},
	}
	gateway := &MockGateway{
		VerifyTransactionFunc: func(ctx context.Context, id int64) (service.GatewayTransaction, error) {
			return service.GatewayTransaction{ID: 42, TxRef: testTxRef, Amount: 55750, Currency: "ngn", Status: "Successful"}, nil
		},
	}
	var confirmedEvent *service.OrderConfirmedEvent
	events := &MockEventBus{
		PublishOrderConfirmedFunc: func(ctx context.Context, e service.OrderConfirmedEvent) error {
			confirmedEvent = &e
			return nil
		},
	}
	svc := service.NewPaymentService(intents, &MockOrderRepo{}, gateway, events, zap.NewNop())

	res, err := svc.VerifyPayment(context.Background(), service.VerifyPaymentInput{TxRef: testTxRef, TransactionID: 42})
	if err != nil {
		t.Fatalf("VerifyPayment: %v", err)
	}
	if !res.Success {
		t.Fatalf("unexpected result: %+v", res)
	}

	if !completed {
		t.Error("intent was not completed")
	}
	if updatedStatus != models.OrderStatusConfirmed || updatedPayment != models.PaymentStatusPaid {
		t.Errorf("order update = %v/%v, want Confirmed/Paid", updatedStatus, updatedPayment)
	}
	if variantDecrements[7] != 2 {
		t.Errorf("variant 7 decremented by %d, want 2", variantDecrements[7])
	}
	if productDecrements != 2 {
		t.Errorf("product inventory decremented by %d, want 2", productDecrements)
	}
	if confirmedEvent == nil {
		t.Fatal("order confirmed event not published")
	}
	if confirmedEvent.OrderNumber != order.OrderNumber || confirmedEvent.CustomerEmail != "buyer@example.com" {
		t.Fatalf("unexpected event: %+v", confirmedEvent)
	}
}

func TestVerifyPayment_TxFailure_ReleasesClaim(t *testing.T) {
	released := false
	intents := &MockIntentRepo{
		GetByTxRefFunc: func(ctx context.Context, txRef string) (*models.PaymentIntent, error) {
			return pendingIntent(), nil
		},
		WithTxFunc: func(ctx context.Context, fn func(repository.PaymentIntentRepo, repository.OrderRepo, repository.ProductRepo, repository.VariantRepo) error) error {
			return errors.New("deadlock detected")
		},
		ResetToPendingFunc: func(ctx context.Context, txRef string) (bool, error) {
			released = true
			return true, nil
		},
	}
	gateway := &MockGateway{
		VerifyTransactionFunc: func(ctx context.Context, id int64) (service.GatewayTransaction, error) {
			return service.GatewayTransaction{ID: 42, Amount: 55750, Currency: "NGN", Status: "successful"}, nil
		},
	}
	svc := service.NewPaymentService(intents, &MockOrderRepo{}, gateway, nil, zap.NewNop())

	_, err := svc.VerifyPayment(context.Background(), service.VerifyPaymentInput{TxRef: testTxRef, TransactionID: 42})
	if err == nil {
		t.Fatal("expected error from failed transaction")
	}
	if !released {
		t.Fatal("processing claim was not released after tx failure")
	}
}

func TestShipOrder(t *testing.T) {
	order := paidOrder()
	order.Status = models.OrderStatusConfirmed

	tracked := ""
	orders := &MockOrderRepo{
		GetByOrderNumberFunc: func(ctx context.Context, orderNumber string) (*models.Order, error) {
			return order, nil
		},
		SetTrackingFunc: func(ctx context.Context, orderNumber, trackingNumber string) error {
			tracked = trackingNumber
			return nil
		},
	}
	var shippedEvent *service.OrderShippedEvent
	events := &MockEventBus{
		PublishOrderShippedFunc: func(ctx context.Context, e service.OrderShippedEvent) error {
			shippedEvent = &e
			return nil
		},
	}
	svc := service.NewPaymentService(&MockIntentRepo{}, orders, &MockGateway{}, events, zap.NewNop())

	got, err := svc.ShipOrder(context.Background(), service.ShipOrderInput{
		OrderNumber:    order.OrderNumber,
		TrackingNumber: "TRK-555",
	})
	if err != nil {
		t.Fatalf("ShipOrder: %v", err)
	}
	if got == nil || tracked != "TRK-555" {
		t.Fatalf("tracking not set: %q", tracked)
	}
	if shippedEvent == nil || shippedEvent.TrackingNumber != "TRK-555" {
		t.Fatalf("unexpected shipped event: %+v", shippedEvent)
	}
}

func TestShipOrder_NotFound(t *testing.T) {
	svc := service.NewPaymentService(&MockIntentRepo{}, &MockOrderRepo{}, &MockGateway{}, nil, zap.NewNop())

	_, err := svc.ShipOrder(context.Background(), service.ShipOrderInput{OrderNumber: "ORD-missing", TrackingNumber: "TRK-1"})
	if !errors.Is(err, service.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
