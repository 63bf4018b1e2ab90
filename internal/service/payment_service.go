package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"storefront-api/internal/models"
	"storefront-api/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const txRefPrefix = "storefront"

type paymentService struct {
	intents repository.PaymentIntentRepo
	orders  repository.OrderRepo
	gateway PaymentGateway
	events  EventBus
	log     *zap.Logger
	now     func() time.Time
}

func NewPaymentService(
	intents repository.PaymentIntentRepo,
	orders repository.OrderRepo,
	gateway PaymentGateway,
	events EventBus,
	log *zap.Logger,
) PaymentService {
	return &paymentService{
		intents: intents,
		orders:  orders,
		gateway: gateway,
		events:  events,
		log:     log,
		now:     time.Now,
	}
}

func (s *paymentService) InitiatePayment(ctx context.Context, in InitiatePaymentInput) (*InitiatePaymentResult, error) {
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	if currency == "" {
		currency = defaultCurrency
	}

	txRef, err := newTxRef()
	if err != nil {
		return nil, err
	}

	// The expectation is pinned before the provider is contacted; the
	// verification step trusts this row, never the callback alone.
	intent := &models.PaymentIntent{
		TxRef:            txRef,
		Status:           models.PaymentIntentPending,
		ExpectedAmount:   Round2(in.Amount),
		ExpectedCurrency: currency,
		OrderNumber:      in.OrderNumber,
		CreatedAt:        s.now(),
		UpdatedAt:        s.now(),
	}
	if err := s.intents.Create(ctx, intent); err != nil {
		return nil, err
	}

	created, err := s.gateway.CreatePayment(ctx, CreatePaymentRequest{
		TxRef:       txRef,
		Amount:      in.Amount,
		Currency:    currency,
		RedirectURL: in.RedirectURL,
		Customer:    in.Customer,
	})
	if err != nil {
		s.log.Error("payment initialization failed",
			zap.String("tx_ref", txRef), zap.String("order_number", in.OrderNumber), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPaymentInitFailed, err)
	}

	s.log.Info("payment initialized",
		zap.String("tx_ref", txRef), zap.String("order_number", in.OrderNumber))

	return &InitiatePaymentResult{Link: created.Link, TxRef: txRef}, nil
}

// VerifyPayment reconciles a completed gateway transaction with the local
// expectation and, on success, confirms the order and decrements stock in
// one database transaction. Safe to call repeatedly: a Completed intent
// short-circuits, a processing one is rejected.
func (s *paymentService) VerifyPayment(ctx context.Context, in VerifyPaymentInput) (*VerifyPaymentResult, error) {
	intent, err := s.intents.GetByTxRef(ctx, in.TxRef)
	if err != nil {
		return nil, err
	}
	if intent == nil {
		return nil, fmt.Errorf("%w: tx_ref %s", ErrPaymentIntentNotFound, in.TxRef)
	}

	switch intent.Status {
	case models.PaymentIntentCompleted:
		// already applied, do not contact the provider again
		return &VerifyPaymentResult{Status: "successful", Success: true}, nil
	case models.PaymentIntentProcessing:
		return nil, ErrPaymentInProcessing
	case models.PaymentIntentFailed:
		return nil, ErrPaymentAlreadyFailed
	}

	// Claim the intent before calling out. The Pending->processing CAS
	// admits exactly one concurrent verifier.
	claimed, err := s.intents.MarkProcessing(ctx, in.TxRef)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrPaymentInProcessing
	}

	txn, err := s.gateway.VerifyTransaction(ctx, in.TransactionID)
	if err != nil {
		s.releaseClaim(ctx, in.TxRef)
		s.log.Error("gateway verification call failed",
			zap.String("tx_ref", in.TxRef), zap.Int64("transaction_id", in.TransactionID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
	}

	if reason := mismatchReason(txn, intent); reason != "" {
		if err := s.intents.Fail(ctx, in.TxRef); err != nil {
			// the intent must not stay claimed if the Fail write is lost
			s.releaseClaim(ctx, in.TxRef)
			s.log.Error("failed to mark payment intent failed",
				zap.String("tx_ref", in.TxRef), zap.Error(err))
			return nil, err
		}
		s.log.Warn("payment verification mismatch",
			zap.String("tx_ref", in.TxRef),
			zap.String("reason", reason),
			zap.Float64("expected_amount", intent.ExpectedAmount),
			zap.Float64("reported_amount", txn.Amount))
		return nil, fmt.Errorf("%w: %s", ErrPaymentMismatch, reason)
	}

	var order *models.Order
	err = s.intents.WithTx(ctx, func(intents repository.PaymentIntentRepo, orders repository.OrderRepo, products repository.ProductRepo, variants repository.VariantRepo) error {
		if err := intents.Complete(ctx, in.TxRef, txn.ID); err != nil {
			return err
		}

		ord, err := orders.GetByOrderNumber(ctx, intent.OrderNumber)
		if err != nil {
			return err
		}
		if ord == nil {
			return fmt.Errorf("%w: number %s", ErrOrderNotFound, intent.OrderNumber)
		}

		if err := orders.UpdatePaymentResult(ctx, ord.OrderNumber, models.OrderStatusConfirmed, models.PaymentStatusPaid); err != nil {
			return err
		}

		for _, item := range ord.ProductDetails.Items {
			if err := variants.DecrementQuantity(ctx, item.VariantID, item.Quantity); err != nil {
				return err
			}
			productID, err := uuid.Parse(item.ProductID)
			if err != nil {
				return fmt.Errorf("order %s has malformed product id %q: %w", ord.OrderNumber, item.ProductID, err)
			}
			if err := products.DecrementTotalInventory(ctx, productID, item.Quantity); err != nil {
				return err
			}
		}

		order = ord
		return nil
	})
	if err != nil {
		// nothing was applied; release the claim so a retry can run
		s.releaseClaim(ctx, in.TxRef)
		return nil, err
	}

	s.log.Info("payment verified",
		zap.String("tx_ref", in.TxRef),
		zap.String("order_number", intent.OrderNumber),
		zap.Int64("transaction_id", txn.ID))

	if s.events != nil && order != nil {
		_ = s.events.PublishOrderConfirmed(ctx, OrderConfirmedEvent{
			OrderNumber:     order.OrderNumber,
			CustomerEmail:   order.CustomerDetails.Email,
			CustomerName:    order.CustomerDetails.Name,
			Subtotal:        order.Subtotal,
			TaxPercentage:   order.TaxPercentage,
			TaxAmount:       order.TaxAmount,
			ShippingType:    order.ShippingType,
			ShippingAmount:  order.ShippingAmount,
			OrderTotal:      order.OrderTotal,
			Currency:        order.Currency,
			Items:           order.ProductDetails.Items,
			ShippingAddress: order.ShippingDetails,
		})
	}

	return &VerifyPaymentResult{Status: "successful", Success: true}, nil
}

func (s *paymentService) ShipOrder(ctx context.Context, in ShipOrderInput) (*models.Order, error) {
	order, err := s.orders.GetByOrderNumber(ctx, in.OrderNumber)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, fmt.Errorf("%w: number %s", ErrOrderNotFound, in.OrderNumber)
	}

	if err := s.orders.SetTracking(ctx, in.OrderNumber, in.TrackingNumber); err != nil {
		return nil, err
	}

	order, err = s.orders.GetByOrderNumber(ctx, in.OrderNumber)
	if err != nil {
		return nil, err
	}

	if s.events != nil && order != nil {
		_ = s.events.PublishOrderShipped(ctx, OrderShippedEvent{
			OrderNumber:    order.OrderNumber,
			CustomerEmail:  order.CustomerDetails.Email,
			CustomerName:   order.CustomerDetails.Name,
			TrackingNumber: in.TrackingNumber,
		})
	}

	return order, nil
}

// releaseClaim undoes the processing mark after a failure that applied no
// state, so re-verification is not permanently blocked.
func (s *paymentService) releaseClaim(ctx context.Context, txRef string) {
	if _, err := s.intents.ResetToPending(ctx, txRef); err != nil {
		s.log.Error("failed to release processing claim", zap.String("tx_ref", txRef), zap.Error(err))
	}
}

// mismatchReason applies the triple check: provider status, amount and
// currency must all match the stored expectation.
func mismatchReason(txn GatewayTransaction, intent *models.PaymentIntent) string {
	status := strings.ToLower(txn.Status)
	if status != "success" && status != "successful" && status != "completed" {
		return fmt.Sprintf("provider status %q", txn.Status)
	}
	if Round2(txn.Amount) != Round2(intent.ExpectedAmount) {
		return fmt.Sprintf("amount %v does not match expected %v", txn.Amount, intent.ExpectedAmount)
	}
	if !strings.EqualFold(txn.Currency, intent.ExpectedCurrency) {
		return fmt.Sprintf("currency %q does not match expected %q", txn.Currency, intent.ExpectedCurrency)
	}
	return ""
}

func newTxRef() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate tx_ref: %w", err)
	}
	return txRefPrefix + "-" + hex.EncodeToString(buf), nil
}
