package handlers

import (
	"net/http"

	"storefront-api/internal/dto"
	"storefront-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	payments service.PaymentService
	log      *zap.Logger
}

func NewPaymentHandler(payments service.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		log:      log,
	}
}

// Initialize godoc
// @Summary Initialize a payment
// @Description Creates a payment intent for an order and returns the gateway's hosted payment link
// @Tags payments
// @Accept json
// @Produce json
// @Param payment body dto.InitializePaymentRequest true "Payment details"
// @Success 200 {object} service.InitiatePaymentResult
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid request body"
// @Failure 500 {object} dto.InternalErrorResponse "Gateway rejected the request or internal error"
// @Router /payments/initialize [post]
func (h *PaymentHandler) Initialize(c *gin.Context) {
	var req dto.InitializePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid payment init request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	resp, err := h.payments.InitiatePayment(c.Request.Context(), req.ToInput())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Verify godoc
// @Summary Verify a payment
// @Description Confirms a gateway transaction against the recorded payment intent; on success the order is confirmed and inventory decremented. Safe to retry: a verified payment returns success again without side effects.
// @Tags payments
// @Accept json
// @Produce json
// @Param verification body dto.VerifyPaymentRequest true "Transaction reference"
// @Success 200 {object} service.VerifyPaymentResult
// @Failure 400 {object} dto.BadRequestErrorResponse "Mismatch, already failed or still processing"
// @Failure 404 {object} dto.NotFoundErrorResponse "Unknown tx_ref"
// @Failure 500 {object} dto.InternalErrorResponse "Gateway unreachable or internal error"
// @Router /payments/verify [post]
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid verification request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	resp, err := h.payments.VerifyPayment(c.Request.Context(), service.VerifyPaymentInput{
		TxRef:         req.TxRef,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ShipOrder godoc
// @Summary Mark an order shipped
// @Description Attaches a tracking number, moves the order to Shipped and emails the customer
// @Tags payments
// @Accept json
// @Produce json
// @Param shipment body dto.ShipOrderRequest true "Order and tracking number"
// @Success 200 {object} models.Order
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid request body"
// @Failure 404 {object} dto.NotFoundErrorResponse "Order not found"
// @Failure 500 {object} dto.InternalErrorResponse "Internal error"
// @Router /payments/ship-order [post]
func (h *PaymentHandler) ShipOrder(c *gin.Context) {
	var req dto.ShipOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid ship request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	order, err := h.payments.ShipOrder(c.Request.Context(), service.ShipOrderInput{
		OrderNumber:    req.OrderNumber,
		TrackingNumber: req.TrackingNumber,
	})
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
