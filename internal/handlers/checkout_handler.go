package handlers

import (
	"net/http"

	"storefront-api/internal/dto"
	"storefront-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	checkout service.CheckoutService
	log      *zap.Logger
}

func NewCheckoutHandler(checkout service.CheckoutService, log *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		log:      log,
	}
}

// Calculate godoc
// @Summary Price a cart
// @Description Calculates subtotal, tax and per-zone shipping totals for a cart and destination country
// @Tags checkout
// @Accept json
// @Produce json
// @Param checkout body dto.CheckoutCalculateRequest true "Cart and destination"
// @Success 200 {object} service.CheckoutResult
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid request body or insufficient stock"
// @Failure 404 {object} dto.NotFoundErrorResponse "Variant or price not found"
// @Failure 500 {object} dto.InternalErrorResponse "Internal error"
// @Router /checkout/calculate [post]
func (h *CheckoutHandler) Calculate(c *gin.Context) {
	var req dto.CheckoutCalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid checkout request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	result, err := h.checkout.CalculateCheckout(c.Request.Context(), req.ToInput())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
