package handlers

import (
	"net/http"

	"storefront-api/internal/dto"
	"storefront-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	orders service.OrderService
	log    *zap.Logger
}

func NewOrderHandler(orders service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orders: orders,
		log:    log,
	}
}

// Create godoc
// @Summary Create an order
// @Description Records an order with the totals confirmed at checkout and returns a hosted payment link
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Priced order"
// @Success 201 {object} service.CreateOrderResponse
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid request body"
// @Failure 500 {object} dto.InternalErrorResponse "Payment initiation failed or internal error"
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid order request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	resp, err := h.orders.CreateOrder(c.Request.Context(), req.ToInput())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}
