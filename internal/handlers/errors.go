package handlers

import (
	"errors"
	"net/http"

	"storefront-api/internal/dto"
	"storefront-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondServiceError maps service sentinel errors onto HTTP statuses.
// Anything unrecognized is a 500 with no details leaked to the client.
func respondServiceError(c *gin.Context, log *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrVariantNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrPriceNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrPaymentIntentNotFound):
		log.Warn("Resource not found", zap.Error(err))
		c.JSON(http.StatusNotFound, dto.NewNotFoundError(err.Error()))

	case errors.Is(err, service.ErrEmptyItems),
		errors.Is(err, service.ErrQuantityInvalid),
		errors.Is(err, service.ErrCountryRequired),
		errors.Is(err, service.ErrInsufficientStock),
		errors.Is(err, service.ErrMixedCurrency),
		errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrPaymentInProcessing),
		errors.Is(err, service.ErrPaymentAlreadyFailed),
		errors.Is(err, service.ErrPaymentMismatch):
		log.Warn("Request rejected", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewBadRequestError(err.Error()))

	case errors.Is(err, service.ErrGatewayUnavailable),
		errors.Is(err, service.ErrPaymentInitFailed):
		log.Error("Payment gateway error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError("payment gateway unavailable"))

	default:
		log.Error("Unhandled service error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.NewInternalError(""))
	}
}
