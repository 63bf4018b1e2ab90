package handlers

import (
	"net/http"

	"storefront-api/internal/shipping"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ShippingHandler struct {
	resolver *shipping.Resolver
	log      *zap.Logger
}

func NewShippingHandler(resolver *shipping.Resolver, log *zap.Logger) *ShippingHandler {
	return &ShippingHandler{
		resolver: resolver,
		log:      log,
	}
}

// Countries godoc
// @Summary List shippable countries
// @Description Returns every country code present in the shipping rate table, sorted
// @Tags shipping
// @Produce json
// @Success 200 {array} string
// @Router /shipping/countries [get]
func (h *ShippingHandler) Countries(c *gin.Context) {
	c.JSON(http.StatusOK, h.resolver.Countries())
}

// Zones godoc
// @Summary Shipping zones for a country
// @Description Returns the selectable shipping zones for a destination country; unknown countries get the fallback zone
// @Tags shipping
// @Produce json
// @Param country path string true "ISO country code"
// @Success 200 {object} shipping.ZonesResponse
// @Router /shipping/zones/{country} [get]
func (h *ShippingHandler) Zones(c *gin.Context) {
	c.JSON(http.StatusOK, h.resolver.ZonesFor(c.Param("country")))
}
