package handlers

import (
	"net/http"

	"storefront-api/internal/dto"
	"storefront-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductHandler struct {
	products service.ProductService
	log      *zap.Logger
}

func NewProductHandler(products service.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{
		products: products,
		log:      log,
	}
}

// Create godoc
// @Summary Create a product
// @Description Adds a catalog product with variants, media and per-country prices
// @Tags products
// @Accept json
// @Produce json
// @Param product body dto.CreateProductRequest true "Product"
// @Success 201 {object} models.Product
// @Failure 400 {object} dto.ValidationErrorResponse "Invalid request body"
// @Failure 500 {object} dto.InternalErrorResponse "Internal error"
// @Router /products [post]
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid product request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid request body", []dto.FieldError{}))
		return
	}

	p := req.ToModel()
	if err := h.products.Create(c.Request.Context(), p); err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, p)
}

// List godoc
// @Summary List products
// @Description Returns all products with variants, media, metafields and prices
// @Tags products
// @Produce json
// @Success 200 {array} models.Product
// @Failure 500 {object} dto.InternalErrorResponse "Internal error"
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	items, err := h.products.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// Get godoc
// @Summary Get a product
// @Description Fetches one product with all associations
// @Tags products
// @Produce json
// @Param id path string true "Product UUID"
// @Success 200 {object} models.Product
// @Failure 400 {object} dto.ValidationErrorResponse "Malformed UUID"
// @Failure 404 {object} dto.NotFoundErrorResponse "Product not found"
// @Failure 500 {object} dto.InternalErrorResponse "Internal error"
// @Router /products/{id} [get]
func (h *ProductHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewValidationError("invalid product id", []dto.FieldError{}))
		return
	}

	p, err := h.products.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, p)
}

// ListByCountry godoc
// @Summary List products for a country
// @Description Returns products carrying only the given country's contextual price
// @Tags products
// @Produce json
// @Param countryCode path string true "ISO country code"
// @Success 200 {array} models.Product
// @Failure 500 {object} dto.InternalErrorResponse "Internal error"
// @Router /products/country/{countryCode} [get]
func (h *ProductHandler) ListByCountry(c *gin.Context) {
	items, err := h.products.ListByCountry(c.Request.Context(), c.Param("countryCode"))
	if err != nil {
		respondServiceError(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, items)
}
