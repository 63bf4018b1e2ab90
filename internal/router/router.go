package router

import (
	"storefront-api/internal/handlers"
	"storefront-api/internal/service"
	"storefront-api/internal/shipping"

	"github.com/gin-contrib/cors"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type Services struct {
	Checkout service.CheckoutService
	Orders   service.OrderService
	Payments service.PaymentService
	Products service.ProductService
	Shipping *shipping.Resolver
}

func Router(s Services, log *zap.Logger) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	checkoutHandler := handlers.NewCheckoutHandler(s.Checkout, log)
	r.POST("/checkout/calculate", checkoutHandler.Calculate)

	orderHandler := handlers.NewOrderHandler(s.Orders, log)
	r.POST("/orders", orderHandler.Create)

	paymentHandler := handlers.NewPaymentHandler(s.Payments, log)
	r.POST("/payments/initialize", paymentHandler.Initialize)
	r.POST("/payments/verify", paymentHandler.Verify)
	r.POST("/payments/ship-order", paymentHandler.ShipOrder)

	productHandler := handlers.NewProductHandler(s.Products, log)
	r.POST("/products", productHandler.Create)
	r.GET("/products", productHandler.List)
	r.GET("/products/:id", productHandler.Get)
	r.GET("/products/country/:countryCode", productHandler.ListByCountry)

	shippingHandler := handlers.NewShippingHandler(s.Shipping, log)
	r.GET("/shipping/countries", shippingHandler.Countries)
	r.GET("/shipping/zones/:country", shippingHandler.Zones)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}
