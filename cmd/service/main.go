package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront-api/config"
	_ "storefront-api/docs"
	"storefront-api/internal/database"
	"storefront-api/internal/flutterwave"
	"storefront-api/internal/logger"
	"storefront-api/internal/producer"
	"storefront-api/internal/repository"
	"storefront-api/internal/router"
	"storefront-api/internal/service"
	"storefront-api/internal/shipping"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// @Title Storefront API
// @Version 1.0
// @Description Order processing backend: checkout pricing, orders, payments and shipping
// @BasePath /
func main() {
	_ = godotenv.Load()
	isDev := os.Getenv("ENV") == "development"
	if err := logger.Init(isDev); err != nil {
		panic(err)
	}

	defer logger.Sync()

	log := logger.L()

	cfg := config.Load(log)
	db := database.ConnectDB(&cfg.DB.Config, log)
	defer database.CloseDB(db, log)

	repos := repository.New(db)

	resolver, err := shipping.NewResolver()
	if err != nil {
		log.Fatal("failed to load shipping rates", zap.Error(err))
	}

	gateway := flutterwave.NewClient(cfg.Flutterwave.BaseURL, cfg.Flutterwave.SecretKey, log)

	// Email events are optional: without brokers the API runs, it just
	// does not notify customers.
	var events service.EventBus
	if len(cfg.KafkaBrokers) > 0 {
		emailProducer := producer.NewEmailProducer(cfg.KafkaBrokers, cfg.KafkaTopic)
		defer emailProducer.Close()
		events = producer.NewEventBus(emailProducer)
	} else {
		log.Warn("KAFKA_BROKERS not set, email notifications disabled")
	}

	paymentSvc := service.NewPaymentService(repos.PaymentIntents, repos.Orders, gateway, events, log)
	orderSvc := service.NewOrderService(repos.Orders, paymentSvc, cfg.FrontendURL, log)
	checkoutSvc := service.NewCheckoutService(repos.Variants, repos.Products, repos.Prices, resolver, log)
	productSvc := service.NewProductService(repos.Products)

	r := router.Router(router.Services{
		Checkout: checkoutSvc,
		Orders:   orderSvc,
		Payments: paymentSvc,
		Products: productSvc,
		Shipping: resolver,
	}, log)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}
	log.Info("HTTP server stopped gracefully")
}
