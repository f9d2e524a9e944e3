package main

import (
	"shopora/internal/backend"
	"shopora/internal/cart"
	"shopora/internal/checkout"
	"shopora/internal/config"
	"shopora/internal/handler"
	"shopora/internal/logger"
	"shopora/internal/metrics"
	"shopora/internal/middleware"
	"shopora/internal/payment"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	client := backend.NewClient(cfg.BackendBaseURL)
	carts := cart.NewRegistry(client)

	checkoutMetrics := &metrics.Checkout{}
	gateway := payment.NewSimulator(cfg.PaymentDelay)
	checkoutSvc := checkout.NewService(client, gateway, checkoutMetrics)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())

	secret := []byte(cfg.JWTSecretKey)

	api := e.Group("/api", middleware.AuthJWT(secret),
		middleware.RateLimit(middleware.LimitGeneral, middleware.BurstGeneral, "general"))
	handler.NewCartHandler(carts).RegisterRoutes(api)

	checkoutGroup := e.Group("/api", middleware.AuthJWT(secret),
		middleware.RateLimit(middleware.LimitStrict, middleware.BurstStrict, "checkout"))
	handler.NewCheckoutHandler(carts, checkoutSvc, checkoutMetrics).RegisterRoutes(checkoutGroup)

	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}

	logger.L().Info("🚀 Storefront server running", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}
