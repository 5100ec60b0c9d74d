package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	httpLayer "mortgage-calc/http"
	"mortgage-calc/repository"
	"mortgage-calc/service"
)

func main() {
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	rateSource := repository.NewFredClient(os.Getenv("FRED_API_KEY"))
	rateService := service.NewRateService(rateSource, logger)
	amortizationService := service.NewAmortizationService(logger)
	purchaseService := service.NewPurchaseService(logger)

	calculateHandler := httpLayer.NewCalculateHandler(amortizationService, purchaseService, rateService, logger)
	ratesHandler := httpLayer.NewRatesHandler(rateService, logger)
	chartHandler := httpLayer.NewChartHandler(amortizationService, purchaseService, rateService, logger)

	var limiter httpLayer.LimiterStore
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		limiter = httpLayer.NewRedisLimiter(addr, 30, time.Minute)
		logger.Info("rate limiting backed by redis", zap.String("addr", addr))
	} else {
		limiter = httpLayer.NewMemoryLimiter(30, time.Minute)
	}
	defer limiter.Stop()

	r := mux.NewRouter()
	r.HandleFunc("/mortgage/calculate", calculateHandler.Calculate).Methods(http.MethodPost)
	r.HandleFunc("/mortgage/rates", ratesHandler.Rates).Methods(http.MethodGet)
	r.HandleFunc("/mortgage/chart", chartHandler.Chart).Methods(http.MethodGet)
	r.HandleFunc("/mortgage/schedule", chartHandler.Schedule).Methods(http.MethodGet)
	r.Use(func(next http.Handler) http.Handler {
		return httpLayer.RateLimitMiddleware(limiter, next)
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      cors.Default().Handler(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed", zap.Error(err))
		return
	case <-quit:
		logger.Info("shutting down server")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}
