package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/storefront-catalog-service/internal/cache"
	"github.com/maxviazov/storefront-catalog-service/internal/config"
	"github.com/maxviazov/storefront-catalog-service/internal/handler"
	"github.com/maxviazov/storefront-catalog-service/internal/logger"
	"github.com/maxviazov/storefront-catalog-service/internal/migrations"
	"github.com/maxviazov/storefront-catalog-service/internal/repository"
	"github.com/maxviazov/storefront-catalog-service/internal/repository/postgres"
	"github.com/maxviazov/storefront-catalog-service/internal/service"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load application config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}
	appLogger.Info().Msg("✅ Logger initialized successfully")

	db, err := repository.New(ctx, cfg, &appLogger)
	if err != nil {
		log.Fatalf("❌ Postgres connection failed: %v", err)
	}
	defer db.Close()

	if cfg.App.AutoMigrate {
		if err := migrations.Up(ctx, db.Pool()); err != nil {
			log.Fatalf("❌ Migrations failed: %v", err)
		}
		appLogger.Info().Msg("✅ Migrations applied")
	}

	// Listing cache is optional; leave the interface nil when redis is not configured.
	var pageCache service.ProductPageCache
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatalf("❌ Redis connection failed: %v", err)
		}
		defer rdb.Close()
		pageCache = cache.NewProductCache(rdb, time.Duration(cfg.Redis.TTL)*time.Second, appLogger)
		appLogger.Info().Str("addr", cfg.Redis.Addr).Msg("✅ Product cache enabled")
	}

	pool := db.Pool()
	productSvc := service.NewProductService(postgres.NewProductRepository(pool), pageCache, appLogger)
	orderSvc := service.NewOrderService(postgres.NewOrderRepository(pool), appLogger)
	paymentSvc := service.NewPaymentService(appLogger)

	if cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger(appLogger))
	var apiMiddleware []gin.HandlerFunc
	if cfg.RateLimit.RPS > 0 {
		limiter := handler.NewClientLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, 3*time.Minute)
		go limiter.Run(ctx, time.Minute)
		apiMiddleware = append(apiMiddleware, handler.RateLimit(limiter))
	}
	handler.Register(r, appLogger, postgres.NewPinger(pool), productSvc, orderSvc, paymentSvc, apiMiddleware...)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		appLogger.Info().Int("port", cfg.App.Port).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error().Err(err).Msg("http server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.App.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("graceful shutdown failed")
	}
	appLogger.Info().Msg("👋 Service stopped")
}
