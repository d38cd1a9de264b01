package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/tirupurthreads/storefront-backend/api/routes"
	addresssvc "github.com/tirupurthreads/storefront-backend/internal/address"
	authsvc "github.com/tirupurthreads/storefront-backend/internal/auth"
	cartsvc "github.com/tirupurthreads/storefront-backend/internal/cart"
	checkoutsvc "github.com/tirupurthreads/storefront-backend/internal/checkout"
	invoicesvc "github.com/tirupurthreads/storefront-backend/internal/invoice"
	ordersvc "github.com/tirupurthreads/storefront-backend/internal/orders"
	productsvc "github.com/tirupurthreads/storefront-backend/internal/products"
	"github.com/tirupurthreads/storefront-backend/internal/users"
	wholesalesvc "github.com/tirupurthreads/storefront-backend/internal/wholesale"
	"github.com/tirupurthreads/storefront-backend/pkg/auth/session"
	"github.com/tirupurthreads/storefront-backend/pkg/config"
	"github.com/tirupurthreads/storefront-backend/pkg/db"
	"github.com/tirupurthreads/storefront-backend/pkg/logger"
	"github.com/tirupurthreads/storefront-backend/pkg/metrics"
	"github.com/tirupurthreads/storefront-backend/pkg/migrate"
	"github.com/tirupurthreads/storefront-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	userRepo := users.NewRepository(dbClient.DB())
	productRepo := productsvc.NewRepository(dbClient.DB())
	cartRepo := cartsvc.NewRepository(dbClient.DB())
	orderRepo := ordersvc.NewRepository(dbClient.DB())
	wholesaleRepo := wholesalesvc.NewRepository(dbClient.DB())

	authService, err := authsvc.NewService(authsvc.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	productService, err := productsvc.NewService(productRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create products service", err)
		os.Exit(1)
	}

	cartService, err := cartsvc.NewService(cartRepo, productRepo, cfg.Checkout.TaxRate)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	addressValidator, err := addresssvc.NewValidator(cfg.Checkout.DistrictsFile)
	if err != nil {
		logg.Error(context.Background(), "failed to load district table", err)
		os.Exit(1)
	}

	checkoutService, err := checkoutsvc.NewService(checkoutsvc.ServiceParams{
		Tx:        dbClient,
		CartRepo:  cartRepo,
		OrderRepo: orderRepo,
		Addresses: addressValidator,
		TaxRate:   cfg.Checkout.TaxRate,
		Logger:    logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	orderService, err := ordersvc.NewService(orderRepo, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	invoiceService, err := invoicesvc.NewService(orderService, invoicesvc.NewChromeRenderer(cfg.Invoice.RenderTimeout), cfg.Invoice)
	if err != nil {
		logg.Error(context.Background(), "failed to create invoice service", err)
		os.Exit(1)
	}

	wholesaleService, err := wholesalesvc.NewService(wholesaleRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create wholesale service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:      cfg,
			Logger:      logg,
			DB:          dbClient,
			Redis:       redisClient,
			Sessions:    sessionManager,
			Registry:    registry,
			HTTPMetrics: httpMetrics,
			AuthService: authService,
			UserRepo:    userRepo,
			Products:    productService,
			Cart:        cartService,
			Addresses:   addressValidator,
			Checkout:    checkoutService,
			Orders:      orderService,
			Invoices:    invoiceService,
			Wholesale:   wholesaleService,
		}),
	}

	stopCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stopCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
