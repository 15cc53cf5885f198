// Package app assembles the storefront service: configuration, logging,
// tracing, Redis, the catalog client chain, services, and the HTTP server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/utafrali/storefront/internal/catalog"
	"github.com/utafrali/storefront/internal/config"
	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/event"
	handler "github.com/utafrali/storefront/internal/handler/http"
	repo "github.com/utafrali/storefront/internal/repository/redis"
	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/health"
	"github.com/utafrali/storefront/pkg/httpclient"
	"github.com/utafrali/storefront/pkg/logger"
	"github.com/utafrali/storefront/pkg/tracing"
)

// App is the assembled storefront service.
type App struct {
	cfg      *config.Config
	log      *slog.Logger
	server   *http.Server
	redis    *goredis.Client
	events   *event.Producer
	shutdown []func(context.Context) error
}

// New builds the service from configuration. Dependencies that must be
// reachable at boot (Redis) are pinged; the catalog backend is not, since
// the loader degrades gracefully.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	log := logger.New("storefront", cfg.LogLevel)

	a := &App{cfg: cfg, log: log}

	stopTracing, err := tracing.InitTracer(ctx, tracing.Config{
		Enabled:     cfg.TracingEnabled,
		ServiceName: "storefront",
		Endpoint:    cfg.TracingEndpoint,
		SampleRatio: cfg.TracingSample,
		Insecure:    !cfg.IsProduction(),
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}
	a.shutdown = append(a.shutdown, stopTracing)

	a.redis = goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := a.redis.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	a.events = event.NewProducer(cfg.KafkaBrokers, log)

	pricing := domain.PricingConfig{
		FreeShippingThreshold: cfg.FreeShippingThresholdCents,
		ShippingFlatFee:       cfg.ShippingFlatFeeCents,
		TaxRateBasisPoints:    cfg.TaxRateBasisPoints,
	}

	carts := repo.NewCartRepository(a.redis, cfg.SessionTTL)
	orders := repo.NewOrderRepository(a.redis)
	favorites := repo.NewFavoritesRepository(a.redis, cfg.SessionTTL)
	checkouts := repo.NewCheckoutRepository(a.redis, cfg.SessionTTL)

	clientCfg := httpclient.DefaultConfig()
	clientCfg.Timeout = cfg.CatalogTimeout
	breaker := httpclient.NewBreakerClient(
		httpclient.New(clientCfg),
		httpclient.DefaultBreakerConfig("catalog"),
		log,
	)
	loader := catalog.NewLoader(catalog.NewClient(cfg.CatalogBaseURL, breakerDoer{breaker}), log)

	cartSvc := service.NewCartService(carts, loader, a.events, pricing, log)
	checkoutSvc := service.NewCheckoutService(checkouts, carts, orders, a.events, pricing, log)
	orderSvc := service.NewOrderService(orders)
	favoritesSvc := service.NewFavoritesService(favorites)

	healthHandler := health.NewHandler()
	healthHandler.Register("redis", func(ctx context.Context) error {
		return a.redis.Ping(ctx).Err()
	})

	router := handler.NewRouter(handler.RouterConfig{
		Logger:      log,
		Health:      healthHandler,
		Products:    handler.NewProductHandler(loader, log),
		Cart:        handler.NewCartHandler(cartSvc, log),
		Checkout:    handler.NewCheckoutHandler(checkoutSvc, log),
		Orders:      handler.NewOrderHandler(orderSvc, log),
		Favorites:   handler.NewFavoritesHandler(favoritesSvc, log),
		PprofCIDRs:  cfg.PprofAllowedCIDRs,
		EnablePprof: !cfg.IsProduction(),
	})

	a.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	return a, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully within
// the configured timeout.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("http server listening", slog.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	var errs []error
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, fmt.Errorf("shutdown http server: %w", err))
	}
	if err := a.events.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close event producer: %w", err))
	}
	if err := a.redis.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close redis: %w", err))
	}
	for _, fn := range a.shutdown {
		if err := fn(shutdownCtx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// breakerDoer adapts the breaker client to the catalog's Doer shape.
type breakerDoer struct {
	client *httpclient.BreakerClient
}

func (d breakerDoer) Do(req *http.Request) (*http.Response, error) {
	return d.client.Do(req.Context(), req)
}
