package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/utafrali/storefront/pkg/health"
	"github.com/utafrali/storefront/pkg/middleware"
)

// RouterConfig carries the handlers and cross-cutting dependencies the
// router mounts.
type RouterConfig struct {
	Logger      *slog.Logger
	Health      *health.Handler
	Products    *ProductHandler
	Cart        *CartHandler
	Checkout    *CheckoutHandler
	Orders      *OrderHandler
	Favorites   *FavoritesHandler
	PprofCIDRs  []string
	EnablePprof bool
}

// NewRouter wires the full HTTP surface: operational endpoints at the root,
// the API under /api/v1, session-scoped routes behind the session header.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.RequestLogging(cfg.Logger))
	r.Use(middleware.RequestLogger(cfg.Logger))
	r.Use(middleware.Metrics)
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	r.Get("/healthz", cfg.Health.LivenessHandler())
	r.Get("/readyz", cfg.Health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	if cfg.EnablePprof {
		r.Group(func(r chi.Router) {
			r.Use(middleware.IPAllowlist(cfg.PprofCIDRs))
			middleware.RegisterPprof(r)
		})
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/products", cfg.Products.List)
		r.Get("/products/{id}", cfg.Products.Get)

		// Session-scoped state.
		r.Group(func(r chi.Router) {
			r.Use(SessionFromHeader)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cfg.Cart.Get)
				r.Post("/items", cfg.Cart.AddItem)
				r.Put("/items", cfg.Cart.UpdateQuantity)
				r.Delete("/items", cfg.Cart.RemoveItem)
				r.Delete("/", cfg.Cart.Clear)
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Post("/", cfg.Checkout.Start)
				r.Get("/", cfg.Checkout.Get)
				r.Post("/shipping", cfg.Checkout.SubmitShipping)
				r.Post("/back", cfg.Checkout.Back)
				r.Post("/payment", cfg.Checkout.SubmitPayment)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", cfg.Orders.List)
				r.Get("/{id}", cfg.Orders.Get)
			})

			r.Route("/favorites", func(r chi.Router) {
				r.Get("/", cfg.Favorites.List)
				r.Post("/{id}/toggle", cfg.Favorites.Toggle)
			})
		})
	})

	return r
}
