package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
	apperrors "github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/logger"
)

// Loader applies the storefront's degradation policy over a Client:
//
//   - Products: any fetch error or an empty payload substitutes the demo
//     catalog. The shop never renders empty and the failure is never
//     surfaced to the caller.
//   - ProductByID: a backend 404 or a transport failure falls through to a
//     demo-catalog lookup; a lookup miss or any other backend status yields
//     a not-found error so the caller can render a not-found view.
type Loader struct {
	client *Client
	log    *slog.Logger
}

// NewLoader wraps a client with the fallback policy.
func NewLoader(client *Client, log *slog.Logger) *Loader {
	return &Loader{client: client, log: log}
}

// Products returns the live product list, or the demo catalog when the
// backend fails or returns nothing.
func (l *Loader) Products(ctx context.Context) []domain.Product {
	products, err := l.client.Products(ctx)
	if err != nil {
		logger.WithContext(ctx, l.log).Warn("product list fetch failed, serving demo catalog",
			slog.String("error", err.Error()))
		return DemoCatalog()
	}
	if len(products) == 0 {
		logger.WithContext(ctx, l.log).Warn("product list empty, serving demo catalog")
		return DemoCatalog()
	}
	return products
}

// ProductByID returns the live product, falling back to the demo catalog on
// a backend 404 or transport failure. When neither source knows the id a
// not-found error is returned.
func (l *Loader) ProductByID(ctx context.Context, id string) (domain.Product, error) {
	product, err := l.client.ProductByID(ctx, id)
	if err == nil {
		return product, nil
	}

	log := logger.WithContext(ctx, l.log)

	// Backend statuses other than 404 (5xx and the like) do not consult the
	// demo catalog; the page renders not-found.
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		log.Warn("product detail fetch failed",
			slog.String("product_id", id),
			slog.Int("status", statusErr.Status))
		return domain.Product{}, apperrors.NotFound("product", id)
	}

	// 404 or transport failure: try the demo catalog.
	if fallback, ok := DemoProductByID(id); ok {
		log.Info("serving demo catalog product",
			slog.String("product_id", id),
			slog.String("reason", err.Error()))
		return fallback, nil
	}
	return domain.Product{}, apperrors.NotFound("product", id)
}
