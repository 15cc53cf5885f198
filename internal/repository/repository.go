// Package repository defines the session-scoped persistence contracts. Each
// store keeps one JSON document per session in a key-value store.
package repository

import (
	"context"

	"github.com/utafrali/storefront/internal/domain"
)

// CartRepository persists one cart document per session.
type CartRepository interface {
	// Get returns the session's cart, or an empty cart when none is stored.
	Get(ctx context.Context, sessionID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// OrderRepository persists the session's order history, newest first.
type OrderRepository interface {
	List(ctx context.Context, sessionID string) ([]domain.Order, error)
	// Prepend inserts the order at the head of the session's history.
	Prepend(ctx context.Context, sessionID string, order domain.Order) error
	// GetByID returns a not-found error when the order is absent.
	GetByID(ctx context.Context, sessionID, orderID string) (domain.Order, error)
}

// FavoritesRepository persists the session's favorited product ids.
type FavoritesRepository interface {
	Get(ctx context.Context, sessionID string) ([]string, error)
	Save(ctx context.Context, sessionID string, productIDs []string) error
}

// CheckoutRepository persists the in-flight checkout state between steps.
type CheckoutRepository interface {
	// Get returns a not-found error when no checkout is in flight.
	Get(ctx context.Context, sessionID string) (*domain.CheckoutSession, error)
	Save(ctx context.Context, session *domain.CheckoutSession) error
	Delete(ctx context.Context, sessionID string) error
}
