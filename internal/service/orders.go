package service

import (
	"context"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/repository"
)

// OrderService exposes the session's order history. Orders are append-only
// from the storefront's perspective; there is no update or delete.
type OrderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// List returns the session's orders, newest first.
func (s *OrderService) List(ctx context.Context, sessionID string) ([]domain.Order, error) {
	return s.orders.List(ctx, sessionID)
}

// GetByID returns one order, or a not-found error.
func (s *OrderService) GetByID(ctx context.Context, sessionID, orderID string) (domain.Order, error) {
	return s.orders.GetByID(ctx, sessionID, orderID)
}
