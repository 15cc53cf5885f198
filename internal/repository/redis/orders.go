package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/utafrali/storefront/internal/domain"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

const ordersKeyPrefix = "orders:"

// OrderRepository stores the session's order history as one newest-first
// JSON array under orders:<session>. Orders never expire.
type OrderRepository struct {
	client *redis.Client
}

func NewOrderRepository(client *redis.Client) *OrderRepository {
	return &OrderRepository{client: client}
}

func (r *OrderRepository) List(ctx context.Context, sessionID string) ([]domain.Order, error) {
	data, err := r.client.Get(ctx, ordersKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return []domain.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}

	var orders []domain.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		return nil, fmt.Errorf("unmarshal orders: %w", err)
	}
	return orders, nil
}

func (r *OrderRepository) Prepend(ctx context.Context, sessionID string, order domain.Order) error {
	orders, err := r.List(ctx, sessionID)
	if err != nil {
		return err
	}

	orders = append([]domain.Order{order}, orders...)

	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}
	if err := r.client.Set(ctx, ordersKeyPrefix+sessionID, data, 0).Err(); err != nil {
		return fmt.Errorf("save orders: %w", err)
	}
	return nil
}

func (r *OrderRepository) GetByID(ctx context.Context, sessionID, orderID string) (domain.Order, error) {
	orders, err := r.List(ctx, sessionID)
	if err != nil {
		return domain.Order{}, err
	}

	for _, o := range orders {
		if o.ID == orderID {
			return o, nil
		}
	}
	return domain.Order{}, apperrors.NotFound("order", orderID)
}
