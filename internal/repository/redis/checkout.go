package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/utafrali/storefront/internal/domain"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

const checkoutKeyPrefix = "checkout:"

// CheckoutRepository stores in-flight checkout state under
// checkout:<session>. Abandoned checkouts expire with the session TTL.
type CheckoutRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCheckoutRepository(client *redis.Client, ttl time.Duration) *CheckoutRepository {
	return &CheckoutRepository{client: client, ttl: ttl}
}

func (r *CheckoutRepository) Get(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	data, err := r.client.Get(ctx, checkoutKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.NotFound("checkout", sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("get checkout: %w", err)
	}

	var session domain.CheckoutSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal checkout: %w", err)
	}
	return &session, nil
}

func (r *CheckoutRepository) Save(ctx context.Context, session *domain.CheckoutSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal checkout: %w", err)
	}
	if err := r.client.Set(ctx, checkoutKeyPrefix+session.SessionID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save checkout: %w", err)
	}
	return nil
}

func (r *CheckoutRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, checkoutKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("delete checkout: %w", err)
	}
	return nil
}
