package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const favoritesKeyPrefix = "favorites:"

// FavoritesRepository stores the session's favorited product ids as a JSON
// array under favorites:<session>.
type FavoritesRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFavoritesRepository(client *redis.Client, ttl time.Duration) *FavoritesRepository {
	return &FavoritesRepository{client: client, ttl: ttl}
}

func (r *FavoritesRepository) Get(ctx context.Context, sessionID string) ([]string, error) {
	data, err := r.client.Get(ctx, favoritesKeyPrefix+sessionID).Bytes()
	if errors.Is(err, redis.Nil) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get favorites: %w", err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("unmarshal favorites: %w", err)
	}
	return ids, nil
}

func (r *FavoritesRepository) Save(ctx context.Context, sessionID string, productIDs []string) error {
	data, err := json.Marshal(productIDs)
	if err != nil {
		return fmt.Errorf("marshal favorites: %w", err)
	}
	if err := r.client.Set(ctx, favoritesKeyPrefix+sessionID, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save favorites: %w", err)
	}
	return nil
}
