package redis

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/domain"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

func newTestClient(t *testing.T) (*miniredis.Miniredis, *goredis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return mr, client
}

func TestCartRepositoryRoundTrip(t *testing.T) {
	_, client := newTestClient(t)
	repo := NewCartRepository(client, time.Hour)
	ctx := context.Background()

	cart, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	cart.Items = append(cart.Items, domain.CartItem{
		ProductID: "p1", VariantID: "v1", UnitPrice: 10000, Quantity: 2,
	})
	require.NoError(t, repo.Save(ctx, cart))

	loaded, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, int64(20000), loaded.TotalAmount())
	assert.False(t, loaded.UpdatedAt.IsZero())
}

func TestCartRepositoryDelete(t *testing.T) {
	_, client := newTestClient(t)
	repo := NewCartRepository(client, time.Hour)
	ctx := context.Background()

	cart := domain.NewCart("sess-1")
	cart.Items = []domain.CartItem{{ProductID: "p1", VariantID: "v1", Quantity: 1}}
	require.NoError(t, repo.Save(ctx, cart))
	require.NoError(t, repo.Delete(ctx, "sess-1"))

	loaded, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestCartRepositoryTTL(t *testing.T) {
	mr, client := newTestClient(t)
	repo := NewCartRepository(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.NewCart("sess-1")))

	mr.FastForward(2 * time.Hour)

	loaded, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.True(t, loaded.IsEmpty())
}

func TestOrderRepositoryPrependOrder(t *testing.T) {
	_, client := newTestClient(t)
	repo := NewOrderRepository(client)
	ctx := context.Background()

	first := domain.Order{ID: "o1", OrderNumber: "ORD-2026-000001", Total: 100}
	second := domain.Order{ID: "o2", OrderNumber: "ORD-2026-000002", Total: 200}

	require.NoError(t, repo.Prepend(ctx, "sess-1", first))
	require.NoError(t, repo.Prepend(ctx, "sess-1", second))

	orders, err := repo.List(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "o2", orders[0].ID)
	assert.Equal(t, "o1", orders[1].ID)
}

func TestOrderRepositoryGetByID(t *testing.T) {
	_, client := newTestClient(t)
	repo := NewOrderRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.Prepend(ctx, "sess-1", domain.Order{ID: "o1", Total: 100}))

	order, err := repo.GetByID(ctx, "sess-1", "o1")
	require.NoError(t, err)
	assert.Equal(t, int64(100), order.Total)

	_, err = repo.GetByID(ctx, "sess-1", "missing")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestOrderRepositoryOrdersSurviveSessionExpiry(t *testing.T) {
	mr, client := newTestClient(t)
	repo := NewOrderRepository(client)
	ctx := context.Background()

	require.NoError(t, repo.Prepend(ctx, "sess-1", domain.Order{ID: "o1"}))

	mr.FastForward(1000 * time.Hour)

	orders, err := repo.List(ctx, "sess-1")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestFavoritesRepositoryRoundTrip(t *testing.T) {
	_, client := newTestClient(t)
	repo := NewFavoritesRepository(client, time.Hour)
	ctx := context.Background()

	ids, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, repo.Save(ctx, "sess-1", []string{"p1", "p2"}))

	ids, err = repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, ids)
}

func TestCheckoutRepositoryRoundTrip(t *testing.T) {
	_, client := newTestClient(t)
	repo := NewCheckoutRepository(client, time.Hour)
	ctx := context.Background()

	_, err := repo.Get(ctx, "sess-1")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))

	session := &domain.CheckoutSession{
		SessionID: "sess-1",
		Step:      domain.StepPayment,
		Shipping:  &domain.ShippingInfo{FullName: "Ada Lovelace", Email: "ada@example.com"},
		StartedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.Save(ctx, session))

	loaded, err := repo.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StepPayment, loaded.Step)
	require.NotNil(t, loaded.Shipping)
	assert.Equal(t, "Ada Lovelace", loaded.Shipping.FullName)

	require.NoError(t, repo.Delete(ctx, "sess-1"))
	_, err = repo.Get(ctx, "sess-1")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}
