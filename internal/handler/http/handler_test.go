package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/utafrali/storefront/internal/catalog"
	"github.com/utafrali/storefront/internal/domain"
	repo "github.com/utafrali/storefront/internal/repository/redis"
	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/health"
)

// fakeLoader serves the cart service without a live catalog backend.
type fakeLoader struct {
	products map[string]domain.Product
}

func (l *fakeLoader) ProductByID(_ context.Context, id string) (domain.Product, error) {
	if p, ok := l.products[id]; ok {
		return p, nil
	}
	return domain.Product{}, errNotFound
}

var errNotFound = &notFoundError{}

type notFoundError struct{}

func (*notFoundError) Error() string { return "product not found" }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	log := slog.New(slog.NewJSONHandler(io.Discard, nil))
	pricing := domain.DefaultPricingConfig()
	ttl := time.Hour

	carts := repo.NewCartRepository(client, ttl)
	orders := repo.NewOrderRepository(client)
	favorites := repo.NewFavoritesRepository(client, ttl)
	checkouts := repo.NewCheckoutRepository(client, ttl)

	loader := &fakeLoader{products: map[string]domain.Product{
		"iphone-15-pro-max": {
			ID:   "iphone-15-pro-max",
			Name: "iPhone 15 Pro Max",
			Variants: []domain.Variant{
				{ID: "v-256", Storage: "256GB", Color: "Black Titanium", Price: 10000, OriginalPrice: 12000, Stock: 10},
			},
		},
	}}

	cartSvc := service.NewCartService(carts, loader, nil, pricing, log)
	checkoutSvc := service.NewCheckoutService(checkouts, carts, orders, nil, pricing, log)
	orderSvc := service.NewOrderService(orders)
	favoritesSvc := service.NewFavoritesService(favorites)

	// The catalog degrades to the demo catalog against an unreachable
	// backend, so product routes work without one.
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()
	catalogLoader := catalog.NewLoader(catalog.NewClient(dead.URL+"/api", http.DefaultClient), log)

	router := NewRouter(RouterConfig{
		Logger:    log,
		Health:    health.NewHandler(),
		Products:  NewProductHandler(catalogLoader, log),
		Cart:      NewCartHandler(cartSvc, log),
		Checkout:  NewCheckoutHandler(checkoutSvc, log),
		Orders:    NewOrderHandler(orderSvc, log),
		Favorites: NewFavoritesHandler(favoritesSvc, log),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var buf io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		buf = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-ID", "sess-test")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeData(t *testing.T, resp *http.Response, target any) {
	t.Helper()
	defer resp.Body.Close()

	var envelope struct {
		Data  json.RawMessage `json:"data"`
		Error json.RawMessage `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, target))
}

func TestCartEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/cart/items", map[string]any{
		"product_id": "iphone-15-pro-max",
		"variant_id": "v-256",
		"quantity":   2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload struct {
		Cart struct {
			Items []domain.CartItem `json:"items"`
		} `json:"cart"`
		Totals domain.Totals `json:"totals"`
	}
	decodeData(t, resp, &payload)

	require.Len(t, payload.Cart.Items, 1)
	assert.Equal(t, "Black Titanium / 256GB", payload.Cart.Items[0].VariantLabel)
	assert.Equal(t, int64(20000), payload.Totals.Subtotal)
	assert.Equal(t, int64(24599), payload.Totals.Total)

	// Update quantity to zero removes the line.
	resp = doJSON(t, http.MethodPut, srv.URL+"/api/v1/cart/items", map[string]any{
		"product_id": "iphone-15-pro-max",
		"variant_id": "v-256",
		"quantity":   0,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeData(t, resp, &payload)
	assert.Empty(t, payload.Cart.Items)
}

func TestCartRequiresSession(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/cart/", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCheckoutFlow(t *testing.T) {
	srv := newTestServer(t)

	// Empty cart: checkout refused with CART_EMPTY.
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/checkout/", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Fill the cart and walk the flow.
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/cart/items", map[string]any{
		"product_id": "iphone-15-pro-max",
		"variant_id": "v-256",
		"quantity":   2,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/checkout/", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/checkout/shipping", map[string]any{
		"full_name": "Ada Lovelace",
		"email":     "ada@example.com",
		"phone":     "0123456789",
		"street":    "12 Analytical Way",
		"city":      "London",
		"state":     "LN",
		"zip":       "12345",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session domain.CheckoutSession
	decodeData(t, resp, &session)
	assert.Equal(t, domain.StepPayment, session.Step)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/checkout/payment", map[string]any{
		"card_number": "4242424242424242",
		"card_holder": "Ada Lovelace",
		"expiry":      "12/27",
		"cvv":         "123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var order domain.Order
	decodeData(t, resp, &order)
	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, int64(24599), order.Total)
	assert.Equal(t, "Visa ending in 4242", order.PaymentMethod)

	// Order visible in history; cart is empty again.
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/orders/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []domain.Order
	decodeData(t, resp, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, order.ID, orders[0].ID)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/orders/"+order.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestCheckoutShippingValidationErrors(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/cart/items", map[string]any{
		"product_id": "iphone-15-pro-max",
		"variant_id": "v-256",
		"quantity":   1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/checkout/", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/checkout/shipping", map[string]any{
		"full_name": "Ada Lovelace",
		"email":     "not-an-email",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	defer resp.Body.Close()

	var envelope struct {
		Error struct {
			Code   string            `json:"code"`
			Fields map[string]string `json:"fields"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Contains(t, envelope.Error.Fields, "Email")
}

func TestProductEndpointsServeDemoCatalog(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/products")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summaries []map[string]any
	decodeData(t, resp, &summaries)
	assert.Len(t, summaries, len(catalog.DemoCatalog()))

	resp, err = http.Get(srv.URL + "/api/v1/products/iphone-15-pro-max")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var detail map[string]any
	decodeData(t, resp, &detail)
	assert.Equal(t, "iPhone 15 Pro Max", detail["name"])
	assert.NotEmpty(t, detail["available_colors"])

	resp, err = http.Get(srv.URL + "/api/v1/products/unknown-product")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestFavoritesEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/v1/favorites/p1/toggle", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var toggle struct {
		Favorited bool `json:"favorited"`
	}
	decodeData(t, resp, &toggle)
	assert.True(t, toggle.Favorited)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/v1/favorites/p1/toggle", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeData(t, resp, &toggle)
	assert.False(t, toggle.Favorited)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/v1/favorites/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var ids []string
	decodeData(t, resp, &ids)
	assert.Empty(t, ids)
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}
