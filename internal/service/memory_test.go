package service

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// In-memory repositories for service tests. Documents are copied through
// JSON to mirror the store's serialization boundary.

type memCartRepo struct {
	carts map[string][]byte
}

func newMemCartRepo() *memCartRepo {
	return &memCartRepo{carts: map[string][]byte{}}
}

func (r *memCartRepo) Get(_ context.Context, sessionID string) (*domain.Cart, error) {
	data, ok := r.carts[sessionID]
	if !ok {
		return domain.NewCart(sessionID), nil
	}
	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *memCartRepo) Save(_ context.Context, cart *domain.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	r.carts[cart.SessionID] = data
	return nil
}

func (r *memCartRepo) Delete(_ context.Context, sessionID string) error {
	delete(r.carts, sessionID)
	return nil
}

type memOrderRepo struct {
	orders map[string][]domain.Order
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: map[string][]domain.Order{}}
}

func (r *memOrderRepo) List(_ context.Context, sessionID string) ([]domain.Order, error) {
	return append([]domain.Order{}, r.orders[sessionID]...), nil
}

func (r *memOrderRepo) Prepend(_ context.Context, sessionID string, order domain.Order) error {
	r.orders[sessionID] = append([]domain.Order{order}, r.orders[sessionID]...)
	return nil
}

func (r *memOrderRepo) GetByID(_ context.Context, sessionID, orderID string) (domain.Order, error) {
	for _, o := range r.orders[sessionID] {
		if o.ID == orderID {
			return o, nil
		}
	}
	return domain.Order{}, apperrors.NotFound("order", orderID)
}

type memFavoritesRepo struct {
	favorites map[string][]string
}

func newMemFavoritesRepo() *memFavoritesRepo {
	return &memFavoritesRepo{favorites: map[string][]string{}}
}

func (r *memFavoritesRepo) Get(_ context.Context, sessionID string) ([]string, error) {
	return append([]string{}, r.favorites[sessionID]...), nil
}

func (r *memFavoritesRepo) Save(_ context.Context, sessionID string, productIDs []string) error {
	r.favorites[sessionID] = append([]string{}, productIDs...)
	return nil
}

type memCheckoutRepo struct {
	sessions map[string][]byte
}

func newMemCheckoutRepo() *memCheckoutRepo {
	return &memCheckoutRepo{sessions: map[string][]byte{}}
}

func (r *memCheckoutRepo) Get(_ context.Context, sessionID string) (*domain.CheckoutSession, error) {
	data, ok := r.sessions[sessionID]
	if !ok {
		return nil, apperrors.NotFound("checkout", sessionID)
	}
	var session domain.CheckoutSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *memCheckoutRepo) Save(_ context.Context, session *domain.CheckoutSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	r.sessions[session.SessionID] = data
	return nil
}

func (r *memCheckoutRepo) Delete(_ context.Context, sessionID string) error {
	delete(r.sessions, sessionID)
	return nil
}

// fakeLoader serves products from a fixed map, mimicking the catalog loader.
type fakeLoader struct {
	products map[string]domain.Product
}

func (l *fakeLoader) ProductByID(_ context.Context, id string) (domain.Product, error) {
	p, ok := l.products[id]
	if !ok {
		return domain.Product{}, apperrors.NotFound("product", id)
	}
	return p, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testProduct() domain.Product {
	return domain.Product{
		ID:           "iphone-15-pro-max",
		Name:         "iPhone 15 Pro Max",
		PrimaryImage: "/iphone.png",
		BasePrice:    119900,
		Variants: []domain.Variant{
			{ID: "v-256-natural", Storage: "256GB", Color: "Natural Titanium", Price: 10000, OriginalPrice: 12000, Stock: 50},
			{ID: "v-512-natural", Storage: "512GB", Color: "Natural Titanium", Price: 139900, OriginalPrice: 149900, Stock: 30},
		},
	}
}

func newTestLoader() *fakeLoader {
	p := testProduct()
	return &fakeLoader{products: map[string]domain.Product{p.ID: p}}
}
