// Package service implements the storefront use cases over the repositories
// and the catalog loader.
package service

import (
	"context"
	"log/slog"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/event"
	"github.com/utafrali/storefront/internal/repository"
	"github.com/utafrali/storefront/pkg/logger"
)

// ProductLoader resolves products with the catalog fallback policy applied.
type ProductLoader interface {
	ProductByID(ctx context.Context, id string) (domain.Product, error)
}

// CartService owns the session cart: tolerant mutations, snapshot pricing,
// derived totals.
type CartService struct {
	carts    repository.CartRepository
	products ProductLoader
	events   *event.Producer
	pricing  domain.PricingConfig
	log      *slog.Logger
}

func NewCartService(
	carts repository.CartRepository,
	products ProductLoader,
	events *event.Producer,
	pricing domain.PricingConfig,
	log *slog.Logger,
) *CartService {
	return &CartService{
		carts:    carts,
		products: products,
		events:   events,
		pricing:  pricing,
		log:      log,
	}
}

// Get returns the session's cart, empty when nothing was stored.
func (s *CartService) Get(ctx context.Context, sessionID string) (*domain.Cart, error) {
	return s.carts.Get(ctx, sessionID)
}

// AddItem resolves the variant and adds it to the cart. An unknown or empty
// variant id is a logged no-op: the UI should never offer one, so this is a
// backstop, not a user-facing error. An existing (product, variant) line has
// its quantity summed. New lines snapshot the variant's prices, label and a
// representative image; the snapshot is never re-derived.
func (s *CartService) AddItem(ctx context.Context, sessionID, productID, variantID string, quantity int) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if quantity < 1 {
		quantity = 1
	}

	log := logger.WithContext(ctx, s.log)

	if variantID == "" {
		log.Warn("add to cart without variant id", slog.String("product_id", productID))
		return cart, nil
	}

	product, err := s.products.ProductByID(ctx, productID)
	if err != nil {
		log.Warn("add to cart for unknown product",
			slog.String("product_id", productID),
			slog.String("error", err.Error()))
		return cart, nil
	}

	variant, ok := product.VariantByID(variantID)
	if !ok {
		log.Warn("add to cart for unknown variant",
			slog.String("product_id", productID),
			slog.String("variant_id", variantID))
		return cart, nil
	}

	if i := cart.FindItemIndex(productID, variantID); i >= 0 {
		cart.Items[i].Quantity += quantity
	} else {
		image := product.PrimaryImage
		if len(variant.Images) > 0 {
			image = variant.Images[0]
		}

		cart.Items = append(cart.Items, domain.CartItem{
			ProductID:     productID,
			VariantID:     variantID,
			ProductName:   product.Name,
			VariantLabel:  variant.Label(),
			Image:         image,
			UnitPrice:     variant.Price,
			OriginalPrice: variant.OriginalPrice,
			Quantity:      quantity,
		})
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	s.events.CartUpdated(ctx, cart)
	return cart, nil
}

// UpdateQuantity sets the line's quantity exactly; zero or negative removes
// the line. An unknown (product, variant) key is a no-op.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, productID, variantID string, quantity int) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	i := cart.FindItemIndex(productID, variantID)
	if i < 0 {
		return cart, nil
	}

	if quantity <= 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
	} else {
		cart.Items[i].Quantity = quantity
	}

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	s.events.CartUpdated(ctx, cart)
	return cart, nil
}

// RemoveItem removes the matching line; no-op when absent.
func (s *CartService) RemoveItem(ctx context.Context, sessionID, productID, variantID string) (*domain.Cart, error) {
	return s.UpdateQuantity(ctx, sessionID, productID, variantID, 0)
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	if err := s.carts.Delete(ctx, sessionID); err != nil {
		return err
	}
	s.events.CartUpdated(ctx, domain.NewCart(sessionID))
	return nil
}

// Totals computes the cart's pricing snapshot.
func (s *CartService) Totals(ctx context.Context, sessionID string) (domain.Totals, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return domain.Totals{}, err
	}
	return domain.CalculateTotals(cart.PricingLines(), s.pricing), nil
}
