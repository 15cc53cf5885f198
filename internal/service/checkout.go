package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/event"
	"github.com/utafrali/storefront/internal/repository"
	apperrors "github.com/utafrali/storefront/pkg/errors"
	"github.com/utafrali/storefront/pkg/logger"
	"github.com/utafrali/storefront/pkg/validator"
)

const deliveryLeadTime = 5 * 24 * time.Hour

// CheckoutService drives the two-step checkout: shipping capture, payment
// capture, order materialization. No real payment authorization occurs; the
// payment step derives a display descriptor only.
type CheckoutService struct {
	checkouts repository.CheckoutRepository
	carts     repository.CartRepository
	orders    repository.OrderRepository
	events    *event.Producer
	pricing   domain.PricingConfig
	log       *slog.Logger
	now       func() time.Time
}

func NewCheckoutService(
	checkouts repository.CheckoutRepository,
	carts repository.CartRepository,
	orders repository.OrderRepository,
	events *event.Producer,
	pricing domain.PricingConfig,
	log *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		checkouts: checkouts,
		carts:     carts,
		orders:    orders,
		events:    events,
		pricing:   pricing,
		log:       log,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Start begins a checkout for the session. An empty cart fails with a typed
// empty-cart error and mutates nothing.
func (s *CheckoutService) Start(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, apperrors.CartEmpty()
	}

	session := &domain.CheckoutSession{
		SessionID: sessionID,
		Step:      domain.StepShipping,
		StartedAt: s.now(),
	}
	if err := s.checkouts.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns the in-flight checkout state.
func (s *CheckoutService) Get(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	return s.checkouts.Get(ctx, sessionID)
}

// SubmitShipping validates the shipping form and advances to the payment
// step. Validation failure keeps the step unchanged and surfaces field-level
// errors; no state is written.
func (s *CheckoutService) SubmitShipping(ctx context.Context, sessionID string, info domain.ShippingInfo) (*domain.CheckoutSession, error) {
	session, err := s.checkouts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := validator.Validate(info); err != nil {
		return nil, err
	}

	session.Shipping = &info
	session.Step = domain.StepPayment
	if err := s.checkouts.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Back returns from the payment step to shipping, preserving the entered
// shipping data.
func (s *CheckoutService) Back(ctx context.Context, sessionID string) (*domain.CheckoutSession, error) {
	session, err := s.checkouts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Step == domain.StepPayment {
		session.Step = domain.StepShipping
		if err := s.checkouts.Save(ctx, session); err != nil {
			return nil, err
		}
	}
	return session, nil
}

// SubmitPayment validates the payment form and completes the checkout:
// builds the order from the cart and the pricing calculator, prepends it to
// the session's order history, clears the cart and deletes the checkout
// state. The returned order is a frozen snapshot.
func (s *CheckoutService) SubmitPayment(ctx context.Context, sessionID string, info domain.PaymentInfo) (*domain.Order, error) {
	session, err := s.checkouts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != domain.StepPayment || session.Shipping == nil {
		return nil, apperrors.InvalidInput("shipping step not completed")
	}

	if err := validator.Validate(info); err != nil {
		return nil, err
	}

	cart, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, apperrors.CartEmpty()
	}

	order := s.buildOrder(cart, *session.Shipping, info)

	if err := s.orders.Prepend(ctx, sessionID, order); err != nil {
		return nil, err
	}
	if err := s.carts.Delete(ctx, sessionID); err != nil {
		return nil, err
	}
	if err := s.checkouts.Delete(ctx, sessionID); err != nil {
		// The order exists and the cart is gone; a dangling checkout key
		// only expires later. Log and continue.
		logger.WithContext(ctx, s.log).Warn("delete checkout state",
			slog.String("error", err.Error()))
	}

	s.events.OrderPlaced(ctx, order, sessionID)

	logger.WithContext(ctx, s.log).Info("order placed",
		slog.String("order_id", order.ID),
		slog.String("order_number", order.OrderNumber),
		slog.Int64("total", order.Total))

	return &order, nil
}

func (s *CheckoutService) buildOrder(cart *domain.Cart, shipping domain.ShippingInfo, payment domain.PaymentInfo) domain.Order {
	totals := domain.CalculateTotals(cart.PricingLines(), s.pricing)
	now := s.now()

	items := make([]domain.OrderItem, len(cart.Items))
	for i, line := range cart.Items {
		items[i] = domain.OrderItem{
			ProductID:    line.ProductID,
			ProductName:  line.ProductName,
			VariantLabel: line.VariantLabel,
			Image:        line.Image,
			UnitPrice:    line.UnitPrice,
			Quantity:     line.Quantity,
		}
	}

	return domain.Order{
		ID:                uuid.NewString(),
		OrderNumber:       domain.NewOrderNumber(now),
		CreatedAt:         now,
		Status:            domain.StatusPending,
		Items:             items,
		Subtotal:          totals.Subtotal,
		Shipping:          totals.Shipping,
		Tax:               totals.Tax,
		Total:             totals.Total,
		ShippingAddress:   shipping.Address(),
		PaymentMethod:     domain.PaymentDescriptor(payment.CardNumber),
		EstimatedDelivery: now.Add(deliveryLeadTime),
	}
}
