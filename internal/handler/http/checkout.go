package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/httputil"
	"github.com/utafrali/storefront/pkg/validator"
)

// CheckoutHandler drives the checkout flow endpoints.
type CheckoutHandler struct {
	checkout *service.CheckoutService
	log      *slog.Logger
}

func NewCheckoutHandler(checkout *service.CheckoutService, log *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, log: log}
}

// Start begins a checkout. An empty cart yields 409 CART_EMPTY so the UI
// returns to the cart view.
func (h *CheckoutHandler) Start(w http.ResponseWriter, r *http.Request) {
	session, err := h.checkout.Start(r.Context(), sessionID(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: session})
}

// Get returns the in-flight checkout state.
func (h *CheckoutHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.checkout.Get(r.Context(), sessionID(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: session})
}

// SubmitShipping validates the shipping form. Field errors come back as 400
// with a field map and the step does not advance.
func (h *CheckoutHandler) SubmitShipping(w http.ResponseWriter, r *http.Request) {
	var info domain.ShippingInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	session, err := h.checkout.SubmitShipping(r.Context(), sessionID(r), info)
	if err != nil {
		h.writeCheckoutError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: session})
}

// Back returns from payment to shipping.
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	session, err := h.checkout.Back(r.Context(), sessionID(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: session})
}

// SubmitPayment validates the payment form and materializes the order.
func (h *CheckoutHandler) SubmitPayment(w http.ResponseWriter, r *http.Request) {
	var info domain.PaymentInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	order, err := h.checkout.SubmitPayment(r.Context(), sessionID(r), info)
	if err != nil {
		h.writeCheckoutError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: order})
}

func (h *CheckoutHandler) writeCheckoutError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *validator.ValidationError
	if errors.As(err, &verr) {
		httputil.WriteValidationError(w, err)
		return
	}
	httputil.WriteError(w, r, err, h.log)
}
