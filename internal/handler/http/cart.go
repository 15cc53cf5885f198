// Package http exposes the storefront REST API over chi.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/httputil"
)

// CartHandler serves the session cart endpoints.
type CartHandler struct {
	cart *service.CartService
	log  *slog.Logger
}

func NewCartHandler(cart *service.CartService, log *slog.Logger) *CartHandler {
	return &CartHandler{cart: cart, log: log}
}

type cartPayload struct {
	Cart   *domain.Cart  `json:"cart"`
	Totals domain.Totals `json:"totals"`
}

type addItemRequest struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

// Get returns the cart with its current totals.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	cart, err := h.cart.Get(r.Context(), sessionID(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	h.respond(w, r, cart)
}

// AddItem adds a product variant to the cart.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.cart.AddItem(r.Context(), sessionID(r), req.ProductID, req.VariantID, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	h.respond(w, r, cart)
}

// UpdateQuantity sets a line's quantity; zero or less removes the line.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	cart, err := h.cart.UpdateQuantity(r.Context(), sessionID(r), req.ProductID, req.VariantID, req.Quantity)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	h.respond(w, r, cart)
}

// RemoveItem removes one line from the cart.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("product_id")
	variantID := r.URL.Query().Get("variant_id")

	cart, err := h.cart.RemoveItem(r.Context(), sessionID(r), productID, variantID)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	h.respond(w, r, cart)
}

// Clear empties the cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(r.Context(), sessionID(r)); err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) respond(w http.ResponseWriter, r *http.Request, cart *domain.Cart) {
	totals, err := h.cart.Totals(r.Context(), cart.SessionID)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: cartPayload{Cart: cart, Totals: totals},
	})
}
