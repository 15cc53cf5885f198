package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/storefront/internal/service"
	"github.com/utafrali/storefront/pkg/httputil"
)

// FavoritesHandler serves the session's favorites set.
type FavoritesHandler struct {
	favorites *service.FavoritesService
	log       *slog.Logger
}

func NewFavoritesHandler(favorites *service.FavoritesService, log *slog.Logger) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites, log: log}
}

type toggleResponse struct {
	ProductID string `json:"product_id"`
	Favorited bool   `json:"favorited"`
}

// List returns the favorited product ids.
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.favorites.List(r.Context(), sessionID(r))
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: ids})
}

// Toggle flips a product's favorite state and returns the new membership.
func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "id")

	favorited, err := h.favorites.Toggle(r.Context(), sessionID(r), productID)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{
		Data: toggleResponse{ProductID: productID, Favorited: favorited},
	})
}
