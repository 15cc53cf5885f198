package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/utafrali/storefront/internal/catalog"
	"github.com/utafrali/storefront/internal/domain"
	"github.com/utafrali/storefront/pkg/httputil"
)

// ProductHandler serves the catalog read endpoints through the fallback
// loader, so they never render empty when the backend is down.
type ProductHandler struct {
	loader *catalog.Loader
	log    *slog.Logger
}

func NewProductHandler(loader *catalog.Loader, log *slog.Logger) *ProductHandler {
	return &ProductHandler{loader: loader, log: log}
}

type productSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Brand        string `json:"brand"`
	Category     string `json:"category"`
	LowestPrice  int64  `json:"lowest_price"`
	PrimaryImage string `json:"primary_image"`
	InStock      bool   `json:"in_stock"`
}

type productDetail struct {
	domain.Product
	LowestPrice       int64    `json:"lowest_price"`
	InStock           bool     `json:"in_stock"`
	AvailableColors   []string `json:"available_colors"`
	AvailableStorages []string `json:"available_storages"`
}

// List returns the catalog summary view.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products := h.loader.Products(r.Context())

	summaries := make([]productSummary, len(products))
	for i, p := range products {
		summaries[i] = productSummary{
			ID:           p.ID,
			Name:         p.Name,
			Brand:        p.Brand,
			Category:     p.Category,
			LowestPrice:  p.LowestPrice(),
			PrimaryImage: p.PrimaryImage,
			InStock:      p.InStock(),
		}
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: summaries})
}

// Get returns one product with its derivations for the detail page.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.loader.ProductByID(r.Context(), id)
	if err != nil {
		httputil.WriteError(w, r, err, h.log)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: productDetail{
		Product:           product,
		LowestPrice:       product.LowestPrice(),
		InStock:           product.InStock(),
		AvailableColors:   product.AvailableColors(),
		AvailableStorages: product.AvailableStorages(),
	}})
}
