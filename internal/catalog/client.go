// Package catalog consumes the product API of the commerce backend and
// degrades to a bundled demo catalog when the backend misbehaves. The Client
// is a pure typed accessor; all fallback policy lives in Loader.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/utafrali/storefront/internal/domain"
	apperrors "github.com/utafrali/storefront/pkg/errors"
)

// Doer abstracts the HTTP client so the breaker-wrapped client and plain
// test clients are interchangeable.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError reports a decoded backend response with an unexpected status.
// 404s surface as not-found AppErrors instead.
type StatusError struct {
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Status)
}

// Client is a typed accessor for the backend product API. It returns
// explicit errors and never substitutes fallback data.
type Client struct {
	baseURL string
	http    Doer
}

// NewClient builds a catalog client for the given API base URL, e.g.
// "http://backend:8000/api".
func NewClient(baseURL string, doer Doer) *Client {
	return &Client{baseURL: baseURL, http: doer}
}

type wireCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type wireBrand struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type wireImage struct {
	ID        int    `json:"id"`
	ImageURL  string `json:"image_url"`
	AltText   string `json:"alt_text"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order"`
}

type wireVariant struct {
	ID        int             `json:"id"`
	SKU       string          `json:"sku"`
	Color     string          `json:"color"`
	Storage   string          `json:"storage"`
	BasePrice json.Number     `json:"base_price"`
	Attrs     json.RawMessage `json:"attributes"`
	IsActive  bool            `json:"is_active"`
}

type wireListItem struct {
	ID           int          `json:"id"`
	Name         string       `json:"name"`
	Slug         string       `json:"slug"`
	ProductType  string       `json:"product_type"`
	BasePrice    json.Number  `json:"base_price"`
	IsActive     bool         `json:"is_active"`
	Category     wireCategory `json:"category"`
	Brand        wireBrand    `json:"brand"`
	PrimaryImage *wireImage   `json:"primary_image"`
}

type wireDetail struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	ProductType string        `json:"product_type"`
	Description string        `json:"description"`
	BasePrice   json.Number   `json:"base_price"`
	IsActive    bool          `json:"is_active"`
	Category    wireCategory  `json:"category"`
	Brand       wireBrand     `json:"brand"`
	Images      []wireImage   `json:"images"`
	Variants    []wireVariant `json:"variants"`
}

// Products fetches the backend product list.
func (c *Client) Products(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products/", nil)
	if err != nil {
		return nil, fmt.Errorf("build products request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch products: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch products: %w", &StatusError{Status: resp.StatusCode})
	}

	var items []wireListItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		products = append(products, mapListItem(item))
	}
	return products, nil
}

// ProductByID fetches one product with variants and images. A backend 404
// surfaces as a not-found AppError distinguishable with errors.Is.
func (c *Client) ProductByID(ctx context.Context, id string) (domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/products/"+id+"/", nil)
	if err != nil {
		return domain.Product{}, fmt.Errorf("build product request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Product{}, fmt.Errorf("fetch product %s: %w", id, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		io.Copy(io.Discard, resp.Body)
		return domain.Product{}, apperrors.NotFound("product", id)
	case resp.StatusCode != http.StatusOK:
		io.Copy(io.Discard, resp.Body)
		return domain.Product{}, fmt.Errorf("fetch product %s: %w", id, &StatusError{Status: resp.StatusCode})
	}

	var detail wireDetail
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return domain.Product{}, fmt.Errorf("decode product %s: %w", id, err)
	}

	return mapDetail(detail), nil
}

// The backend does not expose per-variant stock on this API; list items get
// one pseudo-variant with nominal stock so the storefront can sell them.
const defaultStock = 10

func mapListItem(item wireListItem) domain.Product {
	price := cents(item.BasePrice)

	image := ""
	if item.PrimaryImage != nil {
		image = item.PrimaryImage.ImageURL
	}

	return domain.Product{
		ID:           item.Slug,
		Name:         item.Name,
		Slug:         item.Slug,
		ProductType:  item.ProductType,
		Brand:        item.Brand.Name,
		Category:     item.Category.Name,
		BasePrice:    price,
		PrimaryImage: image,
		Variants: []domain.Variant{
			{ID: item.Slug, Price: price, Stock: defaultStock},
		},
	}
}

func mapDetail(detail wireDetail) domain.Product {
	images := make([]string, 0, len(detail.Images))
	for _, img := range detail.Images {
		images = append(images, img.ImageURL)
	}

	primary := ""
	if len(images) > 0 {
		primary = images[0]
	}

	variants := make([]domain.Variant, 0, len(detail.Variants))
	for _, v := range detail.Variants {
		variants = append(variants, domain.Variant{
			ID:      fmt.Sprintf("%d", v.ID),
			SKU:     v.SKU,
			Color:   v.Color,
			Storage: v.Storage,
			Price:   cents(v.BasePrice),
			Stock:   defaultStock,
		})
	}

	return domain.Product{
		ID:           detail.Slug,
		Name:         detail.Name,
		Slug:         detail.Slug,
		ProductType:  detail.ProductType,
		Brand:        detail.Brand.Name,
		Category:     detail.Category.Name,
		BasePrice:    cents(detail.BasePrice),
		PrimaryImage: primary,
		Images:       images,
		Variants:     variants,
	}
}

// cents converts the backend's decimal price (sent as a number or numeric
// string) to integer cents.
func cents(n json.Number) int64 {
	f, err := n.Float64()
	if err != nil {
		return 0
	}
	return int64(f*100 + 0.5)
}
