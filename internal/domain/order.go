package domain

import (
	"fmt"
	"math/rand"
	"time"
)

// OrderStatus is the fixed lifecycle enumeration for placed orders. The
// storefront only ever creates orders in StatusPending; later transitions
// belong to the fulfillment backend.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// OrderItem is a frozen copy of a cart line at checkout time, independent of
// later cart or catalog changes.
type OrderItem struct {
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	VariantLabel string `json:"variant_label,omitempty"`
	Image        string `json:"image,omitempty"`
	UnitPrice    int64  `json:"unit_price"`
	Quantity     int    `json:"quantity"`
}

// Address is the shipping destination captured at checkout.
type Address struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Zip      string `json:"zip"`
}

// Order is an immutable record of a completed checkout.
type Order struct {
	ID                string      `json:"id"`
	OrderNumber       string      `json:"order_number"`
	CreatedAt         time.Time   `json:"created_at"`
	Status            OrderStatus `json:"status"`
	Items             []OrderItem `json:"items"`
	Subtotal          int64       `json:"subtotal"`
	Shipping          int64       `json:"shipping"`
	Tax               int64       `json:"tax"`
	Total             int64       `json:"total"`
	ShippingAddress   Address     `json:"shipping_address"`
	PaymentMethod     string      `json:"payment_method"`
	TrackingNumber    string      `json:"tracking_number,omitempty"`
	EstimatedDelivery time.Time   `json:"estimated_delivery"`
}

// NewOrderNumber produces a human-readable order number of the form
// ORD-<year>-<6 digits>.
func NewOrderNumber(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%06d", now.Year(), rand.Intn(1000000))
}
