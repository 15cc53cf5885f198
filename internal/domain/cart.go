package domain

import "time"

// CartItem is one cart line. Prices are snapshotted from the variant at add
// time and never re-derived from the catalog.
type CartItem struct {
	ProductID     string `json:"product_id"`
	VariantID     string `json:"variant_id"`
	ProductName   string `json:"product_name"`
	VariantLabel  string `json:"variant_label,omitempty"`
	Image         string `json:"image,omitempty"`
	UnitPrice     int64  `json:"unit_price"`
	OriginalPrice int64  `json:"original_price,omitempty"`
	Quantity      int    `json:"quantity"`
}

// Cart holds a session's line items, ordered by insertion.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// NewCart returns an empty cart for the session.
func NewCart(sessionID string) *Cart {
	return &Cart{SessionID: sessionID, Items: []CartItem{}}
}

// FindItemIndex returns the index of the line keyed by (productID, variantID),
// or -1 when absent.
func (c *Cart) FindItemIndex(productID, variantID string) int {
	for i, item := range c.Items {
		if item.ProductID == productID && item.VariantID == variantID {
			return i
		}
	}
	return -1
}

// ItemCount is the sum of quantities across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// TotalAmount is the sum of snapshotted unit price times quantity, in cents.
func (c *Cart) TotalAmount() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.UnitPrice * int64(item.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// PricingLines projects the cart lines into the calculator's input shape.
func (c *Cart) PricingLines() []PricingLine {
	lines := make([]PricingLine, len(c.Items))
	for i, item := range c.Items {
		lines[i] = PricingLine{
			UnitPrice:         item.UnitPrice,
			OriginalUnitPrice: item.OriginalPrice,
			Quantity:          item.Quantity,
		}
	}
	return lines
}
