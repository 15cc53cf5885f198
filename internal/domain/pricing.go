package domain

// PricingLine is the pricing-relevant projection of a cart line: unit prices
// in cents and a quantity. OriginalUnitPrice of zero means "no discount", in
// which case the unit price stands in for it.
type PricingLine struct {
	UnitPrice         int64
	OriginalUnitPrice int64
	Quantity          int
}

// PricingConfig holds the shipping and tax policy, all amounts in cents and
// the tax rate in basis points.
type PricingConfig struct {
	FreeShippingThreshold int64
	ShippingFlatFee       int64
	TaxRateBasisPoints    int64
}

// DefaultPricingConfig is the storefront's stock policy: free shipping at
// $1000, a $29.99 flat fee below it, and 8% tax.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		FreeShippingThreshold: 100000,
		ShippingFlatFee:       2999,
		TaxRateBasisPoints:    800,
	}
}

// Totals is the calculator's output snapshot.
type Totals struct {
	Subtotal         int64 `json:"subtotal"`
	OriginalSubtotal int64 `json:"original_subtotal"`
	Discount         int64 `json:"discount"`
	Shipping         int64 `json:"shipping"`
	Tax              int64 `json:"tax"`
	Total            int64 `json:"total"`

	// AmountToFreeShipping is how much more spend qualifies for free
	// shipping; zero once the threshold is met or the selection is empty.
	AmountToFreeShipping int64 `json:"amount_to_free_shipping"`
}

// CalculateTotals computes subtotal, discount, shipping, tax and total for a
// set of pricing lines. It is pure: no I/O, no store access, deterministic.
func CalculateTotals(lines []PricingLine, cfg PricingConfig) Totals {
	var subtotal, originalSubtotal int64
	for _, l := range lines {
		qty := int64(l.Quantity)
		subtotal += l.UnitPrice * qty
		original := l.OriginalUnitPrice
		if original == 0 {
			original = l.UnitPrice
		}
		originalSubtotal += original * qty
	}

	discount := originalSubtotal - subtotal
	if discount < 0 {
		discount = 0
	}

	var shipping, remaining int64
	if subtotal > 0 && subtotal < cfg.FreeShippingThreshold {
		shipping = cfg.ShippingFlatFee
		remaining = cfg.FreeShippingThreshold - subtotal
	}

	tax := subtotal * cfg.TaxRateBasisPoints / 10000

	return Totals{
		Subtotal:             subtotal,
		OriginalSubtotal:     originalSubtotal,
		Discount:             discount,
		Shipping:             shipping,
		Tax:                  tax,
		Total:                subtotal + shipping + tax,
		AmountToFreeShipping: remaining,
	}
}
