package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalsExampleScenario(t *testing.T) {
	// One line: $100 unit, $120 original, qty 2.
	lines := []PricingLine{
		{UnitPrice: 10000, OriginalUnitPrice: 12000, Quantity: 2},
	}

	totals := CalculateTotals(lines, DefaultPricingConfig())

	assert.Equal(t, int64(20000), totals.Subtotal)
	assert.Equal(t, int64(24000), totals.OriginalSubtotal)
	assert.Equal(t, int64(4000), totals.Discount)
	assert.Equal(t, int64(2999), totals.Shipping)
	assert.Equal(t, int64(1600), totals.Tax)
	assert.Equal(t, int64(24599), totals.Total)
}

func TestCalculateTotalsFreeShippingThreshold(t *testing.T) {
	cfg := DefaultPricingConfig()

	tests := []struct {
		name         string
		lines        []PricingLine
		wantShipping int64
	}{
		{
			name:         "exactly at threshold",
			lines:        []PricingLine{{UnitPrice: 100000, Quantity: 1}},
			wantShipping: 0,
		},
		{
			name:         "one cent below threshold",
			lines:        []PricingLine{{UnitPrice: 99999, Quantity: 1}},
			wantShipping: 2999,
		},
		{
			name:         "above threshold",
			lines:        []PricingLine{{UnitPrice: 60000, Quantity: 2}},
			wantShipping: 0,
		},
		{
			name:         "empty selection",
			lines:        nil,
			wantShipping: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := CalculateTotals(tt.lines, cfg)
			assert.Equal(t, tt.wantShipping, totals.Shipping)
		})
	}
}

func TestCalculateTotalsInvariant(t *testing.T) {
	cfg := DefaultPricingConfig()

	cases := [][]PricingLine{
		nil,
		{{UnitPrice: 1, Quantity: 1}},
		{{UnitPrice: 9999, OriginalUnitPrice: 9999, Quantity: 3}},
		{{UnitPrice: 50000, Quantity: 1}, {UnitPrice: 75000, OriginalUnitPrice: 80000, Quantity: 2}},
		// Original below unit price still yields a non-negative discount.
		{{UnitPrice: 5000, OriginalUnitPrice: 4000, Quantity: 1}},
	}

	for _, lines := range cases {
		totals := CalculateTotals(lines, cfg)
		assert.Equal(t, totals.Subtotal+totals.Shipping+totals.Tax, totals.Total)
		assert.GreaterOrEqual(t, totals.Discount, int64(0))
	}
}

func TestCalculateTotalsMissingOriginalPrice(t *testing.T) {
	lines := []PricingLine{{UnitPrice: 10000, Quantity: 2}}

	totals := CalculateTotals(lines, DefaultPricingConfig())

	assert.Equal(t, int64(20000), totals.OriginalSubtotal)
	assert.Equal(t, int64(0), totals.Discount)
}

func TestCalculateTotalsFreeShippingRemaining(t *testing.T) {
	cfg := DefaultPricingConfig()

	totals := CalculateTotals([]PricingLine{{UnitPrice: 40000, Quantity: 1}}, cfg)
	assert.Equal(t, int64(60000), totals.AmountToFreeShipping)

	totals = CalculateTotals([]PricingLine{{UnitPrice: 100000, Quantity: 1}}, cfg)
	assert.Equal(t, int64(0), totals.AmountToFreeShipping)

	totals = CalculateTotals(nil, cfg)
	assert.Equal(t, int64(0), totals.AmountToFreeShipping)
}
