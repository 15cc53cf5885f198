package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func phone() Product {
	return Product{
		ID:        "p1",
		Name:      "Galaxy A17",
		BasePrice: 29900,
		Variants: []Variant{
			{ID: "v1", Color: "Black", Storage: "128GB", Price: 29900, Stock: 5},
			{ID: "v2", Color: "Black", Storage: "256GB", Price: 34900, Stock: 0},
			{ID: "v3", Color: "Blue", Storage: "128GB", Price: 29900, Stock: 2},
		},
	}
}

func TestVariantLookup(t *testing.T) {
	p := phone()

	v, ok := p.VariantByID("v2")
	assert.True(t, ok)
	assert.Equal(t, "256GB", v.Storage)

	_, ok = p.VariantByID("missing")
	assert.False(t, ok)

	v, ok = p.VariantByColorStorage("Blue", "128GB")
	assert.True(t, ok)
	assert.Equal(t, "v3", v.ID)

	_, ok = p.VariantByColorStorage("Blue", "512GB")
	assert.False(t, ok)
}

func TestLowestPrice(t *testing.T) {
	p := phone()
	assert.Equal(t, int64(29900), p.LowestPrice())

	noVariants := Product{BasePrice: 19900}
	assert.Equal(t, int64(19900), noVariants.LowestPrice())
}

func TestInStock(t *testing.T) {
	assert.True(t, phone().InStock())

	soldOut := Product{Variants: []Variant{{ID: "v1", Stock: 0}}}
	assert.False(t, soldOut.InStock())
}

func TestAvailableAttributes(t *testing.T) {
	p := phone()

	assert.Equal(t, []string{"Black", "Blue"}, p.AvailableColors())
	assert.Equal(t, []string{"128GB", "256GB"}, p.AvailableStorages())
}

func TestVariantLabel(t *testing.T) {
	assert.Equal(t, "Black / 256GB", Variant{Color: "Black", Storage: "256GB"}.Label())
	assert.Equal(t, "Black", Variant{Color: "Black"}.Label())
	assert.Equal(t, "256GB", Variant{Storage: "256GB"}.Label())
	assert.Equal(t, "", Variant{}.Label())
}
