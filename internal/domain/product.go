package domain

// Product is an immutable catalog entry realized from the backend (or the
// demo catalog). Prices are integer cents.
type Product struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	ProductType  string    `json:"product_type"`
	Brand        string    `json:"brand"`
	Category     string    `json:"category"`
	BasePrice    int64     `json:"base_price"`
	PrimaryImage string    `json:"primary_image"`
	Images       []string  `json:"images,omitempty"`
	Features     []string  `json:"features,omitempty"`
	Variants     []Variant `json:"variants,omitempty"`
}

// Variant is one purchasable configuration of a product. OriginalPrice, when
// set, is the pre-discount price and must be >= Price.
type Variant struct {
	ID            string   `json:"id"`
	SKU           string   `json:"sku"`
	Color         string   `json:"color,omitempty"`
	Storage       string   `json:"storage,omitempty"`
	Price         int64    `json:"price"`
	OriginalPrice int64    `json:"original_price,omitempty"`
	Stock         int      `json:"stock"`
	Images        []string `json:"images,omitempty"`
}

// Label renders the variant's attributes for display on cart lines and order
// items, e.g. "Black / 256GB".
func (v Variant) Label() string {
	switch {
	case v.Color != "" && v.Storage != "":
		return v.Color + " / " + v.Storage
	case v.Color != "":
		return v.Color
	case v.Storage != "":
		return v.Storage
	default:
		return ""
	}
}

// VariantByID returns the variant with the given id, or false when absent.
func (p Product) VariantByID(id string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return Variant{}, false
}

// VariantByColorStorage returns the variant matching the (color, storage)
// pair, or false when no variant matches.
func (p Product) VariantByColorStorage(color, storage string) (Variant, bool) {
	for _, v := range p.Variants {
		if v.Color == color && v.Storage == storage {
			return v, true
		}
	}
	return Variant{}, false
}

// LowestPrice returns the cheapest variant price, falling back to the base
// price for products without variants.
func (p Product) LowestPrice() int64 {
	if len(p.Variants) == 0 {
		return p.BasePrice
	}
	lowest := p.Variants[0].Price
	for _, v := range p.Variants[1:] {
		if v.Price < lowest {
			lowest = v.Price
		}
	}
	return lowest
}

// InStock reports whether any variant has stock remaining.
func (p Product) InStock() bool {
	for _, v := range p.Variants {
		if v.Stock > 0 {
			return true
		}
	}
	return false
}

// AvailableColors returns the distinct variant colors in catalog order.
func (p Product) AvailableColors() []string {
	return distinct(p.Variants, func(v Variant) string { return v.Color })
}

// AvailableStorages returns the distinct variant storage options in catalog
// order.
func (p Product) AvailableStorages() []string {
	return distinct(p.Variants, func(v Variant) string { return v.Storage })
}

func distinct(variants []Variant, key func(Variant) string) []string {
	seen := make(map[string]struct{}, len(variants))
	var out []string
	for _, v := range variants {
		k := key(v)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}
