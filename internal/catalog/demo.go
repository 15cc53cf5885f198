package catalog

import "github.com/utafrali/storefront/internal/domain"

// DemoCatalog returns the bundled demo product list used when the backend is
// unreachable or returns nothing. Prices are cents.
func DemoCatalog() []domain.Product {
	return demoProducts
}

// DemoProductByID looks a product up in the demo catalog.
func DemoProductByID(id string) (domain.Product, bool) {
	for _, p := range demoProducts {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

var demoProducts = []domain.Product{
	{
		ID:           "iphone-15-pro-max",
		Name:         "iPhone 15 Pro Max",
		Slug:         "iphone-15-pro-max",
		Brand:        "Apple",
		Category:     "Smartphones",
		BasePrice:    119900,
		PrimaryImage: "/iphone-15-pro-max-titanium.png",
		Features: []string{
			"Titanium design with textured matte glass back",
			"A17 Pro chip with 6-core GPU",
			"Pro camera system with 5x Telephoto camera",
		},
		Variants: []domain.Variant{
			{ID: "iphone-15-pro-max-256gb-natural", Storage: "256GB", Color: "Natural Titanium", Price: 119900, OriginalPrice: 129900, Stock: 50},
			{ID: "iphone-15-pro-max-512gb-natural", Storage: "512GB", Color: "Natural Titanium", Price: 139900, OriginalPrice: 149900, Stock: 30},
			{ID: "iphone-15-pro-max-1tb-natural", Storage: "1TB", Color: "Natural Titanium", Price: 159900, OriginalPrice: 169900, Stock: 20},
			{ID: "iphone-15-pro-max-256gb-blue", Storage: "256GB", Color: "Blue Titanium", Price: 119900, OriginalPrice: 129900, Stock: 45},
			{ID: "iphone-15-pro-max-512gb-blue", Storage: "512GB", Color: "Blue Titanium", Price: 139900, OriginalPrice: 149900, Stock: 25},
			{ID: "iphone-15-pro-max-256gb-black", Storage: "256GB", Color: "Black Titanium", Price: 119900, OriginalPrice: 129900, Stock: 55},
		},
	},
	{
		ID:           "galaxy-s24-ultra",
		Name:         "Samsung Galaxy S24 Ultra",
		Slug:         "galaxy-s24-ultra",
		Brand:        "Samsung",
		Category:     "Smartphones",
		BasePrice:    129900,
		PrimaryImage: "/samsung-galaxy-s24-ultra-black.jpg",
		Features: []string{
			"Built-in S Pen for precision control",
			"200MP camera with Space Zoom",
			"Titanium frame with Gorilla Armor",
		},
		Variants: []domain.Variant{
			{ID: "galaxy-s24-ultra-256gb-black", Storage: "256GB", Color: "Titanium Black", Price: 129900, Stock: 60},
			{ID: "galaxy-s24-ultra-512gb-black", Storage: "512GB", Color: "Titanium Black", Price: 141900, Stock: 40},
			{ID: "galaxy-s24-ultra-1tb-black", Storage: "1TB", Color: "Titanium Black", Price: 165900, Stock: 0},
			{ID: "galaxy-s24-ultra-256gb-gray", Storage: "256GB", Color: "Titanium Gray", Price: 129900, Stock: 50},
			{ID: "galaxy-s24-ultra-512gb-gray", Storage: "512GB", Color: "Titanium Gray", Price: 141900, Stock: 30},
			{ID: "galaxy-s24-ultra-256gb-violet", Storage: "256GB", Color: "Titanium Violet", Price: 129900, Stock: 35},
		},
	},
	{
		ID:           "macbook-pro-16-m3-max",
		Name:         "MacBook Pro 16-inch M3 Max",
		Slug:         "macbook-pro-16-m3-max",
		Brand:        "Apple",
		Category:     "Laptops",
		BasePrice:    329900,
		PrimaryImage: "/macbook-pro-16-inch-space-black.jpg",
		Features: []string{
			"M3 Max chip with up to 40-core GPU",
			"Liquid Retina XDR display",
			"Three Thunderbolt 4 ports, HDMI, SDXC card slot",
		},
		Variants: []domain.Variant{
			{ID: "macbook-pro-16-512gb-black", Storage: "512GB SSD", Color: "Space Black", Price: 329900, Stock: 25},
			{ID: "macbook-pro-16-1tb-black", Storage: "1TB SSD", Color: "Space Black", Price: 349900, Stock: 30},
			{ID: "macbook-pro-16-2tb-black", Storage: "2TB SSD", Color: "Space Black", Price: 389900, Stock: 15},
			{ID: "macbook-pro-16-512gb-silver", Storage: "512GB SSD", Color: "Silver", Price: 329900, Stock: 20},
			{ID: "macbook-pro-16-1tb-silver", Storage: "1TB SSD", Color: "Silver", Price: 349900, Stock: 25},
		},
	},
	{
		ID:           "dell-xps-15",
		Name:         "Dell XPS 15",
		Slug:         "dell-xps-15",
		Brand:        "Dell",
		Category:     "Laptops",
		BasePrice:    189900,
		PrimaryImage: "/dell-xps-15-laptop-silver.jpg",
		Features: []string{
			"13th Gen Intel Core processors",
			"NVIDIA GeForce RTX graphics",
			"InfinityEdge display with minimal bezels",
		},
		Variants: []domain.Variant{
			{ID: "dell-xps-15-512gb-silver", Storage: "512GB SSD", Color: "Platinum Silver", Price: 189900, OriginalPrice: 219900, Stock: 35},
			{ID: "dell-xps-15-1tb-silver", Storage: "1TB SSD", Color: "Platinum Silver", Price: 209900, OriginalPrice: 239900, Stock: 25},
			{ID: "dell-xps-15-512gb-graphite", Storage: "512GB SSD", Color: "Graphite", Price: 189900, OriginalPrice: 219900, Stock: 30},
			{ID: "dell-xps-15-1tb-graphite", Storage: "1TB SSD", Color: "Graphite", Price: 209900, OriginalPrice: 239900, Stock: 20},
		},
	},
	{
		ID:           "sony-wh-1000xm5",
		Name:         "Sony WH-1000XM5",
		Slug:         "sony-wh-1000xm5",
		Brand:        "Sony",
		Category:     "Headphones",
		BasePrice:    39900,
		PrimaryImage: "/sony-wh-1000xm5.jpg",
		Features: []string{
			"Industry-leading noise cancellation",
			"30-hour battery life with quick charging",
			"Multipoint connection for two devices",
		},
		Variants: []domain.Variant{
			{ID: "wh-1000xm5", Price: 39900, OriginalPrice: 49900, Stock: 100},
		},
	},
	{
		ID:           "ipad-pro-12-9-m2",
		Name:         "iPad Pro 12.9-inch M2",
		Slug:         "ipad-pro-12-9-m2",
		Brand:        "Apple",
		Category:     "Tablets",
		BasePrice:    109900,
		PrimaryImage: "/ipad-pro-12-9-m2.jpg",
		Features: []string{
			"M2 chip for incredible performance",
			"ProMotion technology with 120Hz",
			"Support for Apple Pencil (2nd generation)",
		},
		Variants: []domain.Variant{
			{ID: "ipad-pro-128gb", Storage: "128GB", Price: 109900, Stock: 75},
			{ID: "ipad-pro-256gb", Storage: "256GB", Price: 119900, Stock: 60},
			{ID: "ipad-pro-512gb", Storage: "512GB", Price: 139900, Stock: 45},
			{ID: "ipad-pro-1tb", Storage: "1TB", Price: 179900, Stock: 30},
		},
	},
	{
		ID:           "airpods-pro-2",
		Name:         "AirPods Pro (2nd generation)",
		Slug:         "airpods-pro-2",
		Brand:        "Apple",
		Category:     "Headphones",
		BasePrice:    24900,
		PrimaryImage: "/airpods-pro-2.jpg",
		Features: []string{
			"Up to 2x more Active Noise Cancellation",
			"Personalized Spatial Audio",
			"MagSafe charging case with speaker",
		},
		Variants: []domain.Variant{
			{ID: "airpods-pro-2", Price: 24900, Stock: 100},
		},
	},
}
