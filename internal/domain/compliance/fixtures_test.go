package compliance

import "acp/internal/domain/entity"

func intPtr(n int) *int { return &n }

// acmeProduct is a realistic single-variant product with no material tag.
func acmeProduct() *entity.Product {
	return &entity.Product{
		ID:          "gid://shopify/Product/1001",
		Title:       "Acme Trail Bottle",
		Handle:      "acme-trail-bottle",
		Description: "Insulated steel bottle that keeps drinks cold for 24 hours.",
		ProductType: "Water Bottles",
		Tags:        []string{"brand:Acme"},
		Images:      []entity.Image{{URL: "https://cdn.example.com/bottle.jpg"}},
		Variants: []*entity.Variant{
			{
				ID:                "gid://shopify/ProductVariant/2001",
				Title:             "Default Title",
				Price:             "19.99",
				Barcode:           "012345678905",
				InventoryQuantity: intPtr(10),
				InventoryItem: &entity.InventoryItem{
					Tracked: true,
					Measurement: &entity.Measurement{
						Weight: &entity.WeightValue{Value: 1, Unit: entity.WeightUnitPounds},
					},
				},
			},
		},
	}
}

// completeProduct satisfies every product-level rule of the default catalog.
func completeProduct() *entity.Product {
	return &entity.Product{
		ID:             "gid://shopify/Product/3001",
		Title:          "Merino Hiking Sock",
		Handle:         "merino-hiking-sock",
		Description:    "Cushioned merino sock for long days on the trail.",
		ProductType:    "Socks",
		OnlineStoreURL: "https://shop.example.com/products/merino-hiking-sock",
		Tags: []string{
			"brand:Trailhead",
			"material:Merino wool",
			"dimensions:25x10x2 cm",
			"age_group:adult",
			"popularity_score:4.5",
			"return_rate:2.5",
			"review_count:128",
			"review_rating:4.8",
			"taxes_fees:included",
			"availability_date:2026-01-15",
			"expiration_date:2030-01-01",
			"pickup_method:in_store",
		},
		FeaturedImage: &entity.Image{URL: "https://cdn.example.com/sock-front.jpg"},
		Images: []entity.Image{
			{URL: "https://cdn.example.com/sock-front.jpg"},
			{URL: "https://cdn.example.com/sock-side.jpg"},
		},
		Media: []entity.Media{
			{MediaContentType: entity.MediaTypeVideo, URL: "https://cdn.example.com/sock.mp4"},
			{MediaContentType: entity.MediaTypeModel3D, URL: "https://cdn.example.com/sock.glb"},
		},
		Variants: []*entity.Variant{
			{
				ID:                "gid://shopify/ProductVariant/4001",
				Title:             "Grey / M",
				SKU:               "SOCK-GRY-M",
				Barcode:           "012345678905",
				Price:             "18.00",
				CompareAtPrice:    "24.00",
				InventoryQuantity: intPtr(40),
				SelectedOptions: []entity.SelectedOption{
					{Name: "Color", Value: "Grey"},
					{Name: "Size", Value: "M"},
					{Name: "Condition", Value: "new"},
					{Name: "Gender", Value: "unisex"},
					{Name: "Size System", Value: "US"},
					{Name: "Unit Pricing Measure", Value: "1 ct"},
				},
				InventoryItem: &entity.InventoryItem{
					Tracked: true,
					Measurement: &entity.Measurement{
						Weight: &entity.WeightValue{Value: 80, Unit: entity.WeightUnitGrams},
					},
				},
			},
		},
	}
}

func completeShop() *entity.Shop {
	return &entity.Shop{
		Name:          "Trailhead Outfitters",
		RawURL:        "https://shop.example.com",
		ContactEmail:  "help@example.com",
		ShippingRates: []string{"US:CA:Overnight:16.00 USD", "US::Ground:5 USD"},
		ShopPolicies: []*entity.ShopPolicy{
			{Type: entity.PolicyPrivacy, URL: "https://shop.example.com/policies/privacy-policy"},
			{Type: entity.PolicyTermsOfService, URL: "https://shop.example.com/policies/terms-of-service"},
			{
				Type: entity.PolicyRefund,
				URL:  "https://shop.example.com/policies/refund-policy",
				Body: "Items can be returned within 30 days of delivery.",
			},
		},
	}
}
