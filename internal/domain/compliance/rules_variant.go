package compliance

import (
	"strings"

	"acp/internal/domain/entity"
)

// Availability values emitted in the feed.
const (
	AvailabilityInStock    = "in_stock"
	AvailabilityOutOfStock = "out_of_stock"
	AvailabilityPreorder   = "preorder"
)

func variantRules() []Rule[VariantSubject] {
	return []Rule[VariantSubject]{
		{
			Field: "item_id", DisplayName: "Variant ID", Category: CategoryVariant, Weight: 10, Critical: true,
			Check:   func(s VariantSubject) bool { return s.Variant != nil && nonEmpty(s.Variant.ID) },
			Extract: func(s VariantSubject) string { return variantString(s, func(v *entity.Variant) string { return v.ID }) },
		},
		{
			Field: "gtin", DisplayName: "GTIN", Category: CategoryVariant, Weight: 5,
			Check: func(s VariantSubject) bool {
				return s.Variant != nil && isValidGTIN(s.Variant.Barcode)
			},
			Extract: func(s VariantSubject) string {
				return variantString(s, func(v *entity.Variant) string { return strings.TrimSpace(v.Barcode) })
			},
		},
		{
			Field: "mpn", DisplayName: "MPN / SKU", Category: CategoryVariant, Weight: 4,
			Check: func(s VariantSubject) bool { return s.Variant != nil && nonEmpty(s.Variant.SKU) },
			Extract: func(s VariantSubject) string {
				return variantString(s, func(v *entity.Variant) string { return strings.TrimSpace(v.SKU) })
			},
		},
		{
			Field: "item_group_id", DisplayName: "Item Group ID", Category: CategoryVariant, Weight: 4,
			Check:   func(s VariantSubject) bool { return s.Product != nil && nonEmpty(s.Product.ID) },
			Extract: itemGroupID,
		},
		{
			Field: "condition", DisplayName: "Condition", Category: CategoryVariant, Weight: 3,
			Check:   func(s VariantSubject) bool { return oneOf(attribute(s, "condition"), "new", "refurbished", "used") },
			Extract: func(s VariantSubject) string { return strings.ToLower(attribute(s, "condition")) },
		},
		{
			Field: "color", DisplayName: "Color", Category: CategoryVariant, Weight: 3,
			Check:   func(s VariantSubject) bool { return option(s, "color", "colour") != "" },
			Extract: func(s VariantSubject) string { return option(s, "color", "colour") },
		},
		{
			Field: "size", DisplayName: "Size", Category: CategoryVariant, Weight: 3,
			Check:   func(s VariantSubject) bool { return option(s, "size") != "" },
			Extract: func(s VariantSubject) string { return option(s, "size") },
		},
		{
			Field: "size_system", DisplayName: "Size System", Category: CategoryVariant, Weight: 1,
			Check: func(s VariantSubject) bool {
				return oneOf(attribute(s, "size_system"), "US", "UK", "EU", "DE", "FR", "IT", "JP", "CN", "BR", "MEX", "AU")
			},
			Extract: func(s VariantSubject) string { return strings.ToUpper(attribute(s, "size_system")) },
		},
		{
			Field: "gender", DisplayName: "Gender", Category: CategoryVariant, Weight: 2,
			Check:   func(s VariantSubject) bool { return oneOf(attribute(s, "gender"), "male", "female", "unisex") },
			Extract: func(s VariantSubject) string { return strings.ToLower(attribute(s, "gender")) },
		},
		{
			Field: "weight", DisplayName: "Weight", Category: CategoryVariant, Weight: 6, Critical: true,
			Check:   func(s VariantSubject) bool { return hasShippingWeight(s.Variant) },
			Extract: shippingWeight,
		},
	}
}

func pricePromotionRules() []Rule[VariantSubject] {
	return []Rule[VariantSubject]{
		{
			Field: "price", DisplayName: "Price", Category: CategoryPricePromotion, Weight: 10, Critical: true,
			Check: func(s VariantSubject) bool {
				if s.Variant == nil {
					return false
				}
				price, ok := parseDecimal(s.Variant.Price)

				return ok && price > 0
			},
			Extract: func(s VariantSubject) string {
				return variantString(s, func(v *entity.Variant) string { return strings.TrimSpace(v.Price) })
			},
		},
		{
			Field: "sale_price", DisplayName: "Sale Price", Category: CategoryPricePromotion, Weight: 2,
			Check:   func(s VariantSubject) bool { return salePrice(s) != "" },
			Extract: salePrice,
		},
		{
			// Tax display is computed at checkout; tracked for coverage only.
			Field: "applicable_taxes_fees", DisplayName: "Taxes & Fees", Category: CategoryPricePromotion, Weight: 0,
			Check:   func(s VariantSubject) bool { return tag(s.Product, "taxes_fees") != "" },
			Extract: func(s VariantSubject) string { return tag(s.Product, "taxes_fees") },
		},
		{
			Field: "unit_pricing_measure", DisplayName: "Unit Pricing Measure", Category: CategoryPricePromotion, Weight: 0,
			Check:   func(s VariantSubject) bool { return attribute(s, "unit_pricing_measure", "unit price measure") != "" },
			Extract: func(s VariantSubject) string { return attribute(s, "unit_pricing_measure", "unit price measure") },
		},
	}
}

func inventoryRules() []Rule[VariantSubject] {
	return []Rule[VariantSubject]{
		{
			Field: "availability", DisplayName: "Availability", Category: CategoryInventory, Weight: 10, Critical: true,
			Check:   func(s VariantSubject) bool { return availability(s) != "" },
			Extract: availability,
		},
		{
			Field: "inventory_quantity", DisplayName: "Inventory Quantity", Category: CategoryInventory, Weight: 8, Critical: true,
			Check: func(s VariantSubject) bool {
				quantity, ok := s.Variant.Quantity()

				return ok && quantity >= 0
			},
			Extract: func(s VariantSubject) string {
				if quantity, ok := s.Variant.Quantity(); ok {
					return itoa(quantity)
				}

				return ""
			},
		},
		{
			Field: "availability_date", DisplayName: "Availability Date", Category: CategoryInventory, Weight: 0,
			Check:   func(s VariantSubject) bool { return isDate(tag(s.Product, "availability_date")) },
			Extract: func(s VariantSubject) string { return tag(s.Product, "availability_date") },
		},
		{
			Field: "expiration_date", DisplayName: "Expiration Date", Category: CategoryInventory, Weight: 0,
			Check:   func(s VariantSubject) bool { return isDate(tag(s.Product, "expiration_date")) },
			Extract: func(s VariantSubject) string { return tag(s.Product, "expiration_date") },
		},
		{
			Field: "pickup_method", DisplayName: "Pickup Method", Category: CategoryInventory, Weight: 0,
			Check: func(s VariantSubject) bool {
				return oneOf(tag(s.Product, "pickup_method"), "in_store", "reserve", "not_supported")
			},
			Extract: func(s VariantSubject) string { return strings.ToLower(tag(s.Product, "pickup_method")) },
		},
	}
}

func variantString(s VariantSubject, get func(*entity.Variant) string) string {
	if s.Variant == nil {
		return ""
	}

	return get(s.Variant)
}

func option(s VariantSubject, names ...string) string {
	value, _ := s.Variant.Option(names...)

	return value
}

// attribute reads a variant option first and falls back to the product tag
// of the same name, so "Gender" may live on either level.
func attribute(s VariantSubject, names ...string) string {
	if value := option(s, names...); value != "" {
		return value
	}

	for _, name := range names {
		if value := tag(s.Product, name); value != "" {
			return value
		}
	}

	return ""
}

func itemGroupID(s VariantSubject) string {
	if s.Product == nil {
		return ""
	}

	return strings.TrimSpace(s.Product.ID)
}

func hasShippingWeight(v *entity.Variant) bool {
	weight, ok := v.ShippingWeight()
	if !ok || weight.Value <= 0 {
		return false
	}

	return oneOf(weight.Unit, entity.WeightUnitGrams, entity.WeightUnitKilograms, entity.WeightUnitOunces, entity.WeightUnitPounds)
}

func shippingWeight(s VariantSubject) string {
	weight, ok := s.Variant.ShippingWeight()
	if !ok {
		return ""
	}

	return strings.TrimSpace(formatDecimal(weight.Value) + " " + strings.ToUpper(weight.Unit))
}

func salePrice(s VariantSubject) string {
	if s.Variant == nil {
		return ""
	}

	price, ok := parseDecimal(s.Variant.Price)
	if !ok {
		return ""
	}

	compareAt, ok := parseDecimal(s.Variant.CompareAtPrice)
	if !ok || compareAt <= price {
		return ""
	}

	// The variant price is the discounted price when compareAtPrice is higher.
	return strings.TrimSpace(s.Variant.Price)
}

// availability derives the feed availability from known stock. It is empty
// when neither the variant nor the product reports inventory.
func availability(s VariantSubject) string {
	quantity, ok := s.Variant.Quantity()
	if !ok {
		if s.Product == nil || s.Product.TotalInventory == nil {
			return ""
		}
		quantity = *s.Product.TotalInventory
	}

	if quantity > 0 {
		return AvailabilityInStock
	}

	if s.Variant != nil && strings.EqualFold(s.Variant.InventoryPolicy, entity.InventoryPolicyContinue) {
		return AvailabilityPreorder
	}

	return AvailabilityOutOfStock
}
