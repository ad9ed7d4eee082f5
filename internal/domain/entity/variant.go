package entity

import "strings"

// Weight units accepted by the Shopify measurement API.
const (
	WeightUnitGrams     = "GRAMS"
	WeightUnitKilograms = "KILOGRAMS"
	WeightUnitOunces    = "OUNCES"
	WeightUnitPounds    = "POUNDS"
)

// Variant is one purchasable offer of a product.
type Variant struct {
	ID                string           `json:"id"`
	Title             string           `json:"title,omitempty"`
	SKU               string           `json:"sku,omitempty"`
	Barcode           string           `json:"barcode,omitempty"`
	Price             string           `json:"price,omitempty"`
	CompareAtPrice    string           `json:"compareAtPrice,omitempty"`
	SelectedOptions   []SelectedOption `json:"selectedOptions,omitempty"`
	InventoryQuantity *int             `json:"inventoryQuantity,omitempty"`
	InventoryPolicy   string           `json:"inventoryPolicy,omitempty"`
	InventoryItem     *InventoryItem   `json:"inventoryItem,omitempty"`

	// Legacy REST fields, used when inventoryItem.measurement is absent.
	Weight     *float64 `json:"weight,omitempty"`
	WeightUnit string   `json:"weightUnit,omitempty"`
}

// SelectedOption is a name/value pair such as Color=Red.
type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// InventoryItem holds the stock and shipping attributes of a variant.
type InventoryItem struct {
	Tracked         bool             `json:"tracked"`
	Measurement     *Measurement     `json:"measurement,omitempty"`
	InventoryLevels []InventoryLevel `json:"inventoryLevels,omitempty"`
}

// Measurement wraps the shipping weight.
type Measurement struct {
	Weight *WeightValue `json:"weight,omitempty"`
}

// WeightValue is a weight with its unit.
type WeightValue struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// InventoryLevel is the available stock at one location.
type InventoryLevel struct {
	Location  Location `json:"location"`
	Available int      `json:"available"`
}

// Location identifies a stock location.
type Location struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

// Option returns the value of the first selected option whose name matches
// any of names (case-insensitive).
func (v *Variant) Option(names ...string) (string, bool) {
	if v == nil {
		return "", false
	}

	for _, opt := range v.SelectedOptions {
		for _, name := range names {
			if normalizeKey(opt.Name) != normalizeKey(name) {
				continue
			}
			if value := strings.TrimSpace(opt.Value); value != "" {
				return value, true
			}
		}
	}

	return "", false
}

// Quantity returns the known stock for the variant: inventoryQuantity when
// present, otherwise the sum over inventory levels. ok is false when neither
// source is available.
func (v *Variant) Quantity() (quantity int, ok bool) {
	if v == nil {
		return 0, false
	}

	if v.InventoryQuantity != nil {
		return *v.InventoryQuantity, true
	}

	if v.InventoryItem == nil || len(v.InventoryItem.InventoryLevels) == 0 {
		return 0, false
	}

	for _, level := range v.InventoryItem.InventoryLevels {
		quantity += level.Available
	}

	return quantity, true
}

// ShippingWeight returns the measured weight, falling back to the legacy fields.
func (v *Variant) ShippingWeight() (WeightValue, bool) {
	if v == nil {
		return WeightValue{}, false
	}

	if v.InventoryItem != nil && v.InventoryItem.Measurement != nil && v.InventoryItem.Measurement.Weight != nil {
		return *v.InventoryItem.Measurement.Weight, true
	}

	if v.Weight != nil {
		return WeightValue{Value: *v.Weight, Unit: v.WeightUnit}, true
	}

	return WeightValue{}, false
}
