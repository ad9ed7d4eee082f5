// Package compliance scores product catalogs against the Agentic Checkout
// Protocol (ACP) product feed requirements.
//
// Rules are data: each category is an ordered table of Rule values, and the
// Scorer walks those tables uniformly. Nothing in this package performs I/O
// or mutates its inputs, so a Scorer may be shared between goroutines.
package compliance

import (
	"fmt"

	"acp/internal/domain/entity"
	"acp/internal/errors"
)

// Category groups rules for display and for the per-variant breakdown.
type Category string

const (
	CategoryProduct        Category = "product"
	CategoryVariant        Category = "variant"
	CategoryPerformance    Category = "performance"
	CategoryPricePromotion Category = "price_promotion"
	CategoryInventory      Category = "inventory"
	CategoryMedia          Category = "media"
	CategoryShipping       Category = "shipping"
	CategoryMerchant       Category = "merchant"
	CategoryReturns        Category = "returns"
)

// Scope is the kind of record a rule is evaluated against.
type Scope string

const (
	ScopeProduct Scope = "product"
	ScopeVariant Scope = "variant"
	ScopeShop    Scope = "shop"
)

// MaxWeight is the largest weight a rule may carry.
const MaxWeight = 10

//nolint:gochecknoglobals
var categoryOrder = map[Category]int{
	CategoryProduct:        0,
	CategoryVariant:        1,
	CategoryPerformance:    2,
	CategoryPricePromotion: 3,
	CategoryInventory:      4,
	CategoryMedia:          5,
	CategoryShipping:       6,
	CategoryMerchant:       7,
	CategoryReturns:        8,
}

// Scope returns the scope every rule in the category is evaluated against.
func (c Category) Scope() Scope {
	switch c {
	case CategoryProduct, CategoryPerformance, CategoryMedia:
		return ScopeProduct
	case CategoryVariant, CategoryPricePromotion, CategoryInventory:
		return ScopeVariant
	case CategoryShipping, CategoryMerchant, CategoryReturns:
		return ScopeShop
	default:
		return ""
	}
}

// VariantSubject is what a variant-scoped rule sees: the variant, its owning
// product (for item_group_id and product-level tags) and the optional shop.
type VariantSubject struct {
	Product *entity.Product
	Variant *entity.Variant
	Shop    *entity.Shop
}

// Rule is one field requirement. Check must be total: missing data makes it
// return false, never panic. Extract, when set, projects the value the rule
// looks at for display; it returns "" when nothing can be extracted.
type Rule[T any] struct {
	Field       string
	DisplayName string
	Category    Category
	Weight      int
	Critical    bool
	Check       func(T) bool
	Extract     func(T) string
}

// Passes evaluates the rule against subject.
func (r Rule[T]) Passes(subject T) bool {
	if r.Check == nil {
		return false
	}

	return r.Check(subject)
}

// Value extracts the rule's display value from subject.
func (r Rule[T]) Value(subject T) string {
	if r.Extract == nil {
		return ""
	}

	return r.Extract(subject)
}

func (r Rule[T]) missingField() entity.MissingField {
	return entity.MissingField{
		Field:       r.Field,
		DisplayName: r.DisplayName,
		Category:    string(r.Category),
		Critical:    r.Critical,
		Weight:      r.Weight,
	}
}

func (r Rule[T]) descriptor() RuleDescriptor {
	return RuleDescriptor{
		Field:       r.Field,
		DisplayName: r.DisplayName,
		Category:    r.Category,
		Scope:       r.Category.Scope(),
		Weight:      r.Weight,
		Critical:    r.Critical,
	}
}

// RuleDescriptor is the serializable description of a rule.
type RuleDescriptor struct {
	Field       string   `json:"field" yaml:"field"`
	DisplayName string   `json:"display_name" yaml:"display_name"`
	Category    Category `json:"category" yaml:"category"`
	Scope       Scope    `json:"scope" yaml:"scope"`
	Weight      int      `json:"weight" yaml:"weight"`
	Critical    bool     `json:"critical" yaml:"critical"`
}

// RuleSet is an immutable, validated collection of rules split by scope.
type RuleSet struct {
	product []Rule[*entity.Product]
	variant []Rule[VariantSubject]
	shop    []Rule[*entity.Shop]

	variantByField map[string]Rule[VariantSubject]
	productByField map[string]Rule[*entity.Product]

	totalWeight int
}

// NewRuleSet validates and freezes the given tables. Fields must be unique
// across all scopes, weights must lie in [0, MaxWeight], every rule needs a
// Check, and each rule's category must belong to the scope it is listed in.
func NewRuleSet(product []Rule[*entity.Product], variant []Rule[VariantSubject], shop []Rule[*entity.Shop]) (*RuleSet, error) {
	rs := &RuleSet{
		product:        append([]Rule[*entity.Product](nil), product...),
		variant:        append([]Rule[VariantSubject](nil), variant...),
		shop:           append([]Rule[*entity.Shop](nil), shop...),
		variantByField: make(map[string]Rule[VariantSubject], len(variant)),
		productByField: make(map[string]Rule[*entity.Product], len(product)),
	}

	seen := make(map[string]struct{}, len(product)+len(variant)+len(shop))
	validate := func(field string, category Category, scope Scope, weight int, hasCheck bool) error {
		if field == "" {
			return errors.New("rule field must not be empty")
		}
		if _, dup := seen[field]; dup {
			return errors.Errorf("duplicate rule field %q", field)
		}
		seen[field] = struct{}{}

		if category.Scope() != scope {
			return errors.Errorf("rule %q: category %q is not %s-scoped", field, category, scope)
		}
		if weight < 0 || weight > MaxWeight {
			return errors.Errorf("rule %q: weight %d out of range [0, %d]", field, weight, MaxWeight)
		}
		if !hasCheck {
			return errors.Errorf("rule %q: missing check", field)
		}

		return nil
	}

	for _, r := range rs.product {
		if err := validate(r.Field, r.Category, ScopeProduct, r.Weight, r.Check != nil); err != nil {
			return nil, err
		}
		rs.productByField[r.Field] = r
		rs.totalWeight += r.Weight
	}
	for _, r := range rs.variant {
		if err := validate(r.Field, r.Category, ScopeVariant, r.Weight, r.Check != nil); err != nil {
			return nil, err
		}
		rs.variantByField[r.Field] = r
		rs.totalWeight += r.Weight
	}
	for _, r := range rs.shop {
		if err := validate(r.Field, r.Category, ScopeShop, r.Weight, r.Check != nil); err != nil {
			return nil, err
		}
	}

	return rs, nil
}

// MustNewRuleSet is NewRuleSet for tables known to be valid at init time.
func MustNewRuleSet(product []Rule[*entity.Product], variant []Rule[VariantSubject], shop []Rule[*entity.Shop]) *RuleSet {
	rs, err := NewRuleSet(product, variant, shop)
	if err != nil {
		panic(fmt.Sprintf("compliance: invalid rule set: %v", err))
	}

	return rs
}

// TotalFields is the number of product-level rules (product and variant scope).
func (rs *RuleSet) TotalFields() int {
	return len(rs.product) + len(rs.variant)
}

// TotalWeight is the sum of all product-level rule weights.
func (rs *RuleSet) TotalWeight() int {
	return rs.totalWeight
}

// Descriptors lists every rule in category order.
func (rs *RuleSet) Descriptors() []RuleDescriptor {
	out := make([]RuleDescriptor, 0, len(rs.product)+len(rs.variant)+len(rs.shop))
	for _, r := range rs.product {
		out = append(out, r.descriptor())
	}
	for _, r := range rs.variant {
		out = append(out, r.descriptor())
	}
	for _, r := range rs.shop {
		out = append(out, r.descriptor())
	}

	sortByCategory(out, func(d RuleDescriptor) Category { return d.Category })

	return out
}

func (rs *RuleSet) variantValue(field string, subject VariantSubject) string {
	r, ok := rs.variantByField[field]
	if !ok {
		return ""
	}

	return r.Value(subject)
}

func (rs *RuleSet) productRule(field string) (Rule[*entity.Product], bool) {
	r, ok := rs.productByField[field]

	return r, ok
}

// passesVariants applies the variant quantifier: a critical rule must hold for
// every variant (vacuously true with none), an optional rule for at least one.
func passesVariants(rule Rule[VariantSubject], product *entity.Product, shop *entity.Shop) bool {
	variants := variantsOf(product)

	if rule.Critical {
		for _, v := range variants {
			if !rule.Passes(VariantSubject{Product: product, Variant: v, Shop: shop}) {
				return false
			}
		}

		return true
	}

	for _, v := range variants {
		if rule.Passes(VariantSubject{Product: product, Variant: v, Shop: shop}) {
			return true
		}
	}

	return false
}

// firstPassingValue returns the extracted value of the first variant that passes.
func firstPassingValue(rule Rule[VariantSubject], product *entity.Product, shop *entity.Shop) string {
	for _, v := range variantsOf(product) {
		subject := VariantSubject{Product: product, Variant: v, Shop: shop}
		if rule.Passes(subject) {
			if value := rule.Value(subject); value != "" {
				return value
			}
		}
	}

	return ""
}

// variantsOf returns the non-nil variants of product.
func variantsOf(product *entity.Product) []*entity.Variant {
	if product == nil {
		return nil
	}

	variants := make([]*entity.Variant, 0, len(product.Variants))
	for _, v := range product.Variants {
		if v != nil {
			variants = append(variants, v)
		}
	}

	return variants
}
