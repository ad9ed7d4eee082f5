package compliance

import (
	"math"
	"slices"
	"sync"

	"acp/internal/domain/entity"
)

// DefaultMaxRecommendations caps the recommendation list of a report.
const DefaultMaxRecommendations = 10

//nolint:gochecknoglobals
var defaultRuleSet = sync.OnceValue(func() *RuleSet {
	return MustNewRuleSet(
		slices.Concat(productRules(), performanceRules(), mediaRules()),
		slices.Concat(variantRules(), pricePromotionRules(), inventoryRules()),
		slices.Concat(shippingRules(), merchantRules(), returnsRules()),
	)
})

// DefaultRuleSet returns the built-in ACP rule catalog.
func DefaultRuleSet() *RuleSet {
	return defaultRuleSet()
}

// Scorer evaluates products against a RuleSet.
type Scorer struct {
	rules              *RuleSet
	maxRecommendations int
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithMaxRecommendations sets how many recommendations a report keeps.
// Non-positive values are ignored.
func WithMaxRecommendations(n int) Option {
	return func(s *Scorer) {
		if n > 0 {
			s.maxRecommendations = n
		}
	}
}

// WithRuleSet replaces the built-in catalog.
func WithRuleSet(rs *RuleSet) Option {
	return func(s *Scorer) {
		if rs != nil {
			s.rules = rs
		}
	}
}

// NewScorer builds a Scorer over the default catalog unless overridden.
func NewScorer(opts ...Option) *Scorer {
	s := &Scorer{
		rules:              DefaultRuleSet(),
		maxRecommendations: DefaultMaxRecommendations,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Rules lists the catalog the scorer evaluates.
func (s *Scorer) Rules() []RuleDescriptor {
	return s.rules.Descriptors()
}

// RuleSet exposes the scorer's rule set.
func (s *Scorer) RuleSet() *RuleSet {
	return s.rules
}

// evaluation holds the accepted pass result of every product-level rule for
// one product. Variant results already have the quantifier applied.
type evaluation struct {
	product []bool
	variant []bool
}

func (s *Scorer) evaluate(p *entity.Product, shop *entity.Shop) evaluation {
	ev := evaluation{
		product: make([]bool, len(s.rules.product)),
		variant: make([]bool, len(s.rules.variant)),
	}
	for i, r := range s.rules.product {
		ev.product[i] = r.Passes(p)
	}
	for i, r := range s.rules.variant {
		ev.variant[i] = passesVariants(r, p, shop)
	}

	return ev
}

// AnalyzeProduct scores a single product. The shop is optional and only
// visible to variant rules.
func (s *Scorer) AnalyzeProduct(p *entity.Product, shop *entity.Shop) entity.ProductComplianceAnalysis {
	return s.analyze(p, shop, s.evaluate(p, shop))
}

func (s *Scorer) analyze(p *entity.Product, shop *entity.Shop, ev evaluation) entity.ProductComplianceAnalysis {
	analysis := entity.ProductComplianceAnalysis{
		TotalFields:   s.rules.TotalFields(),
		TotalWeight:   s.rules.TotalWeight(),
		MissingFields: []entity.MissingField{},
		Warnings:      variantWarnings(p),
		Variants:      s.variantBreakdown(p, shop),
		MediaData:     mediaData(s.rules, p),
	}
	if p != nil {
		analysis.ProductID = p.ID
		analysis.Title = p.Title
		analysis.Handle = p.Handle
	}

	for i, r := range s.rules.product {
		if ev.product[i] {
			analysis.FilledFields++
			analysis.EarnedWeight += r.Weight
		} else {
			analysis.MissingFields = append(analysis.MissingFields, r.missingField())
		}
	}
	for i, r := range s.rules.variant {
		if ev.variant[i] {
			analysis.FilledFields++
			analysis.EarnedWeight += r.Weight
		} else {
			analysis.MissingFields = append(analysis.MissingFields, r.missingField())
		}
	}
	sortByCategory(analysis.MissingFields, func(m entity.MissingField) Category { return Category(m.Category) })

	analysis.ComplianceScore = weightedScore(analysis.EarnedWeight, analysis.TotalWeight)
	analysis.Status = entity.StatusForScore(analysis.ComplianceScore)

	return analysis
}

// weightedScore is round(100 * earned / total). A rule set without weight
// has nothing to miss.
func weightedScore(earned, total int) int {
	if total <= 0 {
		return 100
	}

	return percentage(earned, total)
}

func percentage(part, whole int) int {
	if whole <= 0 {
		return 0
	}

	return int(math.Round(100 * float64(part) / float64(whole)))
}

func (s *Scorer) variantBreakdown(p *entity.Product, shop *entity.Shop) []entity.VariantComplianceAnalysis {
	variants := variantsOf(p)
	out := make([]entity.VariantComplianceAnalysis, 0, len(variants))

	for _, v := range variants {
		subject := VariantSubject{Product: p, Variant: v, Shop: shop}
		va := entity.VariantComplianceAnalysis{
			VariantID:     v.ID,
			Title:         v.Title,
			SKU:           v.SKU,
			MissingFields: []entity.MissingField{},
			Condition:     s.rules.variantValue("condition", subject),
			Color:         s.rules.variantValue("color", subject),
			Size:          s.rules.variantValue("size", subject),
			Gender:        s.rules.variantValue("gender", subject),
			SizeSystem:    s.rules.variantValue("size_system", subject),
			GTIN:          s.rules.variantValue("gtin", subject),
			MPN:           s.rules.variantValue("mpn", subject),
			Price:         s.rules.variantValue("price", subject),
			SalePrice:     s.rules.variantValue("sale_price", subject),
			Weight:        s.rules.variantValue("weight", subject),
			Availability:  s.rules.variantValue("availability", subject),
		}
		if quantity, ok := v.Quantity(); ok {
			va.InventoryQuantity = &quantity
		}

		for _, r := range s.rules.variant {
			if !r.Passes(subject) {
				va.MissingFields = append(va.MissingFields, r.missingField())
			}
		}
		out = append(out, va)
	}

	return out
}

// variantWarnings flags attributes that only some variants carry.
func variantWarnings(p *entity.Product) []string {
	variants := variantsOf(p)
	warnings := []string{}
	if len(variants) == 0 {
		return warnings
	}

	attributes := []struct {
		name string
		has  func(*entity.Variant) bool
	}{
		{"weight", hasShippingWeight},
		{"barcode", func(v *entity.Variant) bool { return nonEmpty(v.Barcode) }},
		{"sku", func(v *entity.Variant) bool { return nonEmpty(v.SKU) }},
	}

	for _, attr := range attributes {
		missing := 0
		for _, v := range variants {
			if !attr.has(v) {
				missing++
			}
		}
		if missing > 0 && missing < len(variants) {
			warnings = append(warnings, itoa(missing)+" of "+itoa(len(variants))+" variants missing "+attr.name)
		}
	}

	return warnings
}

//nolint:gochecknoglobals
var scorer = sync.OnceValue(func() *Scorer { return NewScorer() })

// AnalyzeProduct scores p with the default scorer.
func AnalyzeProduct(p *entity.Product, shop *entity.Shop) entity.ProductComplianceAnalysis {
	return scorer().AnalyzeProduct(p, shop)
}

// GenerateComplianceReport scores a catalog with the default scorer.
func GenerateComplianceReport(products []*entity.Product, shop *entity.Shop) entity.ComplianceReport {
	return scorer().GenerateComplianceReport(products, shop)
}
