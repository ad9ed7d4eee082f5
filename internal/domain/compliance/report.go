package compliance

import (
	"cmp"
	"math"
	"slices"

	"acp/internal/domain/entity"
)

// GenerateComplianceReport scores every product and aggregates coverage and
// recommendations across the catalog. Nil entries are scored as empty products.
func (s *Scorer) GenerateComplianceReport(products []*entity.Product, shop *entity.Shop) entity.ComplianceReport {
	report := entity.ComplianceReport{
		FieldCoverage:   map[string]entity.FieldCoverage{},
		Products:        []entity.ProductComplianceAnalysis{},
		Recommendations: []entity.Recommendation{},
	}
	if len(products) == 0 {
		return report
	}

	evaluations := make([]evaluation, len(products))
	scoreSum := 0
	for i, p := range products {
		evaluations[i] = s.evaluate(p, shop)
		analysis := s.analyze(p, shop, evaluations[i])
		report.Products = append(report.Products, analysis)
		scoreSum += analysis.ComplianceScore

		switch analysis.Status {
		case entity.StatusCompliant:
			report.CompliantProducts++
		case entity.StatusNeedsImprovement:
			report.NeedsImprovementProducts++
		case entity.StatusNonCompliant:
			report.NonCompliantProducts++
		}
	}
	report.TotalProducts = len(products)
	report.OverallScore = int(math.Round(float64(scoreSum) / float64(len(products))))

	coverage := s.coverage(products, shop, evaluations)
	for _, c := range coverage {
		report.FieldCoverage[c.Field] = c
	}
	report.Recommendations = s.recommendations(coverage, len(products))

	return report
}

// coverage returns one entry per rule, in catalog order. Product-level rules
// reuse the per-product evaluations so the quantifier is applied once.
func (s *Scorer) coverage(products []*entity.Product, shop *entity.Shop, evaluations []evaluation) []entity.FieldCoverage {
	out := make([]entity.FieldCoverage, 0, len(s.rules.product)+len(s.rules.variant)+len(s.rules.shop))

	for i, r := range s.rules.product {
		c := newCoverage(r.descriptor())
		for j, p := range products {
			if !evaluations[j].product[i] {
				c.Missing++

				continue
			}
			c.Filled++
			if c.ExampleValue == "" {
				c.ExampleValue = r.Value(p)
			}
		}
		c.Percentage = percentage(c.Filled, len(products))
		out = append(out, c)
	}

	for i, r := range s.rules.variant {
		c := newCoverage(r.descriptor())
		for j, p := range products {
			if !evaluations[j].variant[i] {
				c.Missing++

				continue
			}
			c.Filled++
			if c.ExampleValue == "" {
				c.ExampleValue = firstPassingValue(r, p, shop)
			}
		}
		c.Percentage = percentage(c.Filled, len(products))
		out = append(out, c)
	}

	for _, r := range s.rules.shop {
		out = append(out, shopCoverage(r, shop))
	}

	sortByCategory(out, func(c entity.FieldCoverage) Category { return Category(c.Category) })

	return out
}

// shopCoverage counts the single shop once. An optional rule with nothing to
// extract is not applicable and counts neither way.
func shopCoverage(r Rule[*entity.Shop], shop *entity.Shop) entity.FieldCoverage {
	c := newCoverage(r.descriptor())
	value := r.Value(shop)

	switch {
	case !r.Critical && value == "":
		c.NotApplicable = true
	case r.Passes(shop):
		c.Filled = 1
		c.ExampleValue = value
	default:
		c.Missing = 1
	}
	c.Percentage = percentage(c.Filled, c.Filled+c.Missing)

	return c
}

func newCoverage(d RuleDescriptor) entity.FieldCoverage {
	return entity.FieldCoverage{
		Field:       d.Field,
		DisplayName: d.DisplayName,
		Category:    string(d.Category),
		Scope:       string(d.Scope),
		Critical:    d.Critical,
		Weight:      d.Weight,
	}
}

// recommendations ranks gaps: critical first, then by affected products.
func (s *Scorer) recommendations(coverage []entity.FieldCoverage, totalProducts int) []entity.Recommendation {
	out := []entity.Recommendation{}
	for _, c := range coverage {
		if c.Missing == 0 {
			continue
		}
		out = append(out, entity.Recommendation{
			Field:            c.Field,
			DisplayName:      c.DisplayName,
			Category:         c.Category,
			Critical:         c.Critical,
			Weight:           c.Weight,
			AffectedProducts: c.Missing,
			Message:          recommendationMessage(c, totalProducts),
		})
	}

	slices.SortStableFunc(out, func(a, b entity.Recommendation) int {
		if a.Critical != b.Critical {
			if a.Critical {
				return -1
			}

			return 1
		}

		return cmp.Compare(b.AffectedProducts, a.AffectedProducts)
	})

	if len(out) > s.maxRecommendations {
		out = out[:s.maxRecommendations]
	}

	return out
}

func recommendationMessage(c entity.FieldCoverage, totalProducts int) string {
	switch {
	case c.Scope == string(ScopeShop):
		return "Shop is missing " + c.DisplayName
	case totalProducts == 1:
		return "1 product is missing " + c.DisplayName
	case c.Missing == totalProducts:
		return "All " + itoa(totalProducts) + " products are missing " + c.DisplayName
	case c.Missing == 1:
		return "1 of " + itoa(totalProducts) + " products is missing " + c.DisplayName
	default:
		return itoa(c.Missing) + " of " + itoa(totalProducts) + " products are missing " + c.DisplayName
	}
}
