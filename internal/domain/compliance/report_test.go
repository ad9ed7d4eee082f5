package compliance

import (
	"testing"

	"acp/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateComplianceReport_Empty(t *testing.T) {
	t.Parallel()

	for _, products := range [][]*entity.Product{nil, {}} {
		report := GenerateComplianceReport(products, completeShop())

		assert.Zero(t, report.OverallScore)
		assert.Zero(t, report.TotalProducts)
		assert.Zero(t, report.CompliantProducts)
		assert.Zero(t, report.NeedsImprovementProducts)
		assert.Zero(t, report.NonCompliantProducts)
		assert.NotNil(t, report.FieldCoverage)
		assert.Empty(t, report.FieldCoverage)
		assert.NotNil(t, report.Products)
		assert.Empty(t, report.Products)
		assert.NotNil(t, report.Recommendations)
		assert.Empty(t, report.Recommendations)
	}
}

func TestGenerateComplianceReport_Aggregates(t *testing.T) {
	t.Parallel()

	products := []*entity.Product{acmeProduct(), completeProduct(), {ID: "gid://shopify/Product/9"}}
	report := NewScorer().GenerateComplianceReport(products, completeShop())

	require.Len(t, report.Products, 3)
	assert.Equal(t, 3, report.TotalProducts)
	assert.Equal(t, 1, report.CompliantProducts)
	assert.Equal(t, 1, report.NeedsImprovementProducts)
	assert.Equal(t, 1, report.NonCompliantProducts)

	sum := 0
	for _, p := range report.Products {
		sum += p.ComplianceScore
	}
	assert.Equal(t, percentage(sum, 300), report.OverallScore)

	assert.Len(t, report.FieldCoverage, 45)

	material := report.FieldCoverage["material"]
	assert.Equal(t, 1, material.Filled)
	assert.Equal(t, 2, material.Missing)
	assert.Equal(t, 33, material.Percentage)
	assert.Equal(t, "Merino wool", material.ExampleValue)
	assert.Equal(t, string(ScopeProduct), material.Scope)

	price := report.FieldCoverage["price"]
	assert.Equal(t, 3, price.Filled, "zero variants satisfy critical variant rules")
	assert.Equal(t, 100, price.Percentage)
	assert.Equal(t, "19.99", price.ExampleValue)

	gtin := report.FieldCoverage["gtin"]
	assert.Equal(t, 2, gtin.Filled)
	assert.Equal(t, 1, gtin.Missing)
}

func TestGenerateComplianceReport_CoverageMatchesAnalysis(t *testing.T) {
	t.Parallel()

	products := []*entity.Product{acmeProduct(), completeProduct(), {}}
	report := NewScorer().GenerateComplianceReport(products, nil)

	for field, coverage := range report.FieldCoverage {
		if coverage.Scope == string(ScopeShop) {
			continue
		}

		missing := 0
		for _, p := range report.Products {
			for _, m := range p.MissingFields {
				if m.Field == field {
					missing++
				}
			}
		}
		assert.Equal(t, missing, coverage.Missing, field)
		assert.Equal(t, len(products)-missing, coverage.Filled, field)
	}
}

func TestGenerateComplianceReport_ShopCoverage(t *testing.T) {
	t.Parallel()

	t.Run("complete shop", func(t *testing.T) {
		t.Parallel()

		report := GenerateComplianceReport([]*entity.Product{acmeProduct()}, completeShop())

		for _, field := range []string{"shipping", "seller_name", "seller_url", "seller_privacy_policy", "seller_tos", "seller_contact_email", "return_policy", "return_window"} {
			coverage := report.FieldCoverage[field]
			assert.Equal(t, 1, coverage.Filled, field)
			assert.Zero(t, coverage.Missing, field)
			assert.Equal(t, 100, coverage.Percentage, field)
		}
		assert.Equal(t, "30", report.FieldCoverage["return_window"].ExampleValue)

		estimate := report.FieldCoverage["delivery_estimate"]
		assert.True(t, estimate.NotApplicable)
		assert.Zero(t, estimate.Filled+estimate.Missing)
	})

	t.Run("no shop", func(t *testing.T) {
		t.Parallel()

		report := GenerateComplianceReport([]*entity.Product{acmeProduct()}, nil)

		shipping := report.FieldCoverage["shipping"]
		assert.Equal(t, 1, shipping.Missing)
		assert.False(t, shipping.NotApplicable)

		email := report.FieldCoverage["seller_contact_email"]
		assert.True(t, email.NotApplicable)
		assert.Zero(t, email.Filled+email.Missing)

		window := report.FieldCoverage["return_window"]
		assert.True(t, window.NotApplicable)
	})

	t.Run("invalid optional value counts as missing", func(t *testing.T) {
		t.Parallel()

		shop := completeShop()
		shop.ContactEmail = "not-an-email"

		report := GenerateComplianceReport([]*entity.Product{acmeProduct()}, shop)
		email := report.FieldCoverage["seller_contact_email"]

		assert.False(t, email.NotApplicable)
		assert.Equal(t, 1, email.Missing)
	})
}

func TestGenerateComplianceReport_ShopDoesNotChangeProductScore(t *testing.T) {
	t.Parallel()

	withShop := GenerateComplianceReport([]*entity.Product{acmeProduct()}, completeShop())
	withoutShop := GenerateComplianceReport([]*entity.Product{acmeProduct()}, nil)

	assert.Equal(t, withoutShop.OverallScore, withShop.OverallScore)
	assert.Equal(t, 76, withShop.OverallScore)
}

func TestGenerateComplianceReport_Recommendations(t *testing.T) {
	t.Parallel()

	products := []*entity.Product{acmeProduct(), acmeProduct(), {ID: "gid://shopify/Product/9"}}
	report := NewScorer().GenerateComplianceReport(products, nil)
	recs := report.Recommendations

	require.Len(t, recs, DefaultMaxRecommendations)

	seenOptional := false
	for i, rec := range recs {
		if !rec.Critical {
			seenOptional = true
		}
		if seenOptional {
			assert.False(t, rec.Critical, "critical recommendation %q after optional ones", rec.Field)
		}
		if i > 0 && recs[i-1].Critical == rec.Critical {
			assert.GreaterOrEqual(t, recs[i-1].AffectedProducts, rec.AffectedProducts)
		}
	}

	byField := map[string]entity.Recommendation{}
	for _, rec := range recs {
		byField[rec.Field] = rec
	}

	require.Contains(t, byField, "material")
	assert.Equal(t, "All 3 products are missing Material", byField["material"].Message)
	assert.Equal(t, 3, byField["material"].AffectedProducts)

	require.Contains(t, byField, "title")
	assert.Equal(t, "1 of 3 products is missing Title", byField["title"].Message)

	require.Contains(t, byField, "shipping")
	assert.Equal(t, "Shop is missing Shipping Rates", byField["shipping"].Message)
	assert.Equal(t, 1, byField["shipping"].AffectedProducts)
}

func TestGenerateComplianceReport_RecommendationLimit(t *testing.T) {
	t.Parallel()

	products := []*entity.Product{{}}

	full := NewScorer(WithMaxRecommendations(100)).GenerateComplianceReport(products, nil)
	assert.Greater(t, len(full.Recommendations), DefaultMaxRecommendations)
	assert.Equal(t, "1 product is missing Title", messageFor(full.Recommendations, "title"))

	capped := NewScorer(WithMaxRecommendations(3)).GenerateComplianceReport(products, nil)
	require.Len(t, capped.Recommendations, 3)
	assert.Equal(t, full.Recommendations[:3], capped.Recommendations)
}

func messageFor(recs []entity.Recommendation, field string) string {
	for _, rec := range recs {
		if rec.Field == field {
			return rec.Message
		}
	}

	return ""
}
