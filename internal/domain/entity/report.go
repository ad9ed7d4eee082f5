package entity

import "time"

// ComplianceStatus buckets a compliance score.
type ComplianceStatus string

const (
	StatusCompliant        ComplianceStatus = "compliant"
	StatusNeedsImprovement ComplianceStatus = "needs_improvement"
	StatusNonCompliant     ComplianceStatus = "non_compliant"
)

// Score thresholds for status bucketing.
const (
	CompliantThreshold        = 90
	NeedsImprovementThreshold = 50
)

// StatusForScore maps a 0-100 score to its status bucket.
func StatusForScore(score int) ComplianceStatus {
	switch {
	case score >= CompliantThreshold:
		return StatusCompliant
	case score >= NeedsImprovementThreshold:
		return StatusNeedsImprovement
	default:
		return StatusNonCompliant
	}
}

// MissingField is a rule that a product or variant failed.
type MissingField struct {
	Field       string `json:"field"`
	DisplayName string `json:"display_name"`
	Category    string `json:"category"`
	Critical    bool   `json:"critical"`
	Weight      int    `json:"weight"`
}

// MediaData summarizes the media attached to a product.
type MediaData struct {
	ImageLink            string `json:"image_link"`
	AdditionalImageCount int    `json:"additional_image_count"`
	HasVideo             bool   `json:"has_video"`
	Has3DModel           bool   `json:"has_3d_model"`
}

// VariantComplianceAnalysis is the per-variant breakdown of a product analysis.
type VariantComplianceAnalysis struct {
	VariantID         string         `json:"variant_id"`
	Title             string         `json:"title,omitempty"`
	SKU               string         `json:"sku,omitempty"`
	MissingFields     []MissingField `json:"missing_fields"`
	Condition         string         `json:"condition,omitempty"`
	Color             string         `json:"color,omitempty"`
	Size              string         `json:"size,omitempty"`
	Gender            string         `json:"gender,omitempty"`
	SizeSystem        string         `json:"size_system,omitempty"`
	GTIN              string         `json:"gtin,omitempty"`
	MPN               string         `json:"mpn,omitempty"`
	Price             string         `json:"price,omitempty"`
	SalePrice         string         `json:"sale_price,omitempty"`
	Weight            string         `json:"weight,omitempty"`
	Availability      string         `json:"availability,omitempty"`
	InventoryQuantity *int           `json:"inventory_quantity,omitempty"`
}

// ProductComplianceAnalysis is the scored result for one product.
type ProductComplianceAnalysis struct {
	ProductID       string                      `json:"product_id"`
	Title           string                      `json:"title"`
	Handle          string                      `json:"handle"`
	ComplianceScore int                         `json:"compliance_score"`
	Status          ComplianceStatus            `json:"status"`
	TotalFields     int                         `json:"total_fields"`
	FilledFields    int                         `json:"filled_fields"`
	EarnedWeight    int                         `json:"earned_weight"`
	TotalWeight     int                         `json:"total_weight"`
	MissingFields   []MissingField              `json:"missing_fields"`
	Warnings        []string                    `json:"warnings"`
	Variants        []VariantComplianceAnalysis `json:"variants"`
	MediaData       MediaData                   `json:"media_data"`
}

// FieldCoverage aggregates one rule across a whole catalog.
type FieldCoverage struct {
	Field         string `json:"field"`
	DisplayName   string `json:"display_name"`
	Category      string `json:"category"`
	Scope         string `json:"scope"`
	Critical      bool   `json:"critical"`
	Weight        int    `json:"weight"`
	Filled        int    `json:"filled"`
	Missing       int    `json:"missing"`
	Percentage    int    `json:"percentage"`
	NotApplicable bool   `json:"not_applicable,omitempty"`
	ExampleValue  string `json:"example_value,omitempty"`
}

// Recommendation is a ranked fix suggestion derived from field coverage.
type Recommendation struct {
	Field            string `json:"field"`
	DisplayName      string `json:"display_name"`
	Category         string `json:"category"`
	Critical         bool   `json:"critical"`
	Weight           int    `json:"weight"`
	AffectedProducts int    `json:"affected_products"`
	Message          string `json:"message"`
}

// ComplianceReport is the catalog-level result.
type ComplianceReport struct {
	ReportID                 string                      `json:"report_id,omitempty"`
	GeneratedAt              *time.Time                  `json:"generated_at,omitempty"`
	OverallScore             int                         `json:"overall_score"`
	TotalProducts            int                         `json:"total_products"`
	CompliantProducts        int                         `json:"compliant_products"`
	NeedsImprovementProducts int                         `json:"needs_improvement_products"`
	NonCompliantProducts     int                         `json:"non_compliant_products"`
	FieldCoverage            map[string]FieldCoverage    `json:"field_coverage"`
	Products                 []ProductComplianceAnalysis `json:"products"`
	Recommendations          []Recommendation            `json:"recommendations"`
}

// CriticalGaps counts critical rules with at least one missing entity.
func (r *ComplianceReport) CriticalGaps() int {
	if r == nil {
		return 0
	}

	gaps := 0
	for _, coverage := range r.FieldCoverage {
		if coverage.Critical && coverage.Missing > 0 {
			gaps++
		}
	}

	return gaps
}
