package usecase

import (
	"context"

	"acp/internal/domain/compliance"
	"acp/internal/domain/entity"
)

// CatalogInput is one vendor catalog submitted for scoring.
type CatalogInput struct {
	StoreID  string            `json:"store_id,omitempty"`
	Products []*entity.Product `json:"products"`
	Shop     *entity.Shop      `json:"shop,omitempty"`

	// Source tags the report in metrics and events (api, batch, cli).
	Source string `json:"-"`
	// Checksum identifies the submitted payload. Computed from the catalog when empty.
	Checksum string `json:"-"`
}

// StoreCatalog is one entry of a multi-store batch.
type StoreCatalog struct {
	StoreID  string            `json:"store_id" validate:"required,max=128"`
	Products []*entity.Product `json:"products" validate:"dive,required"`
	Shop     *entity.Shop      `json:"shop,omitempty"`
}

// StoreReport pairs a batch entry with its report.
type StoreReport struct {
	StoreID string                   `json:"store_id"`
	Report  *entity.ComplianceReport `json:"report"`
}

// ComplianceUsecase defines the interface for catalog compliance scoring
type ComplianceUsecase interface {
	// GenerateReport scores a whole catalog and announces the result
	GenerateReport(ctx context.Context, input *CatalogInput) (*entity.ComplianceReport, error)

	// AnalyzeProduct scores a single product without producing a report
	AnalyzeProduct(ctx context.Context, product *entity.Product, shop *entity.Shop) (*entity.ProductComplianceAnalysis, error)

	// GenerateBatchReports scores several stores concurrently, in input order
	GenerateBatchReports(ctx context.Context, stores []*StoreCatalog) ([]*StoreReport, error)

	// ListRules returns the rule catalog the scorer applies
	ListRules(ctx context.Context) []compliance.RuleDescriptor
}
