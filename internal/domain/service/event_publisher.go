package service

import (
	"context"
	"time"
)

// ComplianceReportEvent announces a generated compliance report. It carries
// the summary only; the catalog itself is identified by its checksum.
type ComplianceReportEvent struct {
	RequestID       string    `json:"request_id,omitempty"` // For distributed tracing
	ReportID        string    `json:"report_id"`
	StoreID         string    `json:"store_id,omitempty"`
	ShopName        string    `json:"shop_name,omitempty"`
	Source          string    `json:"source"`
	CatalogChecksum string    `json:"catalog_checksum"`
	OverallScore    int       `json:"overall_score"`
	TotalProducts   int       `json:"total_products"`
	Compliant       int       `json:"compliant_products"`
	NeedsWork       int       `json:"needs_improvement_products"`
	NonCompliant    int       `json:"non_compliant_products"`
	CriticalGaps    int       `json:"critical_gaps"`
	GeneratedAt     time.Time `json:"generated_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishReportEvent announces a finished compliance report
	PublishReportEvent(ctx context.Context, event *ComplianceReportEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
