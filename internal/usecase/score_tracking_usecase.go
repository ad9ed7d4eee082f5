package usecase

import (
	"context"

	"acp/internal/domain/service"
)

// ScoreChange is the outcome of tracking one report event.
type ScoreChange struct {
	StoreKey      string `json:"store_key"`
	ReportID      string `json:"report_id"`
	PreviousScore *int   `json:"previous_score,omitempty"`
	CurrentScore  int    `json:"current_score"`
	Delta         int    `json:"delta"`
	Regressed     bool   `json:"regressed"`

	// Duplicate is set for a redelivered event; Stale for one older than the
	// latest report already recorded for the store. Neither updates state.
	Duplicate bool `json:"duplicate,omitempty"`
	Stale     bool `json:"stale,omitempty"`
}

// ScoreTrackingUsecase follows the latest compliance score of every store
type ScoreTrackingUsecase interface {
	// TrackReport records a report event and compares it with the store's previous one
	TrackReport(ctx context.Context, event *service.ComplianceReportEvent) (*ScoreChange, error)

	// LatestReports returns the most recent event per store, ordered by store key
	LatestReports(ctx context.Context) []*service.ComplianceReportEvent
}
