package impl

import (
	"cmp"
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"acp/config"
	deliverycontext "acp/internal/delivery/context"
	domainerrors "acp/internal/domain/errors"
	"acp/internal/domain/service"
	"acp/internal/usecase"
)

// defaultStoreKey groups events that name neither a store nor a shop.
const defaultStoreKey = "default"

type scoreTrackingService struct {
	threshold int
	metrics   service.EventMetrics
	logger    *slog.Logger

	mu     sync.Mutex
	latest map[string]*service.ComplianceReportEvent
}

// NewScoreTrackingService creates a new in-memory score tracker. A nil
// metrics recorder disables metrics.
func NewScoreTrackingService(cfg *config.Config, logger *slog.Logger, metrics service.EventMetrics) usecase.ScoreTrackingUsecase {
	if cfg.Worker == nil {
		cfg.ApplyDefaults()
	}

	return &scoreTrackingService{
		threshold: cfg.Worker.RegressionThreshold,
		metrics:   metrics,
		logger:    logger,
		latest:    make(map[string]*service.ComplianceReportEvent),
	}
}

// TrackReport records a report event and compares it with the store's previous one
func (s *scoreTrackingService) TrackReport(ctx context.Context, event *service.ComplianceReportEvent) (*usecase.ScoreChange, error) {
	if event == nil || event.ReportID == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("report event requires a report_id")
	}

	key := storeKey(event)
	change := &usecase.ScoreChange{
		StoreKey:     key,
		ReportID:     event.ReportID,
		CurrentScore: event.OverallScore,
	}

	s.mu.Lock()
	previous, seen := s.latest[key]
	switch {
	case seen && previous.ReportID == event.ReportID:
		change.Duplicate = true
	case seen && event.GeneratedAt.Before(previous.GeneratedAt):
		change.Stale = true
	default:
		stored := *event
		s.latest[key] = &stored
	}
	s.mu.Unlock()

	if seen {
		prevScore := previous.OverallScore
		change.PreviousScore = &prevScore
		change.Delta = event.OverallScore - prevScore
	}
	if change.Duplicate || change.Stale {
		return change, nil
	}

	change.Regressed = seen && -change.Delta >= s.threshold
	if s.metrics != nil {
		s.metrics.ObserveReportEvent(event.Source, change.Regressed)
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	if change.Regressed {
		logger.WarnContext(ctx, "Compliance score regressed",
			slog.String("store", key),
			slog.String("report_id", event.ReportID),
			slog.Int("previous_score", *change.PreviousScore),
			slog.Int("score", event.OverallScore),
			slog.Int("critical_gaps", event.CriticalGaps),
		)
	} else {
		logger.InfoContext(ctx, "Compliance score recorded",
			slog.String("store", key),
			slog.String("report_id", event.ReportID),
			slog.Int("score", event.OverallScore),
			slog.Int("delta", change.Delta),
		)
	}

	return change, nil
}

// LatestReports returns the most recent event per store, ordered by store key
func (s *scoreTrackingService) LatestReports(_ context.Context) []*service.ComplianceReportEvent {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := slices.Sorted(maps.Keys(s.latest))
	out := make([]*service.ComplianceReportEvent, 0, len(keys))
	for _, key := range keys {
		event := *s.latest[key]
		out = append(out, &event)
	}

	return out
}

func storeKey(event *service.ComplianceReportEvent) string {
	return cmp.Or(event.StoreID, event.ShopName, defaultStoreKey)
}
