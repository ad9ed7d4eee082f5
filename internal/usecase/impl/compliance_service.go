package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"acp/config"
	deliverycontext "acp/internal/delivery/context"
	"acp/internal/domain/compliance"
	"acp/internal/domain/constants"
	"acp/internal/domain/entity"
	domainerrors "acp/internal/domain/errors"
	"acp/internal/domain/service"
	"acp/internal/errors"
	"acp/internal/infra/json"
	"acp/internal/usecase"
	"acp/internal/util"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

type complianceService struct {
	cfg       *config.ComplianceConfig
	scorer    *compliance.Scorer
	publisher service.EventPublisher
	metrics   service.ComplianceMetrics
	logger    *slog.Logger

	now   func() time.Time
	newID func() string
}

// NewComplianceService creates a new compliance service instance. A nil
// publisher or metrics recorder disables that side effect.
func NewComplianceService(
	cfg *config.Config,
	logger *slog.Logger,
	publisher service.EventPublisher,
	metrics service.ComplianceMetrics,
) usecase.ComplianceUsecase {
	limits := cfg.Compliance
	if limits == nil {
		cfg.ApplyDefaults()
		limits = cfg.Compliance
	}

	return &complianceService{
		cfg:       limits,
		scorer:    compliance.NewScorer(compliance.WithMaxRecommendations(limits.MaxRecommendations)),
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// GenerateReport scores a whole catalog and announces the result
func (s *complianceService) GenerateReport(ctx context.Context, input *usecase.CatalogInput) (*entity.ComplianceReport, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("catalog is required")
	}
	if err := s.checkCatalogSize(input.StoreID, len(input.Products)); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	return s.generate(ctx, input), nil
}

func (s *complianceService) generate(ctx context.Context, input *usecase.CatalogInput) *entity.ComplianceReport {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	source := input.Source
	if source == "" {
		source = constants.SourceAPI
	}

	start := s.now()
	report := s.scorer.GenerateComplianceReport(input.Products, input.Shop)
	generatedAt := s.now().UTC()
	report.ReportID = s.newID()
	report.GeneratedAt = &generatedAt

	if s.metrics != nil {
		scores := make([]int, len(report.Products))
		for i := range report.Products {
			scores[i] = report.Products[i].ComplianceScore
		}
		s.metrics.ObserveReport(source, scores, generatedAt.Sub(start))
	}

	s.publish(ctx, logger, input, source, &report)

	logger.InfoContext(ctx, "Compliance report generated",
		slog.String("report_id", report.ReportID),
		slog.String("store_id", input.StoreID),
		slog.String("source", source),
		slog.Int("products", report.TotalProducts),
		slog.Int("overall_score", report.OverallScore),
		slog.Int("critical_gaps", report.CriticalGaps()),
	)

	return &report
}

// publish announces the report. Failures are logged only.
func (s *complianceService) publish(ctx context.Context, logger *slog.Logger, input *usecase.CatalogInput, source string, report *entity.ComplianceReport) {
	if s.publisher == nil {
		return
	}

	event := &service.ComplianceReportEvent{
		RequestID:       deliverycontext.GetRequestIDFromContext(ctx),
		ReportID:        report.ReportID,
		StoreID:         input.StoreID,
		Source:          source,
		CatalogChecksum: input.Checksum,
		OverallScore:    report.OverallScore,
		TotalProducts:   report.TotalProducts,
		Compliant:       report.CompliantProducts,
		NeedsWork:       report.NeedsImprovementProducts,
		NonCompliant:    report.NonCompliantProducts,
		CriticalGaps:    report.CriticalGaps(),
		GeneratedAt:     *report.GeneratedAt,
	}
	if input.Shop != nil {
		event.ShopName = input.Shop.Name
	}
	if event.CatalogChecksum == "" {
		event.CatalogChecksum = catalogChecksum(input)
	}

	if err := s.publisher.PublishReportEvent(ctx, event); err != nil {
		logger.WarnContext(ctx, "Failed to publish compliance report event",
			slog.String("report_id", report.ReportID),
			slog.Any("error", err),
		)
	}
}

// AnalyzeProduct scores a single product without producing a report
func (s *complianceService) AnalyzeProduct(ctx context.Context, product *entity.Product, shop *entity.Shop) (*entity.ProductComplianceAnalysis, error) {
	if product == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("product is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	analysis := s.scorer.AnalyzeProduct(product, shop)
	if s.metrics != nil {
		s.metrics.ObserveProduct(analysis.ComplianceScore)
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).DebugContext(ctx, "Product analyzed",
		slog.String("product_id", analysis.ProductID),
		slog.Int("score", analysis.ComplianceScore),
	)

	return &analysis, nil
}

// GenerateBatchReports scores several stores concurrently, in input order
func (s *complianceService) GenerateBatchReports(ctx context.Context, stores []*usecase.StoreCatalog) ([]*usecase.StoreReport, error) {
	if len(stores) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at least one store is required")
	}
	if len(stores) > s.cfg.MaxBatchStores {
		return nil, domainerrors.ErrBatchTooLarge.WithDetails(
			fmt.Sprintf("%d stores exceeds the limit of %d", len(stores), s.cfg.MaxBatchStores))
	}
	for i, store := range stores {
		if store == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("stores[%d] is null", i))
		}
		if err := s.checkCatalogSize(store.StoreID, len(store.Products)); err != nil {
			return nil, err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	results := make([]*usecase.StoreReport, len(stores))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.BatchConcurrency)

	for i, store := range stores {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return errors.WithStack(err)
			}

			report := s.generate(gctx, &usecase.CatalogInput{
				StoreID:  store.StoreID,
				Products: store.Products,
				Shop:     store.Shop,
				Source:   constants.SourceBatch,
			})
			results[i] = &usecase.StoreReport{StoreID: store.StoreID, Report: report}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// ListRules returns the rule catalog the scorer applies
func (s *complianceService) ListRules(_ context.Context) []compliance.RuleDescriptor {
	return s.scorer.Rules()
}

func (s *complianceService) checkCatalogSize(storeID string, n int) error {
	if n <= s.cfg.MaxProducts {
		return nil
	}

	details := fmt.Sprintf("%d products exceeds the limit of %d", n, s.cfg.MaxProducts)
	if storeID != "" {
		details = fmt.Sprintf("store %s: %s", storeID, details)
	}

	return domainerrors.ErrCatalogTooLarge.WithDetails(details)
}

// catalogChecksum digests the catalog as it would be serialized on the wire.
func catalogChecksum(input *usecase.CatalogInput) string {
	data, err := json.Marshal(struct {
		Products []*entity.Product `json:"products"`
		Shop     *entity.Shop      `json:"shop,omitempty"`
	}{input.Products, input.Shop})
	if err != nil {
		return ""
	}

	return util.Checksum(data)
}
