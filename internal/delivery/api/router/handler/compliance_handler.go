package handler

import (
	"log/slog"
	"net/http"

	"acp/internal/delivery/api/response"
	"acp/internal/domain/compliance"
	"acp/internal/domain/constants"
	"acp/internal/domain/entity"
	domainerrors "acp/internal/domain/errors"
	"acp/internal/errors"
	"acp/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ComplianceHandlerParams holds dependencies for ComplianceHandler, injected by Fx.
type ComplianceHandlerParams struct {
	fx.In

	ComplianceUC usecase.ComplianceUsecase
	Logger       *slog.Logger
}

// ComplianceHandler serves the catalog scoring endpoints.
type ComplianceHandler struct {
	complianceUC usecase.ComplianceUsecase
	logger       *slog.Logger
}

// NewComplianceHandler is the constructor for ComplianceHandler
func NewComplianceHandler(params ComplianceHandlerParams) *ComplianceHandler {
	return &ComplianceHandler{
		complianceUC: params.ComplianceUC,
		logger:       params.Logger,
	}
}

// GenerateReportRequest is the body of POST /compliance/reports.
type GenerateReportRequest struct {
	StoreID  string            `json:"store_id" validate:"omitempty,max=128"`
	Products []*entity.Product `json:"products" validate:"dive,required"`
	Shop     *entity.Shop      `json:"shop"`
}

// AnalyzeProductRequest is the body of POST /compliance/products/analyze.
type AnalyzeProductRequest struct {
	Product *entity.Product `json:"product" validate:"required"`
	Shop    *entity.Shop    `json:"shop"`
}

// BatchReportRequest is the body of POST /compliance/reports/batch.
type BatchReportRequest struct {
	Stores []*usecase.StoreCatalog `json:"stores" validate:"required,min=1,dive,required"`
}

// RulesResponse lists the rule catalog.
type RulesResponse struct {
	Count int                         `json:"count"`
	Rules []compliance.RuleDescriptor `json:"rules"`
}

// ListRules handles GET /compliance/rules
func (h *ComplianceHandler) ListRules(c echo.Context) error {
	rules := h.complianceUC.ListRules(c.Request().Context())

	return response.Success(c, http.StatusOK, RulesResponse{Count: len(rules), Rules: rules})
}

// GenerateReport handles POST /compliance/reports
func (h *ComplianceHandler) GenerateReport(c echo.Context) error {
	var req GenerateReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.complianceUC.GenerateReport(c.Request().Context(), &usecase.CatalogInput{
		StoreID:  req.StoreID,
		Products: req.Products,
		Shop:     req.Shop,
		Source:   constants.SourceAPI,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}

// AnalyzeProduct handles POST /compliance/products/analyze
func (h *ComplianceHandler) AnalyzeProduct(c echo.Context) error {
	var req AnalyzeProductRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	analysis, err := h.complianceUC.AnalyzeProduct(c.Request().Context(), req.Product, req.Shop)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, analysis)
}

// GenerateBatchReports handles POST /compliance/reports/batch
func (h *ComplianceHandler) GenerateBatchReports(c echo.Context) error {
	var req BatchReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	reports, err := h.complianceUC.GenerateBatchReports(c.Request().Context(), req.Stores)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reports)
}

// bindAndValidate decodes the body into req. Decode failures become
// ErrInvalidPayload so clients see INVALID_INPUT rather than HTTP_ERROR.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) && httpErr.Code == http.StatusRequestEntityTooLarge {
			return err
		}

		details := "request body could not be decoded"
		if errors.As(err, &httpErr) {
			if msg, ok := httpErr.Message.(string); ok {
				details = msg
			}
		}

		return domainerrors.ErrInvalidPayload.WithDetails(details)
	}

	return errors.WithStack(c.Validate(req))
}
