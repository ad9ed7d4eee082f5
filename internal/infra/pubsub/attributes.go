package pubsub

import (
	"strconv"

	"acp/internal/domain/service"
)

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.ComplianceReportEvent) map[string]string {
	attributes := map[string]string{
		"event_type":    "compliance.report.generated",
		"report_id":     event.ReportID,
		"source":        event.Source,
		"overall_score": strconv.Itoa(event.OverallScore),
	}
	if event.StoreID != "" {
		attributes["store_id"] = event.StoreID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
