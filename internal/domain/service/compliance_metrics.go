package service

import "time"

// ComplianceMetrics records scoring activity.
type ComplianceMetrics interface {
	// ObserveReport records one generated report and the scores of its products
	ObserveReport(source string, productScores []int, duration time.Duration)

	// ObserveProduct records a single-product analysis
	ObserveProduct(score int)
}

// EventMetrics records report events consumed by the worker.
type EventMetrics interface {
	// ObserveReportEvent records one consumed event and whether it was a score regression
	ObserveReportEvent(source string, regressed bool)
}
