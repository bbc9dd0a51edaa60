package ports

import "github.com/okaneco/posterust/internal/domain"

// ReportStore persists batch reports for reproducibility.
type ReportStore interface {
	SaveReport(report domain.BatchReport) (path string, err error)
}
