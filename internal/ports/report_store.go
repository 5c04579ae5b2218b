package ports

import "github.com/blanc86/PDF-Merger/internal/domain"

// ReportStore persists merge reports for later inspection.
type ReportStore interface {
	SaveReport(report domain.MergeReport) (id string, err error)

	// LoadReport reads a saved report back; name may be an id or a path.
	LoadReport(name string) (domain.MergeReport, error)

	// LatestReport returns the most recently saved report.
	LatestReport() (domain.MergeReport, error)
}
