package export

import (
	"time"

	"github.com/google/uuid"

	"github.com/insurai/claimlens/internal/model"
)

// ReportRecord describes one generated export: the artifact name, when it
// was produced, its format, and the filters that were applied. It is
// returned to the caller for display in a report history; nothing here is
// persisted.
type ReportRecord struct {
	ID          string
	Name        string
	Format      string
	GeneratedOn time.Time
	Records     int
	Filters     model.FilterCriteria
}

// NewReportRecord stamps a record for a freshly generated artifact.
func NewReportRecord(name, format string, records int, filters model.FilterCriteria, now time.Time) ReportRecord {
	return ReportRecord{
		ID:          uuid.NewString(),
		Name:        name,
		Format:      format,
		GeneratedOn: now,
		Records:     records,
		Filters:     filters,
	}
}
