// services/export_service.go
package services

import (
	"fmt"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/pkg/errors"

	"github.com/nigcomsat/coverage-dashboard/models"
)

// ExportCSV serializes the filtered record set as UTF-8 CSV. Column order
// and headers come from the csv tags on models.CoverageRecord; an empty set
// still yields a valid header-only document.
func ExportCSV(records []models.CoverageRecord) ([]byte, error) {
	if records == nil {
		records = []models.CoverageRecord{}
	}
	data, err := csvutil.Marshal(records)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal coverage records to CSV")
	}
	return data, nil
}

// ExportFilename derives the download filename from the export date, e.g.
// nigcomsat_coverage_20250101.csv.
func ExportFilename(now time.Time) string {
	return fmt.Sprintf("nigcomsat_coverage_%s.csv", now.Format("20060102"))
}
