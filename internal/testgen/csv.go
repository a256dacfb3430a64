package testgen

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/geoservizi/gaugesim/internal/model/entities"
)

// csvHeader matches the record field names.
var csvHeader = []string{
	"index", "density_count", "moisture_count",
	"wet_density", "dry_density", "moisture_mass",
	"moisture_pct", "compaction_pct", "done",
}

// WriteCSV writes records as CSV: integer counts, one-decimal densities and
// percentages.
func WriteCSV(w io.Writer, records []entities.TestRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range records {
		row := []string{
			strconv.Itoa(r.Index),
			strconv.Itoa(r.DensityCount),
			strconv.Itoa(r.MoistureCount),
			strconv.FormatFloat(r.WetDensity, 'f', 1, 64),
			strconv.FormatFloat(r.DryDensity, 'f', 1, 64),
			strconv.FormatFloat(r.MoistureMass, 'f', 1, 64),
			strconv.FormatFloat(r.MoisturePct, 'f', 1, 64),
			strconv.FormatFloat(r.CompactionPct, 'f', 1, 64),
			strconv.FormatBool(r.Done),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportFilename returns the timestamped download name for a series export.
func ExportFilename(t time.Time) string {
	return "gauge_results_" + t.Format("20060102_150405") + ".csv"
}
