package testgen

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/geoservizi/gaugesim/internal/model/entities"
)

func TestWriteCSV(t *testing.T) {
	recs := []entities.TestRecord{
		{Index: 1, DensityCount: 1234, MoistureCount: 137, WetDensity: 125.2,
			DryDensity: 115.8, MoistureMass: 9.4, MoisturePct: 8.1,
			CompactionPct: 96.5, Done: false},
		{Index: 2, DensityCount: 1198, MoistureCount: 141, WetDensity: 126.0,
			DryDensity: 116.4, MoistureMass: 9.6, MoisturePct: 8.3,
			CompactionPct: 97.0, Done: true},
	}
	var buf bytes.Buffer
	if err := WriteCSV(&buf, recs); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3", len(lines))
	}
	wantHeader := "index,density_count,moisture_count,wet_density,dry_density,moisture_mass,moisture_pct,compaction_pct,done"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}
	if want := "1,1234,137,125.2,115.8,9.4,8.1,96.5,false"; lines[1] != want {
		t.Errorf("row 1 = %q, want %q", lines[1], want)
	}
	if want := "2,1198,141,126.0,116.4,9.6,8.3,97.0,true"; lines[2] != want {
		t.Errorf("row 2 = %q, want %q", lines[2], want)
	}
}

func TestExportFilename(t *testing.T) {
	ts := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	if got, want := ExportFilename(ts), "gauge_results_20250314_150926.csv"; got != want {
		t.Errorf("ExportFilename = %q, want %q", got, want)
	}
}
