package messages

import (
	"time"

	"github.com/geoservizi/gaugesim/internal/model/entities"
)

// ReadingEvent is published for every simulated reading, one per record.
type ReadingEvent struct {
	GaugeID       string             `json:"gauge_id"`
	SeriesID      string             `json:"series_id,omitempty"`
	SoilClass     string             `json:"soil_class"`
	Mode          entities.DepthMode `json:"mode"`
	DepthIn       int                `json:"depth_in"`
	DensityCount  int                `json:"density_count"`
	MoistureCount int                `json:"moisture_count"`
	WetDensity    float64            `json:"wet_density"`
	DryDensity    float64            `json:"dry_density"`
	MoisturePct   float64            `json:"moisture_pct"`
	CompactionPct float64            `json:"compaction_pct"`
	Timestamp     time.Time          `json:"timestamp"`
}
