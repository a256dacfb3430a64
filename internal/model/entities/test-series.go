package entities

import "time"

// TestSeries groups the records generated in one run together with the
// Proctor reference values and the gauge setup they came from.
type TestSeries struct {
	ID              string         `json:"id"`
	Gauge           GaugeInfo      `json:"gauge"`
	Standards       GaugeStandards `json:"standards"`
	SoilClass       string         `json:"soil_class"`
	Mode            DepthMode      `json:"mode"`
	DepthIn         int            `json:"depth_in"`
	DurationMin     float64        `json:"duration_min"`
	MaxDryDensity   float64        `json:"max_dry_density"`
	OptimumMoisture float64        `json:"optimum_moisture"`
	CreatedAt       time.Time      `json:"created_at"`
	Records         []TestRecord   `json:"records"`
}

// Record returns the record with the given 1-based index, or nil.
func (s *TestSeries) Record(index int) *TestRecord {
	for i := range s.Records {
		if s.Records[i].Index == index {
			return &s.Records[i]
		}
	}
	return nil
}
