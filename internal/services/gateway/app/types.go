package app

import (
	"encoding/json"
	"math"
	"strconv"
)

// ---------- Upstream payloads ----------

// SeriesSummary è la riga di /api/series/recent del simulator-service.
type SeriesSummary struct {
	ID             string  `json:"id"`
	GaugeID        string  `json:"gauge_id"`
	SoilClass      string  `json:"soil_class"`
	Mode           string  `json:"mode"`
	Count          int     `json:"count"`
	MeanCompaction float64 `json:"mean_compaction"`
	CreatedAt      string  `json:"created_at"` // RFC3339
}

func (s *SeriesSummary) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if v, ok := m["id"].(string); ok {
		s.ID = v
	}
	if v, ok := m["gauge_id"].(string); ok {
		s.GaugeID = v
	}
	if v, ok := m["soil_class"].(string); ok {
		s.SoilClass = v
	}
	if v, ok := m["mode"].(string); ok {
		s.Mode = v
	}
	// created_at / time
	if t, ok := m["created_at"].(string); ok && t != "" {
		s.CreatedAt = t
	} else if t, ok := m["time"].(string); ok && t != "" {
		s.CreatedAt = t
	}
	if n, ok := asFloat(m["count"]); ok {
		s.Count = int(math.Round(n))
	}
	// mean_compaction come numero o stringa
	if n, ok := asFloat(m["mean_compaction"]); ok {
		s.MeanCompaction = n
	}
	return nil
}

// Reading è la riga di /readings/latest del recorder-service.
type Reading struct {
	GaugeID       string  `json:"gauge_id"`
	SoilClass     string  `json:"soil_class"`
	DensityCount  int     `json:"density_count"`
	MoistureCount int     `json:"moisture_count"`
	WetDensity    float64 `json:"wet_density"`
	DryDensity    float64 `json:"dry_density"`
	MoisturePct   float64 `json:"moisture_pct"`
	Time          string  `json:"time"` // RFC3339
}

func (r *Reading) UnmarshalJSON(b []byte) error {
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	if v, ok := m["gauge_id"].(string); ok {
		r.GaugeID = v
	}
	if v, ok := m["soil_class"].(string); ok {
		r.SoilClass = v
	}
	// time / timestamp
	if t, ok := m["time"].(string); ok && t != "" {
		r.Time = t
	} else if t, ok := m["timestamp"].(string); ok && t != "" {
		r.Time = t
	}
	if n, ok := asFloat(m["density_count"]); ok {
		r.DensityCount = int(math.Round(n))
	}
	if n, ok := asFloat(m["moisture_count"]); ok {
		r.MoistureCount = int(math.Round(n))
	}
	if n, ok := asFloat(m["wet_density"]); ok {
		r.WetDensity = n
	}
	if n, ok := asFloat(m["dry_density"]); ok {
		r.DryDensity = n
	}
	if n, ok := asFloat(m["moisture_pct"]); ok {
		r.MoisturePct = n
	}
	return nil
}

// asFloat accetta numero o stringa, gli upstream non sono sempre coerenti.
func asFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case string:
		if f, err := strconv.ParseFloat(x, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

type DashboardData struct {
	Series   []SeriesSummary    `json:"series"`
	Readings []Reading          `json:"readings"`
	Stats    map[string]float64 `json:"stats"`
}

// ---------- DTO verso la dashboard ----------

// TakeReadingRequest è il corpo di POST /gauge/{id}/reading.
type TakeReadingRequest struct {
	SoilClass   string  `json:"soil_class"`
	Mode        string  `json:"mode"`
	DepthIn     int     `json:"depth_in"`
	DurationMin float64 `json:"duration_min"`
	DryDensity  float64 `json:"dry_density"`
	MoisturePct float64 `json:"moisture_pct"`
}

type TakeReadingResponse struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message,omitempty"`
	TicketID      string  `json:"ticket_id,omitempty"`
	DensityCount  int32   `json:"density_count"`
	MoistureCount int32   `json:"moisture_count"`
	WetDensity    float64 `json:"wet_density"`
	DryDensity    float64 `json:"dry_density"`
	MoisturePct   float64 `json:"moisture_pct"`
}

type StandardsResponse struct {
	GaugeID          string `json:"gauge_id"`
	DensityStandard  int32  `json:"density_standard"`
	MoistureStandard int32  `json:"moisture_standard"`
	Model            string `json:"model"`
	SerialNumber     string `json:"serial_number"`
	CalibrationDate  string `json:"calibration_date"`
}
