package messages

import "time"

// StandardCountEvent è pubblicato dal gauge agent quando ripete il daily
// standard count sul blocco di riferimento. Drift in percento rispetto ai
// valori di fabbrica (1570 density / 670 moisture).
type StandardCountEvent struct {
	GaugeID       string    `json:"gauge_id"`
	Model         string    `json:"model"`
	SerialNumber  string    `json:"serial_number"`
	DensityCount  int       `json:"density_count"`
	MoistureCount int       `json:"moisture_count"`
	DensityDrift  float64   `json:"density_drift_pct"`
	MoistureDrift float64   `json:"moisture_drift_pct"`
	Timestamp     time.Time `json:"timestamp"`
}
