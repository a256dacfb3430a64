// Package recorder consuma le letture e gli standard count da MQTT e li
// scrive su InfluxDB, esponendo le ultime letture al gateway.
package recorder

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	msg "github.com/geoservizi/gaugesim/internal/model/messages"
)

// Daily standard count tolerances: outside these the gauge needs a new
// calibration check, the event is recorded with warning severity.
const (
	densityDriftTolerancePct  = 1.0
	moistureDriftTolerancePct = 2.0
)

type CommonEvent struct {
	EventType     string // gauge.reading | gauge.standard_count
	SourceService string // gauge-agent | simulator
	GaugeID       string
	SeriesID      string
	SoilClass     string
	Mode          string
	Severity      string // info|warning|error
	Fields        map[string]interface{}
	Timestamp     time.Time
}

// MQTTHandler trasforma messaggi MQTT in CommonEvent e li passa a sink (Influx).
type MQTTHandler struct{ sink func(CommonEvent) }

func NewMQTTHandler(sink func(CommonEvent)) *MQTTHandler { return &MQTTHandler{sink: sink} }

func (h *MQTTHandler) Handle(_ string, m mqtt.Message) error {
	topic := m.Topic()
	payload := m.Payload()

	var (
		evt CommonEvent
		err error
	)
	switch {
	case strings.HasPrefix(topic, "gauge/standard/request"):
		return nil // inbox dell'agent, non è un evento da registrare
	case strings.HasPrefix(topic, "gauge/reading/"):
		evt, err = decodeReading(topic, payload)
	case strings.HasPrefix(topic, "gauge/standard/"):
		evt, err = decodeStandardCount(topic, payload)
	default:
		return nil // ignora altri topic
	}
	if err != nil {
		return err
	}
	if h.sink != nil {
		h.sink(evt)
	}
	return nil
}

func decodeReading(topic string, payload []byte) (CommonEvent, error) {
	var r msg.ReadingEvent
	if err := json.Unmarshal(payload, &r); err != nil {
		return CommonEvent{}, err
	}
	gaugeID := pickID(topic, r.GaugeID, "gauge/reading/")
	if gaugeID == "" {
		return CommonEvent{}, errors.New("reading: missing gauge id")
	}
	return CommonEvent{
		EventType:     "gauge.reading",
		SourceService: "gauge-agent",
		GaugeID:       gaugeID,
		SeriesID:      r.SeriesID,
		SoilClass:     r.SoilClass,
		Mode:          string(r.Mode),
		Severity:      "info",
		Fields: map[string]interface{}{
			"density_count":  int64(r.DensityCount),
			"moisture_count": int64(r.MoistureCount),
			"wet_density":    r.WetDensity,
			"dry_density":    r.DryDensity,
			"moisture_pct":   r.MoisturePct,
			"compaction_pct": r.CompactionPct,
			"depth_in":       int64(r.DepthIn),
		},
		Timestamp: r.Timestamp,
	}, nil
}

func decodeStandardCount(topic string, payload []byte) (CommonEvent, error) {
	var s msg.StandardCountEvent
	if err := json.Unmarshal(payload, &s); err != nil {
		return CommonEvent{}, err
	}
	gaugeID := pickID(topic, s.GaugeID, "gauge/standard/")
	if gaugeID == "" {
		return CommonEvent{}, errors.New("standard count: missing gauge id")
	}
	sev := "info"
	if abs(s.DensityDrift) > densityDriftTolerancePct || abs(s.MoistureDrift) > moistureDriftTolerancePct {
		sev = "warning"
	}
	return CommonEvent{
		EventType:     "gauge.standard_count",
		SourceService: "gauge-agent",
		GaugeID:       gaugeID,
		Severity:      sev,
		Fields: map[string]interface{}{
			"density_standard":   int64(s.DensityCount),
			"moisture_standard":  int64(s.MoistureCount),
			"density_drift_pct":  s.DensityDrift,
			"moisture_drift_pct": s.MoistureDrift,
		},
		Timestamp: s.Timestamp,
	}, nil
}

// pickID usa payload, oppure topic "prefix/{gauge}".
func pickID(topic, gaugeID, prefix string) string {
	if strings.TrimSpace(gaugeID) != "" {
		return gaugeID
	}
	suffix := strings.TrimPrefix(topic, prefix)
	if parts := strings.Split(suffix, "/"); len(parts) >= 1 && parts[0] != "" {
		return parts[0]
	}
	return gaugeID
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
