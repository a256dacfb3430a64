package recorder

import (
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// measurementFor separa le letture dagli standard count: interrogazioni e
// retention diverse.
func measurementFor(eventType string) string {
	if eventType == "gauge.standard_count" {
		return "standard_count"
	}
	return "gauge_reading"
}

// EventToPoint normalizza CommonEvent in un *write.Point per InfluxDB.
func EventToPoint(evt CommonEvent) *write.Point {
	// Tag (solo stringhe)
	tags := map[string]string{
		"event_type":     evt.EventType,
		"source_service": evt.SourceService,
		"severity":       evt.Severity,
	}
	if evt.GaugeID != "" {
		tags["gauge_id"] = evt.GaugeID
	}
	if evt.SeriesID != "" {
		tags["series_id"] = evt.SeriesID
	}
	if evt.SoilClass != "" {
		tags["soil_class"] = evt.SoilClass
	}
	if evt.Mode != "" {
		tags["mode"] = evt.Mode
	}

	// Fields: prendi quelli dell'evento (se nil, crea una mappa vuota)
	fields := map[string]interface{}{}
	if evt.Fields != nil {
		for k, v := range evt.Fields {
			fields[k] = v
		}
	}

	// per sicurezza, aggiungi un contatore monotono per avere almeno un field
	if _, ok := fields["count"]; !ok {
		fields["count"] = int64(1)
	}

	return influxdb2.NewPoint(measurementFor(evt.EventType), tags, fields, evt.Timestamp)
}
