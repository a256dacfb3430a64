package recorder

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
)

// Reading è la riga esposta al gateway.
type Reading struct {
	GaugeID       string  `json:"gauge_id,omitempty"`
	SoilClass     string  `json:"soil_class,omitempty"`
	DensityCount  int64   `json:"density_count"`
	MoistureCount int64   `json:"moisture_count"`
	WetDensity    float64 `json:"wet_density"`
	DryDensity    float64 `json:"dry_density"`
	MoisturePct   float64 `json:"moisture_pct"`
	Time          string  `json:"time"` // RFC3339
}

type readingsQueryParams struct {
	Minutes   int
	Limit     int
	TimeoutMS int
}

func parseReadings(r *http.Request, defMin, defLim, defTOms int) readingsQueryParams {
	q := r.URL.Query()
	get := func(k string, def, min, max int) int {
		if v := strings.TrimSpace(q.Get(k)); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				if n < min {
					return min
				}
				if max > 0 && n > max {
					return max
				}
				return n
			}
		}
		return def
	}
	return readingsQueryParams{
		Minutes:   get("minutes", defMin, 1, 7*24*60),
		Limit:     get("limit", defLim, 1, 500),
		TimeoutMS: get("timeout_ms", defTOms, 200, 5000),
	}
}

func buildFlux(bucket string, minutes, limit int) string {
	return fmt.Sprintf(`
from(bucket: %q)
  |> range(start: -%dm)
  |> filter(fn: (r) => r._measurement == "gauge_reading")
  |> pivot(rowKey: ["_time"], columnKey: ["_field"], valueColumn: "_value")
  |> keep(columns: ["_time","gauge_id","soil_class","density_count","moisture_count","wet_density","dry_density","moisture_pct"])
  |> sort(columns: ["_time"], desc: true)
  |> limit(n:%d)
`, bucket, minutes, limit)
}

func runReadings(w http.ResponseWriter, r *http.Request, influx influxdb2.Client, org, bucket string, defMin, defLim int) {
	p := parseReadings(r, defMin, defLim, 2000)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(p.TimeoutMS)*time.Millisecond)
	defer cancel()

	api := influx.QueryAPI(org)
	res, err := api.Query(ctx, buildFlux(bucket, p.Minutes, p.Limit))
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-Error", "influx-query-error")
		_, _ = w.Write([]byte("[]"))
		return
	}
	defer func() {
		_ = res.Close()
	}()

	out := make([]Reading, 0, p.Limit)
	for res.Next() {
		rec := res.Record()
		rd := Reading{
			DensityCount:  toInt64(rec.ValueByKey("density_count")),
			MoistureCount: toInt64(rec.ValueByKey("moisture_count")),
			WetDensity:    toFloat(rec.ValueByKey("wet_density")),
			DryDensity:    toFloat(rec.ValueByKey("dry_density")),
			MoisturePct:   toFloat(rec.ValueByKey("moisture_pct")),
			Time:          rec.Time().UTC().Format(time.RFC3339),
		}
		if v, ok := rec.ValueByKey("gauge_id").(string); ok {
			rd.GaugeID = v
		}
		if v, ok := rec.ValueByKey("soil_class").(string); ok {
			rd.SoilClass = v
		}
		out = append(out, rd)
	}
	if res.Err() != nil {
		w.Header().Set("X-Error", "influx-iter-error")
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(out)
}

func toFloat(v interface{}) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	case int:
		return float64(x)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(x), 64); err == nil {
			return f
		}
	}
	return 0
}

func toInt64(v interface{}) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case int:
		return int64(x)
	case float64:
		return int64(x)
	case string:
		if n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64); err == nil {
			return n
		}
	}
	return 0
}

// GET /readings/latest?limit=20[&minutes=1440]
func NewReadingsLatestHandler(influx influxdb2.Client, org, bucket string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		runReadings(w, r, influx, org, bucket, 1440, 20)
	})
}
