package app

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	pb "github.com/geoservizi/gaugesim/grpc/gen/go/gauge"
	"github.com/geoservizi/gaugesim/internal/model"
)

func (g *Gateway) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(r.Context(), g.cfg.HTTPTimeout)
	defer cancel()

	type res struct {
		key string
		val any
	}
	ch := make(chan res, 2)

	// Fetch in parallelo
	go func() {
		var series []SeriesSummary
		if err := g.series.GetJSON(ctx, &series); err == nil && len(series) > 0 {
			g.mu.Lock()
			g.lastGoodSeries = series
			g.mu.Unlock()
		} else {
			// usa l'ultima cache valida (se presente)
			g.mu.Lock()
			series = g.lastGoodSeries
			g.mu.Unlock()
		}
		ch <- res{"series", series}
	}()
	go func() {
		var readings []Reading
		_ = g.readings.GetJSON(ctx, &readings)
		ch <- res{"readings", readings}
	}()

	data := DashboardData{
		Series:   []SeriesSummary{},
		Readings: []Reading{},
		Stats:    map[string]float64{},
	}

	for i := 0; i < 2; i++ {
		rv := <-ch
		switch rv.key {
		case "series":
			if s, ok := rv.val.([]SeriesSummary); ok && s != nil {
				data.Series = s
			}
		case "readings":
			if rd, ok := rv.val.([]Reading); ok && rd != nil {
				data.Readings = rd
			}
		}
	}

	// Ordine letture e statistiche umidità per la UI
	sort.Slice(data.Readings, func(i, j int) bool { return data.Readings[i].Time > data.Readings[j].Time })
	if n := len(data.Readings); n > 0 {
		var sum, minv, maxv float64
		minv = math.MaxFloat64
		for _, rd := range data.Readings {
			v := rd.MoisturePct
			sum += v
			if v < minv {
				minv = v
			}
			if v > maxv {
				maxv = v
			}
		}
		data.Stats["moisture_mean"] = math.Round(sum/float64(n)*10) / 10
		data.Stats["moisture_min"] = minv
		data.Stats["moisture_max"] = maxv
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)

	log.Printf("GET /dashboard/data [%dms] cb[sim]=%v cb[rec]=%v series=%d readings=%d",
		time.Since(start).Milliseconds(), g.series.State(), g.readings.State(),
		len(data.Series), len(data.Readings))
}

func (g *Gateway) HandleTakeReading(w http.ResponseWriter, r *http.Request) {
	if g.router == nil {
		httpError(w, http.StatusServiceUnavailable, "no gauge agents configured")
		return
	}
	gaugeID := r.PathValue("id")
	cli, ok := g.router.Get(gaugeID)
	if !ok {
		httpError(w, http.StatusNotFound, "unknown gauge "+gaugeID)
		return
	}

	var body TakeReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if body.DryDensity <= 0 {
		httpError(w, http.StatusBadRequest, "dry_density must be > 0")
		return
	}
	if body.MoisturePct < 0 {
		httpError(w, http.StatusBadRequest, "moisture_pct must be >= 0")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), g.cfg.HTTPTimeout)
	defer cancel()

	reply, err := cli.TakeReading(ctx, &pb.ReadingRequest{
		GaugeId:     gaugeID,
		SoilClass:   body.SoilClass,
		Mode:        string(model.ParseDepthMode(body.Mode)),
		DepthIn:     int32(body.DepthIn),
		DurationMin: body.DurationMin,
		DryDensity:  body.DryDensity,
		MoisturePct: body.MoisturePct,
	})
	if err != nil {
		log.Errorf("TakeReading %s: %v", gaugeID, err)
		httpError(w, http.StatusBadGateway, "gauge agent unreachable")
		return
	}

	out := TakeReadingResponse{
		Success:       reply.GetSuccess(),
		Message:       reply.GetMessage(),
		TicketID:      reply.GetTicketId(),
		DensityCount:  reply.GetDensityCount(),
		MoistureCount: reply.GetMoistureCount(),
		WetDensity:    reply.GetWetDensity(),
		DryDensity:    reply.GetDryDensity(),
		MoisturePct:   reply.GetMoisturePct(),
	}
	code := http.StatusOK
	if !out.Success {
		code = http.StatusNotFound
	}
	writeJSON(w, code, out)
}

func (g *Gateway) HandleStandards(w http.ResponseWriter, r *http.Request) {
	if g.router == nil {
		httpError(w, http.StatusServiceUnavailable, "no gauge agents configured")
		return
	}
	gaugeID := r.PathValue("id")
	cli, ok := g.router.Get(gaugeID)
	if !ok {
		httpError(w, http.StatusNotFound, "unknown gauge "+gaugeID)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), g.cfg.HTTPTimeout)
	defer cancel()

	reply, err := cli.GetStandards(ctx, &pb.StandardsRequest{GaugeId: gaugeID})
	if err != nil {
		log.Errorf("GetStandards %s: %v", gaugeID, err)
		httpError(w, http.StatusBadGateway, "gauge agent unreachable")
		return
	}
	if reply.GetDensityStandard() == 0 && reply.GetModel() == "" {
		// l'agent risponde vuoto per gauge che non conosce
		httpError(w, http.StatusNotFound, "unknown gauge "+gaugeID)
		return
	}

	writeJSON(w, http.StatusOK, StandardsResponse{
		GaugeID:          gaugeID,
		DensityStandard:  reply.GetDensityStandard(),
		MoistureStandard: reply.GetMoistureStandard(),
		Model:            reply.GetModel(),
		SerialNumber:     reply.GetSerialNumber(),
		CalibrationDate:  reply.GetCalibrationDate(),
	})
}

func (g *Gateway) HandleWS(w http.ResponseWriter, r *http.Request) {
	if g.hub == nil {
		httpError(w, http.StatusServiceUnavailable, "live feed not configured")
		return
	}
	g.hub.ServeWS(w, r)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func httpError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
