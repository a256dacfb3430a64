package simulator

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/geoservizi/gaugesim/internal/gauge"
	"github.com/geoservizi/gaugesim/internal/model"
	"github.com/geoservizi/gaugesim/internal/model/entities"
	"github.com/geoservizi/gaugesim/internal/model/messages"
	"github.com/geoservizi/gaugesim/internal/soil"
	"github.com/geoservizi/gaugesim/internal/testgen"
	"github.com/geoservizi/gaugesim/pkg/mqttbus"
)

// Limiti accettati dal form (gli stessi del modulo cartaceo).
const (
	minCount = 1
	maxCount = 20

	minMaxDryDensity = 100.0
	maxMaxDryDensity = 150.0

	minOptimumMoisture = 1.0
	maxOptimumMoisture = 30.0

	minDepthIn = 4
	maxDepthIn = 12

	minDurationMin = 0.5
	maxDurationMin = 5.0

	// fasce plausibili per i conteggi dello standard block
	minDensityStandard  = 1000
	maxDensityStandard  = 2000
	minMoistureStandard = 400
	maxMoistureStandard = 1000
)

// API serve le serie di prova su HTTP. Il publisher è opzionale: se
// configurato, ogni record generato esce anche come ReadingEvent su MQTT.
type API struct {
	sim   *gauge.Simulator
	gen   *testgen.Generator
	table *soil.Table
	store *Store

	publisher  mqttbus.IPublisher
	mqttClient mqtt.Client
}

func NewAPI(sim *gauge.Simulator, gen *testgen.Generator, table *soil.Table, store *Store) *API {
	return &API{sim: sim, gen: gen, table: table, store: store}
}

// SetPublisher abilita la pubblicazione dei record generati. Il client serve
// solo a /healthz per riportare lo stato della connessione.
func (a *API) SetPublisher(client mqtt.Client, pub mqttbus.IPublisher) {
	a.mqttClient = client
	a.publisher = pub
}

func (a *API) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/series", a.handleCreateSeries)
	mux.HandleFunc("GET /api/series/recent", a.handleRecentSeries)
	mux.HandleFunc("GET /api/series/{id}", a.handleGetSeries)
	mux.HandleFunc("GET /api/series/{id}/export.csv", a.handleExportCSV)
	mux.HandleFunc("PATCH /api/series/{id}/records/{index}", a.handleSetRecordDone)
	mux.HandleFunc("GET /api/soil/classes", a.handleSoilClasses)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /readyz", a.handleReadyz)
	return mux
}

// SeriesSummary è la riga compatta restituita da /api/series/recent.
type SeriesSummary struct {
	ID             string             `json:"id"`
	GaugeID        string             `json:"gauge_id,omitempty"`
	SoilClass      string             `json:"soil_class"`
	Mode           entities.DepthMode `json:"mode"`
	Count          int                `json:"count"`
	MeanCompaction float64            `json:"mean_compaction"`
	CreatedAt      time.Time          `json:"created_at"`
}

// SoilClassInfo è la riga restituita da /api/soil/classes.
type SoilClassInfo struct {
	Class       string                   `json:"class"`
	Calibration entities.SoilCalibration `json:"calibration"`
	Info        entities.SoilDescription `json:"info"`
}

func (a *API) handleCreateSeries(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req struct {
		testgen.Params
		// Come il pannello laterale del modulo: gli standard impostati qui
		// restano validi per le serie successive.
		Standards *entities.GaugeStandards `json:"standards"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	p := req.Params
	p.Mode = model.ParseDepthMode(string(p.Mode))
	if msg := validateParams(p); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if req.Standards != nil {
		if msg := validateStandards(*req.Standards); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}
		a.sim.SetStandards(*req.Standards)
	}

	records, err := a.gen.Generate(p)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	series := &entities.TestSeries{
		ID:              uuid.New().String(),
		Gauge:           a.sim.Info(),
		Standards:       a.sim.Standards(),
		SoilClass:       p.SoilClass,
		Mode:            p.Mode,
		DepthIn:         p.DepthIn,
		DurationMin:     p.DurationMin,
		MaxDryDensity:   p.MaxDryDensity,
		OptimumMoisture: p.OptimumMoisture,
		CreatedAt:       time.Now().UTC(),
		Records:         records,
	}
	a.store.Add(series)

	seriesGenerated.Inc()
	recordsGenerated.Add(float64(len(records)))
	generateSeconds.Observe(time.Since(start).Seconds())

	if a.publisher != nil {
		go a.publishSeries(*series)
	}

	writeJSON(w, http.StatusCreated, series)
}

func (a *API) handleRecentSeries(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 100 {
			writeError(w, http.StatusBadRequest, "limit must be an integer in [1,100]")
			return
		}
		limit = n
	}

	recent := a.store.Recent(limit)
	out := make([]SeriesSummary, 0, len(recent))
	for _, ts := range recent {
		out = append(out, summarize(ts))
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleGetSeries(w http.ResponseWriter, r *http.Request) {
	ts, ok := a.store.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "series not found")
		return
	}
	writeJSON(w, http.StatusOK, ts)
}

func (a *API) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	ts, ok := a.store.Get(r.PathValue("id"))
	if !ok {
		writeError(w, http.StatusNotFound, "series not found")
		return
	}

	// Il nome file porta l'ora dell'export, non quella della serie: è il
	// momento in cui l'operatore scarica il modulo.
	name := testgen.ExportFilename(time.Now())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)
	if err := testgen.WriteCSV(w, ts.Records); err != nil {
		log.Errorf("csv export of series %s: %v", ts.ID, err)
		return
	}
	csvExports.Inc()
}

func (a *API) handleSetRecordDone(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "record index must be an integer")
		return
	}
	var body struct {
		Done bool `json:"done"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	rec, ok := a.store.SetDone(r.PathValue("id"), index, body.Done)
	if !ok {
		writeError(w, http.StatusNotFound, "series or record not found")
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (a *API) handleSoilClasses(w http.ResponseWriter, _ *http.Request) {
	classes := soil.Classes()
	out := make([]SoilClassInfo, 0, len(classes))
	for _, c := range classes {
		out = append(out, SoilClassInfo{
			Class:       c,
			Calibration: a.table.Lookup(c),
			Info:        soil.Describe(c),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (a *API) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	status := "ok"
	mqttConnected := a.mqttClient != nil && a.mqttClient.IsConnectionOpen()
	if a.publisher != nil && !mqttConnected {
		status = "degraded"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         status,
		"mqtt_connected": mqttConnected,
		"series_stored":  a.store.Len(),
	})
}

func (a *API) handleReadyz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]bool{"ready": true})
}

// publishSeries emette un ReadingEvent per record, sul topic del gauge.
func (a *API) publishSeries(ts entities.TestSeries) {
	for _, rec := range ts.Records {
		evt := messages.ReadingEvent{
			GaugeID:       ts.Gauge.ID,
			SeriesID:      ts.ID,
			SoilClass:     ts.SoilClass,
			Mode:          ts.Mode,
			DepthIn:       ts.DepthIn,
			DensityCount:  rec.DensityCount,
			MoistureCount: rec.MoistureCount,
			WetDensity:    rec.WetDensity,
			DryDensity:    rec.DryDensity,
			MoisturePct:   rec.MoisturePct,
			CompactionPct: rec.CompactionPct,
			Timestamp:     ts.CreatedAt,
		}
		b, err := json.Marshal(evt)
		if err != nil {
			log.Errorf("marshal reading event: %v", err)
			continue
		}
		if err := a.publisher.PublishMessage(string(b)); err != nil {
			log.Errorf("publish reading for series %s: %v", ts.ID, err)
		}
	}
}

func validateParams(p testgen.Params) string {
	switch {
	case p.SoilClass == "":
		return "soil_class is required"
	case p.Count < minCount || p.Count > maxCount:
		return fmt.Sprintf("count must be in [%d,%d]", minCount, maxCount)
	case p.MaxDryDensity < minMaxDryDensity || p.MaxDryDensity > maxMaxDryDensity:
		return fmt.Sprintf("max_dry_density must be in [%.0f,%.0f] pcf", minMaxDryDensity, maxMaxDryDensity)
	case p.OptimumMoisture < minOptimumMoisture || p.OptimumMoisture > maxOptimumMoisture:
		return fmt.Sprintf("optimum_moisture must be in [%.0f,%.0f] %%", minOptimumMoisture, maxOptimumMoisture)
	case p.Mode == entities.ModeDirectTransmission && (p.DepthIn < minDepthIn || p.DepthIn > maxDepthIn):
		return fmt.Sprintf("depth_in must be in [%d,%d] for direct transmission", minDepthIn, maxDepthIn)
	case p.DurationMin < minDurationMin || p.DurationMin > maxDurationMin:
		return fmt.Sprintf("duration_min must be in [%.1f,%.1f]", minDurationMin, maxDurationMin)
	}
	return ""
}

func validateStandards(std entities.GaugeStandards) string {
	switch {
	case std.DensityCount < minDensityStandard || std.DensityCount > maxDensityStandard:
		return fmt.Sprintf("density_standard must be in [%d,%d]", minDensityStandard, maxDensityStandard)
	case std.MoistureCount < minMoistureStandard || std.MoistureCount > maxMoistureStandard:
		return fmt.Sprintf("moisture_standard must be in [%d,%d]", minMoistureStandard, maxMoistureStandard)
	}
	return ""
}

func summarize(ts entities.TestSeries) SeriesSummary {
	var sum float64
	for _, r := range ts.Records {
		sum += r.CompactionPct
	}
	mean := 0.0
	if len(ts.Records) > 0 {
		mean = sum / float64(len(ts.Records))
	}
	return SeriesSummary{
		ID:             ts.ID,
		GaugeID:        ts.Gauge.ID,
		SoilClass:      ts.SoilClass,
		Mode:           ts.Mode,
		Count:          len(ts.Records),
		MeanCompaction: math.Round(mean*10) / 10,
		CreatedAt:      ts.CreatedAt,
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
