// Package app è il BFF della dashboard: aggrega simulator-service e
// recorder-service via REST, inoltra i comandi agli agent via gRPC e
// ritrasmette le letture live su WebSocket.
package app

import (
	"net/http"
	"sync"
	"time"
)

type Config struct {
	SimulatorBaseURL string
	RecorderBaseURL  string
	SeriesPath       string
	ReadingsPath     string
	HTTPTimeout      time.Duration

	// Circuit breaker sugli upstream REST
	CBFails      int
	CBOpenMs     int
	CBIntervalMs int
}

type Gateway struct {
	cfg      Config
	series   *Upstream
	readings *Upstream
	router   GaugeRouter
	hub      *Hub

	mu             sync.Mutex
	lastGoodSeries []SeriesSummary
}

// NewGateway collega gli upstream REST. router e hub possono essere nil: i
// rispettivi endpoint rispondono 503.
func NewGateway(cfg Config, router GaugeRouter, hub *Hub) *Gateway {
	if cfg.SeriesPath == "" {
		cfg.SeriesPath = "/api/series/recent"
	}
	if cfg.ReadingsPath == "" {
		cfg.ReadingsPath = "/readings/latest"
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 3 * time.Second
	}
	if cfg.CBFails <= 0 {
		cfg.CBFails = 3
	}
	if cfg.CBOpenMs <= 0 {
		cfg.CBOpenMs = 5000
	}
	if cfg.CBIntervalMs <= 0 {
		cfg.CBIntervalMs = 60000
	}

	// Un breaker per ciascun upstream
	sb := mkCB("simulator-service", cfg.CBFails, cfg.CBOpenMs, cfg.CBIntervalMs)
	rb := mkCB("recorder-service", cfg.CBFails, cfg.CBOpenMs, cfg.CBIntervalMs)

	s := NewUpstream("simulator", cfg.SimulatorBaseURL, cfg.SeriesPath, cfg.HTTPTimeout, sb)
	r := NewUpstream("recorder", cfg.RecorderBaseURL, cfg.ReadingsPath, cfg.HTTPTimeout, rb)

	return &Gateway{cfg: cfg, series: s, readings: r, router: router, hub: hub}
}

// Routes registra gli endpoint del gateway.
func (g *Gateway) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /dashboard/data", g.HandleDashboard)
	mux.HandleFunc("POST /gauge/{id}/reading", g.HandleTakeReading)
	mux.HandleFunc("GET /gauge/{id}/standards", g.HandleStandards)
	mux.HandleFunc("GET /ws", g.HandleWS)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}
