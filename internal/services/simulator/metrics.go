package simulator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	seriesGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gaugesim_series_generated_total",
		Help: "Serie di prova generate.",
	})
	recordsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gaugesim_records_generated_total",
		Help: "Record di prova generati.",
	})
	csvExports = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gaugesim_csv_exports_total",
		Help: "Export CSV serviti.",
	})
	generateSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "gaugesim_series_generation_seconds",
		Help:    "Durata della generazione di una serie.",
		Buckets: prometheus.DefBuckets,
	})
)
