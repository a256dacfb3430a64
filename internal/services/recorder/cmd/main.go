package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	log "github.com/sirupsen/logrus"

	"github.com/geoservizi/gaugesim/internal/services/recorder"
	"github.com/geoservizi/gaugesim/pkg/dedup"
	"github.com/geoservizi/gaugesim/pkg/mqttbus"
)

func envStr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}
func envInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func main() {
	// === Config ===
	cfg := struct {
		Bus mqttbus.Config

		InfluxURL    string
		InfluxToken  string
		InfluxOrg    string
		InfluxBucket string

		Topics        []string
		BatchSize     int
		FlushInterval time.Duration

		HTTPPort       int
		ReadinessGrace time.Duration
	}{
		Bus: mqttbus.Config{
			Host:     envStr("MQTT_HOST", "localhost"),
			Port:     envInt("MQTT_PORT", 1883),
			User:     envStr("MQTT_USER", "guest"),
			Password: envStr("MQTT_PASSWORD", "guest"),
			ClientID: envStr("HOSTNAME", "recorder-service"),
		},

		InfluxURL:    envStr("INFLUX_URL", "http://localhost:8086"),
		InfluxToken:  os.Getenv("INFLUX_TOKEN"),
		InfluxOrg:    envStr("INFLUX_ORG", "geoservizi"),
		InfluxBucket: envStr("INFLUX_BUCKET", "gauge"),

		Topics: func() []string {
			raw := envStr("RECORDER_SUB_TOPICS", "gauge/reading/#,gauge/standard/#")
			parts := strings.Split(raw, ",")
			out := make([]string, 0, len(parts))
			for _, p := range parts {
				if s := strings.TrimSpace(p); s != "" {
					out = append(out, s)
				}
			}
			return out
		}(),
		BatchSize:     envInt("WRITE_BATCH_SIZE", 10),
		FlushInterval: time.Duration(envInt("WRITE_FLUSH_INTERVAL_MS", 200)) * time.Millisecond,

		HTTPPort:       envInt("HTTP_PORT", 8080),
		ReadinessGrace: 5 * time.Second,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// === InfluxDB ===
	opts := influxdb2.DefaultOptions().
		SetBatchSize(uint(cfg.BatchSize)).
		SetFlushInterval(uint(cfg.FlushInterval.Milliseconds()))
	influx := influxdb2.NewClientWithOptions(cfg.InfluxURL, cfg.InfluxToken, opts)
	defer influx.Close()
	writeAPI := influx.WriteAPI(cfg.InfluxOrg, cfg.InfluxBucket)
	writer := recorder.NewWriter(writeAPI)

	// === MQTT ===
	mqttClient, err := mqttbus.NewConn(&cfg.Bus, ctx)
	if err != nil {
		log.Fatalf("mqtt connection error: %v", err)
	}
	defer mqttbus.CloseConn(mqttClient)

	// === HTTP ===
	mux := http.NewServeMux()
	mux.Handle("/healthz", recorder.NewHealthHandler(mqttClient, influx, writer))
	mux.Handle("/readyz", recorder.NewReadyHandler(mqttClient, influx, writer, 2*time.Second))

	// GET /readings/latest?limit=20[&minutes=1440]
	mux.Handle("/readings/latest", recorder.NewReadingsLatestHandler(influx, cfg.InfluxOrg, cfg.InfluxBucket))

	hs := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.HTTPPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("recorder: HTTP listening on :%d", cfg.HTTPPort)
		if err := hs.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	// === Consumer ===
	h := recorder.NewMQTTHandler(func(evt recorder.CommonEvent) {
		p := recorder.EventToPoint(evt)
		writeAPI.WritePoint(p)
		writer.MarkIngest(evt.EventType)
	})

	// deduper condiviso SOLO per gauge/standard/# (QoS1 → possibili redelivery)
	d := dedup.New(10*time.Minute, 20000)

	for _, topic := range cfg.Topics {
		if strings.TrimSpace(topic) == "" {
			continue
		}
		log.Printf("recorder: subscribing to %s", topic)

		// QoS per-topic: 1 solo per gli standard count, 0 per le letture
		qos := byte(0)
		if strings.HasPrefix(topic, "gauge/standard") {
			qos = 1
		}

		if token := mqttClient.Subscribe(topic, qos, func(_ mqtt.Client, m mqtt.Message) {
			if strings.HasPrefix(m.Topic(), "gauge/standard/") {
				if !d.ShouldProcess(dedup.Key(m.Topic(), m.Payload())) {
					return
				}
			}
			_ = h.Handle("", m)
		}); token.Wait() && token.Error() != nil {
			log.Fatalf("subscribe error on %s: %v", topic, token.Error())
		}
	}

	// === Wait for signal ===
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh
	log.Printf("recorder: shutting down...")

	// graceful http
	shCtx, shCancel := context.WithTimeout(context.Background(), cfg.ReadinessGrace)
	defer shCancel()
	_ = hs.Shutdown(shCtx)

	// consenti flush
	time.Sleep(cfg.FlushInterval + 100*time.Millisecond)
}
