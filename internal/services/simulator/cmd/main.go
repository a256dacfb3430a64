package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	log "github.com/sirupsen/logrus"

	"github.com/geoservizi/gaugesim/internal/gauge"
	"github.com/geoservizi/gaugesim/internal/model/entities"
	"github.com/geoservizi/gaugesim/internal/services/simulator"
	"github.com/geoservizi/gaugesim/internal/soil"
	"github.com/geoservizi/gaugesim/internal/testgen"
	"github.com/geoservizi/gaugesim/pkg/mqttbus"
)

type config struct {
	HTTPPort int `env:"HTTP_PORT" envDefault:"8081"`
	StoreMax int `env:"STORE_MAX" envDefault:"100"`

	GaugeID         string `env:"GAUGE_ID" envDefault:"gauge-1"`
	GaugeModel      string `env:"GAUGE_MODEL" envDefault:"3440"`
	GaugeSerial     string `env:"GAUGE_SERIAL" envDefault:"39118"`
	CalibrationDate string `env:"GAUGE_CALIBRATION_DATE" envDefault:"2025-03-01"`

	DensityStandard  int    `env:"DENSITY_STANDARD" envDefault:"1570"`
	MoistureStandard int    `env:"MOISTURE_STANDARD" envDefault:"670"`
	CalibrationFile  string `env:"CALIBRATION_FILE"`

	// MQTT è opzionale: senza host il servizio genera e basta.
	MQTTHost             string `env:"MQTT_HOST"`
	MQTTPort             int    `env:"MQTT_PORT" envDefault:"1883"`
	MQTTUser             string `env:"MQTT_USER"`
	MQTTPassword         string `env:"MQTT_PASSWORD"`
	MQTTClientID         string `env:"MQTT_CLIENT_ID" envDefault:"simulator-service"`
	ReadingTopicTemplate string `env:"GAUGE_READING_TEMPLATE" envDefault:"gauge/reading/{gauge}"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse env: %v", err)
	}

	table := soil.NewTable()
	if cfg.CalibrationFile != "" {
		t, err := soil.Load(cfg.CalibrationFile)
		if err != nil {
			log.Fatalf("load calibration file %s: %v", cfg.CalibrationFile, err)
		}
		table = t
		log.Infof("calibrazione caricata da %s", cfg.CalibrationFile)
	}

	info := entities.GaugeInfo{
		ID:              cfg.GaugeID,
		Model:           cfg.GaugeModel,
		SerialNumber:    cfg.GaugeSerial,
		CalibrationDate: cfg.CalibrationDate,
	}
	std := entities.GaugeStandards{
		DensityCount:  cfg.DensityStandard,
		MoistureCount: cfg.MoistureStandard,
	}

	sim := gauge.NewSimulator(info, std, table, nil)
	gen := testgen.NewGenerator(sim, nil)
	store := simulator.NewStore(cfg.StoreMax)
	api := simulator.NewAPI(sim, gen, table, store)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.MQTTHost != "" {
		client, err := mqttbus.NewConn(&mqttbus.Config{
			Host:     cfg.MQTTHost,
			Port:     cfg.MQTTPort,
			User:     cfg.MQTTUser,
			Password: cfg.MQTTPassword,
			ClientID: cfg.MQTTClientID,
		}, ctx)
		if err != nil {
			log.Fatalf("MQTT connection: %v", err)
		}
		topic := strings.NewReplacer("{gauge}", cfg.GaugeID).Replace(cfg.ReadingTopicTemplate)
		api.SetPublisher(client, mqttbus.NewPublisher(client, topic))
		log.Infof("pubblicazione letture su %s", topic)
	}

	hs := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           api.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Infof("simulator-service in ascolto su :%d", cfg.HTTPPort)
		if err := hs.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	log.Println("shutdown simulator-service...")

	shctx, shcancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shcancel()
	_ = hs.Shutdown(shctx)
	cancel()
	// lascia uscire gli ultimi publish prima di chiudere
	time.Sleep(300 * time.Millisecond)
}
