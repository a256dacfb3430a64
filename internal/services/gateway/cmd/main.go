package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"

	"github.com/geoservizi/gaugesim/internal/services/gateway/app"
	"github.com/geoservizi/gaugesim/pkg/mqttbus"
)

func main() {
	cfg := loadConfig()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	router, err := app.NewGaugeRouter(ctx, cfg.AgentAddrMap)
	if err != nil {
		log.Fatalf("gauge router: %v", err)
	}
	defer router.Close()

	hub := app.NewHub()
	go hub.Run(ctx)

	// Feed live: le letture pubblicate dagli agent finiscono sul WebSocket.
	if cfg.MqttHost != "" {
		client, err := mqttbus.NewConn(&mqttbus.Config{
			Host:     cfg.MqttHost,
			Port:     cfg.MqttPort,
			User:     cfg.MqttUser,
			Password: cfg.MqttPassword,
			ClientID: cfg.MqttClientID,
		}, ctx)
		if err != nil {
			log.Fatalf("MQTT connection: %v", err)
		}
		consumer := mqttbus.NewConsumer(client, cfg.LiveTopic, func(_ string, message mqtt.Message) error {
			hub.Broadcast(message.Payload())
			return nil
		})
		go consumer.ConsumeMessage(ctx)
	}

	gw := app.NewGateway(app.Config{
		SimulatorBaseURL: cfg.SimulatorURL,
		RecorderBaseURL:  cfg.RecorderURL,
		HTTPTimeout:      time.Duration(cfg.TimeoutMs) * time.Millisecond,
		CBFails:          cfg.CBFails,
		CBOpenMs:         cfg.CBOpenMs,
		CBIntervalMs:     cfg.CBIntervalMs,
	}, router, hub)

	hs := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           gw.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Infof("gateway listening on :%s", cfg.Port)
		if err := hs.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc
	log.Println("shutdown gateway...")

	shctx, shcancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shcancel()
	_ = hs.Shutdown(shctx)
	cancel()
	time.Sleep(300 * time.Millisecond)
}
