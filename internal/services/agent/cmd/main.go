package main

import (
	"context"
	"encoding/json"
	"flag"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	pb "github.com/geoservizi/gaugesim/grpc/gen/go/gauge"
	"github.com/geoservizi/gaugesim/internal/gauge"
	"github.com/geoservizi/gaugesim/internal/model/entities"
	"github.com/geoservizi/gaugesim/internal/services/agent"
	"github.com/geoservizi/gaugesim/internal/soil"
	"github.com/geoservizi/gaugesim/pkg/mqttbus"
)

func mustEnv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	if def != "" {
		return def
	}
	log.Fatalf("missing required env %s", k)
	return ""
}

func main() {
	// define flags: un gauge singolo senza file di configurazione
	gaugeID := flag.String("gauge-id", "", "run a single gauge with this id (skips GAUGES_CONFIG_PATH)")
	gaugeModel := flag.String("model", "3440", "gauge model")
	gaugeSerial := flag.String("serial", "39118", "gauge serial number")
	calDate := flag.String("calibration-date", "2025-03-01", "last calibration date")
	densityStd := flag.Int("density-standard", 0, "initial density standard count (0 = factory reference)")
	moistureStd := flag.Int("moisture-standard", 0, "initial moisture standard count (0 = factory reference)")
	seed := flag.Int64("seed", 0, "rng seed (0 = time-based)")
	flag.Parse()

	// ---- ENV ----
	host := mustEnv("MQTT_HOST", "localhost")
	portStr := mustEnv("MQTT_PORT", "1883")
	user := mustEnv("MQTT_USER", "guest")
	pass := mustEnv("MQTT_PASSWORD", "guest")
	clientID := mustEnv("MQTT_CLIENTID", "gauge-agent")
	grpcPort := mustEnv("GRPC_PORT", "50051")
	gaugesPath := mustEnv("GAUGES_CONFIG_PATH", "/app/config/gauges-config.json")
	calibrationPath := strings.TrimSpace(os.Getenv("CALIBRATION_FILE"))

	standardTmpl := mustEnv("GAUGE_STANDARD_TEMPLATE", "gauge/standard/{gauge}")
	readingTmpl := mustEnv("GAUGE_READING_TEMPLATE", "gauge/reading/{gauge}")
	requestTopic := mustEnv("GAUGE_STANDARD_REQUEST_TOPIC", "gauge/standard/request")
	intervalStr := mustEnv("STANDARD_INTERVAL", "24h")

	port, err := strconv.Atoi(strings.TrimSpace(portStr))
	if err != nil {
		log.Fatalf("invalid MQTT_PORT: %v", err)
	}
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		log.Fatalf("invalid STANDARD_INTERVAL: %v", err)
	}

	// ---- Tabella di calibrazione (override opzionale da file INI) ----
	table := soil.NewTable()
	if calibrationPath != "" {
		table, err = soil.Load(calibrationPath)
		if err != nil {
			log.Fatalf("load calibration: %v", err)
		}
	}

	// ---- Carica flotta gauge (o il singolo gauge dai flag) ----
	var infos []entities.GaugeInfo
	if *gaugeID != "" {
		infos = []entities.GaugeInfo{{
			ID:              *gaugeID,
			Model:           *gaugeModel,
			SerialNumber:    *gaugeSerial,
			CalibrationDate: *calDate,
		}}
	} else {
		raw, err := os.ReadFile(gaugesPath)
		if err != nil {
			log.Fatalf("read gauges config: %v", err)
		}
		if err := json.Unmarshal(raw, &infos); err != nil {
			log.Fatalf("unmarshal gauges config: %v", err)
		}
		if len(infos) == 0 {
			log.Fatal("gauges config is empty")
		}
	}
	std := entities.GaugeStandards{DensityCount: *densityStd, MoistureCount: *moistureStd}
	baseSeed := *seed
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}
	sims := make(map[string]*gauge.Simulator, len(infos))
	for i, gi := range infos {
		if gi.ID == "" {
			log.Fatalf("gauge %d has no id", i)
		}
		// un rng per simulatore: il mutex del simulatore protegge solo il proprio
		sims[gi.ID] = gauge.NewSimulator(gi, std, table,
			rand.New(rand.NewSource(baseSeed+int64(i))))
	}

	// ---- MQTT ----
	cfg := &mqttbus.Config{
		Host:     host,
		Port:     port,
		User:     user,
		Password: pass,
		ClientID: clientID,
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := mqttbus.NewConn(cfg, ctx)
	if err != nil {
		log.Fatalf("MQTT connect error: %v", err)
	}

	// factory per creare un publisher col topic calcolato
	publisherFactory := func(topic string) mqttbus.IPublisher {
		return mqttbus.NewPublisher(client, topic)
	}
	requestConsumer := mqttbus.NewConsumer(client, requestTopic, nil)

	monitor := agent.NewStandardMonitor(requestConsumer, publisherFactory, sims, standardTmpl, nil)
	go monitor.Start(ctx, interval)

	// ---- gRPC server ----
	addr := ":" + grpcPort
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("listen %s: %v", addr, err)
	}
	grpcServer := grpc.NewServer()
	pb.RegisterGaugeServiceServer(
		grpcServer,
		agent.NewGrpcHandler(publisherFactory, readingTmpl, sims),
	)

	go func() {
		log.Printf("GaugeAgent gRPC %s; %d gauges; standard interval %s", addr, len(sims), interval)
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("gRPC serve error: %v", err)
		}
	}()

	// ---- graceful shutdown ----
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	<-sigc
	log.Println("shutting down...")
	grpcServer.GracefulStop()
	cancel()
	time.Sleep(300 * time.Millisecond)
}
