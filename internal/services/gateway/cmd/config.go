package main

import (
	"os"
	"strconv"
)

type Config struct {
	Port      string
	TimeoutMs int

	// Upstream REST
	SimulatorURL string // es. http://simulator-service:8081
	RecorderURL  string // es. http://recorder-service:8080

	// Circuit breaker sugli upstream
	CBFails      int
	CBOpenMs     int
	CBIntervalMs int

	// Agent gRPC, una entry per gauge
	AgentAddrMap string // es. gauge-1=gauge-agent:50051

	// Feed live su MQTT (opzionale)
	MqttHost     string
	MqttPort     int
	MqttUser     string
	MqttPassword string
	MqttClientID string
	LiveTopic    string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
func getenvInt(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

func loadConfig() Config {
	return Config{
		Port:      getenv("PORT", "8090"),
		TimeoutMs: getenvInt("TIMEOUT_MS", 3000),

		SimulatorURL: getenv("SIMULATOR_URL", "http://simulator-service:8081"),
		RecorderURL:  getenv("RECORDER_URL", "http://recorder-service:8080"),

		CBFails:      getenvInt("CB_FAILS", 3),
		CBOpenMs:     getenvInt("CB_OPEN_MS", 5000),
		CBIntervalMs: getenvInt("CB_INTERVAL_MS", 60000),

		AgentAddrMap: getenv("AGENT_GRPC_ADDR_MAP", "gauge-1=gauge-agent:50051"),

		MqttHost:     getenv("MQTT_HOST", ""),
		MqttPort:     getenvInt("MQTT_PORT", 1883),
		MqttUser:     getenv("MQTT_USER", ""),
		MqttPassword: getenv("MQTT_PASSWORD", ""),
		MqttClientID: getenv("MQTT_CLIENT_ID", "gateway-service"),
		LiveTopic:    getenv("LIVE_TOPIC", "gauge/reading/#"),
	}
}
