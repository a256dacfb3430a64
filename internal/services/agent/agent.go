// Package agent simula i gauge sul campo: espone GaugeService via gRPC e
// pubblica periodicamente i conteggi dello standard block su MQTT.
package agent

import (
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	log "github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/geoservizi/gaugesim/internal/gauge"
	"github.com/geoservizi/gaugesim/internal/model/entities"
	"github.com/geoservizi/gaugesim/internal/model/messages"
	"github.com/geoservizi/gaugesim/pkg/dedup"
	"github.com/geoservizi/gaugesim/pkg/mqttbus"
)

// Standard counts drift slowly with source decay and electronics; the daily
// count stays inside the plausible band for the instrument family.
const (
	minDensityStandard  = 1000
	maxDensityStandard  = 2000
	minMoistureStandard = 400
	maxMoistureStandard = 1000

	densityStdSigma  = 3.0
	moistureStdSigma = 2.0
)

type PublisherFactory func(topic string) mqttbus.IPublisher

// StandardMonitor esegue il giro periodico degli standard count per ogni
// gauge della flotta e risponde alle richieste manuali via MQTT.
type StandardMonitor struct {
	mu            sync.Mutex
	sims          map[string]*gauge.Simulator
	makePublisher PublisherFactory
	consumer      mqttbus.IConsumer[mqtt.Message]
	deduper       *dedup.Deduper
	topicTmpl     string // es. "gauge/standard/{gauge}"
	rng           *rand.Rand
}

func NewStandardMonitor(consumer mqttbus.IConsumer[mqtt.Message], factory PublisherFactory,
	sims map[string]*gauge.Simulator, topicTmpl string, rng *rand.Rand) *StandardMonitor {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &StandardMonitor{
		sims:          sims,
		makePublisher: factory,
		consumer:      consumer,
		deduper:       dedup.New(2*time.Minute, 10000), // TTL e cap
		topicTmpl:     topicTmpl,
		rng:           rng,
	}
}

// Start avvia la ricezione delle richieste manuali e il giro periodico.
func (m *StandardMonitor) Start(ctx context.Context, interval time.Duration) {
	if m.consumer != nil {
		m.consumer.SetHandler(m.handleStandardRequest)
		go m.consumer.ConsumeMessage(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
			for id := range m.sims {
				if err := m.TakeStandardCount(id); err != nil {
					log.Printf("standard count error for %s: %v", id, err)
				}
			}
		}
	}
}

// TakeStandardCount measures the reference block for one gauge, updates the
// simulator standards and publishes the result.
func (m *StandardMonitor) TakeStandardCount(gaugeID string) error {
	sim, ok := m.sims[gaugeID]
	if !ok {
		log.Printf("standard count requested for unknown gauge %s; skipping", gaugeID)
		return nil
	}

	m.mu.Lock()
	cur := sim.Standards()
	next := entities.GaugeStandards{
		DensityCount: clampInt(
			int(distuv.Normal{Mu: float64(cur.DensityCount), Sigma: densityStdSigma, Src: m.rng}.Rand()),
			minDensityStandard, maxDensityStandard),
		MoistureCount: clampInt(
			int(distuv.Normal{Mu: float64(cur.MoistureCount), Sigma: moistureStdSigma, Src: m.rng}.Rand()),
			minMoistureStandard, maxMoistureStandard),
	}
	m.mu.Unlock()

	sim.SetStandards(next)
	info := sim.Info()

	evt := messages.StandardCountEvent{
		GaugeID:       gaugeID,
		Model:         info.Model,
		SerialNumber:  info.SerialNumber,
		DensityCount:  next.DensityCount,
		MoistureCount: next.MoistureCount,
		DensityDrift:  driftPct(next.DensityCount, gauge.RefDensityStandard),
		MoistureDrift: driftPct(next.MoistureCount, gauge.RefMoistureStandard),
		Timestamp:     time.Now(),
	}
	b, _ := json.Marshal(evt)
	topic := formatTopic(m.topicTmpl, gaugeID)
	if err := m.makePublisher(topic).PublishMessageQos(1, false, string(b)); err != nil {
		return err
	}
	log.Printf("gauge %s standard count: density=%d moisture=%d", gaugeID, next.DensityCount, next.MoistureCount)
	return nil
}

// standardRequest è il payload di gauge/standard/request: il request_id rende
// distinguibili le richieste ravvicinate dalle redelivery QoS 1.
type standardRequest struct {
	GaugeID   string `json:"gauge_id"`
	RequestID string `json:"request_id,omitempty"`
}

func (m *StandardMonitor) handleStandardRequest(topic string, msg mqtt.Message) error {
	if m.deduper != nil && !m.deduper.ShouldProcess(dedup.Key(topic, msg.Payload())) {
		return nil // duplicato → ignora
	}

	var req standardRequest
	if err := json.Unmarshal(msg.Payload(), &req); err != nil {
		log.Printf("invalid standard request on %s: %v", topic, err)
		return nil
	}
	if req.GaugeID == "" {
		// richiesta broadcast: tutta la flotta
		for id := range m.sims {
			if err := m.TakeStandardCount(id); err != nil {
				log.Printf("standard count error for %s: %v", id, err)
			}
		}
		return nil
	}
	return m.TakeStandardCount(req.GaugeID)
}

func driftPct(count, ref int) float64 {
	if ref == 0 {
		return 0
	}
	return (float64(count) - float64(ref)) / float64(ref) * 100
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func formatTopic(tmpl, gaugeID string) string {
	if strings.TrimSpace(tmpl) == "" {
		tmpl = "gauge/standard/{gauge}"
	}
	return strings.NewReplacer("{gauge}", gaugeID).Replace(tmpl)
}
