package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	pb "github.com/geoservizi/gaugesim/grpc/gen/go/gauge"
	"github.com/geoservizi/gaugesim/internal/gauge"
	"github.com/geoservizi/gaugesim/internal/model"
	"github.com/geoservizi/gaugesim/internal/model/messages"
)

// GrpcHandler implementa GaugeService: esegue la lettura sul simulatore e
// pubblica il ReadingEvent corrispondente.
type GrpcHandler struct {
	pb.UnimplementedGaugeServiceServer

	makePublisher PublisherFactory
	sims          map[string]*gauge.Simulator

	// template topic per le letture
	readingTopicTmpl string // es. "gauge/reading/{gauge}"
}

func NewGrpcHandler(factory PublisherFactory, readingTopicTmpl string, sims map[string]*gauge.Simulator) *GrpcHandler {
	return &GrpcHandler{
		makePublisher:    factory,
		sims:             sims,
		readingTopicTmpl: readingTopicTmpl,
	}
}

// ============== RPC: TakeReading ==============

func (h *GrpcHandler) TakeReading(_ context.Context, req *pb.ReadingRequest) (*pb.ReadingReply, error) {
	gid := strings.TrimSpace(req.GetGaugeId())
	sim, ok := h.sims[gid]
	if !ok {
		return &pb.ReadingReply{Success: false, Message: fmt.Sprintf("unknown gauge %s", gid)}, nil
	}

	mode := model.ParseDepthMode(req.GetMode())
	dur := req.GetDurationMin()
	if dur <= 0 {
		dur = 1.0
	}
	depth := int(req.GetDepthIn())

	dry := req.GetDryDensity()
	mc := req.GetMoisturePct()

	densityCount := sim.DensityCount(dry, mode, dur, req.GetSoilClass(), depth)
	moistureCount := sim.MoistureCount(mc, dur, req.GetSoilClass())
	wet := math.Round(dry*(1+mc/100)*10) / 10

	// publish ReadingEvent, il recorder lo porta su Influx
	ticket := uuid.New().String()
	evt := messages.ReadingEvent{
		GaugeID:       gid,
		SoilClass:     req.GetSoilClass(),
		Mode:          mode,
		DepthIn:       depth,
		DensityCount:  densityCount,
		MoistureCount: moistureCount,
		WetDensity:    wet,
		DryDensity:    dry,
		MoisturePct:   mc,
		Timestamp:     time.Now(),
	}
	b, _ := json.Marshal(evt)
	topic := formatReadingTopic(h.readingTopicTmpl, gid)
	go func() {
		if err := h.makePublisher(topic).PublishMessageQos(1, false, string(b)); err != nil {
			log.Printf("publish reading for %s failed: %v", gid, err)
		}
	}()

	return &pb.ReadingReply{
		Success:       true,
		Message:       fmt.Sprintf("reading taken for gauge %s (%s, %.1f min)", gid, mode, dur),
		TicketId:      ticket,
		DensityCount:  int32(densityCount),
		MoistureCount: int32(moistureCount),
		WetDensity:    wet,
		DryDensity:    dry,
		MoisturePct:   mc,
	}, nil
}

// ============== RPC: GetStandards ==============

func (h *GrpcHandler) GetStandards(_ context.Context, req *pb.StandardsRequest) (*pb.StandardsReply, error) {
	gid := strings.TrimSpace(req.GetGaugeId())
	sim, ok := h.sims[gid]
	if !ok {
		return &pb.StandardsReply{}, nil
	}
	std := sim.Standards()
	info := sim.Info()
	return &pb.StandardsReply{
		DensityStandard:  int32(std.DensityCount),
		MoistureStandard: int32(std.MoistureCount),
		Model:            info.Model,
		SerialNumber:     info.SerialNumber,
		CalibrationDate:  info.CalibrationDate,
	}, nil
}

func formatReadingTopic(tmpl, gaugeID string) string {
	if strings.TrimSpace(tmpl) == "" {
		tmpl = "gauge/reading/{gauge}"
	}
	return strings.NewReplacer("{gauge}", gaugeID).Replace(tmpl)
}
