package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/geoservizi/gaugesim/grpc/gen/go/gauge"
)

// GaugeRouter restituisce il client gRPC dell'agent che gestisce un gauge.
type GaugeRouter interface {
	Get(gaugeID string) (pb.GaugeServiceClient, bool)
	Close()
}

// gaugeRouter mantiene una connessione gRPC per ogni gauge
type gaugeRouter struct {
	mu    sync.RWMutex
	conns map[string]*grpc.ClientConn
	clis  map[string]pb.GaugeServiceClient
}

// Verifica a compile-time che *gaugeRouter implementi GaugeRouter
var _ GaugeRouter = (*gaugeRouter)(nil)

// NewGaugeRouter accetta una stringa tipo "gauge-1=host1:50051,gauge-2=host2:50051"
func NewGaugeRouter(ctx context.Context, mapStr string) (GaugeRouter, error) {
	gr := &gaugeRouter{
		conns: make(map[string]*grpc.ClientConn),
		clis:  make(map[string]pb.GaugeServiceClient),
	}

	pairs := strings.Split(mapStr, ",")
	for _, p := range pairs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid AGENT_GRPC_ADDR_MAP entry: %q", p)
		}
		gaugeID, addr := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])

		dctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		// Dial bloccante *senza* WithBlock (deprecato): usiamo il timeout + ritorno errore
		conn, err := grpc.DialContext(
			dctx,
			addr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithReturnConnectionError(),
		)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("dial %s (%s): %w", gaugeID, addr, err)
		}

		gr.mu.Lock()
		gr.conns[gaugeID] = conn
		gr.clis[gaugeID] = pb.NewGaugeServiceClient(conn)
		gr.mu.Unlock()
	}
	return gr, nil
}

func (g *gaugeRouter) Get(gaugeID string) (pb.GaugeServiceClient, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	cli, ok := g.clis[gaugeID]
	return cli, ok
}

func (g *gaugeRouter) Close() {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, c := range g.conns {
		if c != nil {
			_ = c.Close()
		}
	}
	g.clis = map[string]pb.GaugeServiceClient{}
	g.conns = map[string]*grpc.ClientConn{}
}
