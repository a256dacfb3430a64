package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"google.golang.org/grpc"

	pb "github.com/geoservizi/gaugesim/grpc/gen/go/gauge"
)

type fakeGaugeClient struct {
	mu       sync.Mutex
	lastReq  *pb.ReadingRequest
	reply    *pb.ReadingReply
	stdReply *pb.StandardsReply
	err      error
}

var _ pb.GaugeServiceClient = (*fakeGaugeClient)(nil)

func (f *fakeGaugeClient) TakeReading(_ context.Context, in *pb.ReadingRequest, _ ...grpc.CallOption) (*pb.ReadingReply, error) {
	f.mu.Lock()
	f.lastReq = in
	f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.reply, nil
}

func (f *fakeGaugeClient) GetStandards(_ context.Context, _ *pb.StandardsRequest, _ ...grpc.CallOption) (*pb.StandardsReply, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.stdReply, nil
}

type fakeRouter struct{ clis map[string]pb.GaugeServiceClient }

func (f *fakeRouter) Get(id string) (pb.GaugeServiceClient, bool) {
	c, ok := f.clis[id]
	return c, ok
}
func (f *fakeRouter) Close() {}

func jsonServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestGateway(t *testing.T, simURL, recURL string, router GaugeRouter) *httptest.Server {
	t.Helper()
	gw := NewGateway(Config{
		SimulatorBaseURL: simURL,
		RecorderBaseURL:  recURL,
		HTTPTimeout:      2 * time.Second,
	}, router, nil)
	srv := httptest.NewServer(gw.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func TestHandleDashboard(t *testing.T) {
	// mean_compaction come stringa e timestamp al posto di time: il gateway
	// deve digerire entrambe le varianti.
	sim := jsonServer(t, `[{"id":"s1","gauge_id":"g1","soil_class":"CL (Lean clay)","mode":"DS","count":5,"mean_compaction":"96.4","created_at":"2025-06-01T10:00:00Z"}]`)
	rec := jsonServer(t, `[{"gauge_id":"g1","density_count":"1210","moisture_pct":8.5,"timestamp":"2025-06-01T10:05:00Z"},{"gauge_id":"g2","moisture_pct":7.5,"time":"2025-06-01T10:06:00Z"}]`)

	srv := newTestGateway(t, sim.URL, rec.URL, nil)

	resp, err := http.Get(srv.URL + "/dashboard/data")
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("GET dashboard: %v status %d", err, resp.StatusCode)
	}
	defer resp.Body.Close()

	var data DashboardData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		t.Fatalf("decode dashboard: %v", err)
	}

	if len(data.Series) != 1 || data.Series[0].MeanCompaction != 96.4 {
		t.Fatalf("series = %+v", data.Series)
	}
	if len(data.Readings) != 2 {
		t.Fatalf("got %d readings, want 2", len(data.Readings))
	}
	// ordinate per tempo decrescente
	if data.Readings[0].GaugeID != "g2" || data.Readings[1].GaugeID != "g1" {
		t.Fatalf("readings not sorted by time desc: %+v", data.Readings)
	}
	if data.Readings[1].DensityCount != 1210 {
		t.Fatalf("density_count as string not parsed: %+v", data.Readings[1])
	}
	if data.Stats["moisture_mean"] != 8.0 || data.Stats["moisture_min"] != 7.5 || data.Stats["moisture_max"] != 8.5 {
		t.Fatalf("stats = %+v", data.Stats)
	}
}

func TestDashboardServesLastGoodSeries(t *testing.T) {
	var calls int32
	sim := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if atomic.AddInt32(&calls, 1) > 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`[{"id":"s1","soil_class":"SM (Silty sand)","mode":"BS","count":3,"mean_compaction":96.1,"created_at":"2025-06-01T10:00:00Z"}]`))
	}))
	defer sim.Close()
	rec := jsonServer(t, `[]`)

	srv := newTestGateway(t, sim.URL, rec.URL, nil)

	for i := 0; i < 2; i++ {
		resp, err := http.Get(srv.URL + "/dashboard/data")
		if err != nil || resp.StatusCode != http.StatusOK {
			t.Fatalf("request %d: %v status %d", i, err, resp.StatusCode)
		}
		var data DashboardData
		if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
			t.Fatalf("decode: %v", err)
		}
		resp.Body.Close()
		if len(data.Series) != 1 || data.Series[0].ID != "s1" {
			t.Fatalf("request %d: series = %+v, want cached s1", i, data.Series)
		}
	}
}

func TestHandleTakeReading(t *testing.T) {
	fake := &fakeGaugeClient{reply: &pb.ReadingReply{
		Success:       true,
		TicketId:      "t-1",
		DensityCount:  1180,
		MoistureCount: 140,
		WetDensity:    125.3,
		DryDensity:    115.8,
		MoisturePct:   8.2,
	}}
	router := &fakeRouter{clis: map[string]pb.GaugeServiceClient{"g1": fake}}
	srv := newTestGateway(t, "", "", router)

	body := `{"soil_class":"CL (Lean clay)","mode":"direct","depth_in":8,"duration_min":1,"dry_density":115.8,"moisture_pct":8.2}`
	resp, err := http.Post(srv.URL+"/gauge/g1/reading", "application/json", strings.NewReader(body))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("POST reading: %v status %d", err, resp.StatusCode)
	}
	var out TakeReadingResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	resp.Body.Close()

	if !out.Success || out.TicketID != "t-1" || out.DensityCount != 1180 {
		t.Fatalf("response = %+v", out)
	}

	fake.mu.Lock()
	req := fake.lastReq
	fake.mu.Unlock()
	if req.GetGaugeId() != "g1" {
		t.Fatalf("agent called with gauge %q", req.GetGaugeId())
	}
	// "direct" non è BS: normalizzato a DS
	if req.GetMode() != "DS" {
		t.Fatalf("mode = %q, want DS", req.GetMode())
	}
}

func TestHandleTakeReadingErrors(t *testing.T) {
	okBody := `{"soil_class":"CL (Lean clay)","mode":"DS","depth_in":8,"duration_min":1,"dry_density":115.8,"moisture_pct":8.2}`

	// gauge sconosciuto al router
	router := &fakeRouter{clis: map[string]pb.GaugeServiceClient{}}
	srv := newTestGateway(t, "", "", router)
	resp, _ := http.Post(srv.URL+"/gauge/g9/reading", "application/json", strings.NewReader(okBody))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("unknown gauge: status %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()

	// router assente
	srv = newTestGateway(t, "", "", nil)
	resp, _ = http.Post(srv.URL+"/gauge/g1/reading", "application/json", strings.NewReader(okBody))
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Fatalf("nil router: status %d, want 503", resp.StatusCode)
	}
	resp.Body.Close()

	// densità non valida
	router = &fakeRouter{clis: map[string]pb.GaugeServiceClient{"g1": &fakeGaugeClient{}}}
	srv = newTestGateway(t, "", "", router)
	bad := `{"soil_class":"CL (Lean clay)","mode":"DS","dry_density":0,"moisture_pct":8}`
	resp, _ = http.Post(srv.URL+"/gauge/g1/reading", "application/json", strings.NewReader(bad))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("invalid density: status %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()

	// agente irraggiungibile
	router = &fakeRouter{clis: map[string]pb.GaugeServiceClient{"g1": &fakeGaugeClient{err: errors.New("connection refused")}}}
	srv = newTestGateway(t, "", "", router)
	resp, _ = http.Post(srv.URL+"/gauge/g1/reading", "application/json", strings.NewReader(okBody))
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("agent error: status %d, want 502", resp.StatusCode)
	}
	resp.Body.Close()

	// l'agent rifiuta il gauge
	router = &fakeRouter{clis: map[string]pb.GaugeServiceClient{"g1": &fakeGaugeClient{
		reply: &pb.ReadingReply{Success: false, Message: "unknown gauge g1"},
	}}}
	srv = newTestGateway(t, "", "", router)
	resp, _ = http.Post(srv.URL+"/gauge/g1/reading", "application/json", strings.NewReader(okBody))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("agent refusal: status %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestHandleStandards(t *testing.T) {
	fake := &fakeGaugeClient{stdReply: &pb.StandardsReply{
		DensityStandard:  1570,
		MoistureStandard: 670,
		Model:            "3440",
		SerialNumber:     "12345",
		CalibrationDate:  "2024-09-15",
	}}
	router := &fakeRouter{clis: map[string]pb.GaugeServiceClient{"g1": fake}}
	srv := newTestGateway(t, "", "", router)

	resp, err := http.Get(srv.URL + "/gauge/g1/standards")
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("GET standards: %v status %d", err, resp.StatusCode)
	}
	var out StandardsResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	resp.Body.Close()
	if out.DensityStandard != 1570 || out.MoistureStandard != 670 || out.Model != "3440" {
		t.Fatalf("standards = %+v", out)
	}
	if out.GaugeID != "g1" {
		t.Fatalf("gauge_id = %q", out.GaugeID)
	}

	// reply vuota dell'agent per gauge non suo
	fake.stdReply = &pb.StandardsReply{}
	resp, _ = http.Get(srv.URL + "/gauge/g1/standards")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("empty reply: status %d, want 404", resp.StatusCode)
	}
	resp.Body.Close()
}
