package simulator

import (
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/geoservizi/gaugesim/internal/gauge"
	"github.com/geoservizi/gaugesim/internal/model/entities"
	"github.com/geoservizi/gaugesim/internal/soil"
	"github.com/geoservizi/gaugesim/internal/testgen"
)

const validBody = `{"max_dry_density":120,"optimum_moisture":8,"count":10,"mode":"DS","depth_in":8,"duration_min":1,"soil_class":"CL (Lean clay)"}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	table := soil.NewTable()
	info := entities.GaugeInfo{ID: "g1", Model: "3440", SerialNumber: "12345", CalibrationDate: "2024-09-15"}
	std := entities.GaugeStandards{DensityCount: 1570, MoistureCount: 670}
	sim := gauge.NewSimulator(info, std, table, rand.New(rand.NewSource(7)))
	gen := testgen.NewGenerator(sim, rand.New(rand.NewSource(11)))
	api := NewAPI(sim, gen, table, NewStore(100))
	srv := httptest.NewServer(api.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func postSeries(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/api/series", "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("POST /api/series: %v", err)
	}
	return resp
}

func decodeSeries(t *testing.T, resp *http.Response) entities.TestSeries {
	t.Helper()
	defer resp.Body.Close()
	var ts entities.TestSeries
	if err := json.NewDecoder(resp.Body).Decode(&ts); err != nil {
		t.Fatalf("decode series: %v", err)
	}
	return ts
}

func TestCreateSeries(t *testing.T) {
	srv := newTestServer(t)

	resp := postSeries(t, srv, validBody)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	ts := decodeSeries(t, resp)

	if ts.ID == "" {
		t.Fatal("series ID is empty")
	}
	if ts.Gauge.ID != "g1" || ts.Standards.DensityCount != 1570 || ts.Standards.MoistureCount != 670 {
		t.Fatalf("gauge/standards not echoed: %+v %+v", ts.Gauge, ts.Standards)
	}
	if len(ts.Records) != 10 {
		t.Fatalf("got %d records, want 10", len(ts.Records))
	}
	for i, r := range ts.Records {
		if r.Index != i+1 {
			t.Fatalf("record %d has index %d", i, r.Index)
		}
		if r.CompactionPct < 95 || r.CompactionPct > 98 {
			t.Fatalf("compaction %.1f out of [95,98]", r.CompactionPct)
		}
		if r.DensityCount < 500 || r.DensityCount > 2000 {
			t.Fatalf("density count %d out of range", r.DensityCount)
		}
		if r.MoistureCount < 50 || r.MoistureCount > 500 {
			t.Fatalf("moisture count %d out of range", r.MoistureCount)
		}
		if r.Done {
			t.Fatal("new records must start not reviewed")
		}
	}
}

func TestSeriesLifecycle(t *testing.T) {
	srv := newTestServer(t)
	ts := decodeSeries(t, postSeries(t, srv, validBody))

	resp, err := http.Get(srv.URL + "/api/series/" + ts.ID)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("GET series: %v status %d", err, resp.StatusCode)
	}
	got := decodeSeries(t, resp)
	if got.ID != ts.ID {
		t.Fatalf("GET returned series %s, want %s", got.ID, ts.ID)
	}

	req, _ := http.NewRequest(http.MethodPatch, srv.URL+"/api/series/"+ts.ID+"/records/3", strings.NewReader(`{"done":true}`))
	resp, err = http.DefaultClient.Do(req)
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("PATCH record: %v status %d", err, resp.StatusCode)
	}
	var rec entities.TestRecord
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		t.Fatalf("decode record: %v", err)
	}
	resp.Body.Close()
	if rec.Index != 3 || !rec.Done {
		t.Fatalf("patched record = %+v, want index 3 done", rec)
	}

	resp, _ = http.Get(srv.URL + "/api/series/" + ts.ID)
	got = decodeSeries(t, resp)
	if r := got.Record(3); r == nil || !r.Done {
		t.Fatal("done flag not visible on re-read")
	}
}

func TestRecentSeries(t *testing.T) {
	srv := newTestServer(t)
	for _, count := range []int{3, 4, 5} {
		body := strings.Replace(validBody, `"count":10`, fmt.Sprintf(`"count":%d`, count), 1)
		resp := postSeries(t, srv, body)
		if resp.StatusCode != http.StatusCreated {
			t.Fatalf("seed series (count %d): status %d", count, resp.StatusCode)
		}
		resp.Body.Close()
	}

	resp, err := http.Get(srv.URL + "/api/series/recent?limit=2")
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("GET recent: %v status %d", err, resp.StatusCode)
	}
	var out []SeriesSummary
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode summaries: %v", err)
	}
	resp.Body.Close()

	if len(out) != 2 {
		t.Fatalf("got %d summaries, want 2", len(out))
	}
	if out[0].Count != 5 || out[1].Count != 4 {
		t.Fatalf("recent order wrong: counts %d, %d", out[0].Count, out[1].Count)
	}
	if out[0].MeanCompaction < 95 || out[0].MeanCompaction > 98 {
		t.Fatalf("mean compaction %.1f out of band", out[0].MeanCompaction)
	}
}

func TestExportCSV(t *testing.T) {
	srv := newTestServer(t)
	body := strings.Replace(validBody, `"count":10`, `"count":5`, 1)
	ts := decodeSeries(t, postSeries(t, srv, body))

	resp, err := http.Get(srv.URL + "/api/series/" + ts.ID + "/export.csv")
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("GET export: %v status %d", err, resp.StatusCode)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("Content-Type = %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "gauge_results_") {
		t.Fatalf("Content-Disposition = %q", cd)
	}

	raw, _ := io.ReadAll(resp.Body)
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d CSV lines, want header + 5 rows", len(lines))
	}
	wantHeader := "index,density_count,moisture_count,wet_density,dry_density,moisture_mass,moisture_pct,compaction_pct,done"
	if strings.TrimSpace(lines[0]) != wantHeader {
		t.Fatalf("header = %q", lines[0])
	}
}

func TestCreateSeriesValidation(t *testing.T) {
	srv := newTestServer(t)

	bad := []string{
		`{"max_dry_density":120,"optimum_moisture":8,"count":0,"mode":"DS","depth_in":8,"duration_min":1,"soil_class":"CL (Lean clay)"}`,
		`{"max_dry_density":120,"optimum_moisture":8,"count":25,"mode":"DS","depth_in":8,"duration_min":1,"soil_class":"CL (Lean clay)"}`,
		`{"max_dry_density":90,"optimum_moisture":8,"count":5,"mode":"DS","depth_in":8,"duration_min":1,"soil_class":"CL (Lean clay)"}`,
		`{"max_dry_density":120,"optimum_moisture":0.5,"count":5,"mode":"DS","depth_in":8,"duration_min":1,"soil_class":"CL (Lean clay)"}`,
		`{"max_dry_density":120,"optimum_moisture":8,"count":5,"mode":"DS","depth_in":3,"duration_min":1,"soil_class":"CL (Lean clay)"}`,
		`{"max_dry_density":120,"optimum_moisture":8,"count":5,"mode":"DS","depth_in":8,"duration_min":0.2,"soil_class":"CL (Lean clay)"}`,
		`{"max_dry_density":120,"optimum_moisture":8,"count":5,"mode":"DS","depth_in":8,"duration_min":1,"soil_class":""}`,
		`{not json`,
	}
	for i, body := range bad {
		resp := postSeries(t, srv, body)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("case %d: status = %d, want 400", i, resp.StatusCode)
		}
		resp.Body.Close()
	}

	// In backscatter la profondità non si applica: zero è accettato.
	bs := `{"max_dry_density":120,"optimum_moisture":8,"count":5,"mode":"BS","depth_in":0,"duration_min":1,"soil_class":"SM (Silty sand)"}`
	resp := postSeries(t, srv, bs)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("backscatter without depth: status = %d, want 201", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestCreateSeriesWithStandards(t *testing.T) {
	srv := newTestServer(t)

	body := strings.Replace(validBody, `"soil_class"`, `"standards":{"density_standard":1600,"moisture_standard":700},"soil_class"`, 1)
	ts := decodeSeries(t, postSeries(t, srv, body))
	if ts.Standards.DensityCount != 1600 || ts.Standards.MoistureCount != 700 {
		t.Fatalf("standards = %+v, want 1600/700", ts.Standards)
	}

	// Gli standard restano impostati per le serie successive.
	ts = decodeSeries(t, postSeries(t, srv, validBody))
	if ts.Standards.DensityCount != 1600 || ts.Standards.MoistureCount != 700 {
		t.Fatalf("standards not sticky: %+v", ts.Standards)
	}

	// Fuori fascia: rifiutati.
	bad := strings.Replace(validBody, `"soil_class"`, `"standards":{"density_standard":150,"moisture_standard":700},"soil_class"`, 1)
	resp := postSeries(t, srv, bad)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("out-of-band standards: status %d, want 400", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestGetSeriesNotFound(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/series/00000000-0000-0000-0000-000000000000")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestSoilClassesEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Get(srv.URL + "/api/soil/classes")
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("GET soil classes: %v status %d", err, resp.StatusCode)
	}
	defer resp.Body.Close()

	var rows []SoilClassInfo
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		t.Fatalf("decode rows: %v", err)
	}
	if len(rows) != 18 {
		t.Fatalf("got %d classes, want 18", len(rows))
	}
	if !strings.HasPrefix(rows[0].Class, "GW") {
		t.Fatalf("first class = %q, want GW first", rows[0].Class)
	}
	for _, row := range rows {
		if row.Class == "CL (Lean clay)" {
			if row.Calibration.Intercept != 4200 || row.Calibration.Slope != -29.0 {
				t.Fatalf("CL calibration = %+v", row.Calibration)
			}
			if row.Info.Description == "" || row.Info.TypicalUses == "" {
				t.Fatalf("CL description incomplete: %+v", row.Info)
			}
			return
		}
	}
	t.Fatal("CL (Lean clay) missing from the class list")
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("GET healthz: %v status %d", err, resp.StatusCode)
	}
	var health struct {
		Status        string `json:"status"`
		MQTTConnected bool   `json:"mqtt_connected"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		t.Fatalf("decode healthz: %v", err)
	}
	resp.Body.Close()
	if health.Status != "ok" || health.MQTTConnected {
		t.Fatalf("healthz = %+v, want ok without MQTT", health)
	}

	resp, err = http.Get(srv.URL + "/readyz")
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("GET readyz: %v status %d", err, resp.StatusCode)
	}
	resp.Body.Close()
}
