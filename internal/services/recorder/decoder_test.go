package recorder

import (
	"testing"
	"time"
)

type fakeMsg struct {
	topic   string
	payload []byte
}

func (m fakeMsg) Duplicate() bool   { return false }
func (m fakeMsg) Qos() byte         { return 1 }
func (m fakeMsg) Retained() bool    { return false }
func (m fakeMsg) Topic() string     { return m.topic }
func (m fakeMsg) MessageID() uint16 { return 0 }
func (m fakeMsg) Payload() []byte   { return m.payload }
func (m fakeMsg) Ack()              {}

func handleOne(t *testing.T, topic, payload string) (CommonEvent, bool) {
	t.Helper()
	var got CommonEvent
	seen := false
	h := NewMQTTHandler(func(evt CommonEvent) {
		got = evt
		seen = true
	})
	if err := h.Handle("", fakeMsg{topic: topic, payload: []byte(payload)}); err != nil {
		t.Fatalf("Handle(%s): %v", topic, err)
	}
	return got, seen
}

func TestDecodeReading(t *testing.T) {
	payload := `{"gauge_id":"g1","soil_class":"CL (Lean clay)","mode":"DS","depth_in":8,` +
		`"density_count":1234,"moisture_count":137,"wet_density":125.2,"dry_density":115.8,` +
		`"moisture_pct":8.1,"compaction_pct":96.5,"timestamp":"2025-03-14T15:09:26Z"}`
	evt, seen := handleOne(t, "gauge/reading/g1", payload)
	if !seen {
		t.Fatal("reading not passed to sink")
	}
	if evt.EventType != "gauge.reading" || evt.GaugeID != "g1" {
		t.Errorf("evt = %+v", evt)
	}
	if evt.SoilClass != "CL (Lean clay)" || evt.Mode != "DS" {
		t.Errorf("soil/mode = %q/%q", evt.SoilClass, evt.Mode)
	}
	if evt.Fields["density_count"] != int64(1234) {
		t.Errorf("density_count = %v", evt.Fields["density_count"])
	}
	if evt.Fields["dry_density"] != 115.8 {
		t.Errorf("dry_density = %v", evt.Fields["dry_density"])
	}
	if evt.Severity != "info" {
		t.Errorf("severity = %q", evt.Severity)
	}
	want, _ := time.Parse(time.RFC3339, "2025-03-14T15:09:26Z")
	if !evt.Timestamp.Equal(want) {
		t.Errorf("timestamp = %v", evt.Timestamp)
	}
}

func TestDecodeReadingGaugeIDFromTopic(t *testing.T) {
	evt, seen := handleOne(t, "gauge/reading/g7", `{"density_count":1000}`)
	if !seen {
		t.Fatal("reading not passed to sink")
	}
	if evt.GaugeID != "g7" {
		t.Errorf("gauge id = %q, want g7 from topic", evt.GaugeID)
	}
}

func TestDecodeStandardCountSeverity(t *testing.T) {
	inTol := `{"gauge_id":"g1","density_count":1575,"moisture_count":672,` +
		`"density_drift_pct":0.3,"moisture_drift_pct":0.4}`
	evt, _ := handleOne(t, "gauge/standard/g1", inTol)
	if evt.EventType != "gauge.standard_count" || evt.Severity != "info" {
		t.Errorf("in-tolerance: %+v", evt)
	}
	if evt.Fields["density_standard"] != int64(1575) {
		t.Errorf("density_standard = %v", evt.Fields["density_standard"])
	}

	outTol := `{"gauge_id":"g1","density_count":1600,"moisture_count":672,` +
		`"density_drift_pct":1.9,"moisture_drift_pct":0.4}`
	evt, _ = handleOne(t, "gauge/standard/g1", outTol)
	if evt.Severity != "warning" {
		t.Errorf("out-of-tolerance severity = %q, want warning", evt.Severity)
	}
}

func TestStandardRequestIgnored(t *testing.T) {
	_, seen := handleOne(t, "gauge/standard/request", `{"gauge_id":"g1"}`)
	if seen {
		t.Fatal("standard request must not reach the sink")
	}
}

func TestUnrelatedTopicIgnored(t *testing.T) {
	_, seen := handleOne(t, "some/other/topic", `{}`)
	if seen {
		t.Fatal("unrelated topic must not reach the sink")
	}
}

func TestDecodeReadingBadPayload(t *testing.T) {
	h := NewMQTTHandler(func(CommonEvent) { t.Fatal("sink called for bad payload") })
	if err := h.Handle("", fakeMsg{topic: "gauge/reading/g1", payload: []byte("{not json")}); err == nil {
		t.Fatal("expected decode error")
	}
}
