package simulator

import (
	"fmt"
	"testing"

	"github.com/geoservizi/gaugesim/internal/model/entities"
)

func seriesWithID(id string) *entities.TestSeries {
	return &entities.TestSeries{
		ID:      id,
		Records: []entities.TestRecord{{Index: 1, CompactionPct: 96.0}},
	}
}

func TestStoreEvictsOldest(t *testing.T) {
	s := NewStore(3)
	for i := 0; i < 4; i++ {
		s.Add(seriesWithID(fmt.Sprintf("s%d", i)))
	}

	if s.Len() != 3 {
		t.Fatalf("Len = %d, want 3", s.Len())
	}
	if _, ok := s.Get("s0"); ok {
		t.Fatal("oldest series should have been evicted")
	}
	if _, ok := s.Get("s3"); !ok {
		t.Fatal("newest series missing")
	}
}

func TestStoreRecentNewestFirst(t *testing.T) {
	s := NewStore(10)
	for i := 0; i < 3; i++ {
		s.Add(seriesWithID(fmt.Sprintf("s%d", i)))
	}

	recent := s.Recent(2)
	if len(recent) != 2 {
		t.Fatalf("Recent(2) returned %d series", len(recent))
	}
	if recent[0].ID != "s2" || recent[1].ID != "s1" {
		t.Fatalf("Recent order = %s, %s; want s2, s1", recent[0].ID, recent[1].ID)
	}
}

func TestStoreSetDone(t *testing.T) {
	s := NewStore(10)
	s.Add(seriesWithID("s1"))

	rec, ok := s.SetDone("s1", 1, true)
	if !ok || !rec.Done {
		t.Fatalf("SetDone = (%+v, %v), want done record", rec, ok)
	}
	ts, _ := s.Get("s1")
	if !ts.Records[0].Done {
		t.Fatal("done flag not persisted")
	}

	if _, ok := s.SetDone("s1", 9, true); ok {
		t.Fatal("SetDone accepted an unknown record index")
	}
	if _, ok := s.SetDone("nope", 1, true); ok {
		t.Fatal("SetDone accepted an unknown series")
	}
}

func TestStoreGetReturnsCopy(t *testing.T) {
	s := NewStore(10)
	s.Add(seriesWithID("s1"))

	ts, _ := s.Get("s1")
	ts.Records[0].Done = true

	again, _ := s.Get("s1")
	if again.Records[0].Done {
		t.Fatal("mutating the returned copy must not touch the stored series")
	}
}
