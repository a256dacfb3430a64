// Package simulator espone via REST la generazione delle serie di prova:
// l'equivalente di servizio del gauge usato a banco.
package simulator

import (
	"sync"

	"github.com/geoservizi/gaugesim/internal/model/entities"
)

// Store conserva le serie generate in memoria con un tetto: superato il
// limite le più vecchie vengono scartate.
type Store struct {
	mu    sync.RWMutex
	max   int
	byID  map[string]*entities.TestSeries
	order []string // ordine di inserimento, la più vecchia per prima
}

func NewStore(max int) *Store {
	if max <= 0 {
		max = 100
	}
	return &Store{max: max, byID: make(map[string]*entities.TestSeries, max)}
}

func (s *Store) Add(series *entities.TestSeries) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.byID[series.ID]; !ok {
		s.order = append(s.order, series.ID)
	}
	s.byID[series.ID] = series
	for len(s.order) > s.max {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.byID, oldest)
	}
}

// Get restituisce una copia della serie, i chiamanti possono serializzarla
// fuori dal lock.
func (s *Store) Get(id string) (entities.TestSeries, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ts, ok := s.byID[id]
	if !ok {
		return entities.TestSeries{}, false
	}
	return cloneSeries(ts), true
}

// Recent restituisce le ultime serie, la più nuova per prima.
func (s *Store) Recent(limit int) []entities.TestSeries {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 || limit > len(s.order) {
		limit = len(s.order)
	}
	out := make([]entities.TestSeries, 0, limit)
	for i := len(s.order) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, cloneSeries(s.byID[s.order[i]]))
	}
	return out
}

// SetDone marca un record come revisionato e ne restituisce la copia aggiornata.
func (s *Store) SetDone(id string, index int, done bool) (entities.TestRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ts, ok := s.byID[id]
	if !ok {
		return entities.TestRecord{}, false
	}
	r := ts.Record(index)
	if r == nil {
		return entities.TestRecord{}, false
	}
	r.Done = done
	return *r, true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func cloneSeries(ts *entities.TestSeries) entities.TestSeries {
	cp := *ts
	cp.Records = append([]entities.TestRecord(nil), ts.Records...)
	return cp
}
