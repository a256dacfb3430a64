// Package dedup filtra le ridelivery dei messaggi QoS 1: il broker può
// riconsegnare lo stesso conteggio dopo una riconnessione e il recorder non
// deve scriverlo due volte.
package dedup

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"
)

// Key derives a stable dedup id from a message's topic and payload.
func Key(topic string, payload []byte) string {
	sum := sha256.Sum256(payload)
	return topic + "|" + hex.EncodeToString(sum[:])
}

// Deduper remembers recently seen ids for a TTL, bounded by a max size.
type Deduper struct {
	mu   sync.Mutex
	ttl  time.Duration
	max  int
	seen map[string]time.Time
}

func New(ttl time.Duration, max int) *Deduper {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if max <= 0 {
		max = 10000
	}
	return &Deduper{ttl: ttl, max: max, seen: make(map[string]time.Time, max)}
}

// ShouldProcess reports whether id has not been seen within the TTL, and
// marks it seen. An empty id is always processed.
func (d *Deduper) ShouldProcess(id string) bool {
	if id == "" {
		return true
	}
	now := time.Now()
	d.mu.Lock()
	defer d.mu.Unlock()
	if exp, ok := d.seen[id]; ok && now.Before(exp) {
		return false
	}
	d.seen[id] = now.Add(d.ttl)
	if len(d.seen) > d.max {
		for k, v := range d.seen {
			if now.After(v) {
				delete(d.seen, k)
			}
			if len(d.seen) <= d.max {
				break
			}
		}
	}
	return true
}

// Len returns the number of ids currently tracked.
func (d *Deduper) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.seen)
}
