package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
)

// Upstream incapsula chiamate HTTP con Circuit Breaker
type Upstream struct {
	base    string
	path    string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	name    string
}

// mkCB costruisce un breaker che apre dopo N fallimenti consecutivi.
func mkCB(name string, fails, openMs, intervalMs int) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:     name,
		Interval: time.Duration(intervalMs) * time.Millisecond,
		Timeout:  time.Duration(openMs) * time.Millisecond,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= uint32(fails)
		},
	})
}

// NewUpstream costruisce un client verso un servizio a monte
func NewUpstream(name, base, path string, timeout time.Duration, breaker *gobreaker.CircuitBreaker) *Upstream {
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	path = "/" + strings.TrimLeft(strings.TrimSpace(path), "/")
	return &Upstream{
		base:    base,
		path:    path,
		client:  &http.Client{Timeout: timeout},
		breaker: breaker,
		name:    name,
	}
}

// GetJSON esegue la GET attraverso il breaker e decodifica JSON in out
func (u *Upstream) GetJSON(ctx context.Context, out any) error {
	if u == nil || u.base == "" {
		// upstream opzionale non configurato: non è un errore, lasciamo out invariato
		return nil
	}

	_, err := u.breaker.Execute(func() (any, error) {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u.base+u.path, nil)
		resp, err := u.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%s request error: %w", u.name, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%s upstream status %d", u.name, resp.StatusCode)
		}

		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("%s decode error: %w", u.name, err)
		}
		return nil, nil
	})
	return err
}

// State espone lo stato del breaker per i log di accesso.
func (u *Upstream) State() gobreaker.State {
	return u.breaker.State()
}
