// Package testgen produce serie di prove di compattazione complete: colonne
// campionate attorno ai valori di progetto, densità derivate e conteggi presi
// dal simulatore del gauge.
package testgen

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/geoservizi/gaugesim/internal/gauge"
	"github.com/geoservizi/gaugesim/internal/model/entities"
)

// Spread of accepted field tests around the target values.
const (
	compactionMean  = 96.5
	compactionSigma = 0.8
	compactionMin   = 95.0
	compactionMax   = 98.0

	moistureSigma  = 0.8
	moistureWindow = 2.0 // ± around optimum
)

// Params configure one generated series.
type Params struct {
	MaxDryDensity   float64            `json:"max_dry_density"`
	OptimumMoisture float64            `json:"optimum_moisture"`
	Count           int                `json:"count"`
	Mode            entities.DepthMode `json:"mode"`
	DepthIn         int                `json:"depth_in"`
	DurationMin     float64            `json:"duration_min"`
	SoilClass       string             `json:"soil_class"`
}

// Generator assembles test series, pulling counts from a gauge simulator.
type Generator struct {
	sim *gauge.Simulator
	rng *rand.Rand
}

// NewGenerator returns a batch generator backed by sim. A nil rng is seeded
// from the clock.
func NewGenerator(sim *gauge.Simulator, rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{sim: sim, rng: rng}
}

// Generate produces p.Count records with pairwise-distinct compaction and
// moisture columns. Records are 1-indexed and start not reviewed.
func (g *Generator) Generate(p Params) ([]entities.TestRecord, error) {
	if p.Count < 1 {
		return nil, fmt.Errorf("testgen: count must be >= 1, got %d", p.Count)
	}

	comps, err := newColumn(compactionMean, compactionSigma, compactionMin, compactionMax, g.rng).sample(p.Count)
	if err != nil {
		return nil, fmt.Errorf("compaction column: %w", err)
	}
	moists, err := newColumn(p.OptimumMoisture, moistureSigma,
		p.OptimumMoisture-moistureWindow, p.OptimumMoisture+moistureWindow, g.rng).sample(p.Count)
	if err != nil {
		return nil, fmt.Errorf("moisture column: %w", err)
	}

	records := make([]entities.TestRecord, 0, p.Count)
	for i := 0; i < p.Count; i++ {
		comp := comps[i]
		mc := moists[i]

		// Le densità derivate sono arrotondate a un decimale prima di
		// calcolare i conteggi, come sul modulo di campo.
		dry := round1(comp / 100 * p.MaxDryDensity)
		wet := round1(dry * (1 + mc/100))
		mass := round1(wet - dry)

		records = append(records, entities.TestRecord{
			Index:         i + 1,
			DensityCount:  g.sim.DensityCount(dry, p.Mode, p.DurationMin, p.SoilClass, p.DepthIn),
			MoistureCount: g.sim.MoistureCount(mc, p.DurationMin, p.SoilClass),
			WetDensity:    wet,
			DryDensity:    dry,
			MoistureMass:  mass,
			MoisturePct:   mc,
			CompactionPct: comp,
			Done:          false,
		})
	}
	return records, nil
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
