// Package gauge implements the count model of a nuclear density/moisture
// gauge: dry density and moisture content in, randomized but bounded raw
// counts out, scaled by the instrument's daily standard counts.
package gauge

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/geoservizi/gaugesim/internal/model/entities"
	"github.com/geoservizi/gaugesim/internal/soil"
)

// Factory reference standard counts. Daily standards are scaled against
// these, so a gauge standing exactly at reference reads unscaled.
const (
	RefDensityStandard  = 1570
	RefMoistureStandard = 670
)

const (
	// Backscatter reads systematically higher than direct transmission.
	backscatterFactor = 1.15
	// Direct transmission: linear correction around the 6" reference
	// probe depth, 1% per inch.
	referenceDepthIn   = 6
	depthAdjustPerInch = 0.01

	// Moisture channel: counts = 50 + 9.5 per moisture point, before the
	// per-soil hydrogen factor.
	moistureBaseCount  = 50.0
	moistureSlopePerPt = 9.5

	// Coefficients of variation from gauge comparison data.
	densityCV  = 0.06
	moistureCV = 0.08

	minDensityCount  = 500
	maxDensityCount  = 2000
	minMoistureCount = 50
	maxMoistureCount = 500
)

// Simulator produces synthetic counts for one gauge unit. Safe for
// concurrent use: the random source and the daily standards are guarded by
// a mutex.
type Simulator struct {
	mu        sync.Mutex
	info      entities.GaugeInfo
	standards entities.GaugeStandards
	table     *soil.Table
	rng       *rand.Rand
}

// NewSimulator builds a simulator for one gauge. A nil table means built-in
// coefficients, a nil rng means a time-seeded source, zero-valued standards
// default to the factory reference counts.
func NewSimulator(info entities.GaugeInfo, std entities.GaugeStandards, table *soil.Table, rng *rand.Rand) *Simulator {
	if table == nil {
		table = soil.NewTable()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if std.DensityCount == 0 {
		std.DensityCount = RefDensityStandard
	}
	if std.MoistureCount == 0 {
		std.MoistureCount = RefMoistureStandard
	}
	return &Simulator{info: info, standards: std, table: table, rng: rng}
}

// Info returns the gauge identity (never used in the count math).
func (s *Simulator) Info() entities.GaugeInfo { return s.info }

// Standards returns the daily standard counts currently in effect.
func (s *Simulator) Standards() entities.GaugeStandards {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.standards
}

// SetStandards replaces the daily standard counts (the agent re-takes them
// on the reference block periodically). Zero values keep the factory
// reference.
func (s *Simulator) SetStandards(std entities.GaugeStandards) {
	if std.DensityCount == 0 {
		std.DensityCount = RefDensityStandard
	}
	if std.MoistureCount == 0 {
		std.MoistureCount = RefMoistureStandard
	}
	s.mu.Lock()
	s.standards = std
	s.mu.Unlock()
}

// DensityCount simulates one density reading. dryDensity in pcf, duration
// in minutes, depthIn in inches (direct transmission only). The result is
// always within [500, 2000].
func (s *Simulator) DensityCount(dryDensity float64, mode entities.DepthMode, durationMin float64, class string, depthIn int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := s.densityBase(dryDensity, mode, durationMin, class, depthIn)

	// La variazione cresce leggermente con la densità per evitare valori
	// ripetuti nella fascia alta.
	cv := densityCV * (1 + dryDensity/1000)
	f := s.perturb(cv, math.Sin(dryDensity*0.1)*0.03, 0.85, 1.15)

	n := int(base*f) + s.jitter()
	return clampInt(n, minDensityCount, maxDensityCount)
}

// MoistureCount simulates one moisture reading. moisturePct is percent by
// dry weight, duration in minutes. The result is always within [50, 500].
func (s *Simulator) MoistureCount(moisturePct, durationMin float64, class string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := s.moistureBase(moisturePct, durationMin, class)
	f := s.perturb(moistureCV, math.Cos(moisturePct*0.2)*0.04, 0.82, 1.18)

	n := int(base*f) + s.jitter()
	return clampInt(n, minMoistureCount, maxMoistureCount)
}

// densityBase is the deterministic pre-noise count: soil regression, depth
// mode adjustment, sqrt-of-duration counting window, standard-count ratio.
func (s *Simulator) densityBase(dryDensity float64, mode entities.DepthMode, durationMin float64, class string, depthIn int) float64 {
	cal := s.table.Lookup(class)
	base := cal.Intercept + cal.Slope*dryDensity

	if mode == entities.ModeBackscatter {
		base *= backscatterFactor
	} else {
		base *= 1.0 + float64(depthIn-referenceDepthIn)*depthAdjustPerInch
	}

	base *= math.Sqrt(durationMin)
	base *= float64(s.standards.DensityCount) / RefDensityStandard
	return base
}

// moistureBase is the deterministic pre-noise moisture count.
func (s *Simulator) moistureBase(moisturePct, durationMin float64, class string) float64 {
	cal := s.table.Lookup(class)
	base := moistureBaseCount + moistureSlopePerPt*moisturePct*cal.MoistureFactor
	base *= math.Sqrt(durationMin)
	base *= float64(s.standards.MoistureCount) / RefMoistureStandard
	return base
}
