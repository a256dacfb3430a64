package gauge

import (
	"math"
	"math/rand"
	"testing"

	"github.com/geoservizi/gaugesim/internal/model/entities"
	"github.com/geoservizi/gaugesim/internal/soil"
)

func newTestSim(seed int64) *Simulator {
	return NewSimulator(
		entities.GaugeInfo{Model: "3440", SerialNumber: "12345", CalibrationDate: "2024-09-15"},
		entities.GaugeStandards{DensityCount: 1570, MoistureCount: 670},
		nil,
		rand.New(rand.NewSource(seed)),
	)
}

func TestDensityCountBounds(t *testing.T) {
	sim := newTestSim(1)
	for _, class := range soil.Classes() {
		for dd := 80.0; dd <= 150.0; dd += 7.3 {
			for _, mode := range []entities.DepthMode{entities.ModeDirectTransmission, entities.ModeBackscatter} {
				n := sim.DensityCount(dd, mode, 1.0, class, 8)
				if n < 500 || n > 2000 {
					t.Fatalf("count %d out of [500,2000] for class=%q dd=%.1f mode=%s", n, class, dd, mode)
				}
			}
		}
	}
}

func TestMoistureCountBounds(t *testing.T) {
	sim := newTestSim(2)
	for _, class := range soil.Classes() {
		for mc := 1.0; mc <= 30.0; mc += 1.7 {
			n := sim.MoistureCount(mc, 1.0, class)
			if n < 50 || n > 500 {
				t.Fatalf("count %d out of [50,500] for class=%q mc=%.1f", n, class, mc)
			}
		}
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := newTestSim(42), newTestSim(42)
	for i := 0; i < 50; i++ {
		dd := 100 + float64(i)*0.9
		mc := 4 + float64(i)*0.3
		if got, want := a.DensityCount(dd, entities.ModeDirectTransmission, 1.0, soil.CL, 8),
			b.DensityCount(dd, entities.ModeDirectTransmission, 1.0, soil.CL, 8); got != want {
			t.Fatalf("density diverged at i=%d: %d vs %d", i, got, want)
		}
		if got, want := a.MoistureCount(mc, 1.0, soil.CL), b.MoistureCount(mc, 1.0, soil.CL); got != want {
			t.Fatalf("moisture diverged at i=%d: %d vs %d", i, got, want)
		}
	}
}

func TestUnknownSoilUsesFallback(t *testing.T) {
	sim := newTestSim(7)
	dd := 112.4

	// Depth 6 and duration 1 leave only the regression and the standard
	// ratio (1.0 at reference).
	base := sim.densityBase(dd, entities.ModeDirectTransmission, 1.0, "ZZ (Nonesuch)", 6)
	want := soil.Fallback.Intercept + soil.Fallback.Slope*dd
	if math.Abs(base-want) > 1e-9 {
		t.Errorf("density base for unknown soil = %v, want fallback regression %v", base, want)
	}

	mbase := sim.moistureBase(9.0, 1.0, "ZZ (Nonesuch)")
	mwant := 50 + 9.5*9.0*soil.Fallback.MoistureFactor
	if math.Abs(mbase-mwant) > 1e-9 {
		t.Errorf("moisture base for unknown soil = %v, want %v", mbase, mwant)
	}
}

func TestDurationScalesBySqrt(t *testing.T) {
	sim := newTestSim(3)
	unit := sim.densityBase(115.8, entities.ModeDirectTransmission, 1.0, soil.CL, 8)
	prev := 0.0
	for _, d := range []float64{0.5, 1, 2, 4} {
		b := sim.densityBase(115.8, entities.ModeDirectTransmission, d, soil.CL, 8)
		want := unit * math.Sqrt(d)
		if math.Abs(b-want) > 1e-9*math.Abs(want) {
			t.Errorf("duration %.1f: base %v, want %v", d, b, want)
		}
		if math.Abs(b) <= math.Abs(prev) {
			t.Errorf("base magnitude must grow with duration: %.1f -> %v after %v", d, b, prev)
		}
		prev = b
	}
}

func TestStandardRatioScaling(t *testing.T) {
	ref := newTestSim(1)
	half := NewSimulator(entities.GaugeInfo{},
		entities.GaugeStandards{DensityCount: 785, MoistureCount: 335},
		nil, rand.New(rand.NewSource(1)))

	bRef := ref.densityBase(110, entities.ModeDirectTransmission, 1.0, soil.SM, 8)
	bHalf := half.densityBase(110, entities.ModeDirectTransmission, 1.0, soil.SM, 8)
	if math.Abs(bHalf*2-bRef) > 1e-9*math.Abs(bRef) {
		t.Errorf("half density standard must halve the base: %v vs %v", bHalf, bRef)
	}

	mRef := ref.moistureBase(8, 1.0, soil.SM)
	mHalf := half.moistureBase(8, 1.0, soil.SM)
	if math.Abs(mHalf*2-mRef) > 1e-9*math.Abs(mRef) {
		t.Errorf("half moisture standard must halve the base: %v vs %v", mHalf, mRef)
	}
}

func TestDepthModeAdjustment(t *testing.T) {
	sim := newTestSim(5)
	ds := sim.densityBase(110, entities.ModeDirectTransmission, 1.0, soil.CL, 6)

	bs := sim.densityBase(110, entities.ModeBackscatter, 1.0, soil.CL, 6)
	if want := ds * 1.15; math.Abs(bs-want) > 1e-9*math.Abs(want) {
		t.Errorf("backscatter base %v, want %v", bs, want)
	}

	deep := sim.densityBase(110, entities.ModeDirectTransmission, 1.0, soil.CL, 12)
	if want := ds * (1.0 + float64(12-6)*0.01); math.Abs(deep-want) > 1e-9*math.Abs(want) {
		t.Errorf("12-inch base %v, want %v", deep, want)
	}
}

func TestZeroStandardsDefaultToReference(t *testing.T) {
	sim := NewSimulator(entities.GaugeInfo{}, entities.GaugeStandards{}, nil, rand.New(rand.NewSource(9)))
	std := sim.Standards()
	if std.DensityCount != RefDensityStandard || std.MoistureCount != RefMoistureStandard {
		t.Errorf("zero standards must default to %d/%d, got %+v",
			RefDensityStandard, RefMoistureStandard, std)
	}

	sim.SetStandards(entities.GaugeStandards{DensityCount: 1600})
	std = sim.Standards()
	if std.DensityCount != 1600 || std.MoistureCount != RefMoistureStandard {
		t.Errorf("partial SetStandards: got %+v", std)
	}
}

func TestPerturbStaysClamped(t *testing.T) {
	sim := newTestSim(11)
	for i := 0; i < 2000; i++ {
		f := sim.perturb(0.06, 0.03, 0.85, 1.15)
		if f < 0.85 || f > 1.15 {
			t.Fatalf("perturbation %v escaped [0.85,1.15]", f)
		}
	}
}
