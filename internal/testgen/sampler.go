package testgen

import (
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// ErrCountExceedsRange is returned when the requested batch size cannot fit
// pairwise-distinct one-decimal values into the sampling range.
var ErrCountExceedsRange = errors.New("testgen: count exceeds distinct one-decimal values in range")

// The sampled columns live on a 0.1 grid; working in tenths ("decis") keeps
// map keys and range checks exact.
func toDecis(x float64) int   { return int(math.Round(x * 10)) }
func fromDecis(d int) float64 { return float64(d) / 10 }

// column draws pairwise-distinct one-decimal values clustered around mean:
// a clamped Gaussian first, then the small ±0.2 perturbation walk used on
// the field sheets, and a deterministic scan of free grid slots so the loop
// always terminates once capacity has been checked.
type column struct {
	dist distuv.Normal
	rng  *rand.Rand
	lo   int // decis
	hi   int // decis
}

func newColumn(mean, sigma, lo, hi float64, rng *rand.Rand) *column {
	return &column{
		dist: distuv.Normal{Mu: mean, Sigma: sigma, Src: rng},
		rng:  rng,
		lo:   toDecis(lo),
		hi:   toDecis(hi),
	}
}

func (c *column) capacity() int { return c.hi - c.lo + 1 }

func (c *column) clamp(d int) int {
	if d < c.lo {
		return c.lo
	}
	if d > c.hi {
		return c.hi
	}
	return d
}

// sample returns n distinct values in input order.
func (c *column) sample(n int) ([]float64, error) {
	if n > c.capacity() {
		return nil, ErrCountExceedsRange
	}
	used := make(map[int]struct{}, n)
	out := make([]float64, 0, n)
	for len(out) < n {
		d := c.clamp(toDecis(c.dist.Rand()))
		for attempt := 0; attempt < 20; attempt++ {
			if _, dup := used[d]; !dup {
				break
			}
			d = c.clamp(d + c.jitterStep())
		}
		if _, dup := used[d]; dup {
			d = c.firstFree(used, d)
		}
		used[d] = struct{}{}
		out = append(out, fromDecis(d))
	}
	return out, nil
}

// jitterStep is uniform(-0.2, 0.2) rounded to one decimal, in decis.
func (c *column) jitterStep() int {
	return int(math.Round((c.rng.Float64()*0.4 - 0.2) * 10))
}

// firstFree walks outward from d, alternating above and below, until a free
// slot appears. Capacity was checked, so one always exists.
func (c *column) firstFree(used map[int]struct{}, d int) int {
	for step := 1; ; step++ {
		if cand := d + step; cand <= c.hi {
			if _, dup := used[cand]; !dup {
				return cand
			}
		}
		if cand := d - step; cand >= c.lo {
			if _, dup := used[cand]; !dup {
				return cand
			}
		}
	}
}
