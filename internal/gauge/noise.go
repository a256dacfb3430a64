package gauge

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// perturb draws the multiplicative noise for one reading: a Gaussian around
// 1.0 with the given sigma, plus a smooth offset derived from the measured
// value (different inputs separate even when the Gaussian lands close),
// clamped to [lo, hi]. Callers hold s.mu: the rand source is not
// goroutine-safe.
func (s *Simulator) perturb(sigma, offset, lo, hi float64) float64 {
	n := distuv.Normal{Mu: 1, Sigma: sigma, Src: s.rng}
	f := n.Rand() + offset
	if f < lo {
		f = lo
	}
	if f > hi {
		f = hi
	}
	return f
}

// jitter returns -1, 0 or +1 with equal probability, the last defence
// against identical consecutive counts after truncation.
func (s *Simulator) jitter() int {
	return s.rng.Intn(3) - 1
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
