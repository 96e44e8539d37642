// Package compare measures the lattice price against the closed-form
// benchmark and flags deviations above a relative threshold.
package compare

import (
	"errors"
	"math"
)

// DefaultThresholdPct is the relative deviation, in percent, above which a
// comparison is flagged.
const DefaultThresholdPct = 5.0

// ErrZeroBenchmark indicates a benchmark price of exactly zero, which leaves
// the relative deviation undefined. The comparison returns this error instead
// of propagating Inf or NaN.
var ErrZeroBenchmark = errors.New("compare: benchmark price is zero, relative deviation undefined")

// Deviation is the outcome of one comparison.
type Deviation struct {
	AbsoluteDiff float64 `json:"absolute_diff"`
	RelativePct  float64 `json:"relative_pct"`
	Flagged      bool    `json:"flagged"`
}

// Compare reports how far binomial strays from benchmark. The deviation is
// flagged when |binomial-benchmark|/|benchmark| exceeds thresholdPct percent.
func Compare(binomial, benchmark, thresholdPct float64) (Deviation, error) {
	if benchmark == 0 {
		return Deviation{}, ErrZeroBenchmark
	}
	abs := math.Abs(binomial - benchmark)
	rel := abs / math.Abs(benchmark) * 100
	return Deviation{
		AbsoluteDiff: abs,
		RelativePct:  rel,
		Flagged:      rel > thresholdPct,
	}, nil
}
