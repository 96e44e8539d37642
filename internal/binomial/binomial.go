// Package binomial prices a single-underlying option on a Cox-Ross-Rubinstein
// recombining lattice.
//
// The pricer builds two triangular tables — underlying price and option value
// per node — then walks the value table backwards from the terminal layer,
// discounting the risk-neutral expectation of each node's two successors.
// American exercise adds a max against the intrinsic payoff at every node.
// All arithmetic is float64; nothing is rounded here.
package binomial

import (
	"errors"
	"fmt"
	"math"

	"github.com/william92380/option-models-comparison/internal/params"
)

// ErrArbitrage indicates the derived risk-neutral probability fell outside
// (0,1): the step is too coarse relative to rate and volatility, and the
// lattice would admit arbitrage. No price is produced in that case.
var ErrArbitrage = errors.New("binomial: risk-neutral probability outside (0,1)")

// LatticeParams are the per-step quantities derived from the pricing inputs:
// dt = T/N, u = exp(sigma*sqrt(dt)), d = 1/u, p = (exp(r*dt)-d)/(u-d).
type LatticeParams struct {
	Dt float64 `json:"dt"`
	U  float64 `json:"u"`
	D  float64 `json:"d"`
	P  float64 `json:"p"`
}

// Lattice holds the two triangular tables of a priced tree. Row i has i+1
// nodes; node (i, j) is the state after j up-moves in i steps. A Lattice is
// built fresh inside Price and never mutated afterwards, so it is safe to
// hand to a renderer.
type Lattice struct {
	Asset [][]float64 `json:"asset"`
	Value [][]float64 `json:"value"`
}

// Steps returns the number of periods N of the tree.
func (l *Lattice) Steps() int {
	return len(l.Asset) - 1
}

// Result carries the root price together with the derived lattice parameters
// and the full lattice for reporting or rendering.
type Result struct {
	Price   float64
	Params  LatticeParams
	Lattice *Lattice
}

// Price builds the lattice for pr and returns the backward-induction price at
// the root node (0,0).
//
// Inputs are re-validated defensively even though callers are expected to
// pass pre-validated parameters; a bad input yields params.ErrInvalidParameter
// rather than a NaN price. Parameters whose derived probability leaves (0,1)
// yield ErrArbitrage.
func Price(pr params.Parameters) (Result, error) {
	if err := pr.Validate(); err != nil {
		return Result{}, err
	}
	lp, err := deriveParams(pr)
	if err != nil {
		return Result{}, err
	}

	n := pr.Steps
	lat := newLattice(n)

	// Terminal layer: payoff at maturity.
	for j := 0; j <= n; j++ {
		a := assetAt(pr, lp, n, j)
		lat.Asset[n][j] = a
		lat.Value[n][j] = intrinsic(pr, a)
	}

	disc := math.Exp(-pr.Rate * lp.Dt)
	for i := n - 1; i >= 0; i-- {
		for j := 0; j <= i; j++ {
			a := assetAt(pr, lp, i, j)
			v := disc * (lp.P*lat.Value[i+1][j+1] + (1-lp.P)*lat.Value[i+1][j])
			if pr.Style == params.American {
				if ex := intrinsic(pr, a); ex > v {
					v = ex
				}
			}
			lat.Asset[i][j] = a
			lat.Value[i][j] = v
		}
	}

	return Result{Price: lat.Value[0][0], Params: lp, Lattice: lat}, nil
}

func deriveParams(pr params.Parameters) (LatticeParams, error) {
	dt := pr.Maturity / float64(pr.Steps)
	u := math.Exp(pr.Volatility * math.Sqrt(dt))
	d := 1 / u
	growth := math.Exp(pr.Rate * dt)
	p := (growth - d) / (u - d)
	if p <= 0 || p >= 1 {
		return LatticeParams{}, fmt.Errorf("%w: p=%g (u=%g, d=%g, exp(r*dt)=%g)",
			ErrArbitrage, p, u, d, growth)
	}
	return LatticeParams{Dt: dt, U: u, D: d, P: p}, nil
}

// assetAt computes the underlying price at node (i, j) from first principles,
// S0 * u^j * d^(i-j). The induction loop recomputes these instead of reading
// the terminal layer back; both routes evaluate the same expression on the
// same operands, so the values are bit-identical.
func assetAt(pr params.Parameters, lp LatticeParams, i, j int) float64 {
	return pr.Spot * math.Pow(lp.U, float64(j)) * math.Pow(lp.D, float64(i-j))
}

func intrinsic(pr params.Parameters, asset float64) float64 {
	if pr.Kind == params.Call {
		return math.Max(asset-pr.Strike, 0)
	}
	return math.Max(pr.Strike-asset, 0)
}

func newLattice(n int) *Lattice {
	l := &Lattice{
		Asset: make([][]float64, n+1),
		Value: make([][]float64, n+1),
	}
	for i := 0; i <= n; i++ {
		l.Asset[i] = make([]float64, i+1)
		l.Value[i] = make([]float64, i+1)
	}
	return l
}
