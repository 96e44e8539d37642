// Package blackscholes computes the closed-form European option price used
// as the convergence benchmark for the lattice pricer.
package blackscholes

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/william92380/option-models-comparison/internal/params"
)

// ErrAmericanExercise indicates a benchmark request for an American-exercise
// parameter set. The closed form does not model early exercise, so the
// combination is rejected instead of silently pricing the European variant.
var ErrAmericanExercise = errors.New("blackscholes: closed form does not model early exercise")

var stdNormal = distuv.UnitNormal

// Price returns the Black-Scholes price for a European option:
//
//	d1 = (ln(S/K) + (r + sigma^2/2)*T) / (sigma*sqrt(T))
//	d2 = d1 - sigma*sqrt(T)
//	call = S*Phi(d1) - K*exp(-r*T)*Phi(d2)
//	put  = K*exp(-r*T)*Phi(-d2) - S*Phi(-d1)
//
// where Phi is the standard normal CDF.
func Price(pr params.Parameters) (float64, error) {
	if pr.Style == params.American {
		return 0, ErrAmericanExercise
	}
	if err := pr.Validate(); err != nil {
		return 0, err
	}

	sqrtT := math.Sqrt(pr.Maturity)
	d1 := (math.Log(pr.Spot/pr.Strike) + (pr.Rate+0.5*pr.Volatility*pr.Volatility)*pr.Maturity) /
		(pr.Volatility * sqrtT)
	d2 := d1 - pr.Volatility*sqrtT
	discK := pr.Strike * math.Exp(-pr.Rate*pr.Maturity)

	if pr.Kind == params.Call {
		return pr.Spot*stdNormal.CDF(d1) - discK*stdNormal.CDF(d2), nil
	}
	return discK*stdNormal.CDF(-d2) - pr.Spot*stdNormal.CDF(-d1), nil
}
