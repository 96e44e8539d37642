package blackscholes_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/william92380/option-models-comparison/internal/blackscholes"
	"github.com/william92380/option-models-comparison/internal/params"
)

func baseParams() params.Parameters {
	return params.Parameters{
		Spot:       100,
		Strike:     100,
		Maturity:   1,
		Rate:       0.05,
		Volatility: 0.2,
		Steps:      1,
		Kind:       params.Call,
		Style:      params.European,
	}
}

// Classic reference case: S=100, K=100, T=1, r=0.05, sigma=0.2.
func TestReferencePrices(t *testing.T) {
	call, err := blackscholes.Price(baseParams())
	require.NoError(t, err)
	assert.InDelta(t, 10.450583572185565, call, 1e-9)

	p := baseParams()
	p.Kind = params.Put
	put, err := blackscholes.Price(p)
	require.NoError(t, err)
	assert.InDelta(t, 5.573526022256971, put, 1e-9)
}

// C - P = S - K*exp(-rT) for European options.
func TestPutCallParity(t *testing.T) {
	for _, strike := range []float64{80, 100, 125} {
		p := baseParams()
		p.Strike = strike

		call, err := blackscholes.Price(p)
		require.NoError(t, err)
		p.Kind = params.Put
		put, err := blackscholes.Price(p)
		require.NoError(t, err)

		lhs := call - put
		rhs := p.Spot - p.Strike*math.Exp(-p.Rate*p.Maturity)
		assert.InDelta(t, rhs, lhs, 1e-6, "strike=%v", strike)
	}
}

func TestAmericanRejected(t *testing.T) {
	p := baseParams()
	p.Style = params.American
	_, err := blackscholes.Price(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, blackscholes.ErrAmericanExercise))
}

func TestInvalidParametersRejected(t *testing.T) {
	p := baseParams()
	p.Volatility = 0
	_, err := blackscholes.Price(p)
	require.Error(t, err)
	assert.True(t, errors.Is(err, params.ErrInvalidParameter))
}

func TestDeepMoneyness(t *testing.T) {
	// Deep in-the-money call approaches S - K*exp(-rT); deep out approaches 0.
	p := baseParams()
	p.Strike = 1
	call, err := blackscholes.Price(p)
	require.NoError(t, err)
	assert.InDelta(t, p.Spot-p.Strike*math.Exp(-p.Rate*p.Maturity), call, 1e-6)

	p.Strike = 10000
	call, err = blackscholes.Price(p)
	require.NoError(t, err)
	assert.InDelta(t, 0, call, 1e-6)
}
