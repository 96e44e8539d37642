// Package report assembles the user-facing output of a pricing run: a
// console summary and an optional JSON artifact. Presentation rounding
// happens here and only here; the numeric packages carry full precision.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/william92380/option-models-comparison/internal/binomial"
	"github.com/william92380/option-models-comparison/internal/compare"
	"github.com/william92380/option-models-comparison/internal/params"
)

// Summary is everything one pricing run produced. BenchmarkPrice and
// Deviation stay nil for American runs, where no closed form applies.
type Summary struct {
	Parameters     params.Parameters      `json:"parameters"`
	Lattice        binomial.LatticeParams `json:"lattice"`
	BinomialPrice  float64                `json:"binomial_price"`
	BenchmarkPrice *float64               `json:"benchmark_price,omitempty"`
	Deviation      *compare.Deviation     `json:"deviation,omitempty"`
}

// round formats a value to four decimal places for display.
func round(x float64) string {
	return decimal.NewFromFloat(x).Round(4).String()
}

// Render formats the summary for the console.
func (s *Summary) Render() string {
	var b strings.Builder
	p := s.Parameters
	fmt.Fprintf(&b, "%s %s  S=%v K=%v T=%v r=%v sigma=%v N=%d\n",
		p.Style, p.Kind, p.Spot, p.Strike, p.Maturity, p.Rate, p.Volatility, p.Steps)
	fmt.Fprintf(&b, "binomial price: %s  (u=%s d=%s p=%s)\n",
		round(s.BinomialPrice), round(s.Lattice.U), round(s.Lattice.D), round(s.Lattice.P))
	if s.BenchmarkPrice != nil {
		fmt.Fprintf(&b, "black-scholes:  %s\n", round(*s.BenchmarkPrice))
	}
	if s.Deviation != nil {
		fmt.Fprintf(&b, "deviation:      %s (%s%%)", round(s.Deviation.AbsoluteDiff), round(s.Deviation.RelativePct))
		if s.Deviation.Flagged {
			b.WriteString("  [exceeds threshold]")
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteJSON writes the summary artifact as pricing.json into outdir.
func WriteJSON(s *Summary, outdir string) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, "pricing.json"), b, 0644)
}
