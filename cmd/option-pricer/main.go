// Command option-pricer prices a single option on a Cox-Ross-Rubinstein
// binomial lattice and, for European exercise, cross-checks the result
// against the closed-form Black-Scholes price.
//
// Parameters come either from a scenario config file (-config) or directly
// from flags. Any invalid input or pricing error aborts the run without
// partial output.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/william92380/option-models-comparison/internal/binomial"
	"github.com/william92380/option-models-comparison/internal/blackscholes"
	"github.com/william92380/option-models-comparison/internal/compare"
	"github.com/william92380/option-models-comparison/internal/config"
	"github.com/william92380/option-models-comparison/internal/logger"
	"github.com/william92380/option-models-comparison/internal/params"
	"github.com/william92380/option-models-comparison/internal/render"
	"github.com/william92380/option-models-comparison/internal/report"
)

func main() {
	configPath := flag.String("config", "", "path to scenario config (YAML); overrides parameter flags")
	spot := flag.Float64("spot", 100, "spot price of the underlying")
	strike := flag.Float64("strike", 100, "strike price")
	maturity := flag.Float64("maturity", 1, "time to expiry in years")
	rate := flag.Float64("rate", 0.05, "annualized risk-free rate")
	vol := flag.Float64("vol", 0.2, "annualized volatility")
	steps := flag.Int("steps", 100, "number of lattice steps")
	kind := flag.String("kind", "call", "option kind: call or put")
	style := flag.String("style", "european", "exercise style: european or american")
	showLattice := flag.Bool("lattice", false, "print the full lattice")
	outDir := flag.String("out", "", "directory for the JSON report (optional)")
	verbosity := flag.Int("v", 1, "log verbosity (0=error .. 3=trace)")
	flag.Parse()

	logger.SetVerbosity(*verbosity)

	p, threshold, err := resolveInputs(*configPath, *spot, *strike, *maturity, *rate, *vol, *steps, *kind, *style)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	start := time.Now()
	res, err := binomial.Price(p)
	if err != nil {
		logger.Errorf("pricing failed: %v", err)
		os.Exit(1)
	}
	logger.Debugf("lattice: dt=%g u=%g d=%g p=%g", res.Params.Dt, res.Params.U, res.Params.D, res.Params.P)

	sum := &report.Summary{
		Parameters:    p,
		Lattice:       res.Params,
		BinomialPrice: res.Price,
	}

	if p.Style == params.European {
		bench, err := blackscholes.Price(p)
		if err != nil {
			logger.Errorf("benchmark failed: %v", err)
			os.Exit(1)
		}
		dev, err := compare.Compare(res.Price, bench, threshold)
		if err != nil {
			logger.Errorf("comparison failed: %v", err)
			os.Exit(1)
		}
		sum.BenchmarkPrice = &bench
		sum.Deviation = &dev
	}

	if *showLattice {
		fmt.Print(render.Text(res.Lattice, res.Params))
	}
	fmt.Print(sum.Render())

	if *outDir != "" {
		if err := os.MkdirAll(*outDir, 0755); err != nil {
			logger.Errorf("could not create output dir %s: %v", *outDir, err)
			os.Exit(1)
		}
		if err := report.WriteJSON(sum, *outDir); err != nil {
			logger.Errorf("writing report: %v", err)
			os.Exit(1)
		}
		logger.Infof("report written to %s", *outDir)
	}
	logger.Infof("finished in %v", time.Since(start))
}

// resolveInputs builds validated pricing parameters either from the scenario
// file or from the flag values.
func resolveInputs(configPath string, spot, strike, maturity, rate, vol float64, steps int, kind, style string) (params.Parameters, float64, error) {
	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return params.Parameters{}, 0, fmt.Errorf("loading config: %w", err)
		}
		logger.SetVerbosity(cfg.Logging.Verbosity)
		p, err := cfg.Parameters()
		if err != nil {
			return params.Parameters{}, 0, err
		}
		return p, cfg.Comparison.ThresholdPct, nil
	}

	k, err := params.ParseKind(kind)
	if err != nil {
		return params.Parameters{}, 0, err
	}
	s, err := params.ParseStyle(style)
	if err != nil {
		return params.Parameters{}, 0, err
	}
	p := params.Parameters{
		Spot:       spot,
		Strike:     strike,
		Maturity:   maturity,
		Rate:       rate,
		Volatility: vol,
		Steps:      steps,
		Kind:       k,
		Style:      s,
	}
	if err := p.Validate(); err != nil {
		return params.Parameters{}, 0, err
	}
	return p, compare.DefaultThresholdPct, nil
}
