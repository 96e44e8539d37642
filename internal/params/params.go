// Package params defines the validated input contract for a pricing run.
//
// Everything downstream of this package (the lattice pricer, the closed-form
// benchmark) assumes it receives a Parameters value that already passed
// Validate. Raw user input — flags, config files — is parsed and checked here,
// never inside the numeric code.
package params

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidParameter indicates an input that violates the pricing
// preconditions (non-positive spot, strike, maturity or volatility,
// step count below one, or an unknown enum value).
var ErrInvalidParameter = errors.New("params: invalid parameter")

// Kind selects the option payoff.
type Kind int

const (
	Call Kind = iota
	Put
)

func (k Kind) String() string {
	switch k {
	case Call:
		return "call"
	case Put:
		return "put"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalJSON emits the lowercase spelling so report artifacts stay readable.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// ParseKind maps a flag or config spelling onto a Kind. Accepts "call"/"c"
// and "put"/"p", case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "call", "c":
		return Call, nil
	case "put", "p":
		return Put, nil
	}
	return 0, fmt.Errorf("%w: unknown option kind %q", ErrInvalidParameter, s)
}

// Style selects the exercise rights: European options exercise only at
// maturity, American options at any step.
type Style int

const (
	European Style = iota
	American
)

func (s Style) String() string {
	switch s {
	case European:
		return "european"
	case American:
		return "american"
	}
	return fmt.Sprintf("Style(%d)", int(s))
}

// MarshalJSON emits the lowercase spelling so report artifacts stay readable.
func (s Style) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ParseStyle maps a flag or config spelling onto a Style. Accepts
// "european"/"e" and "american"/"a", case-insensitive.
func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(s) {
	case "european", "e":
		return European, nil
	case "american", "a":
		return American, nil
	}
	return 0, fmt.Errorf("%w: unknown exercise style %q", ErrInvalidParameter, s)
}

// Parameters is the immutable input of one pricing run.
//
// Maturity is expressed in years, Rate and Volatility as annualized decimals
// (0.05 means 5%). Steps is the number of lattice periods.
type Parameters struct {
	Spot       float64 `json:"spot" validate:"gt=0"`
	Strike     float64 `json:"strike" validate:"gt=0"`
	Maturity   float64 `json:"maturity" validate:"gt=0"`
	Rate       float64 `json:"rate"`
	Volatility float64 `json:"volatility" validate:"gt=0"`
	Steps      int     `json:"steps" validate:"gte=1"`
	Kind       Kind    `json:"kind"`
	Style      Style   `json:"style"`
}

var validate = validator.New()

// Validate reports the first violated precondition, wrapped in
// ErrInvalidParameter. A nil return means the value is safe to price.
func (p Parameters) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"spot", p.Spot},
		{"strike", p.Strike},
		{"maturity", p.Maturity},
		{"rate", p.Rate},
		{"volatility", p.Volatility},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not finite", ErrInvalidParameter, f.name)
		}
	}
	if err := validate.Struct(p); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("%w: %s must satisfy %s %s (got %v)",
				ErrInvalidParameter, strings.ToLower(f.Field()), f.Tag(), f.Param(), f.Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	if p.Kind != Call && p.Kind != Put {
		return fmt.Errorf("%w: unknown option kind %d", ErrInvalidParameter, int(p.Kind))
	}
	if p.Style != European && p.Style != American {
		return fmt.Errorf("%w: unknown exercise style %d", ErrInvalidParameter, int(p.Style))
	}
	return nil
}
