// Package render turns a priced lattice into a plain-text table. It reads
// the lattice and never feeds anything back into pricing.
package render

import (
	"fmt"
	"strings"

	"github.com/william92380/option-models-comparison/internal/binomial"
)

// Text renders one line per step, root first. Each node prints as
// asset/value; node j of a row is the state after j up-moves.
func Text(lat *binomial.Lattice, lp binomial.LatticeParams) string {
	var b strings.Builder
	fmt.Fprintf(&b, "lattice steps=%d dt=%.6f u=%.6f d=%.6f p=%.6f\n",
		lat.Steps(), lp.Dt, lp.U, lp.D, lp.P)
	for i := 0; i < len(lat.Asset); i++ {
		fmt.Fprintf(&b, "step %3d |", i)
		for j := 0; j <= i; j++ {
			fmt.Fprintf(&b, " %10.4f/%-10.4f", lat.Asset[i][j], lat.Value[i][j])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
