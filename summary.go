package catenary

import (
	"fmt"
)

// Summary returns a human-readable report of the boundary conditions,
// the fitted parameters, and the derived geometry, with the fitted
// quantities formatted to 7 decimal places. The layout is stable;
// downstream consumers parse it.
func (c Catenary) Summary(f FitResult) string {
	return fmt.Sprintf(
		"Catenary for diameter %v and span %v:\n"+
			"  Parameters (a, b): (%.7f, %.7f)\n"+
			"  Area under curve: %.7f\n"+
			"  Midpoint dip: %.7f\n"+
			"  Midpoint gap: %.7f\n",
		c.Diameter, c.Span,
		f.A, f.B,
		c.AreaUnderCurve(f),
		c.MidpointDip(f),
		c.MidpointGap(f),
	)
}
