package catenary

import (
	"math"
)

// The search lattice is fixed: it starts at (1, 1) with a step of 0.1
// and refines tenfold when stuck. Fitted parameters are reproducible
// only because every run visits the same lattice, so these are not
// tunable.
const (
	fitStartA    = 1.0
	fitStartB    = 1.0
	fitStartStep = 0.1
	fitShrink    = 10.0
)

// FitResult holds fitted curve parameters: a is the steepness of the
// catenary and b its horizontal offset.
type FitResult struct {
	A float64
	B float64
	// Err is the boundary error of (A, B), i.e. the best score the
	// search observed. It is [BadBoundaryError] if no candidate ever
	// improved on the initial guess.
	Err float64
}

// Converged reports whether the fit satisfied the requested precision,
// as opposed to running out of step refinements.
func (f FitResult) Converged(precision float64) bool {
	return f.Err <= precision
}

// Eval returns the curve height a·cosh((x − b) / a) at x.
func (f FitResult) Eval(x float64) float64 {
	return f.A * math.Cosh((x-f.B)/f.A)
}

// Fit searches for parameters (a, b) whose [Catenary.BoundaryError]
// falls below precision.
//
// Each round scans the 3×3 grid around the current point at the
// current step size and adopts the best candidate that strictly
// improves on the incumbent error; on ties, the candidate scanned
// first wins. A round without improvement shrinks the step tenfold,
// and the search gives up once the step falls below precision. Fit
// therefore always returns a result: check [FitResult.Converged] (or
// compare the Err field against precision) to distinguish a satisfied
// fit from an exhausted one. For boundary conditions that
// admit no catenary (see [Catenary.IsValid]) only the exhausted
// outcome is possible.
//
// The initial point (1, 1) lies in the basin of the solution for
// physically sensible inputs measured in meters. Inputs are not
// validated; nonsensical ones yield an exhausted, nonsensical result.
// A precision <= 0 can never be satisfied nor exhaust the step
// refinements, so the loop would not terminate.
func (c Catenary) Fit(precision float64) FitResult {
	step := fitStartStep
	err := BadBoundaryError
	a, b := fitStartA, fitStartB

	for err > precision {
		improved := false
		bestErr := err
		bestA, bestB := a, b

		for _, ca := range [3]float64{a - step, a, a + step} {
			for _, cb := range [3]float64{b - step, b, b + step} {
				if e := c.BoundaryError(ca, cb); e < bestErr {
					bestErr = e
					bestA, bestB = ca, cb
					improved = true
				}
			}
		}

		if !improved {
			step /= fitShrink
			if step < precision {
				break
			}
		} else {
			a, b = bestA, bestB
			err = bestErr
		}
	}

	return FitResult{A: a, B: b, Err: err}
}
