package catenary

import (
	"math"
)

const (
	// DefaultPrecision is the boundary-error target commonly passed to
	// [Catenary.Fit].
	DefaultPrecision = 1e-7

	// MaxSpanRatio is the approximate largest span/diameter ratio for
	// which a catenary solution exists. Above it, a soap film between
	// the two hoops collapses and [Catenary.Fit] cannot converge.
	MaxSpanRatio = 0.6627

	// BadBoundaryError is the score [Catenary.BoundaryError] reports
	// for parameters whose evaluation is numerically undefined. It is
	// finite so that scores stay totally ordered: any finite
	// improvement beats it during the search.
	BadBoundaryError = 1e12
)

// A Catenary describes the boundary conditions of a hanging curve: the
// diameter of the two hoops and the horizontal span between them. The
// curve is required to pass through (0, Diameter/2) and
// (Span, Diameter/2).
//
// Both fields are plain inputs; fitting never mutates them. Use
// [Catenary.Fit] to obtain curve parameters.
type Catenary struct {
	Diameter float64
	Span     float64
}

// IsValid reports whether a catenary solution can exist for these
// boundary conditions, i.e. whether both lengths are positive and the
// span stays below [MaxSpanRatio] of the diameter.
//
// Fit does not enforce this; it is a cheap pre-check for callers that
// want to reject hopeless inputs before searching.
func (c Catenary) IsValid() bool {
	return c.Diameter > 0 && c.Span > 0 && c.Span < MaxSpanRatio*c.Diameter
}

// BoundaryError scores how badly the curve with parameters (a, b)
// misses the two endpoints, as the sum of the absolute height errors
// at x = 0 and x = Span.
//
// If the evaluation is numerically undefined (a == 0, or cosh overflow
// for very large arguments), it returns [BadBoundaryError] instead of
// NaN or an infinity, keeping scores comparable.
func (c Catenary) BoundaryError(a, b float64) float64 {
	y := c.Diameter / 2
	e1 := a*math.Cosh((0-b)/a) - y
	e2 := a*math.Cosh((c.Span-b)/a) - y
	err := math.Abs(e1) + math.Abs(e2)
	if math.IsNaN(err) || math.IsInf(err, 0) {
		return BadBoundaryError
	}
	return err
}

// AreaUnderCurve returns the area between the fitted curve and the
// x-axis from x = 0 to x = Span, using the catenary closed form
// π·a²·(sinh(span/a) + span/a).
func (c Catenary) AreaUnderCurve(f FitResult) float64 {
	return math.Pi * f.A * f.A * (math.Sinh(c.Span/f.A) + c.Span/f.A)
}

// MidpointRadius returns the curve height at the horizontal midpoint
// x = Span/2.
func (c Catenary) MidpointRadius(f FitResult) float64 {
	return f.Eval(c.Span / 2)
}

// MidpointDip returns how far the midpoint sags below the endpoint
// height Diameter/2. The sign is not fixed: cosh is minimized at
// x = b, so a negative dip means the midpoint sits above the
// endpoints. Callers must check the geometry rather than assume a
// sign.
func (c Catenary) MidpointDip(f FitResult) float64 {
	return c.Diameter/2 - c.MidpointRadius(f)
}

// MidpointGap returns the vertical gap at the center, twice the
// midpoint radius.
func (c Catenary) MidpointGap(f FitResult) float64 {
	return 2 * c.MidpointRadius(f)
}

// Arclen returns the arc length of the fitted curve from x = 0 to
// x = Span, using the closed form a·(sinh((span−b)/a) + sinh(b/a)).
func (c Catenary) Arclen(f FitResult) float64 {
	return f.A * (math.Sinh((c.Span-f.B)/f.A) + math.Sinh(f.B/f.A))
}
