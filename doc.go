// Package catenary fits curves of the form
//
//	y = a·cosh((x − b) / a)
//
// to boundary conditions given by a hoop diameter and a span, and
// derives geometric properties of the fitted curve. The motivating
// application is the soap film spanned between two coaxial circular
// hoops, whose cross-section is a catenary and whose surface of
// revolution is the catenoid.
//
// # Fitting
//
// [Catenary.Fit] finds the parameters (a, b) for which the curve
// passes through the two endpoints (0, diameter/2) and
// (span, diameter/2). It is a derivative-free coordinate grid search:
// starting from (1, 1), it scans the 3×3 neighborhood at the current
// step size, adopts the best strictly improving candidate, and shrinks
// the step tenfold whenever a full scan fails to improve. There is no
// general-purpose optimizer behind it and no convergence guarantee;
// for span/diameter ratios above [MaxSpanRatio] no catenary solution
// exists and the search runs out of step refinements instead. Callers
// distinguish the two outcomes by inspecting the Err field of the
// returned [FitResult].
//
// # Geometry
//
// The remaining methods are pure functions of a [Catenary] and a
// [FitResult]: the area under the curve ([Catenary.AreaUnderCurve]),
// the curve height at the horizontal midpoint and the derived dip and
// gap ([Catenary.MidpointRadius], [Catenary.MidpointDip],
// [Catenary.MidpointGap]), the arc length ([Catenary.Arclen]), and
// polyline sampling for display ([Catenary.Points]).
//
// # Literature
//
//   - [Catenary] on Wikipedia
//   - [Catenoid] on Wikipedia
//   - Weisstein, Eric W. [Catenary -- from Wolfram MathWorld]
//
// [Catenary]: https://en.wikipedia.org/wiki/Catenary
// [Catenoid]: https://en.wikipedia.org/wiki/Catenoid
// [Catenary -- from Wolfram MathWorld]: https://mathworld.wolfram.com/Catenary.html
package catenary
