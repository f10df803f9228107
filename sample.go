package catenary

// Points samples the fitted curve as a polyline of n segments, i.e.
// n+1 points at evenly spaced x stations from 0 to Span inclusive.
// This is intended for plotting; n is clamped to at least 1.
func (c Catenary) Points(f FitResult, n int) []Point {
	if n < 1 {
		n = 1
	}
	pts := make([]Point, n+1)
	dx := c.Span / float64(n)
	for i := 0; i < n; i++ {
		x := float64(i) * dx
		pts[i] = Pt(x, f.Eval(x))
	}
	// Land exactly on the far endpoint instead of n*dx.
	pts[n] = Pt(c.Span, f.Eval(c.Span))
	return pts
}
