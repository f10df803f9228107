package catenary

import (
	"fmt"
	"math"
	"testing"
)

func TestFitConverges(t *testing.T) {
	tests := []struct {
		c     Catenary
		wantA float64
		wantB float64
	}{
		{Catenary{Diameter: 1.068, Span: 0.6}, 0.4231151, 0.3},
		{Catenary{Diameter: 2.0, Span: 1.2}, 0.7450711, 0.6},
		{Catenary{Diameter: 0.5, Span: 0.3}, 0.1862678, 0.15},
		{Catenary{Diameter: 1.0, Span: 0.6}, 0.3725356, 0.3},
	}
	for _, tt := range tests {
		f := tt.c.Fit(DefaultPrecision)
		if !f.Converged(1e-5) {
			t.Errorf("got error %v for %+v, expected convergence below 1e-5", f.Err, tt.c)
		}
		if f.A <= 0 || math.IsNaN(f.A) || math.IsInf(f.A, 0) {
			t.Errorf("got a = %v for %+v, expected a finite positive value", f.A, tt.c)
		}
		if math.IsNaN(f.B) || math.IsInf(f.B, 0) {
			t.Errorf("got b = %v for %+v, expected a finite value", f.B, tt.c)
		}
		if math.Abs(f.A-tt.wantA) > 1e-4 || math.Abs(f.B-tt.wantB) > 1e-4 {
			t.Errorf("got (a, b) = (%v, %v) for %+v, expected (%v, %v)", f.A, f.B, tt.c, tt.wantA, tt.wantB)
		}
		// Err is the boundary error of the returned parameters.
		if got := tt.c.BoundaryError(f.A, f.B); got != f.Err {
			t.Errorf("got Err %v for %+v, expected the boundary error %v", f.Err, tt.c, got)
		}
	}
}

func TestFitExhaustion(t *testing.T) {
	// span == diameter admits no catenary; the search must run out of
	// step refinements and still return a usable result.
	c := Catenary{Diameter: 1.0, Span: 1.0}
	f := c.Fit(DefaultPrecision)
	if f.Converged(DefaultPrecision) {
		t.Fatalf("got error %v, expected the fit not to converge", f.Err)
	}
	if f.A <= 0 || math.IsNaN(f.A) || math.IsInf(f.A, 0) {
		t.Errorf("got a = %v, expected a finite positive value", f.A)
	}
	if math.IsNaN(f.B) || math.IsInf(f.B, 0) {
		t.Errorf("got b = %v, expected a finite value", f.B)
	}
	// The best effort curve bottoms out below the hoops here, so the
	// midpoint dips below the endpoint height.
	if r := c.MidpointRadius(f); r >= c.Diameter/2 {
		t.Errorf("got midpoint radius %v, expected it below %v", r, c.Diameter/2)
	}
	if dip := c.MidpointDip(f); dip <= 0 {
		t.Errorf("got dip %v, expected it to be positive", dip)
	}
}

func TestFitDeterministic(t *testing.T) {
	c := Catenary{Diameter: 1.068, Span: 0.6}
	f1 := c.Fit(DefaultPrecision)
	f2 := c.Fit(DefaultPrecision)
	if f1 != f2 {
		t.Errorf("got %+v and %+v from identical fits, expected identical results", f1, f2)
	}
}

func TestFitErrorMonotonicInPrecision(t *testing.T) {
	// Coarser precisions stop earlier on the same monotonically
	// improving search path, so the achieved error can only go down as
	// the precision tightens.
	c := Catenary{Diameter: 1.068, Span: 0.6}
	prev := math.Inf(1)
	for i := 1; i <= 7; i++ {
		prec := math.Pow(10, -float64(i))
		f := c.Fit(prec)
		if f.Err > prev {
			t.Errorf("got error %v at precision %v, expected at most %v", f.Err, prec, prev)
		}
		prev = f.Err
	}
}

func BenchmarkFit(b *testing.B) {
	c := Catenary{Diameter: 1.068, Span: 0.6}
	for i := 0; i < 7; i++ {
		prec := 1.0 / math.Pow(10, float64(i+1))
		b.Run(fmt.Sprintf("1e-%d", i+1), func(b *testing.B) {
			for j := 0; j < b.N; j++ {
				c.Fit(prec)
			}
		})
	}
}
