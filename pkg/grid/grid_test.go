package grid

import (
	"math"
	"math/rand"
	"testing"

	"github.com/philipparndt/gobox/pkg/geometry"
)

func TestSnap(t *testing.T) {
	g := New(1)

	tests := []struct {
		in, expected float64
	}{
		{0, 0},
		{0.4, 0},
		{0.6, 1},
		{2.6, 3},
		{3.1, 3},
		{-1.4, -1},
		{-1.6, -2},
	}
	for _, tt := range tests {
		if got := g.Snap(tt.in); got != tt.expected {
			t.Errorf("Snap(%v) failed: expected %v, got %v", tt.in, tt.expected, got)
		}
	}
}

func TestSnapFractionalUnit(t *testing.T) {
	g := New(0.25)

	if got := g.Snap(0.3); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Snap(0.3) failed: expected 0.25, got %v", got)
	}
	if got := g.Snap(0.9); math.Abs(got-1.0) > 1e-12 {
		t.Errorf("Snap(0.9) failed: expected 1.0, got %v", got)
	}
}

func TestSnapIdempotentAndBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	units := []float64{0.1, 0.25, 0.5, 1, 1.5, 3, 7.3}

	for _, unit := range units {
		g := New(unit)
		for i := 0; i < 2000; i++ {
			v := (rng.Float64() - 0.5) * 1000
			once := g.Snap(v)
			twice := g.Snap(once)

			if math.Abs(twice-once) > 1e-9*math.Max(1, math.Abs(once)) {
				t.Fatalf("unit %v: Snap not idempotent for %v: %v then %v", unit, v, once, twice)
			}
			if math.Abs(once-v) > unit/2+1e-9 {
				t.Fatalf("unit %v: Snap(%v)=%v exceeds half a unit", unit, v, once)
			}
		}
	}
}

func TestSetUnitFallsBackToDefault(t *testing.T) {
	for _, unit := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		g := New(2)
		g.SetUnit(unit)
		if g.Unit != DefaultUnit {
			t.Errorf("SetUnit(%v) failed: expected %v, got %v", unit, DefaultUnit, g.Unit)
		}
	}
}

func TestSnapVector(t *testing.T) {
	g := New(1)
	got := g.SnapVector(geometry.NewVector3(2.6, 0.2, 3.1))
	expected := geometry.NewVector3(3, 0, 3)

	if got != expected {
		t.Errorf("SnapVector failed: expected %v, got %v", expected, got)
	}
}

func TestClamp(t *testing.T) {
	g := New(0.5)

	if got := g.Clamp(-3); got != 0.5 {
		t.Errorf("Clamp(-3) failed: expected 0.5, got %v", got)
	}
	if got := g.Clamp(2); got != 2 {
		t.Errorf("Clamp(2) failed: expected 2, got %v", got)
	}
}

func TestReaches(t *testing.T) {
	g := New(0.1)

	// differences of snapped values carry float error
	if !g.Reaches(g.Snap(0.3) - g.Snap(0.2)) {
		t.Error("Reaches failed for a one-unit difference of snapped values")
	}
	if g.Reaches(0.05) {
		t.Error("Reaches failed: half a unit must not reach")
	}
}
