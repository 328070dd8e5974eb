package rigid

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestWorldStepAccumulator(t *testing.T) {
	tests := []struct {
		name     string
		realDt   float64
		maxSub   int
		wantStep int
	}{
		{"exact frame", 1.0 / 60, 3, 1},
		{"two frames", 2.0 / 60, 3, 2},
		{"capped", 10.0 / 60, 3, 3},
		{"short frame", 0.5 / 60, 3, 0},
		{"non-positive real dt", 0, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld(mgl64.Vec3{})
			if n := w.Step(1.0/60, tt.realDt, tt.maxSub); n != tt.wantStep {
				t.Errorf("expected %d steps, got %d", tt.wantStep, n)
			}
		})
	}
}

func TestWorldCarriesRemainder(t *testing.T) {
	w := NewWorld(mgl64.Vec3{})
	dt := 0.01
	if n := w.Step(dt, 0.006, 3); n != 0 {
		t.Fatalf("expected 0 steps, got %d", n)
	}
	if n := w.Step(dt, 0.006, 3); n != 1 {
		t.Fatalf("expected carried remainder to yield 1 step, got %d", n)
	}
	if math.Abs(w.Time()-0.01) > 1e-12 {
		t.Errorf("world time = %v", w.Time())
	}
	if w.Steps() != 1 {
		t.Errorf("steps = %d", w.Steps())
	}
}

func TestWorldInvalidFixedDt(t *testing.T) {
	w := NewWorld(DefaultGravity)
	if n := w.Step(0, 1, 3); n != 0 {
		t.Errorf("expected no steps for zero fixed dt, got %d", n)
	}
}
