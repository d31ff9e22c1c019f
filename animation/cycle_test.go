package animation

import (
	"math"
	"testing"
)

func TestCycle_Update(t *testing.T) {
	tests := []struct {
		name       string
		dt, rate   float64
		wantPhase  float64
		wantLooped bool
	}{
		{name: "quarter", dt: 0.25, rate: 1, wantPhase: 0.25},
		{name: "half more", dt: 0.5, rate: 1, wantPhase: 0.75},
		{name: "wraps", dt: 0.5, rate: 1, wantPhase: 0.25, wantLooped: true},
		{name: "double rate", dt: 0.125, rate: 2, wantPhase: 0.5},
		{name: "zero rate holds", dt: 0.3, rate: 0, wantPhase: 0.5},
		{name: "negative dt holds", dt: -1, rate: 1, wantPhase: 0.5},
	}

	c := NewCycle(1)
	for _, tt := range tests {
		got := c.Update(tt.dt, tt.rate)
		if math.Abs(got-tt.wantPhase) > 1e-6 {
			t.Fatalf("%s: phase = %v, want %v", tt.name, got, tt.wantPhase)
		}
		if c.Looped != tt.wantLooped {
			t.Fatalf("%s: looped = %v, want %v", tt.name, c.Looped, tt.wantLooped)
		}
		if c.Phase() != got {
			t.Fatalf("%s: Phase() = %v, want %v", tt.name, c.Phase(), got)
		}
	}
}

func TestCycle_LongStepStaysInRange(t *testing.T) {
	c := NewCycle(0.8)
	got := c.Update(2.0, 1)
	if math.Abs(got-0.5) > 1e-6 {
		t.Fatalf("phase = %v, want 0.5", got)
	}
	if !c.Looped {
		t.Fatal("expected wrap")
	}
}

func TestCycle_Restart(t *testing.T) {
	c := NewCycle(1)
	c.Update(0.6, 1)
	c.Restart()
	if c.Phase() != 0 {
		t.Fatalf("Phase() after Restart = %v", c.Phase())
	}
	if got := c.Update(0.1, 1); math.Abs(got-0.1) > 1e-6 {
		t.Fatalf("phase after Restart = %v, want 0.1", got)
	}
}
