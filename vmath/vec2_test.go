package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestAddSubScale(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -4}

	if got := a.Add(b); got != (Vec2{X: 4, Y: -2}) {
		t.Errorf("Add = %v, want {4 -2}", got)
	}
	if got := a.Sub(b); got != (Vec2{X: -2, Y: 6}) {
		t.Errorf("Sub = %v, want {-2 6}", got)
	}
	if got := a.Scale(2.5); got != (Vec2{X: 2.5, Y: 5}) {
		t.Errorf("Scale = %v, want {2.5 5}", got)
	}
}

func TestMagnitude(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if got := v.Magnitude(); !almostEqual(got, 5) {
		t.Errorf("Magnitude = %v, want 5", got)
	}
	if got := v.MagnitudeSq(); !almostEqual(got, 25) {
		t.Errorf("MagnitudeSq = %v, want 25", got)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	inputs := []Vec2{
		{X: 3, Y: 4},
		{X: -0.001, Y: 0.002},
		{X: 1e6, Y: -1e6},
		{X: 0, Y: 42},
	}
	for _, v := range inputs {
		n := v.Normalize()
		if !almostEqual(n.Magnitude(), 1) {
			t.Errorf("Normalize(%v) magnitude = %v, want 1", v, n.Magnitude())
		}
	}
}

func TestNormalizeZeroVector(t *testing.T) {
	// Defined edge case: zero in, zero out, no NaN.
	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
}

func TestDistance(t *testing.T) {
	a := Vec2{X: 1, Y: 1}
	b := Vec2{X: 4, Y: 5}
	if got := a.Distance(b); !almostEqual(got, 5) {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := a.Distance(a); !almostEqual(got, 0) {
		t.Errorf("Distance to self = %v, want 0", got)
	}
}

func TestLimitClampsToMax(t *testing.T) {
	v := Vec2{X: 30, Y: 40} // magnitude 50
	limited := v.Limit(10)
	if got := limited.Magnitude(); !almostEqual(got, 10) {
		t.Errorf("Limit magnitude = %v, want 10", got)
	}
	// Direction preserved.
	dir := v.Normalize()
	limDir := limited.Normalize()
	if !almostEqual(dir.X, limDir.X) || !almostEqual(dir.Y, limDir.Y) {
		t.Errorf("Limit changed direction: %v vs %v", dir, limDir)
	}
}

func TestLimitLeavesSmallVectorsAlone(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if got := v.Limit(100); got != v {
		t.Errorf("Limit(100) = %v, want %v unchanged", got, v)
	}
	if got := v.Limit(5); got != v {
		t.Errorf("Limit at exact magnitude = %v, want %v unchanged", got, v)
	}
}

func TestFromAngle(t *testing.T) {
	v := FromAngle(math.Pi/2, 3)
	if !almostEqual(v.X, 0) || !almostEqual(v.Y, 3) {
		t.Errorf("FromAngle(pi/2, 3) = %v, want {0 3}", v)
	}
	if got := FromAngle(0, 1); !almostEqual(got.X, 1) || !almostEqual(got.Y, 0) {
		t.Errorf("FromAngle(0, 1) = %v, want {1 0}", got)
	}
}

func TestDot(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: 4}
	if got := a.Dot(b); !almostEqual(got, 11) {
		t.Errorf("Dot = %v, want 11", got)
	}
	// Perpendicular vectors have zero dot product.
	if got := (Vec2{X: 1, Y: 0}).Dot(Vec2{X: 0, Y: 5}); !almostEqual(got, 0) {
		t.Errorf("Dot perpendicular = %v, want 0", got)
	}
}
