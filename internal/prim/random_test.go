package prim

import (
	"math"
	"testing"
)

func TestRandomCosineWeightedHemisphereStaysInHemisphere(t *testing.T) {
	normals := []Vector3{
		{X: 0, Y: 0, Z: 1},
		{X: 0, Y: 1, Z: 0},
		{X: 1, Y: 1, Z: 1},
		{X: 0.001, Y: 0.0001, Z: 1}, // nearly parallel to worldZ
	}
	for _, n := range normals {
		n = n.Normalize()
		for i := 0; i < 200; i++ {
			d := RandomCosineWeightedHemisphere(n)
			if math.Abs(d.Norm()-1) > 1e-6 {
				t.Fatalf("sample not unit length: %v (norm %v)", d, d.Norm())
			}
			if d.Dot(n) < -1e-9 {
				t.Fatalf("sample %v fell outside the hemisphere around %v (dot %v)", d, n, d.Dot(n))
			}
		}
	}
}

func TestRandomCosineWeightedHemisphereHandlesZAlignedNormal(t *testing.T) {
	// This is the degenerate case tangentFrame guards against: normal
	// parallel to world Z makes normal x worldZ collapse to zero.
	n := Vector3{X: 0, Y: 0, Z: 1}
	for i := 0; i < 50; i++ {
		d := RandomCosineWeightedHemisphere(n)
		if math.IsNaN(d.X) || math.IsNaN(d.Y) || math.IsNaN(d.Z) {
			t.Fatalf("sample around z-aligned normal produced NaN: %v", d)
		}
	}
}

func TestBoxMullerZComponentIsZero(t *testing.T) {
	for i := 0; i < 50; i++ {
		v := BoxMuller(0.25)
		if v.Z != 0 {
			t.Fatalf("BoxMuller z component = %v, want 0", v.Z)
		}
	}
}
