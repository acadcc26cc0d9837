package prim

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approxOpts = cmpopts.EquateApprox(1e-7, 0.0)

func TestNormalizeSimple(t *testing.T) {
	tests := []struct {
		v    Vector3
		want Vector3
	}{
		{v: Vector3{X: 2, Y: 0, Z: 0}, want: Vector3{X: 1, Y: 0, Z: 0}},
		{v: Vector3{X: 0, Y: -12, Z: 5}, want: Vector3{X: 0, Y: -12.0 / 13, Z: 5.0 / 13}},
		{v: Vector3{X: 3, Y: 4, Z: 0}, want: Vector3{X: 3.0 / 5.0, Y: 4.0 / 5.0, Z: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.v.String(), func(t *testing.T) {
			got := tt.v.Normalize()
			if diff := cmp.Diff(got, tt.want, approxOpts); diff != "" {
				t.Errorf("Normalize() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestNormalizeIsUnitLength(t *testing.T) {
	tests := []Vector3{
		{X: 2, Y: 0, Z: 0},
		{X: 12, Y: 14, Z: 23},
		{X: 0, Y: 83, Z: 0.32},
	}
	for _, v := range tests {
		t.Run(v.String(), func(t *testing.T) {
			got := v.Normalize().Norm()
			if diff := cmp.Diff(got, 1.0, approxOpts); diff != "" {
				t.Errorf("Normalize().Norm() mismatch (-got +want):\n%s", diff)
			}
		})
	}
}

func TestCrossIsOrthogonal(t *testing.T) {
	a := Vector3{X: 1, Y: 0, Z: 0}
	b := Vector3{X: 0, Y: 1, Z: 0}
	c := a.Cross(b)
	if diff := cmp.Diff(c, Vector3{X: 0, Y: 0, Z: 1}, approxOpts); diff != "" {
		t.Errorf("Cross() mismatch (-got +want):\n%s", diff)
	}
	if got := c.Dot(a); got > 1e-9 {
		t.Errorf("Cross() not orthogonal to a: dot = %v", got)
	}
	if got := c.Dot(b); got > 1e-9 {
		t.Errorf("Cross() not orthogonal to b: dot = %v", got)
	}
}

func TestMulIsHadamard(t *testing.T) {
	a := Vector3{X: 0.5, Y: 1.0, Z: 0.25}
	b := Vector3{X: 2.0, Y: 0.5, Z: 4.0}
	got := a.Mul(b)
	want := Vector3{X: 1.0, Y: 0.5, Z: 1.0}
	if diff := cmp.Diff(got, want, approxOpts); diff != "" {
		t.Errorf("Mul() mismatch (-got +want):\n%s", diff)
	}
}

func TestGreatestComponent(t *testing.T) {
	tests := []struct {
		v    Vector3
		want int
	}{
		{Vector3{X: 5, Y: 1, Z: 1}, 0},
		{Vector3{X: 1, Y: -9, Z: 1}, 1},
		{Vector3{X: 1, Y: 1, Z: 8}, 2},
	}
	for _, tt := range tests {
		if got := tt.v.GreatestComponent(); got != tt.want {
			t.Errorf("GreatestComponent(%v) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestClamp01(t *testing.T) {
	got := Vector3{X: -1, Y: 0.5, Z: 3}.Clamp01()
	want := Vector3{X: 0, Y: 0.5, Z: 1}
	if diff := cmp.Diff(got, want, approxOpts); diff != "" {
		t.Errorf("Clamp01() mismatch (-got +want):\n%s", diff)
	}
}
