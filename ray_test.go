package pathtracer

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/MatiasDuhalde/3d-graphics/internal/prim"
)

var approxOpts = cmpopts.EquateApprox(1e-7, 0)

func TestNewRayNormalizesDirection(t *testing.T) {
	r := NewRay(prim.NewVector3(0, 0, 0), prim.NewVector3(3, 0, 0))
	if diff := cmp.Diff(1.0, r.Direction.Norm(), approxOpts); diff != "" {
		t.Errorf("direction not unit length (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(DefaultRefractiveIndex, r.RefractiveIndex); diff != "" {
		t.Errorf("unexpected default IOR (-want +got):\n%s", diff)
	}
}

func TestRayAt(t *testing.T) {
	r := NewRay(prim.NewVector3(1, 0, 0), prim.NewVector3(0, 1, 0))
	got := r.At(5)
	want := prim.NewVector3(1, 5, 0)
	if diff := cmp.Diff(want, got, approxOpts); diff != "" {
		t.Errorf("At(5) mismatch (-want +got):\n%s", diff)
	}
}

func TestAddOffsetIncreasesOriginAlongDirection(t *testing.T) {
	r := NewRay(prim.NewVector3(0, 0, 0), prim.NewVector3(1, 0, 0))
	before := r.Origin.Norm()
	offset := r.AddOffset()
	after := offset.Origin.Norm()

	if after <= before {
		t.Fatalf("AddOffset did not increase origin norm: before=%v after=%v", before, after)
	}

	twice := offset.AddOffset()
	if diff := cmp.Diff(before+2*RayOffsetEpsilon, twice.Origin.Norm(), approxOpts); diff != "" {
		t.Errorf("AddOffset is not linear (-want +got):\n%s", diff)
	}
}

func TestReflectedSatisfiesReflectionLaw(t *testing.T) {
	incident := NewRay(prim.NewVector3(0, 0, 0), prim.NewVector3(1, -1, 0))
	normal := prim.NewVector3(0, 1, 0)
	point := prim.NewVector3(5, 0, 0)

	reflected := incident.Reflected(point, normal)

	gotDot := reflected.Direction.Dot(normal)
	wantDot := -incident.Direction.Dot(normal)
	if diff := cmp.Diff(wantDot, gotDot, approxOpts); diff != "" {
		t.Errorf("reflected.N != -incident.N (-want +got):\n%s", diff)
	}

	gotCross := reflected.Direction.Cross(normal)
	wantCross := incident.Direction.Cross(normal)
	if diff := cmp.Diff(wantCross, gotCross, approxOpts); diff != "" {
		t.Errorf("reflected x N != incident x N (-want +got):\n%s", diff)
	}
}

func TestReflectedPreservesRefractiveIndex(t *testing.T) {
	incident := NewRayWithRefractiveIndex(prim.NewVector3(0, 0, 0), prim.NewVector3(1, -1, 0), 1.5)
	reflected := incident.Reflected(prim.NewVector3(1, 1, 1), prim.NewVector3(0, 1, 0))
	if reflected.RefractiveIndex != 1.5 {
		t.Errorf("Reflected IOR = %v, want 1.5", reflected.RefractiveIndex)
	}
}
