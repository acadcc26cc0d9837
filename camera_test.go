package pathtracer

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/MatiasDuhalde/3d-graphics/internal/prim"
)

func TestCameraCenterPixelMatchesForwardAxis(t *testing.T) {
	camera := NewCamera(prim.NewVector3(0, 0, 0), prim.NewVector3(0, 0, 0), math.Pi/3)
	width, height := 401, 301

	ray := camera.RayForPixel(height/2, width/2, width, height, 0, 0)

	if diff := cmp.Diff(camera.Forward(), ray.Direction, approxOpts); diff != "" {
		t.Errorf("center-pixel ray direction mismatch (-want +got):\n%s", diff)
	}
}

func TestCameraForwardRotatesWithEulerAngles(t *testing.T) {
	camera := NewCamera(prim.NewVector3(0, 0, 0), prim.NewVector3(math.Pi, 0, 0), math.Pi/3)
	if diff := cmp.Diff(prim.NewVector3(0, -1, 0), camera.Forward(), approxOpts); diff != "" {
		t.Errorf("forward axis mismatch after pi rotation about X (-want +got):\n%s", diff)
	}
}
