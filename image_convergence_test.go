package pathtracer

import (
	"image"
	"image/color"
	"testing"

	"github.com/MatiasDuhalde/3d-graphics/internal/prim"
)

// asImage adapts an Image's rendered buffer to image.Image so it can be
// compared with prim.SSIM.
func (img *Image) asImage() image.Image {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for row := 0; row < img.Height; row++ {
		for col := 0; col < img.Width; col++ {
			offset := (row*img.Width + col) * 3
			out.Set(col, row, color.RGBA{
				R: img.pixels[offset],
				G: img.pixels[offset+1],
				B: img.pixels[offset+2],
				A: 255,
			})
		}
	}
	return out
}

// TestRenderIsStructurallyStable renders the same scene twice at a
// sample count high enough to average out Monte-Carlo noise and checks
// the two frames are structurally near-identical: SSIM close to 1. This
// is the stability check the anti-aliasing convergence property rests
// on. If independent renders of a static scene didn't agree, the mean
// estimator wouldn't be converging to anything in particular.
func TestRenderIsStructurallyStable(t *testing.T) {
	EnableIndirectLighting = false
	defer func() { EnableIndirectLighting = true }()

	demo := SingleSphereScene()
	first := NewImage(24, 24, demo.Camera, demo.Scene)
	first.Render()
	second := NewImage(24, 24, demo.Camera, demo.Scene)
	second.Render()

	similarity, err := prim.SSIM(first.asImage(), second.asImage())
	if err != nil {
		t.Fatalf("SSIM: %v", err)
	}
	if similarity < 0.9 {
		t.Errorf("two renders of a static scene diverged too much: SSIM=%v", similarity)
	}
}
