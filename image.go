package pathtracer

import (
	"bufio"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"runtime"

	"github.com/alitto/pond/v2"

	"github.com/MatiasDuhalde/3d-graphics/internal/prim"
	"github.com/MatiasDuhalde/3d-graphics/internal/rlog"
	"go.uber.org/zap"
)

// AntialiasingSamples is how many jittered camera rays a pixel
// averages when antialiasing is enabled. FresnelSamples and
// IndirectLightingSamples are how many paths the Fresnel and indirect
// lighting estimators average internally when they are NOT already
// being averaged by an outer antialiasing loop (see CalculateColor's
// multiSampling parameter).
const (
	AntialiasingSamples     = 32
	FresnelSamples          = 4096
	IndirectLightingSamples = 256
)

// GammaCorrection is the exponent applied when converting a linear
// color channel to an 8-bit sRGB-ish byte.
const GammaCorrection = 1.0 / 2.2

// PixelJitterSigma is the standard deviation, in pixels, of the
// Box-Muller jitter applied to antialiased samples.
const PixelJitterSigma = 0.25

// Image owns the output raster for one render: its dimensions, the
// camera and scene that produce it, and the pixel buffer itself.
type Image struct {
	Width, Height int
	Camera        *Camera
	Scene         *Scene

	pixels []byte // row-major, 3 bytes (R, G, B) per pixel
}

// NewImage allocates a width x height image bound to camera and scene.
func NewImage(width, height int, camera *Camera, scene *Scene) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Camera: camera,
		Scene:  scene,
		pixels: make([]byte, width*height*3),
	}
}

// samplesPerPixel is how many independent camera rays a pixel traces.
// Antialiasing is the outer sample loop: when it is on, every other
// stochastic estimator (Fresnel, indirect lighting) takes only one
// sample per camera ray, since the camera-ray loop already averages
// the noise out. When antialiasing is off, a pixel traces a single
// ray, and any Fresnel or indirect lighting estimator it encounters
// runs its own internal sample loop instead.
func samplesPerPixel() int {
	if EnableAntialiasing {
		return AntialiasingSamples
	}
	return 1
}

// Render fills the pixel buffer by tracing every pixel's rays. Rows are
// scheduled across a worker pool sized to the host's CPU count; each
// worker only ever writes its own row, so no synchronization is needed
// beyond the pool's own join barrier.
func (img *Image) Render() {
	numWorkers := runtime.NumCPU()
	pool := pond.NewPool(numWorkers)

	samples := samplesPerPixel()
	rlog.L.Info("rendering", zap.Int("width", img.Width), zap.Int("height", img.Height),
		zap.Int("samples_per_pixel", samples), zap.Int("workers", numWorkers))

	for row := 0; row < img.Height; row++ {
		row := row
		pool.Submit(func() {
			img.renderRow(row, samples)
		})
	}

	pool.StopAndWait()
}

func (img *Image) renderRow(row, samples int) {
	for col := 0; col < img.Width; col++ {
		radiance := img.samplePixel(row, col, samples)
		img.setPixel(row, col, radiance)
	}
}

// samplePixel averages samples independent camera rays for pixel (row,
// col), jittering each ray's target position by a Gaussian offset when
// antialiasing is enabled. CalculateColor is told whether this ray is
// one of many (multiSampling=EnableAntialiasing) so its own internal
// estimators know whether to sample once or run their full loop.
func (img *Image) samplePixel(row, col, samples int) prim.Vector3 {
	var sum prim.Vector3

	for i := 0; i < samples; i++ {
		dx, dy := 0.0, 0.0
		if EnableAntialiasing {
			jitter := prim.BoxMuller(PixelJitterSigma)
			dx, dy = jitter.X, jitter.Y
		}

		ray := img.Camera.RayForPixel(row, col, img.Width, img.Height, dx, dy)
		hit, ok := img.Scene.Intersect(ray)
		if !ok {
			continue
		}
		sum = sum.Add(img.Scene.CalculateColor(hit, EnableAntialiasing))
	}

	return sum.Scale(1.0 / float64(samples))
}

func (img *Image) setPixel(row, col int, c prim.Vector3) {
	offset := (row*img.Width + col) * 3
	img.pixels[offset] = gammaEncode(c.X)
	img.pixels[offset+1] = gammaEncode(c.Y)
	img.pixels[offset+2] = gammaEncode(c.Z)
}

// gammaEncode converts a linear color channel to a byte via
// min(255, c^GammaCorrection).
func gammaEncode(c float64) byte {
	if c < 0 {
		c = 0
	}
	encoded := math.Pow(c, GammaCorrection) * 255
	if encoded > 255 {
		encoded = 255
	}
	return byte(encoded)
}

// Save encodes the rendered buffer as an RGB8 PNG at path.
func (img *Image) Save(path string) error {
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

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if err := png.Encode(writer, out); err != nil {
		return err
	}
	return writer.Flush()
}
