package pathtracer

import (
	"math"

	"github.com/MatiasDuhalde/3d-graphics/internal/prim"
)

// Demo is a named, fully-assembled scene ready to render. The CLI
// renders every demo AllDemos lists and names each output file after
// it; there is no scene description format or flag surface.
type Demo struct {
	Name          string
	Scene         *Scene
	Camera        *Camera
	Width, Height int
}

// EmptyScene renders to an all-black frame: no objects, no lights.
func EmptyScene() Demo {
	scene := NewScene()
	camera := NewCamera(prim.NewVector3(0, 0, 0), prim.NewVector3(0, 0, 0), math.Pi/3)
	return Demo{Name: "empty", Scene: scene, Camera: camera, Width: 512, Height: 512}
}

// SingleSphereScene is a red opaque sphere lit by one point light,
// viewed down the -Y axis.
func SingleSphereScene() Demo {
	scene := NewScene()

	sphere := NewSphereBuilder(prim.NewVector3(0, 0, 0), 10).
		WithColor(prim.RGB(1, 0, 0)).
		Build()
	scene.AddObject(sphere)

	light := NewPointLight(prim.NewVector3(20, 20, 20), 5e9)
	scene.AddLightSource(light)

	camera := NewCamera(prim.NewVector3(0, 55, 0), prim.NewVector3(math.Pi, 0, 0), 75*math.Pi/180)

	return Demo{Name: "single-sphere", Scene: scene, Camera: camera, Width: 512, Height: 512}
}

// MirrorSphereScene places a mirror sphere in front of a large red
// "wall" sphere so the mirror's center should reflect the wall's color.
func MirrorSphereScene() Demo {
	scene := NewScene()

	mirror := NewSphereBuilder(prim.NewVector3(-25, 0, 0), 10).
		WithMirror(true).
		Build()
	scene.AddObject(mirror)

	wall := NewSphereBuilder(prim.NewVector3(-1000, 0, 0), 940).
		WithColor(prim.RGB(1, 0, 0)).
		Build()
	scene.AddObject(wall)

	light := NewPointLight(prim.NewVector3(20, 40, 40), 8e9)
	scene.AddLightSource(light)

	camera := NewCamera(prim.NewVector3(0, 0, 60), prim.NewVector3(-math.Pi/2, 0, 0), 60*math.Pi/180)

	return Demo{Name: "mirror-sphere", Scene: scene, Camera: camera, Width: 512, Height: 512}
}

// DielectricSphereScene is a glass sphere (IOR 1.5) in front of a
// colored wall, lit by one point light, with Fresnel weighting enabled.
func DielectricSphereScene() Demo {
	EnableFresnel = true

	scene := NewScene()

	glass := NewSphereBuilder(prim.NewVector3(0, 0, 0), 10).
		WithTransparent(true).
		WithRefractiveIndex(1.5).
		Build()
	scene.AddObject(glass)

	wall := NewSphereBuilder(prim.NewVector3(-1000, 0, 0), 940).
		WithColor(prim.RGB(0.2, 0.4, 0.9)).
		Build()
	scene.AddObject(wall)

	light := NewPointLight(prim.NewVector3(20, 40, 40), 8e9)
	scene.AddLightSource(light)

	camera := NewCamera(prim.NewVector3(0, 0, 60), prim.NewVector3(-math.Pi/2, 0, 0), 60*math.Pi/180)

	return Demo{Name: "dielectric-sphere", Scene: scene, Camera: camera, Width: 512, Height: 512}
}

// SphericalLightScene exercises Sphere's dual role as both scene
// geometry and an importance-sampled area light: a light sphere sits
// above an opaque floor-sphere large enough to read as a ground plane.
func SphericalLightScene() Demo {
	scene := NewScene()

	floor := NewSphereBuilder(prim.NewVector3(0, -1000, 0), 990).
		WithColor(prim.RGB(0.8, 0.8, 0.8)).
		Build()
	scene.AddObject(floor)

	lightSphere := NewSphereBuilder(prim.NewVector3(0, 30, 0), 8).
		WithLight(true).
		WithLightIntensity(2e11).
		Build()
	scene.AddObject(lightSphere)
	scene.AddLightSource(lightSphere)

	camera := NewCamera(prim.NewVector3(0, 15, 60), prim.NewVector3(-math.Pi/2, 0, 0), 60*math.Pi/180)

	return Demo{Name: "spherical-light", Scene: scene, Camera: camera, Width: 512, Height: 512}
}

// AllDemos lists every demo scene in the order the CLI renders them.
func AllDemos() []Demo {
	return []Demo{
		EmptyScene(),
		SingleSphereScene(),
		MirrorSphereScene(),
		DielectricSphereScene(),
		SphericalLightScene(),
	}
}
