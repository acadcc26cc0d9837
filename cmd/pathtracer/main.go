// Command pathtracer renders a fixed set of demo scenes to PNG files in
// the current directory. There is no flag or environment variable
// surface; which scenes render is decided here.
package main

import (
	"fmt"
	"log"

	pt "github.com/MatiasDuhalde/3d-graphics"
	"github.com/MatiasDuhalde/3d-graphics/internal/rlog"
)

func main() {
	if err := rlog.Init(); err != nil {
		log.Fatal(err)
	}
	defer rlog.Sync()

	for _, demo := range pt.AllDemos() {
		render(demo)
	}
}

func render(demo pt.Demo) {
	image := pt.NewImage(demo.Width, demo.Height, demo.Camera, demo.Scene)
	image.Render()

	outFile := fmt.Sprintf("%s.png", demo.Name)
	if err := image.Save(outFile); err != nil {
		log.Fatalf("%s: %v", demo.Name, err)
	}
	fmt.Printf("wrote %s\n", outFile)
}
