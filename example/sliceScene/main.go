package main

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/roblev/AGCube/polytope"
	"github.com/roblev/AGCube/rotor"
	"github.com/roblev/AGCube/section"
)

// viewerDistance keeps the projection viewpoint outside every catalog
// polytope's w extent (their circumradius is 1.5).
const viewerDistance = 6.0

// showCatalog prints the size of each generated polytope.
func showCatalog() {
	fmt.Println("=== Polytope catalog ===")
	for _, p := range polytope.All() {
		fmt.Printf("%-10s %4d vertices %5d edges %5d faces (size %d)  %s\n",
			p.Name, len(p.Vertices), len(p.Edges), len(p.Faces), p.FaceSize, p.Description)
	}
}

// showSpin follows one tesseract vertex through a double rotation and its
// perspective projection into 3-space.
func showSpin() {
	fmt.Println("=== Tesseract spin ===")
	cube := polytope.Get(polytope.Tesseract)

	const steps = 8
	for step := 0; step <= steps; step++ {
		angle := 2 * math.Pi * float64(step) / steps
		m := rotor.Angles{XW: angle, YW: angle / 2, ZW: angle / 3}.Matrix()
		v := m.Mul4x1(cube.Vertices[0])
		fmt.Printf("step %d: vertex 0 at %.3f, projected to %.3f\n", step, v, rotor.Project(v, viewerDistance))
	}
}

// showSlices cuts the cube standing on its main diagonal at a few heights
// and lists the section polygon and the marker cross-sections.
func showSlices() {
	fmt.Println("=== Cube sections ===")
	rotation := mgl64.Vec3{math.Pi / 4, -math.Atan(1 / math.Sqrt2), 0}

	for _, sliceZ := range []float64{-0.2, 0.2, 0.5, 0.8, 1.2} {
		res := section.Cube(sliceZ, rotation)
		fmt.Printf("z=%+.2f: %d points (face cut: %v)\n", sliceZ, len(res.Points), res.IsFace)
		for _, p := range res.Points {
			fmt.Printf("  corner %.3f, edge colored %s\n", p.Pos, p.EdgeColor)
		}
		for _, s := range section.Arrows(sliceZ, rotation) {
			switch shape := s.(type) {
			case section.Ellipse:
				fmt.Printf("  %s marker: ellipse %.3f x %.3f at %.3f\n", shape.Axis(), shape.Rx, shape.Ry, shape.Center())
			case section.Rectangle:
				fmt.Printf("  %s marker: rectangle %.3f x %.3f at %.3f\n", shape.Axis(), shape.Width, shape.Height, shape.Center())
			case section.Triangle:
				fmt.Printf("  %s marker: triangle base %.3f, length %.3f at %.3f\n", shape.Axis(), shape.BaseWidth, shape.Length, shape.Center())
			case section.Hyperbola:
				fmt.Printf("  %s marker: hyperbola offset %.3f at %.3f\n", shape.Axis(), shape.ZOffset, shape.Center())
			}
		}
	}
}

// showSweep slices one rotation at many heights in parallel, the way an
// animation would precompute a scrub bar.
func showSweep() {
	fmt.Println("=== Parallel sweep ===")
	rotation := mgl64.Vec3{0.9, 0.4, 0.2}

	zs := make([]float64, 0, 15)
	for i := -2; i <= 12; i++ {
		zs = append(zs, float64(i)/10)
	}

	for i, res := range section.Sweep(zs, rotation, 4) {
		fmt.Printf("z=%+.2f: %d points\n", zs[i], len(res.Points))
	}
}

func main() {
	showCatalog()
	fmt.Println()
	showSpin()
	fmt.Println()
	showSlices()
	fmt.Println()
	showSweep()
}
