package section

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	agcube "github.com/roblev/AGCube"
)

const (
	// shaftFraction splits each marker: the cylindrical shaft covers the
	// first 60% of its length, the cone cap the rest.
	shaftFraction = 0.6

	// shaftRadius is the cylinder radius of a marker shaft.
	shaftRadius = 0.025

	// coneRadius is the base radius of a marker's cone cap.
	coneRadius = 0.06

	// markerParallelThreshold is the |dirZ| below which a marker counts as
	// lying in the slicing plane and its cuts classify as parallel.
	markerParallelThreshold = 0.01

	// axialTolerance decides when a parallel cut runs through the cone
	// axis itself, where the section is a triangle rather than a
	// hyperbola branch.
	axialTolerance = 1e-6

	// minFeature is the smallest radius or chord worth emitting; anything
	// thinner would render as a sliver.
	minFeature = 0.001
)

// faceCenters holds the target point of each face's arrow marker.
var faceCenters = buildFaceCenters()

func buildFaceCenters() [faceCount]mgl64.Vec3 {
	var centers [faceCount]mgl64.Vec3
	for face := Face(0); face < faceCount; face++ {
		var sum mgl64.Vec3
		for _, ci := range cubeFaces[face] {
			sum = sum.Add(cubeCorners[ci])
		}
		centers[face] = sum.Mul(0.25)
	}

	return centers
}

// Shape is a marker cross-section positioned in the slicing plane.
type Shape interface {
	// Axis names the face whose marker produced the shape.
	Axis() Face
	// Center is the shape's position in the plane.
	Center() mgl64.Vec2
	// Rotation is the shape's in-plane orientation in radians.
	Rotation() float64
}

type shapeBase struct {
	axis     Face
	center   mgl64.Vec2
	rotation float64
}

func (b shapeBase) Axis() Face         { return b.axis }
func (b shapeBase) Center() mgl64.Vec2 { return b.center }
func (b shapeBase) Rotation() float64  { return b.rotation }

// Ellipse is the section of a shaft or cone cut obliquely to its axis. An
// axis perpendicular to the plane gives Rx == Ry, a circle.
type Ellipse struct {
	shapeBase
	Rx, Ry float64
}

// Rectangle is the section of a shaft cut parallel to its axis.
type Rectangle struct {
	shapeBase
	Width, Height float64
}

// Triangle is the section of a cone cut parallel to and through its axis.
type Triangle struct {
	shapeBase
	BaseWidth, Length float64
}

// Hyperbola is one branch of the section of a cone cut parallel to but off
// its axis. It carries the cut parameters for the renderer to trace the
// curve itself.
type Hyperbola struct {
	shapeBase
	ZOffset    float64
	ConeRadius float64
	ConeLength float64
}

// Arrows intersects the plane z = sliceZ with the six arrow markers that
// run from the cube center to each rotated face center. Markers the plane
// misses contribute nothing.
func Arrows(sliceZ float64, rotation mgl64.Vec3) []Shape {
	var shapes []Shape
	for face := Face(0); face < faceCount; face++ {
		shapes = append(shapes, sliceArrow(face, sliceZ, rotation)...)
	}

	return shapes
}

// sliceArrow cuts one marker with the plane. A parallel cut can produce two
// shapes, one from the shaft and one from the cone.
func sliceArrow(face Face, sliceZ float64, rotation mgl64.Vec3) []Shape {
	// The shaft base sits at the rotation pivot, so only the tip moves.
	from := cubeCenter
	to := agcube.RotateAround(faceCenters[face], rotation, cubeCenter)

	span := to.Sub(from)
	length := span.Len()

	if sliceZ < min(from.Z(), to.Z())-coneRadius || sliceZ > max(from.Z(), to.Z())+coneRadius {
		return nil
	}

	dir := span.Mul(1 / length)
	bearing := math.Atan2(dir.Y(), dir.X())
	cosTheta := math.Abs(dir.Z())

	if cosTheta < markerParallelThreshold {
		return parallelCut(face, from, span, length, bearing, sliceZ)
	}

	return angledCut(face, from, span, bearing, cosTheta, sliceZ)
}

// parallelCut sections a marker whose axis lies in the slicing plane. The
// shaft contributes a rectangular slab, the cone a triangle when the plane
// runs through its axis and a hyperbola branch otherwise.
func parallelCut(face Face, from, span mgl64.Vec3, length, bearing, sliceZ float64) []Shape {
	var shapes []Shape
	zOffset := math.Abs(from.Z() - sliceZ)

	if zOffset < shaftRadius {
		height := 2 * math.Sqrt(shaftRadius*shaftRadius-zOffset*zOffset)
		if height >= minFeature {
			shapes = append(shapes, Rectangle{
				shapeBase: shapeBase{
					axis:     face,
					center:   from.Add(span.Mul(shaftFraction / 2)).Vec2(),
					rotation: bearing,
				},
				Width:  length * shaftFraction,
				Height: height,
			})
		}
	}

	if zOffset < coneRadius {
		base := from.Add(span.Mul(shaftFraction))
		coneLength := length * (1 - shaftFraction)
		if zOffset < axialTolerance {
			shapes = append(shapes, Triangle{
				shapeBase: shapeBase{axis: face, center: base.Vec2(), rotation: bearing},
				BaseWidth: 2 * coneRadius,
				Length:    coneLength,
			})
		} else if chord := 2 * math.Sqrt(coneRadius*coneRadius-zOffset*zOffset); chord >= minFeature {
			shapes = append(shapes, Hyperbola{
				shapeBase:  shapeBase{axis: face, center: base.Vec2(), rotation: bearing},
				ZOffset:    zOffset,
				ConeRadius: coneRadius,
				ConeLength: coneLength,
			})
		}
	}

	return shapes
}

// angledCut sections a marker whose axis crosses the slicing plane: always
// an ellipse, stretched along the cut by the axis tilt.
func angledCut(face Face, from, span mgl64.Vec3, bearing, cosTheta, sliceZ float64) []Shape {
	t := (sliceZ - from.Z()) / span.Z()
	if t < 0 || t > 1 {
		return nil
	}

	radius := shaftRadius
	if t > shaftFraction {
		radius = coneRadius * (1 - t) / (1 - shaftFraction)
	}
	if radius < minFeature {
		return nil
	}

	return []Shape{Ellipse{
		shapeBase: shapeBase{
			axis:     face,
			center:   from.Add(span.Mul(t)).Vec2(),
			rotation: bearing,
		},
		Rx: radius / cosTheta,
		Ry: radius,
	}}
}
