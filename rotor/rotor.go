// Package rotor rotates and projects points in four-dimensional space.
//
// A rotation in 4D is not built around an axis: it acts inside a coordinate
// plane and leaves the two remaining coordinates fixed. Six such planes
// exist, and general orientations are reached by composing plane rotations.
// Plane rotations do not commute, so Angles pins one composition order and
// every caller gets the same orientation for the same angles.
//
// References:
//   - Hollasch: "Four-Space Visualization of 4D Objects" (1991)
package rotor

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Plane names a coordinate plane a rotation can act in.
type Plane int

const (
	XY Plane = iota
	XZ
	XW
	YZ
	YW
	ZW

	planeCount
)

func (p Plane) String() string {
	switch p {
	case XY:
		return "XY"
	case XZ:
		return "XZ"
	case XW:
		return "XW"
	case YZ:
		return "YZ"
	case YW:
		return "YW"
	case ZW:
		return "ZW"
	}
	return fmt.Sprintf("Plane(%d)", int(p))
}

// axes returns the two coordinate indices the plane spans.
func (p Plane) axes() (int, int) {
	switch p {
	case XY:
		return 0, 1
	case XZ:
		return 0, 2
	case XW:
		return 0, 3
	case YZ:
		return 1, 2
	case YW:
		return 1, 3
	case ZW:
		return 2, 3
	}
	panic(fmt.Sprintf("rotor: invalid plane %d", int(p)))
}

// Rotate turns point by angle radians inside the plane. The two coordinates
// outside the plane come back untouched.
func Rotate(point mgl64.Vec4, plane Plane, angle float64) mgl64.Vec4 {
	sin, cos := math.Sincos(angle)
	i, j := plane.axes()

	out := point
	out[i] = point[i]*cos - point[j]*sin
	out[j] = point[i]*sin + point[j]*cos

	return out
}

// Matrix returns the plane rotation by angle radians as a 4x4 matrix.
func (p Plane) Matrix(angle float64) mgl64.Mat4 {
	sin, cos := math.Sincos(angle)
	i, j := p.axes()

	m := mgl64.Ident4()
	m.Set(i, i, cos)
	m.Set(i, j, -sin)
	m.Set(j, i, sin)
	m.Set(j, j, cos)

	return m
}

// Angles holds one rotation angle per plane, in radians. The zero value is
// the identity orientation.
type Angles struct {
	XY, XZ, XW, YZ, YW, ZW float64
}

// Matrix composes the six plane rotations into a single matrix. The planes
// apply in the fixed order XY, XZ, XW, YZ, YW, ZW; the order is part of the
// contract since plane rotations do not commute.
func (a Angles) Matrix() mgl64.Mat4 {
	m := XY.Matrix(a.XY)
	m = XZ.Matrix(a.XZ).Mul4(m)
	m = XW.Matrix(a.XW).Mul4(m)
	m = YZ.Matrix(a.YZ).Mul4(m)
	m = YW.Matrix(a.YW).Mul4(m)
	m = ZW.Matrix(a.ZW).Mul4(m)

	return m
}

// Project flattens a 4D point into 3D with a perspective divide along w.
// The viewer sits at w = viewerDistance, so points with larger w project
// larger. A point exactly at the viewer's w divides by zero and projects to
// infinities; callers keep their geometry strictly inside the viewer
// distance.
func Project(point mgl64.Vec4, viewerDistance float64) mgl64.Vec3 {
	scale := 1 / (viewerDistance - point.W())

	return point.Vec3().Mul(scale)
}
