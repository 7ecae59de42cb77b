package agcube

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
)

// RotationXYZ builds the matrix applying extrinsic Euler rotations to a
// column vector in X, Y, Z order: R = Rz * Ry * Rx. The composition order is
// part of the contract; axis rotations do not commute.
func RotationXYZ(angles mgl64.Vec3) mgl64.Mat3 {
	rx := mgl64.Rotate3DX(angles.X())
	ry := mgl64.Rotate3DY(angles.Y())
	rz := mgl64.Rotate3DZ(angles.Z())

	return rz.Mul3(ry).Mul3(rx)
}

// RotateAround rotates point by the Euler angles about center.
func RotateAround(point, angles, center mgl64.Vec3) mgl64.Vec3 {
	return RotationXYZ(angles).Mul3x1(point.Sub(center)).Add(center)
}

// SortAroundCentroid orders items by ascending angle around their own 2D
// centroid. Points lying on a convex polygon boundary come out as a simple
// cycle, whatever order they were discovered in. Fewer than 3 items are left
// untouched.
func SortAroundCentroid[T any](items []T, xy func(T) mgl64.Vec2) {
	if len(items) < 3 {
		return
	}

	centroid := mgl64.Vec2{}
	for _, item := range items {
		centroid = centroid.Add(xy(item))
	}
	centroid = centroid.Mul(1.0 / float64(len(items)))

	sort.Slice(items, func(i, j int) bool {
		a := xy(items[i]).Sub(centroid)
		b := xy(items[j]).Sub(centroid)

		return math.Atan2(a.Y(), a.X()) < math.Atan2(b.Y(), b.X())
	})
}
