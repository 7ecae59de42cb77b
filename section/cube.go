// Package section computes planar cross-sections of a rotated unit cube and
// of the arrow markers anchored to its faces.
//
// The cube has corners at {0,1}^3 and rotates about its own center; the
// slicing plane is always horizontal, z = sliceZ in world coordinates.
// Cutting a convex solid with a plane cannot produce a concave polygon, so
// ordering the intersection points by angle around their centroid is enough
// to recover the section boundary.
package section

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	agcube "github.com/roblev/AGCube"
)

const (
	// planeTolerance decides when a z coordinate counts as lying on the
	// slicing plane.
	planeTolerance = 1e-9

	// pointMergeTolerance is the squared XY distance under which two
	// intersection points collapse into one. A cut through a cube vertex
	// reaches the same point along two or three different edges.
	pointMergeTolerance = 1e-8
)

// cubeCenter is the rotation pivot of the reference cube.
var cubeCenter = mgl64.Vec3{0.5, 0.5, 0.5}

// cubeCorners lists the reference cube's corners. Bit 0 of the index gives
// x, bit 1 gives y, bit 2 gives z.
var cubeCorners = [8]mgl64.Vec3{
	{0, 0, 0},
	{1, 0, 0},
	{0, 1, 0},
	{1, 1, 0},
	{0, 0, 1},
	{1, 0, 1},
	{0, 1, 1},
	{1, 1, 1},
}

// cubeFaces maps each face to its corner indices in perimeter order.
var cubeFaces = [faceCount][4]int{
	Back:   {0, 1, 3, 2},
	Front:  {4, 5, 7, 6},
	Bottom: {0, 1, 5, 4},
	Top:    {2, 3, 7, 6},
	Left:   {0, 2, 6, 4},
	Right:  {1, 3, 7, 5},
}

// cubeEdge is one of the cube's 12 edges together with the two faces it
// borders.
type cubeEdge struct {
	a, b  int
	faces FaceSet
}

// cubeEdges is derived once from the face perimeters.
var cubeEdges = buildCubeEdges()

func buildCubeEdges() []cubeEdge {
	var edges []cubeEdge
	for face := Face(0); face < faceCount; face++ {
		corners := cubeFaces[face]
		for i := range corners {
			a, b := corners[i], corners[(i+1)%len(corners)]
			if a > b {
				a, b = b, a
			}
			found := false
			for k := range edges {
				if edges[k].a == a && edges[k].b == b {
					edges[k].faces = edges[k].faces.With(face)
					found = true
					break
				}
			}
			if !found {
				edges = append(edges, cubeEdge{a: a, b: b, faces: FaceSet(0).With(face)})
			}
		}
	}

	return edges
}

// Point is one corner of a slice polygon.
type Point struct {
	Pos mgl64.Vec2

	// Faces collects every cube face the point lies on.
	Faces FaceSet

	// EdgeColor colors the polygon edge running from this point to the
	// next one in the cycle.
	EdgeColor string
}

// Result is the cross-section of the rotated cube. Points form a simple
// cycle; degenerate cuts leave fewer than three of them.
type Result struct {
	Points []Point

	// IsFace is true when the slicing plane coincides with one of the six
	// original cube faces.
	IsFace bool
}

// Cube intersects the unit cube, rotated by the Euler angles about its own
// center, with the plane z = sliceZ. Cuts through a vertex yield one point,
// through an edge two, through the interior three to six; a plane outside
// the cube's z extent yields none.
func Cube(sliceZ float64, rotation mgl64.Vec3) Result {
	var corners [8]mgl64.Vec3
	for i, c := range cubeCorners {
		corners[i] = agcube.RotateAround(c, rotation, cubeCenter)
	}

	// A cut along a whole face has to short-circuit the edge walk: every
	// edge of that face lies in the plane and would report its own
	// intersection, flooding the result with duplicates.
	if face, ok := coincidentFace(corners, sliceZ); ok {
		points := make([]Point, 0, 4)
		for _, ci := range cubeFaces[face] {
			points = append(points, Point{
				Pos:   corners[ci].Vec2(),
				Faces: FaceSet(0).With(face),
			})
		}
		orderAndColor(points)
		return Result{Points: points, IsFace: true}
	}

	var points []Point
	for _, e := range cubeEdges {
		p1, p2 := corners[e.a], corners[e.b]
		lo := min(p1.Z(), p2.Z())
		hi := max(p1.Z(), p2.Z())
		if sliceZ < lo-planeTolerance || sliceZ > hi+planeTolerance {
			continue
		}
		if hi-lo < planeTolerance {
			// The edge lies in the plane; its midpoint stands in for the
			// whole segment.
			points = append(points, Point{
				Pos:   p1.Add(p2).Mul(0.5).Vec2(),
				Faces: e.faces,
			})
			continue
		}
		t := (sliceZ - p1.Z()) / (p2.Z() - p1.Z())
		t = max(0, min(1, t))
		points = append(points, Point{
			Pos:   p1.Add(p2.Sub(p1).Mul(t)).Vec2(),
			Faces: e.faces,
		})
	}

	points = mergeCoincident(points)

	// A slightly tilted face cut can slip past the fast path above yet
	// still land four points on an original face.
	isFace := false
	if len(points) == 4 {
		_, isFace = coincidentFace(corners, sliceZ)
	}
	orderAndColor(points)

	return Result{Points: points, IsFace: isFace}
}

// coincidentFace reports which original cube face lies entirely on the
// slicing plane, if any.
func coincidentFace(corners [8]mgl64.Vec3, sliceZ float64) (Face, bool) {
	for face := Face(0); face < faceCount; face++ {
		onPlane := true
		for _, ci := range cubeFaces[face] {
			if math.Abs(corners[ci].Z()-sliceZ) > planeTolerance {
				onPlane = false
				break
			}
		}
		if onPlane {
			return face, true
		}
	}

	return 0, false
}

// mergeCoincident collapses points sharing an XY position and unions their
// face sets.
func mergeCoincident(points []Point) []Point {
	unique := make([]Point, 0, len(points))
	for _, p := range points {
		merged := false
		for k := range unique {
			d := p.Pos.Sub(unique[k].Pos)
			if d.Dot(d) < pointMergeTolerance {
				unique[k].Faces = unique[k].Faces.Union(p.Faces)
				merged = true
				break
			}
		}
		if !merged {
			unique = append(unique, p)
		}
	}

	return unique
}

// orderAndColor sorts three or more points into a convex cycle, then colors
// each polygon edge with a face shared by its two endpoints.
func orderAndColor(points []Point) {
	if len(points) >= 3 {
		agcube.SortAroundCentroid(points, func(p Point) mgl64.Vec2 { return p.Pos })
	}
	for i := range points {
		points[i].EdgeColor = segmentColor(points[i].Faces, points[(i+1)%len(points)].Faces)
	}
}

// segmentColor picks the color of a face both endpoints lie on, falling
// back to grey when rounding has left the sets disjoint.
func segmentColor(a, b FaceSet) string {
	if face, ok := a.Intersect(b).First(); ok {
		return face.Color()
	}

	return NeutralColor
}
