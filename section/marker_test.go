package section

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestFaceCenters(t *testing.T) {
	cases := []struct {
		face Face
		want mgl64.Vec3
	}{
		{Back, mgl64.Vec3{0.5, 0.5, 0}},
		{Front, mgl64.Vec3{0.5, 0.5, 1}},
		{Bottom, mgl64.Vec3{0.5, 0, 0.5}},
		{Top, mgl64.Vec3{0.5, 1, 0.5}},
		{Left, mgl64.Vec3{0, 0.5, 0.5}},
		{Right, mgl64.Vec3{1, 0.5, 0.5}},
	}
	for _, tc := range cases {
		if faceCenters[tc.face] != tc.want {
			t.Errorf("%s: got %v, want %v", tc.face, faceCenters[tc.face], tc.want)
		}
	}
}

// splitShapes buckets a shape list by concrete type.
func splitShapes(shapes []Shape) (ellipses []Ellipse, rects []Rectangle, tris []Triangle, hypers []Hyperbola) {
	for _, s := range shapes {
		switch v := s.(type) {
		case Ellipse:
			ellipses = append(ellipses, v)
		case Rectangle:
			rects = append(rects, v)
		case Triangle:
			tris = append(tris, v)
		case Hyperbola:
			hypers = append(hypers, v)
		}
	}
	return
}

func TestArrowsAxisAlignedMidCut(t *testing.T) {
	shapes := Arrows(0.5, mgl64.Vec3{})
	ellipses, rects, tris, hypers := splitShapes(shapes)
	if len(shapes) != 10 || len(ellipses) != 2 || len(rects) != 4 || len(tris) != 4 || len(hypers) != 0 {
		t.Fatalf("got %d shapes (%d ellipses, %d rectangles, %d triangles, %d hyperbolas), want 10 (2, 4, 4, 0)",
			len(shapes), len(ellipses), len(rects), len(tris), len(hypers))
	}

	// The two markers crossing the plane are circles at the cube center.
	for _, e := range ellipses {
		if e.Axis() != Back && e.Axis() != Front {
			t.Errorf("ellipse from the %s marker, want back or front", e.Axis())
		}
		if !floatEqual(e.Rx, shaftRadius, 1e-12) || !floatEqual(e.Ry, shaftRadius, 1e-12) {
			t.Errorf("%s ellipse: %.4f x %.4f, want a circle of radius %.4f", e.Axis(), e.Rx, e.Ry, shaftRadius)
		}
		if !vec2Equal(e.Center(), mgl64.Vec2{0.5, 0.5}, 1e-12) {
			t.Errorf("%s ellipse: center %v, want the cube center", e.Axis(), e.Center())
		}
	}

	// The four in-plane markers each leave a shaft slab plus a cone
	// triangle.
	for _, r := range rects {
		if !floatEqual(r.Width, 0.3, 1e-12) || !floatEqual(r.Height, 0.05, 1e-12) {
			t.Errorf("%s rectangle: %.4f x %.4f, want 0.3 x 0.05", r.Axis(), r.Width, r.Height)
		}
	}
	for _, tr := range tris {
		if !floatEqual(tr.BaseWidth, 0.12, 1e-12) || !floatEqual(tr.Length, 0.2, 1e-12) {
			t.Errorf("%s triangle: base %.4f length %.4f, want 0.12 and 0.2", tr.Axis(), tr.BaseWidth, tr.Length)
		}
	}

	byAxis := func(axis Face) (rect Rectangle, tri Triangle) {
		found := 0
		for _, r := range rects {
			if r.Axis() == axis {
				rect = r
				found++
			}
		}
		for _, tr := range tris {
			if tr.Axis() == axis {
				tri = tr
				found++
			}
		}
		if found != 2 {
			t.Fatalf("found %d shapes for the %s marker, want a rectangle and a triangle", found, axis)
		}
		return rect, tri
	}
	right, rightTip := byAxis(Right)
	if !vec2Equal(right.Center(), mgl64.Vec2{0.65, 0.5}, 1e-12) {
		t.Errorf("right rectangle center %v, want (0.65, 0.5)", right.Center())
	}
	if !vec2Equal(rightTip.Center(), mgl64.Vec2{0.8, 0.5}, 1e-12) {
		t.Errorf("right triangle center %v, want (0.8, 0.5)", rightTip.Center())
	}
	if !floatEqual(right.Rotation(), 0, 1e-12) {
		t.Errorf("right rectangle bearing %.4f, want 0", right.Rotation())
	}
	bottom, _ := byAxis(Bottom)
	if !vec2Equal(bottom.Center(), mgl64.Vec2{0.5, 0.35}, 1e-12) {
		t.Errorf("bottom rectangle center %v, want (0.5, 0.35)", bottom.Center())
	}
	if !floatEqual(bottom.Rotation(), -math.Pi/2, 1e-12) {
		t.Errorf("bottom rectangle bearing %.4f, want -pi/2", bottom.Rotation())
	}
}

func TestArrowsOffAxisShaftCut(t *testing.T) {
	shapes := Arrows(0.52, mgl64.Vec3{})
	ellipses, rects, tris, hypers := splitShapes(shapes)
	if len(ellipses) != 1 || len(rects) != 4 || len(tris) != 0 || len(hypers) != 4 {
		t.Fatalf("got %d ellipses, %d rectangles, %d triangles, %d hyperbolas, want 1, 4, 0, 4",
			len(ellipses), len(rects), len(tris), len(hypers))
	}

	// The plane misses the shaft axes by 0.02, so the slab narrows to the
	// chord 2*sqrt(0.025^2 - 0.02^2).
	for _, r := range rects {
		if !floatEqual(r.Height, 0.03, 1e-9) {
			t.Errorf("%s rectangle height %.6f, want 0.03", r.Axis(), r.Height)
		}
	}
	for _, h := range hypers {
		if !floatEqual(h.ZOffset, 0.02, 1e-12) {
			t.Errorf("%s hyperbola offset %.6f, want 0.02", h.Axis(), h.ZOffset)
		}
	}
	if ellipses[0].Axis() != Front {
		t.Errorf("ellipse from the %s marker, want front", ellipses[0].Axis())
	}
}

func TestArrowsConeCuts(t *testing.T) {
	shapes := Arrows(0.54, mgl64.Vec3{})
	ellipses, rects, tris, hypers := splitShapes(shapes)
	if len(ellipses) != 1 || len(rects) != 0 || len(tris) != 0 || len(hypers) != 4 {
		t.Fatalf("got %d ellipses, %d rectangles, %d triangles, %d hyperbolas, want 1, 0, 0, 4",
			len(ellipses), len(rects), len(tris), len(hypers))
	}
	for _, h := range hypers {
		if !floatEqual(h.ZOffset, 0.04, 1e-12) {
			t.Errorf("%s hyperbola offset %.6f, want 0.04", h.Axis(), h.ZOffset)
		}
		if !floatEqual(h.ConeRadius, coneRadius, 1e-12) || !floatEqual(h.ConeLength, 0.2, 1e-12) {
			t.Errorf("%s hyperbola cone %.4f x %.4f, want %.4f x 0.2", h.Axis(), h.ConeRadius, h.ConeLength, coneRadius)
		}
	}
}

func TestArrowsTiltedCutsAreEllipses(t *testing.T) {
	shapes := Arrows(0.5, mgl64.Vec3{0.5, 0.7, 0.3})
	if len(shapes) != 6 {
		t.Fatalf("got %d shapes, want 6", len(shapes))
	}

	var axes FaceSet
	for _, s := range shapes {
		e, ok := s.(Ellipse)
		if !ok {
			t.Fatalf("%s marker produced %T, want an ellipse", s.Axis(), s)
		}
		if !floatEqual(e.Ry, shaftRadius, 1e-12) {
			t.Errorf("%s ellipse: ry %.6f, want %.6f", e.Axis(), e.Ry, shaftRadius)
		}
		if e.Rx < e.Ry {
			t.Errorf("%s ellipse: rx %.6f below ry %.6f", e.Axis(), e.Rx, e.Ry)
		}
		if !vec2Equal(e.Center(), mgl64.Vec2{0.5, 0.5}, 1e-12) {
			t.Errorf("%s ellipse: center %v, want the pivot", e.Axis(), e.Center())
		}
		axes = axes.With(e.Axis())
	}
	if axes.Count() != 6 {
		t.Errorf("markers for %d faces produced shapes, want all 6", axes.Count())
	}
}

func TestArrowsConeTipCut(t *testing.T) {
	shapes := Arrows(0.99, mgl64.Vec3{})
	if len(shapes) != 1 {
		t.Fatalf("got %d shapes, want 1", len(shapes))
	}
	e, ok := shapes[0].(Ellipse)
	if !ok {
		t.Fatalf("got %T, want an ellipse", shapes[0])
	}
	if e.Axis() != Front {
		t.Errorf("ellipse from the %s marker, want front", e.Axis())
	}
	if !floatEqual(e.Ry, 0.003, 1e-12) {
		t.Errorf("ry %.6f, want 0.003", e.Ry)
	}
}

func TestArrowsSkipsSlivers(t *testing.T) {
	// Near the cone apex the radius drops under the emission threshold.
	if shapes := Arrows(0.999, mgl64.Vec3{}); len(shapes) != 0 {
		t.Errorf("got %d shapes, want 0", len(shapes))
	}
}

func TestArrowsOutsideExtent(t *testing.T) {
	for _, sliceZ := range []float64{-2, 2} {
		if shapes := Arrows(sliceZ, mgl64.Vec3{}); len(shapes) != 0 {
			t.Errorf("sliceZ=%v: got %d shapes, want 0", sliceZ, len(shapes))
		}
	}
}
