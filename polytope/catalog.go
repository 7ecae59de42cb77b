package polytope

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Golden ratio and friends, the coordinate alphabet of the icosahedral
// polytopes.
var (
	phi    = (1 + math.Sqrt(5)) / 2
	invPhi = 1 / phi
	sqrt5  = math.Sqrt(5)
)

func buildFiveCell() *Polytope {
	// Four vertices of a regular tetrahedron pushed below w = 0, capped by
	// an apex on the w axis. All pairs sit at squared distance 8 and all
	// five points share the same norm.
	w := -1 / sqrt5
	vertices := []mgl64.Vec4{
		{1, 1, 1, w},
		{1, -1, -1, w},
		{-1, 1, -1, w},
		{-1, -1, 1, w},
		{0, 0, 0, 4 / sqrt5},
	}
	rescale(vertices, DisplayRadius)
	edges := nearestNeighborEdges(vertices)

	return &Polytope{
		Name:        "5-cell",
		Description: "self-dual simplex of five tetrahedral cells",
		Vertices:    vertices,
		Edges:       edges,
		Faces:       triangleFaces(edges, len(vertices)),
		FaceSize:    3,
	}
}

func buildTesseract() *Polytope {
	vertices := signVariations(mgl64.Vec4{1, 1, 1, 1})

	// Square faces are easier to read off the raw ±1 corners than to dig
	// out of the edge graph: fix two axes, vary the other two.
	var faces [][]int
	for a := 0; a < 4; a++ {
		for b := a + 1; b < 4; b++ {
			c, d := otherAxes(a, b)
			for _, sc := range []float64{-1, 1} {
				for _, sd := range []float64{-1, 1} {
					var cycle []int
					for _, sa := range []float64{-1, 1} {
						for _, sb := range []float64{-1, 1} {
							var corner mgl64.Vec4
							corner[a], corner[b] = sa, sb
							corner[c], corner[d] = sc, sd
							cycle = append(cycle, indexOf(vertices, corner))
						}
					}
					// The sign loops emit the corners in grid order; swapping
					// the last two turns the list into a perimeter.
					cycle[2], cycle[3] = cycle[3], cycle[2]
					faces = append(faces, cycle)
				}
			}
		}
	}

	rescale(vertices, DisplayRadius)

	return &Polytope{
		Name:        "tesseract",
		Description: "hypercube of eight cubic cells",
		Vertices:    vertices,
		Edges:       nearestNeighborEdges(vertices),
		Faces:       faces,
		FaceSize:    4,
	}
}

// otherAxes returns the two axes outside the pair {a, b}, ascending.
func otherAxes(a, b int) (int, int) {
	axes := make([]int, 0, 2)
	for axis := 0; axis < 4; axis++ {
		if axis != a && axis != b {
			axes = append(axes, axis)
		}
	}

	return axes[0], axes[1]
}

// indexOf locates an exact corner among the raw sign-variation vertices.
func indexOf(vertices []mgl64.Vec4, target mgl64.Vec4) int {
	for i, v := range vertices {
		if v == target {
			return i
		}
	}
	panic("polytope: corner lookup missed")
}

func buildSixteenCell() *Polytope {
	var raw []mgl64.Vec4
	for _, p := range permutations(mgl64.Vec4{1, 0, 0, 0}) {
		raw = append(raw, signVariations(p)...)
	}
	vertices := dedupVertices(raw)
	rescale(vertices, DisplayRadius)
	edges := nearestNeighborEdges(vertices)

	return &Polytope{
		Name:        "16-cell",
		Description: "cross-polytope of sixteen tetrahedral cells, dual to the tesseract",
		Vertices:    vertices,
		Edges:       edges,
		Faces:       triangleFaces(edges, len(vertices)),
		FaceSize:    3,
	}
}

func buildTwentyFourCell() *Polytope {
	var raw []mgl64.Vec4
	for _, p := range permutations(mgl64.Vec4{1, 1, 0, 0}) {
		raw = append(raw, signVariations(p)...)
	}
	vertices := dedupVertices(raw)
	rescale(vertices, DisplayRadius)
	edges := nearestNeighborEdges(vertices)

	return &Polytope{
		Name:        "24-cell",
		Description: "self-dual polytope of twenty-four octahedral cells, unique to four dimensions",
		Vertices:    vertices,
		Edges:       edges,
		Faces:       triangleFaces(edges, len(vertices)),
		FaceSize:    3,
	}
}

func buildSixHundredCell() *Polytope {
	// Three orbits of norm 1: the hypercube corners, the 16-cell axes, and
	// the even permutations of the golden-ratio template.
	raw := signVariations(mgl64.Vec4{0.5, 0.5, 0.5, 0.5})
	for _, p := range permutations(mgl64.Vec4{1, 0, 0, 0}) {
		raw = append(raw, signVariations(p)...)
	}
	for _, p := range evenPermutations(mgl64.Vec4{phi / 2, 0.5, invPhi / 2, 0}) {
		raw = append(raw, signVariations(p)...)
	}
	vertices := dedupVertices(raw)
	rescale(vertices, DisplayRadius)
	edges := nearestNeighborEdges(vertices)

	return &Polytope{
		Name:        "600-cell",
		Description: "tetraplex of six hundred tetrahedral cells, dual to the 120-cell",
		Vertices:    vertices,
		Edges:       edges,
		Faces:       triangleFaces(edges, len(vertices)),
		FaceSize:    3,
	}
}

func buildOneTwentyCell() *Polytope {
	// Seven orbits of norm sqrt(8): four closed under all coordinate
	// orderings, three only under the even ones.
	allOrderings := []mgl64.Vec4{
		{0, 0, 2, 2},
		{1, 1, 1, sqrt5},
		{invPhi * invPhi, phi, phi, phi},
		{invPhi, invPhi, invPhi, phi * phi},
	}
	evenOrderings := []mgl64.Vec4{
		{0, invPhi * invPhi, 1, phi * phi},
		{0, invPhi, phi, sqrt5},
		{invPhi, 1, phi, 2},
	}

	var raw []mgl64.Vec4
	for _, template := range allOrderings {
		for _, p := range permutations(template) {
			raw = append(raw, signVariations(p)...)
		}
	}
	for _, template := range evenOrderings {
		for _, p := range evenPermutations(template) {
			raw = append(raw, signVariations(p)...)
		}
	}
	vertices := dedupVertices(raw)
	rescale(vertices, DisplayRadius)

	return &Polytope{
		Name:        "120-cell",
		Description: "dodecaplex of one hundred twenty dodecahedral cells",
		Vertices:    vertices,
		Edges:       nearestNeighborEdges(vertices),
		// The 720 pentagonal faces are not enumerated: the clique search
		// only recovers triangles, and no renderer of ours draws them.
		Faces:    nil,
		FaceSize: 5,
	}
}
