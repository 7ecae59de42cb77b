package polytope

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// vertexMergeTolerance is the squared distance under which two generated
	// vertices count as the same point.
	vertexMergeTolerance = 1e-8

	// edgeDistanceSlack is the relative margin over the minimum pairwise
	// squared distance when classifying a vertex pair as an edge. The next
	// distance class sits at least a factor 2 higher for every catalog
	// entry, so the margin only has to absorb rounding.
	edgeDistanceSlack = 1e-6
)

// signVariations returns every distinct combination of sign flips of the
// template's nonzero coordinates, template first.
func signVariations(template mgl64.Vec4) []mgl64.Vec4 {
	variants := []mgl64.Vec4{template}
	for axis := 0; axis < 4; axis++ {
		if template[axis] == 0 {
			continue
		}
		count := len(variants)
		for i := 0; i < count; i++ {
			flipped := variants[i]
			flipped[axis] = -flipped[axis]
			variants = append(variants, flipped)
		}
	}

	return variants
}

// permutations returns the template under all 24 coordinate orderings.
func permutations(template mgl64.Vec4) []mgl64.Vec4 {
	return permute(template, false)
}

// evenPermutations returns the template under the 12 orderings reachable by
// an even number of pairwise swaps.
func evenPermutations(template mgl64.Vec4) []mgl64.Vec4 {
	return permute(template, true)
}

// permute enumerates coordinate orderings by recursive swapping, tracking
// the transposition parity so odd arrangements can be discarded.
func permute(template mgl64.Vec4, evenOnly bool) []mgl64.Vec4 {
	out := make([]mgl64.Vec4, 0, 24)
	order := [4]int{0, 1, 2, 3}

	var visit func(slot int, odd bool)
	visit = func(slot int, odd bool) {
		if slot == 4 {
			if evenOnly && odd {
				return
			}
			out = append(out, mgl64.Vec4{
				template[order[0]],
				template[order[1]],
				template[order[2]],
				template[order[3]],
			})
			return
		}
		for i := slot; i < 4; i++ {
			order[slot], order[i] = order[i], order[slot]
			visit(slot+1, odd != (i != slot))
			order[slot], order[i] = order[i], order[slot]
		}
	}
	visit(0, false)

	return out
}

// dedupVertices drops points that coincide with an earlier point, keeping
// first occurrences. Linear scan; the largest raw family is ~1.6k points.
func dedupVertices(points []mgl64.Vec4) []mgl64.Vec4 {
	unique := make([]mgl64.Vec4, 0, len(points))
	for _, p := range points {
		known := false
		for _, q := range unique {
			d := p.Sub(q)
			if d.Dot(d) < vertexMergeTolerance {
				known = true
				break
			}
		}
		if !known {
			unique = append(unique, p)
		}
	}

	return unique
}

// rescale scales every point uniformly so the maximum norm equals radius.
func rescale(points []mgl64.Vec4, radius float64) {
	maxSq := 0.0
	for _, p := range points {
		maxSq = max(maxSq, p.Dot(p))
	}
	if maxSq == 0 {
		return
	}

	factor := radius / math.Sqrt(maxSq)
	for i := range points {
		points[i] = points[i].Mul(factor)
	}
}

// nearestNeighborEdges connects every vertex pair in the minimum-distance
// class.
func nearestNeighborEdges(points []mgl64.Vec4) []Edge {
	minSq := math.Inf(1)
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := points[j].Sub(points[i])
			minSq = min(minSq, d.Dot(d))
		}
	}
	if math.IsInf(minSq, 1) {
		return nil
	}

	limit := minSq * (1 + edgeDistanceSlack)
	var edges []Edge
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			d := points[j].Sub(points[i])
			if d.Dot(d) <= limit {
				edges = append(edges, Edge{A: i, B: j})
			}
		}
	}

	return edges
}

// triangleFaces enumerates the 3-cliques of the edge graph, each emitted
// once as an ascending index triple. Every edge is normalized A < B, so a
// triangle i < j < k is found exactly once, from its (i, j) edge.
func triangleFaces(edges []Edge, vertexCount int) [][]int {
	adjacent := make(map[Edge]struct{}, len(edges))
	for _, e := range edges {
		adjacent[e] = struct{}{}
	}

	var faces [][]int
	for _, e := range edges {
		for k := e.B + 1; k < vertexCount; k++ {
			if _, ok := adjacent[Edge{A: e.A, B: k}]; !ok {
				continue
			}
			if _, ok := adjacent[Edge{A: e.B, B: k}]; !ok {
				continue
			}
			faces = append(faces, []int{e.A, e.B, k})
		}
	}

	return faces
}
