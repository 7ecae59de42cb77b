// Package polytope builds the six regular 4-polytopes, the four-dimensional
// analogues of the Platonic solids.
//
// Each entry is generated from its closed-form coordinate families, then run
// through a common pipeline: near-duplicate vertices are merged, the whole
// vertex set is rescaled to a shared display radius, edges are found by
// nearest-neighbor search (the edges of a regular polytope are exactly its
// shortest vertex bonds) and triangular faces by 3-clique enumeration over
// the edge graph. The catalog is built once and is immutable afterwards,
// safe for any number of concurrent readers.
//
// References:
//   - Coxeter: "Regular Polytopes" (1973), Table V for the coordinate families
package polytope

import (
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// DisplayRadius is the circumradius every catalog entry is rescaled to.
const DisplayRadius = 1.5

// Polytope is an immutable vertex/edge/face dataset for one regular
// 4-polytope. Vertex indices are the sole cross-reference key: Edges and
// Faces address into Vertices.
type Polytope struct {
	Name        string
	Description string

	Vertices []mgl64.Vec4
	Edges    []Edge

	// Faces holds index cycles, each of length FaceSize. The 120-cell
	// exposes no faces; consumers must tolerate the empty list.
	Faces    [][]int
	FaceSize int
}

// Edge joins two vertex indices, normalized so A < B.
type Edge struct {
	A, B int
}

// Kind selects a catalog entry.
type Kind int

const (
	FiveCell Kind = iota
	Tesseract
	SixteenCell
	TwentyFourCell
	OneTwentyCell
	SixHundredCell

	kindCount
)

func (k Kind) String() string {
	switch k {
	case FiveCell:
		return "5-cell"
	case Tesseract:
		return "8-cell"
	case SixteenCell:
		return "16-cell"
	case TwentyFourCell:
		return "24-cell"
	case OneTwentyCell:
		return "120-cell"
	case SixHundredCell:
		return "600-cell"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

var (
	catalogOnce sync.Once
	catalog     [kindCount]*Polytope
)

func buildCatalog() {
	catalog[FiveCell] = buildFiveCell()
	catalog[Tesseract] = buildTesseract()
	catalog[SixteenCell] = buildSixteenCell()
	catalog[TwentyFourCell] = buildTwentyFourCell()
	catalog[OneTwentyCell] = buildOneTwentyCell()
	catalog[SixHundredCell] = buildSixHundredCell()
}

// Get returns the catalog entry for kind, shared and read-only. It panics on
// an out-of-range kind.
func Get(kind Kind) *Polytope {
	if kind < 0 || kind >= kindCount {
		panic(fmt.Sprintf("polytope: invalid kind %d", int(kind)))
	}
	catalogOnce.Do(buildCatalog)

	return catalog[kind]
}

// All returns the six catalog entries in Kind order.
func All() []*Polytope {
	catalogOnce.Do(buildCatalog)

	return catalog[:]
}
