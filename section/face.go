package section

import "fmt"

// Face identifies one of the six faces of the reference unit cube.
type Face uint8

const (
	Back   Face = iota // z = 0
	Front              // z = 1
	Bottom             // y = 0
	Top                // y = 1
	Left               // x = 0
	Right              // x = 1

	faceCount
)

// NeutralColor is the fallback edge color used when two adjacent slice
// points share no face. Only floating-point edge cases reach it.
const NeutralColor = "#7f8c8d"

func (f Face) String() string {
	switch f {
	case Back:
		return "back"
	case Front:
		return "front"
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Face(%d)", int(f))
}

// Color returns the face's display color as a hex string.
func (f Face) Color() string {
	switch f {
	case Back:
		return "#e74c3c"
	case Front:
		return "#e67e22"
	case Bottom:
		return "#f1c40f"
	case Top:
		return "#2ecc71"
	case Left:
		return "#3498db"
	case Right:
		return "#9b59b6"
	}
	return NeutralColor
}

// FaceSet is a bitset over the six cube faces.
type FaceSet uint8

// With returns the set with f added.
func (s FaceSet) With(f Face) FaceSet {
	return s | 1<<f
}

// Has reports whether f is in the set.
func (s FaceSet) Has(f Face) bool {
	return s&(1<<f) != 0
}

// Union returns the faces present in either set.
func (s FaceSet) Union(other FaceSet) FaceSet {
	return s | other
}

// Intersect returns the faces present in both sets.
func (s FaceSet) Intersect(other FaceSet) FaceSet {
	return s & other
}

// Count returns the number of faces in the set.
func (s FaceSet) Count() int {
	n := 0
	for f := Face(0); f < faceCount; f++ {
		if s.Has(f) {
			n++
		}
	}
	return n
}

// First returns the lowest-numbered face in the set, if any.
func (s FaceSet) First() (Face, bool) {
	for f := Face(0); f < faceCount; f++ {
		if s.Has(f) {
			return f, true
		}
	}
	return 0, false
}
