package border

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"meshborder/internal/mesh"
)

// vertexKey is the bit-exact identity of a position.
type vertexKey [3]uint64

func keyOf(v r3.Vec) vertexKey {
	return vertexKey{math.Float64bits(v.X), math.Float64bits(v.Y), math.Float64bits(v.Z)}
}

// Weld merges positions whose components are bit-for-bit identical and
// rewrites face indices into the compacted buffer.
//
// Positions are numbered in the order faces first reference them (A, B, C of
// each face in turn); positions no face references are dropped. -0 and +0
// are distinct. Weld is idempotent. Positions are finite (the importers
// reject NaN and Inf) and face indices in range (see mesh.Part.Validate).
func Weld(positions []r3.Vec, faces []mesh.Face) ([]r3.Vec, []mesh.Face) {
	seen := make(map[vertexKey]int, len(positions))
	out := make([]r3.Vec, 0, len(positions))
	index := func(raw int) int {
		v := positions[raw]
		k := keyOf(v)
		if i, ok := seen[k]; ok {
			return i
		}
		i := len(out)
		out = append(out, v)
		seen[k] = i
		return i
	}

	welded := make([]mesh.Face, len(faces))
	for i, f := range faces {
		welded[i] = mesh.Face{A: index(f.A), B: index(f.B), C: index(f.C), Material: f.Material}
	}
	return out, welded
}
