package border

import (
	"gonum.org/v1/gonum/spatial/r3"

	"meshborder/internal/mesh"
)

func vec(x, y, z float64) r3.Vec { return r3.Vec{X: x, Y: y, Z: z} }

func tri(a, b, c int) mesh.Face { return mesh.Face{A: a, B: b, C: c} }

// unit square split along the 0-2 diagonal
func squarePart() mesh.Part {
	return mesh.Part{
		Name:      "square",
		Positions: []r3.Vec{vec(0, 0, 0), vec(1, 0, 0), vec(1, 1, 0), vec(0, 1, 0)},
		Faces:     []mesh.Face{tri(0, 1, 2), tri(0, 2, 3)},
	}
}

func tetraPart() mesh.Part {
	return mesh.Part{
		Name:      "tetra",
		Positions: []r3.Vec{vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0), vec(0, 0, 1)},
		Faces:     []mesh.Face{tri(0, 2, 1), tri(0, 1, 3), tri(1, 2, 3), tri(0, 3, 2)},
	}
}

func twoTrianglesPart() mesh.Part {
	return mesh.Part{
		Name: "pair",
		Positions: []r3.Vec{
			vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0),
			vec(5, 5, 5), vec(6, 5, 5), vec(5, 6, 5),
		},
		Faces: []mesh.Face{tri(0, 1, 2), tri(3, 4, 5)},
	}
}

// fanPart is a disc: a center vertex and an n-gon ring, n boundary edges.
func fanPart(n int) mesh.Part {
	p := mesh.Part{Name: "fan", Positions: []r3.Vec{vec(0, 0, 0)}}
	for i := 0; i < n; i++ {
		p.Positions = append(p.Positions, vec(float64(i), float64(i*i), 1))
	}
	for i := 1; i <= n; i++ {
		p.Faces = append(p.Faces, tri(0, i, i%n+1))
	}
	return p
}

// two triangles touching at vertex 0 only
func bowtiePart() mesh.Part {
	return mesh.Part{
		Name:      "bowtie",
		Positions: []r3.Vec{vec(0, 0, 0), vec(1, 1, 0), vec(1, -1, 0), vec(-1, 1, 0), vec(-1, -1, 0)},
		Faces:     []mesh.Face{tri(0, 1, 2), tri(0, 3, 4)},
	}
}

// unweld gives every face its own three positions, as STL files do.
func unweld(p mesh.Part) mesh.Part {
	out := mesh.Part{Name: p.Name}
	for _, f := range p.Faces {
		base := len(out.Positions)
		out.Positions = append(out.Positions, p.Positions[f.A], p.Positions[f.B], p.Positions[f.C])
		out.Faces = append(out.Faces, tri(base, base+1, base+2))
	}
	return out
}
