package border

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"

	"meshborder/internal/mesh"
)

// Stats records what each stage saw for one part.
type Stats struct {
	RawVertices     int
	Vertices        int // after Weld
	Faces           int
	DegenerateFaces int
	Edges           int // distinct canonical edges
	BoundaryEdges   int // found by ClassifyEdges
	ReachedEdges    int // reported by Traverse
}

// Unreached is the number of boundary edges outside the seed's component.
func (s Stats) Unreached() int { return s.BoundaryEdges - s.ReachedEdges }

// BorderData is the extracted boundary of one part.
type BorderData struct {
	Part     string
	Vertices []r3.Vec // welded position buffer; Border indexes into it
	Border   []Edge   // boundary edges in visitation order
	Flatten  []r3.Vec // boundary polyline in walk order
	Stats    Stats
}

// Perimeter is the length of the closed polyline.
func (d *BorderData) Perimeter() float64 {
	n := len(d.Flatten)
	if n < 2 {
		return 0
	}
	sum := 0.0
	for i := range d.Flatten {
		sum += r3.Norm(r3.Sub(d.Flatten[(i+1)%n], d.Flatten[i]))
	}
	return sum
}

// Build extracts the boundary of p. It returns (nil, nil) when p is empty or
// closed. The only extraction error is *NonManifoldBoundaryError; an
// out-of-range face index wraps mesh.ErrIndexRange.
func Build(p mesh.Part) (*BorderData, error) {
	if p.Empty() {
		return nil, nil
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	verts, faces := Weld(p.Positions, p.Faces)
	set := ClassifyEdges(faces)
	if len(set.Boundary) == 0 {
		return nil, nil
	}

	adj, err := BuildAdjacency(len(verts), set.Boundary)
	if err != nil {
		return nil, fmt.Errorf("part %q: %w", p.Name, err)
	}
	loop := Traverse(set.Boundary, adj)

	d := &BorderData{
		Part:     p.Name,
		Vertices: verts,
		Border:   make([]Edge, len(loop.Order)),
		Flatten:  make([]r3.Vec, len(loop.Polyline)),
		Stats: Stats{
			RawVertices:     len(p.Positions),
			Vertices:        len(verts),
			Faces:           len(p.Faces),
			DegenerateFaces: set.Degenerate,
			Edges:           set.Distinct,
			BoundaryEdges:   len(set.Boundary),
			ReachedEdges:    len(loop.Order),
		},
	}
	for i, ei := range loop.Order {
		d.Border[i] = set.Boundary[ei]
	}
	for i, v := range loop.Polyline {
		d.Flatten[i] = verts[v]
	}
	return d, nil
}
