package border

import "fmt"

const noEdge = -1

// NonManifoldBoundaryError reports a vertex touched by more than two
// boundary edges. Edges holds the two registered edge indices and the one
// that did not fit.
type NonManifoldBoundaryError struct {
	Vertex int
	Edges  [3]int
}

func (e *NonManifoldBoundaryError) Error() string {
	return fmt.Sprintf("non-manifold boundary at vertex %d: boundary edges %d, %d and %d meet there",
		e.Vertex, e.Edges[0], e.Edges[1], e.Edges[2])
}

// Adjacency maps a vertex index to the indices of the boundary edges that
// touch it. Unused slots hold -1.
type Adjacency [][2]int

// BuildAdjacency registers every boundary edge at both of its endpoints,
// first free slot first.
func BuildAdjacency(vertexCount int, edges []Edge) (Adjacency, error) {
	adj := make(Adjacency, vertexCount)
	for v := range adj {
		adj[v] = [2]int{noEdge, noEdge}
	}
	for i, e := range edges {
		for _, v := range [2]int{e.A, e.B} {
			slots := &adj[v]
			switch {
			case slots[0] == noEdge:
				slots[0] = i
			case slots[1] == noEdge:
				slots[1] = i
			default:
				return nil, &NonManifoldBoundaryError{Vertex: v, Edges: [3]int{slots[0], slots[1], i}}
			}
		}
	}
	return adj, nil
}
