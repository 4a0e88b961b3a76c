package border

import "meshborder/internal/mesh"

// Edge is an undirected edge in canonical form: A <= B.
type Edge struct {
	A, B int
}

// NewEdge canonicalizes the pair (a, b).
func NewEdge(a, b int) Edge {
	if a > b {
		a, b = b, a
	}
	return Edge{A: a, B: b}
}

// Other returns the endpoint that is not v.
func (e Edge) Other(v int) int {
	if v == e.A {
		return e.B
	}
	return e.A
}

// EdgeSet is the outcome of classifying a face list.
type EdgeSet struct {
	// Boundary holds every edge used by exactly one face, in the order the
	// edges were first seen. Downstream code refers to entries by index.
	Boundary []Edge

	Distinct   int // distinct canonical edges
	Degenerate int // faces skipped for repeating an index
}

// ClassifyEdges counts the canonical edges (A,B), (B,C) and (A,C) of every
// face and keeps those counted exactly once. Faces with a repeated index add
// no edges.
func ClassifyEdges(faces []mesh.Face) EdgeSet {
	var set EdgeSet
	usage := make(map[Edge]int, len(faces)*3/2)
	order := make([]Edge, 0, len(faces)*3/2)

	for _, f := range faces {
		if f.Degenerate() {
			set.Degenerate++
			continue
		}
		for _, e := range [3]Edge{NewEdge(f.A, f.B), NewEdge(f.B, f.C), NewEdge(f.A, f.C)} {
			n, ok := usage[e]
			if !ok {
				order = append(order, e)
			}
			usage[e] = n + 1
		}
	}

	set.Distinct = len(order)
	for _, e := range order {
		if usage[e] == 1 {
			set.Boundary = append(set.Boundary, e)
		}
	}
	return set
}
