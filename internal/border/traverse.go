package border

type edgeState uint8

const (
	unvisited edgeState = iota
	queued
	visited
)

// Loop is the walk over one boundary component.
type Loop struct {
	Order    []int // boundary-edge indices in visitation order
	Polyline []int // vertex indices in geometric order
}

// Traverse walks the boundary breadth-first from edges[0].
//
// For each dequeued edge the smaller endpoint is tried first and the larger
// one only if the smaller yields nothing; at an endpoint the first slot
// holding an edge that is neither the current one nor already queued wins,
// and the scan stops there. Every expansion appends the shared vertex to the
// polyline; the very first one is preceded by the seed's far endpoint, so a
// closed loop of N edges yields N vertices.
//
// Edges unreachable from edges[0] stay unvisited and are left out.
func Traverse(edges []Edge, adj Adjacency) Loop {
	var l Loop
	if len(edges) == 0 {
		return l
	}

	state := make([]edgeState, len(edges))
	queue := []int{0}
	state[0] = queued
	first := true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		state[cur] = visited
		l.Order = append(l.Order, cur)

		e := edges[cur]
		for _, v := range [2]int{e.A, e.B} {
			next, ok := nextEdge(adj[v], cur, state)
			if !ok {
				continue
			}
			state[next] = queued
			queue = append(queue, next)
			if first {
				l.Polyline = append(l.Polyline, e.Other(v))
				first = false
			}
			l.Polyline = append(l.Polyline, v)
			break
		}
	}
	return l
}

func nextEdge(slots [2]int, cur int, state []edgeState) (int, bool) {
	for _, s := range slots {
		if s != noEdge && s != cur && state[s] == unvisited {
			return s, true
		}
	}
	return 0, false
}
