// pkg/api/border_v1.go
package api

// DocumentV1 is the stable JSON schema for one build output.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type DocumentV1 struct {
	Source   string     `json:"source"`
	Sections []BorderV1 `json:"sections"`
}

// BorderV1 is one extracted boundary. Border pairs index into Vertices.
type BorderV1 struct {
	Section         string       `json:"section"`
	Part            string       `json:"part"`
	Vertices        [][3]float64 `json:"vertices"`
	Border          [][2]int     `json:"border"`
	Flatten         [][3]float64 `json:"flatten_vertices"`
	BoundaryEdges   int          `json:"boundary_edges"` // found, all components
	ReachedEdges    int          `json:"reached_edges"`  // reported, seed component
	DegenerateFaces int          `json:"degenerate_faces,omitempty"`
}
