// Package border extracts the open boundary of a triangle mesh part and
// orders it into a loop.
//
// The work runs in five stages, each usable on its own:
//
//	Weld           merge coincident positions and remap faces
//	ClassifyEdges  count canonical undirected edges; count==1 is boundary
//	BuildAdjacency vertex -> at most two boundary edges
//	Traverse       breadth-first walk from boundary edge 0
//	Build          run all of the above for one mesh.Part
//
// Vertex identity is exact. Two positions merge only when all three
// components have the same IEEE-754 bit pattern; there is no tolerance.
// Callers that want near-duplicates merged must quantize positions before
// calling Weld. Changing this changes output topology.
//
// Only the boundary component that contains the seed edge is reported.
// Boundary edges in other components are counted in Stats.BoundaryEdges
// but never appear in BorderData.Border or BorderData.Flatten.
//
// The package is pure: no I/O, no logging, no shared state. It never imports
// pipeline, output, writers, cli or app.
package border
