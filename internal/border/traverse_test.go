package border

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildAdjacency(t *testing.T) {
	set := ClassifyEdges(squarePart().Faces)
	adj, err := BuildAdjacency(4, set.Boundary)
	if err != nil {
		t.Fatalf("BuildAdjacency: %v", err)
	}
	want := Adjacency{{0, 3}, {0, 1}, {1, 2}, {2, 3}}
	if !reflect.DeepEqual(adj, want) {
		t.Fatalf("adjacency = %v, want %v", adj, want)
	}
}

func TestBuildAdjacencyNonManifold(t *testing.T) {
	set := ClassifyEdges(bowtiePart().Faces)
	_, err := BuildAdjacency(5, set.Boundary)
	var nm *NonManifoldBoundaryError
	if !errors.As(err, &nm) {
		t.Fatalf("want NonManifoldBoundaryError, got %v", err)
	}
	if nm.Vertex != 0 {
		t.Errorf("vertex = %d, want 0", nm.Vertex)
	}
	if nm.Edges != [3]int{0, 2, 3} {
		t.Errorf("edges = %v, want [0 2 3]", nm.Edges)
	}
}

func TestTraverseSquare(t *testing.T) {
	set := ClassifyEdges(squarePart().Faces)
	adj, err := BuildAdjacency(4, set.Boundary)
	if err != nil {
		t.Fatal(err)
	}
	loop := Traverse(set.Boundary, adj)
	if want := []int{0, 3, 2, 1}; !reflect.DeepEqual(loop.Order, want) {
		t.Errorf("order = %v, want %v", loop.Order, want)
	}
	if want := []int{1, 0, 3, 2}; !reflect.DeepEqual(loop.Polyline, want) {
		t.Errorf("polyline = %v, want %v", loop.Polyline, want)
	}
}

func TestTraverseStopsAtSeedComponent(t *testing.T) {
	set := ClassifyEdges(twoTrianglesPart().Faces)
	adj, err := BuildAdjacency(6, set.Boundary)
	if err != nil {
		t.Fatal(err)
	}
	loop := Traverse(set.Boundary, adj)
	if want := []int{0, 2, 1}; !reflect.DeepEqual(loop.Order, want) {
		t.Errorf("order = %v, want %v", loop.Order, want)
	}
	if want := []int{1, 0, 2}; !reflect.DeepEqual(loop.Polyline, want) {
		t.Errorf("polyline = %v, want %v", loop.Polyline, want)
	}
}

func TestTraverseEmpty(t *testing.T) {
	loop := Traverse(nil, nil)
	if len(loop.Order) != 0 || len(loop.Polyline) != 0 {
		t.Fatalf("want empty loop, got %+v", loop)
	}
}

func TestTraverseOpenChain(t *testing.T) {
	// a path 0-1-2 whose ends have a single boundary edge each
	edges := []Edge{{0, 1}, {1, 2}}
	adj, err := BuildAdjacency(3, edges)
	if err != nil {
		t.Fatal(err)
	}
	loop := Traverse(edges, adj)
	if want := []int{0, 1}; !reflect.DeepEqual(loop.Order, want) {
		t.Errorf("order = %v, want %v", loop.Order, want)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(loop.Polyline, want) {
		t.Errorf("polyline = %v, want %v", loop.Polyline, want)
	}
}
