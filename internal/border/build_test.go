package border

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"meshborder/internal/mesh"
)

func mustBuild(t *testing.T, p mesh.Part) *BorderData {
	t.Helper()
	d, err := Build(p)
	if err != nil {
		t.Fatalf("Build(%s): %v", p.Name, err)
	}
	return d
}

func TestBuildSquare(t *testing.T) {
	d := mustBuild(t, unweld(squarePart()))
	if d == nil {
		t.Fatal("want border data for an open square")
	}
	if len(d.Vertices) != 4 || len(d.Border) != 4 || len(d.Flatten) != 4 {
		t.Fatalf("vertices/border/flatten = %d/%d/%d, want 4/4/4", len(d.Vertices), len(d.Border), len(d.Flatten))
	}
	wantBorder := []Edge{{0, 1}, {0, 3}, {2, 3}, {1, 2}}
	if !reflect.DeepEqual(d.Border, wantBorder) {
		t.Errorf("border = %v, want %v", d.Border, wantBorder)
	}
	wantFlat := []r3.Vec{vec(1, 0, 0), vec(0, 0, 0), vec(0, 1, 0), vec(1, 1, 0)}
	if !reflect.DeepEqual(d.Flatten, wantFlat) {
		t.Errorf("flatten = %v, want %v", d.Flatten, wantFlat)
	}
	if d.Stats.RawVertices != 6 || d.Stats.Edges != 5 || d.Stats.Unreached() != 0 {
		t.Errorf("stats = %+v", d.Stats)
	}
	if p := d.Perimeter(); math.Abs(p-4) > 1e-12 {
		t.Errorf("perimeter = %v, want 4", p)
	}
}

func TestBuildClosedMeshHasNoBorder(t *testing.T) {
	d := mustBuild(t, tetraPart())
	if d != nil {
		t.Fatalf("tetrahedron is closed; got %+v", d)
	}
}

func TestBuildEmptyParts(t *testing.T) {
	for _, p := range []mesh.Part{
		{Name: "nothing"},
		{Name: "no faces", Positions: []r3.Vec{vec(0, 0, 0)}},
		{Name: "no positions", Faces: []mesh.Face{tri(0, 1, 2)}},
	} {
		if d := mustBuild(t, p); d != nil {
			t.Errorf("%s: want nil, got %+v", p.Name, d)
		}
	}
}

func TestBuildReportsSeedComponentOnly(t *testing.T) {
	d := mustBuild(t, twoTrianglesPart())
	if d.Stats.BoundaryEdges != 6 {
		t.Fatalf("found %d boundary edges, want 6", d.Stats.BoundaryEdges)
	}
	if len(d.Border) != 3 || len(d.Flatten) != 3 || d.Stats.Unreached() != 3 {
		t.Fatalf("border/flatten/unreached = %d/%d/%d, want 3/3/3", len(d.Border), len(d.Flatten), d.Stats.Unreached())
	}
	for _, e := range d.Border {
		if e.A > 2 || e.B > 2 {
			t.Errorf("edge %v belongs to the second triangle", e)
		}
	}
	if len(d.Vertices) != 6 {
		t.Errorf("vertex buffer keeps all welded vertices; got %d", len(d.Vertices))
	}
}

func TestBuildDiscLoopIsClosed(t *testing.T) {
	for _, n := range []int{3, 4, 6, 11} {
		p := fanPart(n)
		d := mustBuild(t, p)
		if len(d.Border) != n || len(d.Flatten) != n {
			t.Fatalf("n=%d: border=%d flatten=%d", n, len(d.Border), len(d.Flatten))
		}
		// consecutive polyline vertices, closing pair included, are boundary edges
		index := make(map[r3.Vec]int, len(d.Vertices))
		for i, v := range d.Vertices {
			index[v] = i
		}
		edges := make(map[Edge]bool, n)
		for _, e := range d.Border {
			if e.A < 0 || e.B >= len(d.Vertices) {
				t.Fatalf("n=%d: edge %v out of range", n, e)
			}
			edges[e] = true
		}
		for i := range d.Flatten {
			a, b := index[d.Flatten[i]], index[d.Flatten[(i+1)%n]]
			if !edges[NewEdge(a, b)] {
				t.Errorf("n=%d: polyline step %d->%d is not a boundary edge", n, a, b)
			}
		}
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	p := unweld(fanPart(9))
	first := mustBuild(t, p)
	for i := 0; i < 20; i++ {
		if again := mustBuild(t, p); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs", i)
		}
	}
}

func TestBuildNonManifoldFailsPart(t *testing.T) {
	_, err := Build(bowtiePart())
	var nm *NonManifoldBoundaryError
	if !errors.As(err, &nm) {
		t.Fatalf("want NonManifoldBoundaryError, got %v", err)
	}
}

func TestBuildRejectsBadIndex(t *testing.T) {
	p := squarePart()
	p.Faces = append(p.Faces, tri(0, 1, 9))
	if _, err := Build(p); !errors.Is(err, mesh.ErrIndexRange) {
		t.Fatalf("want ErrIndexRange, got %v", err)
	}
}
