package border

import (
	"math"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/spatial/r3"

	"meshborder/internal/mesh"
)

func TestWeldMergesExactDuplicates(t *testing.T) {
	p := unweld(squarePart())
	if len(p.Positions) != 6 {
		t.Fatalf("fixture: want 6 raw positions, got %d", len(p.Positions))
	}
	verts, faces := Weld(p.Positions, p.Faces)
	if len(verts) != 4 {
		t.Fatalf("want 4 welded vertices, got %d", len(verts))
	}
	want := []mesh.Face{tri(0, 1, 2), tri(0, 2, 3)}
	if !reflect.DeepEqual(faces, want) {
		t.Errorf("faces = %v, want %v", faces, want)
	}
}

func TestWeldIsIdempotent(t *testing.T) {
	p := unweld(fanPart(7))
	v1, f1 := Weld(p.Positions, p.Faces)
	v2, f2 := Weld(v1, f1)
	if !reflect.DeepEqual(v1, v2) || !reflect.DeepEqual(f1, f2) {
		t.Fatalf("second Weld changed the data:\n%v %v\n%v %v", v1, f1, v2, f2)
	}
}

func TestWeldHasNoTolerance(t *testing.T) {
	next := math.Nextafter(1, 2)
	pos := []r3.Vec{vec(1, 0, 0), vec(next, 0, 0), vec(0, 0, 0), vec(math.Copysign(0, -1), 0, 0)}
	faces := []mesh.Face{tri(0, 1, 2), tri(0, 1, 3)}
	verts, _ := Weld(pos, faces)
	if len(verts) != 4 {
		t.Fatalf("near-equal and signed-zero positions must stay distinct; got %d vertices", len(verts))
	}
}

func TestWeldDropsUnreferencedAndKeepsMaterial(t *testing.T) {
	pos := []r3.Vec{vec(9, 9, 9), vec(0, 0, 0), vec(1, 0, 0), vec(0, 1, 0)}
	faces := []mesh.Face{{A: 3, B: 1, C: 2, Material: 7}}
	verts, out := Weld(pos, faces)
	if len(verts) != 3 {
		t.Fatalf("want 3 vertices, got %d", len(verts))
	}
	if verts[0] != vec(0, 1, 0) {
		t.Errorf("first vertex should be the first referenced one, got %v", verts[0])
	}
	if out[0] != (mesh.Face{A: 0, B: 1, C: 2, Material: 7}) {
		t.Errorf("face = %+v", out[0])
	}
}
