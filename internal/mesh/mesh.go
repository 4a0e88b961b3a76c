// Package mesh holds imported triangle geometry and the importers that
// produce it. A Model is a list of independent Parts; every Part owns its
// own position buffer and faces index into that buffer only.
package mesh

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrIndexRange is returned (wrapped) when a face references a position
// outside its part's buffer.
var ErrIndexRange = errors.New("face index out of range")

// Face is a triangle referencing three positions of its part.
// Material is carried through from the importer and never interpreted.
type Face struct {
	A, B, C  int
	Material int
}

// Degenerate reports whether two of the three indices coincide.
func (f Face) Degenerate() bool {
	return f.A == f.B || f.B == f.C || f.A == f.C
}

// Part is one mesh entity of a model.
type Part struct {
	Name      string
	Positions []r3.Vec
	Faces     []Face
}

// Empty reports whether the part has nothing to extract a boundary from.
func (p Part) Empty() bool { return len(p.Positions) == 0 || len(p.Faces) == 0 }

// Validate checks every face index against the position buffer.
func (p Part) Validate() error {
	n := len(p.Positions)
	for i, f := range p.Faces {
		for _, idx := range [3]int{f.A, f.B, f.C} {
			if idx < 0 || idx >= n {
				return fmt.Errorf("part %q face %d: index %d of %d: %w", p.Name, i, idx, n, ErrIndexRange)
			}
		}
	}
	return nil
}

// Model is the importer output: an ordered list of parts.
type Model struct {
	Source string
	Parts  []Part
}

// FaceCount sums faces over all parts.
func (m *Model) FaceCount() int {
	n := 0
	for _, p := range m.Parts {
		n += len(p.Faces)
	}
	return n
}

// ParseError reports malformed importer input. Line is 0 for binary formats.
type ParseError struct {
	Source string
	Line   int
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Msg)
}

func finite(v r3.Vec) bool {
	for _, f := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

// parseVec reads three coordinates from text fields. NaN and Inf are
// rejected: every writer must be able to serialize what was imported.
func parseVec(fields []string) (r3.Vec, error) {
	var xyz [3]float64
	for i, s := range fields[:3] {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return r3.Vec{}, fmt.Errorf("bad coordinate %q", s)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return r3.Vec{}, fmt.Errorf("non-finite coordinate %q", s)
		}
		xyz[i] = f
	}
	return r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}, nil
}
