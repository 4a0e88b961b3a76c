package output

import (
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	"meshborder/internal/border"
)

// Output formats.
const (
	FormatXML  = "xml"
	FormatJSON = "json"
	FormatText = "text"
)

// Document is what every writer serializes: the borders of one source, in
// part order, parts without a border already left out.
type Document struct {
	Source  string
	Borders []*border.BorderData
}

// SectionName numbers emitted sections from zero.
func SectionName(i int) string { return "Section" + strconv.Itoa(i) }

// Key formats an entry name: a prefix and a zero-padded 4-digit ordinal.
func Key(prefix string, i int) string { return fmt.Sprintf("%s%04d", prefix, i) }

// FormatVertex renders a position as three fixed-point fields, 4 decimals,
// right-aligned in width 10.
func FormatVertex(v r3.Vec) string {
	return fmt.Sprintf("%10.4f,%10.4f,%10.4f", v.X, v.Y, v.Z)
}

// FormatEdge renders an edge as two right-aligned width-3 integers.
func FormatEdge(e border.Edge) string {
	return fmt.Sprintf("%3d,%3d", e.A, e.B)
}
