// internal/output/json.go
package output

import (
	"encoding/json"
	"io"

	"meshborder/internal/border"
	"meshborder/pkg/api"
)

// ToAPIBorder converts one border to the stable wire schema (v1).
func ToAPIBorder(section int, d *border.BorderData) api.BorderV1 {
	v := api.BorderV1{
		Section:         SectionName(section),
		Part:            d.Part,
		Vertices:        make([][3]float64, 0, len(d.Vertices)),
		Border:          make([][2]int, 0, len(d.Border)),
		Flatten:         make([][3]float64, 0, len(d.Flatten)),
		BoundaryEdges:   d.Stats.BoundaryEdges,
		ReachedEdges:    d.Stats.ReachedEdges,
		DegenerateFaces: d.Stats.DegenerateFaces,
	}
	for _, p := range d.Vertices {
		v.Vertices = append(v.Vertices, [3]float64{p.X, p.Y, p.Z})
	}
	for _, e := range d.Border {
		v.Border = append(v.Border, [2]int{e.A, e.B})
	}
	for _, p := range d.Flatten {
		v.Flatten = append(v.Flatten, [3]float64{p.X, p.Y, p.Z})
	}
	return v
}

// WriteJSON writes the document as one indented JSON object.
func WriteJSON(w io.Writer, doc Document) error {
	out := api.DocumentV1{Source: doc.Source, Sections: make([]api.BorderV1, 0, len(doc.Borders))}
	for i, d := range doc.Borders {
		out.Sections = append(out.Sections, ToAPIBorder(i, d))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
