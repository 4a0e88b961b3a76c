// internal/output/text.go
package output

import (
	"fmt"
	"io"
)

// TextHeader is the header row of the text summary.
const TextHeader = "section\tpart\tvertices\tborder\tflatten\tfound\tperimeter"

// WriteText prints one tab-separated summary row per section.
func WriteText(w io.Writer, doc Document, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TextHeader); err != nil {
			return err
		}
	}
	for i, d := range doc.Borders {
		_, err := fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%d\t%.4f\n",
			SectionName(i), d.Part,
			len(d.Vertices), len(d.Border), len(d.Flatten),
			d.Stats.BoundaryEdges, d.Perimeter(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
