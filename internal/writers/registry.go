// internal/writers/registry.go
package writers

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"syscall"

	"meshborder/internal/output"
)

// WriteFunc serializes a whole document.
type WriteFunc func(w io.Writer, doc output.Document) error

// Writers is the format registry (format -> encoder). Register in init().
var Writers = map[string]WriteFunc{}

// Register adds or replaces (last wins) the writer for format.
func Register(format string, fn WriteFunc) { Writers[format] = fn }

func init() {
	Register(output.FormatXML, output.WriteXML)
	Register(output.FormatJSON, output.WriteJSON)
	Register(output.FormatText, func(w io.Writer, doc output.Document) error {
		return output.WriteText(w, doc, true)
	})
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(Writers))
	for f := range Writers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Has reports whether a writer is registered for format.
func Has(format string) bool {
	_, ok := Writers[format]
	return ok
}

// Write dispatches to the registered writer.
func Write(format string, w io.Writer, doc output.Document) error {
	fn, ok := Writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, doc)
}

// IsBrokenPipe reports whether err is a broken or closed pipe, as when a
// downstream consumer such as `head` exits early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
