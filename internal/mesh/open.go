package mesh

import (
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Importer formats.
const (
	FormatOBJ = "obj"
	FormatSTL = "stl"
)

// ErrUnknownFormat is returned when no importer matches.
var ErrUnknownFormat = errors.New("unknown mesh format")

// Open returns a reader for path. "-" is stdin; a ".gz" suffix is
// decompressed transparently.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, err
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}
	return fh, nil
}

// FormatFromPath guesses the importer from the file extension, ignoring a
// trailing ".gz".
func FormatFromPath(path string) string {
	path = strings.TrimSuffix(path, ".gz")
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// Load opens path and runs the importer for format. An empty format is
// inferred from the extension; stdin requires an explicit one.
func Load(path, format string) (*Model, error) {
	if format == "" {
		format = FormatFromPath(path)
	}
	var load func(io.Reader, string) (*Model, error)
	switch format {
	case FormatOBJ:
		load = LoadOBJ
	case FormatSTL:
		load = LoadSTL
	default:
		return nil, fmt.Errorf("%s: %w %q", path, ErrUnknownFormat, format)
	}

	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return load(rc, partName(path))
}

// partName is the default part name: the base file name without extensions.
func partName(path string) string {
	if path == "-" {
		return "stdin"
	}
	base := filepath.Base(strings.TrimSuffix(path, ".gz"))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
