package mesh

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	stlHeaderSize = 80
	stlRecordSize = 50
)

// LoadSTL reads a binary or ASCII STL stream. STL stores every triangle
// with its own three corners, so positions come out unwelded: three per face.
// An ASCII file yields one part per "solid" block; a binary file one part.
func LoadSTL(r io.Reader, name string) (*Model, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	ascii := bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte("solid"))

	if len(data) >= stlHeaderSize+4 {
		n := uint64(binary.LittleEndian.Uint32(data[stlHeaderSize:]))
		want := uint64(stlHeaderSize+4) + n*stlRecordSize
		size := uint64(len(data))
		// Exporters routinely write "solid" into binary headers, so an exact
		// size match wins over the prefix.
		switch {
		case size == want || (!ascii && size > want):
			return parseBinarySTL(data, int(n), name)
		case size > want:
			// "solid" header plus trailing padding: binary if it is not ASCII.
			m, err := parseASCIISTL(data, name)
			if err == nil {
				return m, nil
			}
			if bm, berr := parseBinarySTL(data, int(n), name); berr == nil {
				return bm, nil
			}
			return nil, err
		}
	}
	if ascii {
		return parseASCIISTL(data, name)
	}
	return nil, &ParseError{Source: name, Msg: "not an STL file (truncated binary or missing \"solid\")"}
}

func parseBinarySTL(data []byte, n int, name string) (*Model, error) {
	p := Part{
		Name:      name,
		Positions: make([]r3.Vec, 0, 3*n),
		Faces:     make([]Face, 0, n),
	}
	off := stlHeaderSize + 4
	for i := 0; i < n; i++ {
		rec := data[off : off+stlRecordSize]
		var tri r3.Triangle
		for k := range tri {
			base := 12 + 12*k // skip the facet normal
			tri[k] = r3.Vec{
				X: float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[base:]))),
				Y: float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[base+4:]))),
				Z: float64(math.Float32frombits(binary.LittleEndian.Uint32(rec[base+8:]))),
			}
		}
		for _, v := range tri {
			if !finite(v) {
				return nil, &ParseError{Source: name, Msg: fmt.Sprintf("triangle %d: non-finite coordinate", i)}
			}
		}
		p.addTriangle(tri, int(binary.LittleEndian.Uint16(rec[48:])))
		off += stlRecordSize
	}
	return &Model{Source: name, Parts: []Part{p}}, nil
}

func parseASCIISTL(data []byte, name string) (*Model, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	m := &Model{Source: name}
	var (
		cur     *Part
		corners []r3.Vec
		line    int
	)
	perr := func(format string, a ...any) error {
		return &ParseError{Source: name, Line: line, Msg: fmt.Sprintf(format, a...)}
	}
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "solid":
			if cur != nil {
				return nil, perr("nested solid")
			}
			pname := name
			if len(fields) > 1 {
				pname = strings.Join(fields[1:], " ")
			}
			m.Parts = append(m.Parts, Part{Name: pname})
			cur = &m.Parts[len(m.Parts)-1]
		case "endsolid":
			if cur == nil {
				return nil, perr("endsolid without solid")
			}
			cur = nil
		case "outer":
			corners = corners[:0]
		case "vertex":
			if cur == nil {
				return nil, perr("vertex outside solid")
			}
			if len(fields) != 4 {
				return nil, perr("vertex needs 3 coordinates, found %d", len(fields)-1)
			}
			v, err := parseVec(fields[1:])
			if err != nil {
				return nil, perr("%v", err)
			}
			corners = append(corners, v)
		case "endloop":
			if cur == nil {
				return nil, perr("endloop outside solid")
			}
			if len(corners) != 3 {
				return nil, perr("facet has %d vertices, want 3", len(corners))
			}
			cur.addTriangle(r3.Triangle{corners[0], corners[1], corners[2]}, 0)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if cur != nil {
		return nil, perr("missing endsolid")
	}
	return m, nil
}

func (p *Part) addTriangle(t r3.Triangle, material int) {
	base := len(p.Positions)
	p.Positions = append(p.Positions, t[0], t[1], t[2])
	p.Faces = append(p.Faces, Face{A: base, B: base + 1, C: base + 2, Material: material})
}
