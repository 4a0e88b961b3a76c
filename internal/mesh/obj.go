package mesh

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

type objGroup struct {
	name  string
	faces []Face // indices into the file-global position list
}

// LoadOBJ reads a Wavefront OBJ stream. Each "o" or "g" statement opens a new
// part; polygons are fan-triangulated from their first vertex. Only positions
// are kept: texture and normal references in face tokens are ignored.
func LoadOBJ(r io.Reader, name string) (*Model, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var (
		positions []r3.Vec
		groups    []objGroup
		materials = map[string]int{}
		material  int
		line      int
	)
	perr := func(format string, a ...any) error {
		return &ParseError{Source: name, Line: line, Msg: fmt.Sprintf(format, a...)}
	}

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || text[0] == '#' {
			continue
		}
		fields := strings.Fields(text)
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, perr("vertex needs 3 coordinates, found %d", len(fields)-1)
			}
			v, err := parseVec(fields[1:])
			if err != nil {
				return nil, perr("%v", err)
			}
			positions = append(positions, v)

		case "f":
			if len(fields) < 4 {
				return nil, perr("face needs at least 3 vertices, found %d", len(fields)-1)
			}
			idx := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				i, err := objIndex(tok, len(positions))
				if err != nil {
					return nil, perr("%v", err)
				}
				idx = append(idx, i)
			}
			if len(groups) == 0 {
				groups = append(groups, objGroup{name: name})
			}
			g := &groups[len(groups)-1]
			for j := 1; j+1 < len(idx); j++ {
				g.faces = append(g.faces, Face{A: idx[0], B: idx[j], C: idx[j+1], Material: material})
			}

		case "o", "g":
			gname := name
			if len(fields) > 1 {
				gname = strings.Join(fields[1:], " ")
			}
			// A group statement right after another one renames instead of
			// leaving an empty part behind.
			if n := len(groups); n > 0 && len(groups[n-1].faces) == 0 {
				groups[n-1].name = gname
			} else {
				groups = append(groups, objGroup{name: gname})
			}

		case "usemtl":
			key := ""
			if len(fields) > 1 {
				key = fields[1]
			}
			id, ok := materials[key]
			if !ok {
				id = len(materials)
				materials[key] = id
			}
			material = id
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	m := &Model{Source: name}
	for _, g := range groups {
		m.Parts = append(m.Parts, g.compact(positions))
	}
	return m, nil
}

// compact gives the group its own position buffer holding only the
// positions its faces use, in first-use order.
func (g objGroup) compact(positions []r3.Vec) Part {
	p := Part{Name: g.name, Faces: make([]Face, 0, len(g.faces))}
	local := make(map[int]int)
	remap := func(i int) int {
		if j, ok := local[i]; ok {
			return j
		}
		j := len(p.Positions)
		local[i] = j
		p.Positions = append(p.Positions, positions[i])
		return j
	}
	for _, f := range g.faces {
		p.Faces = append(p.Faces, Face{A: remap(f.A), B: remap(f.B), C: remap(f.C), Material: f.Material})
	}
	return p
}

// objIndex resolves a face token ("7", "7/1", "7//3", "-1/2/3") against the
// number of positions read so far.
func objIndex(tok string, count int) (int, error) {
	if k := strings.IndexByte(tok, '/'); k >= 0 {
		tok = tok[:k]
	}
	i, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("bad face index %q", tok)
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += count
	default:
		return 0, fmt.Errorf("face index 0 is invalid")
	}
	if i < 0 || i >= count {
		return 0, fmt.Errorf("face index %s refers to vertex %d of %d", tok, i+1, count)
	}
	return i, nil
}
