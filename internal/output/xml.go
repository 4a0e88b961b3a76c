package output

import (
	"encoding/xml"
	"io"
)

// xmlDecl is written by hand: encoding/xml would not break the line after it.
const xmlDecl = `<?xml version="1.0" ?>` + "\n"

// WriteXML writes the legacy build-tool layout:
//
//	<Root>
//	    <Section0>
//	        <Border>   <Border0000>  0,  1</Border0000> ...
//	        <Vertex>   <Vertex0000>    0.0000, ...</Vertex0000> ...
//	        <FlattenVertex> <Vertex0000>...</Vertex0000> ...
//
// Child order and field widths match the files existing content expects.
func WriteXML(w io.Writer, doc Document) error {
	if _, err := io.WriteString(w, xmlDecl); err != nil {
		return err
	}
	x := &xmlTree{enc: xml.NewEncoder(w)}
	x.enc.Indent("", "    ")

	x.open("Root")
	for i, d := range doc.Borders {
		sect := SectionName(i)
		x.open(sect)

		x.open("Border")
		for j, e := range d.Border {
			x.value(Key("Border", j), FormatEdge(e))
		}
		x.close("Border")

		x.open("Vertex")
		for j, v := range d.Vertices {
			x.value(Key("Vertex", j), FormatVertex(v))
		}
		x.close("Vertex")

		x.open("FlattenVertex")
		for j, v := range d.Flatten {
			x.value(Key("Vertex", j), FormatVertex(v))
		}
		x.close("FlattenVertex")

		x.close(sect)
	}
	x.close("Root")

	if x.err != nil {
		return x.err
	}
	if err := x.enc.Flush(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// xmlTree keeps the first encoder error so the layout code above stays flat.
type xmlTree struct {
	enc *xml.Encoder
	err error
}

func (x *xmlTree) token(t xml.Token) {
	if x.err == nil {
		x.err = x.enc.EncodeToken(t)
	}
}

func (x *xmlTree) open(name string) {
	x.token(xml.StartElement{Name: xml.Name{Local: name}})
}

func (x *xmlTree) close(name string) {
	x.token(xml.EndElement{Name: xml.Name{Local: name}})
}

func (x *xmlTree) value(name, text string) {
	x.open(name)
	x.token(xml.CharData(text))
	x.close(name)
}
