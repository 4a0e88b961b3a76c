// Package preview draws extracted boundary polylines into a PNG so a build
// log can be eyeballed without loading the asset into the engine.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"gonum.org/v1/gonum/spatial/r3"

	"meshborder/internal/border"
)

// Projection planes.
const (
	PlaneXY = "xy"
	PlaneXZ = "xz"
	PlaneYZ = "yz"
)

// Options controls the canvas.
type Options struct {
	Size      int     // square canvas edge in pixels; 512 if zero
	Margin    int     // empty border in pixels; 24 if zero
	LineWidth float64 // stroke width in pixels; 2 if zero
	Plane     string  // PlaneXY if empty
	Labels    bool    // write section names next to each outline
}

var DefaultOptions = Options{Size: 512, Margin: 24, LineWidth: 2, Plane: PlaneXY, Labels: true}

var palette = []color.RGBA{
	{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
}

func (o Options) withDefaults() Options {
	if o.Size <= 0 {
		o.Size = 512
	}
	if o.Margin <= 0 {
		o.Margin = 24
	}
	if o.LineWidth <= 0 {
		o.LineWidth = 2
	}
	if o.Plane == "" {
		o.Plane = PlaneXY
	}
	return o
}

// ValidPlane reports whether p names a projection plane.
func ValidPlane(p string) bool {
	return p == PlaneXY || p == PlaneXZ || p == PlaneYZ
}

func project(v r3.Vec, plane string) (float64, float64) {
	switch plane {
	case PlaneXZ:
		return v.X, v.Z
	case PlaneYZ:
		return v.Y, v.Z
	default:
		return v.X, v.Y
	}
}

// Draw renders every border's closed polyline onto a new image. All
// outlines share one fit-to-canvas transform so relative placement is kept.
func Draw(borders []*border.BorderData, opt Options) (*image.RGBA, error) {
	opt = opt.withDefaults()
	if !ValidPlane(opt.Plane) {
		return nil, fmt.Errorf("preview: unknown plane %q", opt.Plane)
	}
	if 2*opt.Margin >= opt.Size {
		return nil, fmt.Errorf("preview: margin %d leaves no room on a %dpx canvas", opt.Margin, opt.Size)
	}

	img := image.NewRGBA(image.Rect(0, 0, opt.Size, opt.Size))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, d := range borders {
		for _, v := range d.Flatten {
			x, y := project(v, opt.Plane)
			minX, maxX = math.Min(minX, x), math.Max(maxX, x)
			minY, maxY = math.Min(minY, y), math.Max(maxY, y)
		}
	}
	if math.IsInf(minX, 1) {
		return img, nil
	}

	span := math.Max(maxX-minX, maxY-minY)
	scale := 1.0
	if span > 0 {
		scale = float64(opt.Size-2*opt.Margin) / span
	}
	toCanvas := func(v r3.Vec) (float32, float32) {
		x, y := project(v, opt.Plane)
		cx := float64(opt.Margin) + (x-minX)*scale
		cy := float64(opt.Size-opt.Margin) - (y-minY)*scale // image y grows downward
		return float32(cx), float32(cy)
	}

	z := vector.NewRasterizer(opt.Size, opt.Size)
	half := float32(opt.LineWidth / 2)
	for i, d := range borders {
		n := len(d.Flatten)
		if n < 2 {
			continue
		}
		z.Reset(opt.Size, opt.Size)
		for k := 0; k < n; k++ {
			ax, ay := toCanvas(d.Flatten[k])
			bx, by := toCanvas(d.Flatten[(k+1)%n])
			segment(z, ax, ay, bx, by, half)
		}
		col := palette[i%len(palette)]
		z.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})

		if opt.Labels {
			x, y := toCanvas(d.Flatten[0])
			label(img, int(x)+4, int(y)-4, fmt.Sprintf("Section%d %s", i, d.Part), col)
		}
	}
	return img, nil
}

// Render draws and PNG-encodes to w.
func Render(w io.Writer, borders []*border.BorderData, opt Options) error {
	img, err := Draw(borders, opt)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// segment adds a stroked line as a filled quad. All quads share one
// orientation so overlaps at joints never cancel out.
func segment(z *vector.Rasterizer, ax, ay, bx, by, half float32) {
	dx, dy := bx-ax, by-ay
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*half, dx/l*half
	z.MoveTo(ax+nx, ay+ny)
	z.LineTo(bx+nx, by+ny)
	z.LineTo(bx-nx, by-ny)
	z.LineTo(ax-nx, ay-ny)
	z.ClosePath()
}

func label(dst draw.Image, x, y int, s string, col color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
