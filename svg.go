package bendbox

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"

	svgo "github.com/ajstarks/svgo/float"
	"github.com/tdewolff/minify/v2"
	minifySVG "github.com/tdewolff/minify/v2/svg"
)

// Precision is the number of decimals of coordinates in laser SVG output.
var Precision = 3

// WriteSVG writes the drawing as an SVG document in millimeters for laser software. Every primitive is written as its own element (line, rect, path or polygon) with an explicit stroke color and no fill, grouped by layer in the groups "cut" and "engrave".
func (d *Drawing) WriteSVG(w io.Writer, opts *WriteOptions) error {
	if opts == nil {
		defaultOptions := DefaultWriteOptions
		opts = &defaultOptions
	}
	if !opts.Minify {
		return d.writeSVG(w, opts.Margin)
	}

	buf := &bytes.Buffer{}
	if err := d.writeSVG(buf, opts.Margin); err != nil {
		return err
	}
	m := minify.New()
	m.AddFunc("image/svg+xml", minifySVG.Minify)
	return m.Minify("image/svg+xml", w, buf)
}

func (d *Drawing) writeSVG(w io.Writer, margin float64) error {
	ew := &errWriter{w: w}
	bounds := d.Bounds()
	width, height := d.Size(margin)

	s := svgo.New(ew)
	s.StartviewUnit(round(width), round(height), "mm", round(bounds.X0-margin), round(bounds.Y0-margin), round(width), round(height))
	s.Title("bendbox")
	for _, layer := range []Layer{Cut, Engrave} {
		prims := d.Layer(layer)
		if len(prims) == 0 {
			continue
		}
		s.Gid(layer.String())
		for _, prim := range prims {
			writeSVGPrimitive(s, prim)
		}
		s.Gend()
	}
	s.End()
	return ew.err
}

func writeSVGPrimitive(s *svgo.SVG, prim Primitive) {
	style := svgStyle(prim.Style())
	switch prim := prim.(type) {
	case Line:
		s.Line(round(prim.Start.X), round(prim.Start.Y), round(prim.End.X), round(prim.End.Y), style)
	case Rectangle:
		s.Rect(round(prim.Origin.X), round(prim.Origin.Y), round(prim.W), round(prim.H), style)
	case CubicPath:
		s.Path(Path(roundCubic(prim)).ToSVG(), style)
	case Polygon:
		xs := make([]float64, len(prim.Points))
		ys := make([]float64, len(prim.Points))
		for i, p := range prim.Points {
			xs[i], ys[i] = round(p.X), round(p.Y)
		}
		s.Polygon(xs, ys, style)
	}
}

func roundPoint(p Point) Point {
	return Point{round(p.X), round(p.Y)}
}

func roundCubic(p CubicPath) CubicPath {
	segs := make([]CubeSegment, len(p.Segments))
	for i, seg := range p.Segments {
		segs[i] = CubeSegment{roundPoint(seg.C1), roundPoint(seg.C2), roundPoint(seg.End)}
	}
	p.Start = roundPoint(p.Start)
	p.Segments = segs
	return p
}

func svgStyle(style Style) string {
	return fmt.Sprintf("fill:none;stroke:%s;stroke-width:%s", style.Color.Hex(), num(style.Width))
}

func round(f float64) float64 {
	p := math.Pow10(Precision)
	return math.Round(f*p) / p
}

func num(f float64) string {
	return strconv.FormatFloat(round(f), 'f', -1, 64)
}

// errWriter keeps the first write error, since the SVG builder does not return errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}
