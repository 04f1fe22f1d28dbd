package bendbox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

// WriteOptions control the output of a drawing. Margin is the blank border around the drawing in millimeters, Resolution the dots per millimeter of raster output, and Minify minifies laser SVG output.
type WriteOptions struct {
	Margin     float64
	Resolution float64
	Minify     bool
}

// DefaultWriteOptions are used when passing nil options.
var DefaultWriteOptions = WriteOptions{
	Margin:     5.0,
	Resolution: 10.0,
}

// Size returns the size of the output in millimeters, which is the extent of the primitives plus the margin on every side.
func (d *Drawing) Size(margin float64) (float64, float64) {
	bounds := d.Bounds()
	return bounds.W() + 2.0*margin, bounds.H() + 2.0*margin
}

// Path converts a primitive to a canvas path.
func Path(prim Primitive) *canvas.Path {
	p := &canvas.Path{}
	switch prim := prim.(type) {
	case Line:
		p.MoveTo(prim.Start.X, prim.Start.Y)
		p.LineTo(prim.End.X, prim.End.Y)
	case CubicPath:
		p.MoveTo(prim.Start.X, prim.Start.Y)
		for _, seg := range prim.Segments {
			p.CubeTo(seg.C1.X, seg.C1.Y, seg.C2.X, seg.C2.Y, seg.End.X, seg.End.Y)
		}
	case Rectangle:
		x, y := prim.Origin.X, prim.Origin.Y
		p.MoveTo(x, y)
		p.LineTo(x+prim.W, y)
		p.LineTo(x+prim.W, y+prim.H)
		p.LineTo(x, y+prim.H)
		p.Close()
	case Polygon:
		for i, pt := range prim.Points {
			if i == 0 {
				p.MoveTo(pt.X, pt.Y)
			} else {
				p.LineTo(pt.X, pt.Y)
			}
		}
		p.Close()
	}
	return p
}

// Draw strokes all primitives onto the context, in order, with the y-axis pointing down. The drawing is translated so that its extent starts at (margin,margin).
func (d *Drawing) Draw(ctx *canvas.Context, margin float64) {
	bounds := d.Bounds()
	dx, dy := margin-bounds.X0, margin-bounds.Y0

	ctx.Push()
	ctx.SetCoordSystem(canvas.CartesianIV)
	ctx.SetFillColor(canvas.Transparent)
	for _, prim := range d.Primitives {
		style := prim.Style()
		ctx.SetStrokeColor(style.Color)
		ctx.SetStrokeWidth(style.Width)
		ctx.DrawPath(dx, dy, Path(prim))
	}
	ctx.Pop()
}

// Canvas returns a new canvas sized to the drawing plus margin with the drawing on it.
func (d *Drawing) Canvas(margin float64) *canvas.Canvas {
	c := canvas.New(d.Size(margin))
	d.Draw(canvas.NewContext(c), margin)
	return c
}

// WriteFile writes the drawing to a file, the format is determined by the extension. SVG files are written as laser SVG, keeping every primitive as a separate element; PDF and raster formats go through the canvas renderers.
func (d *Drawing) WriteFile(filename string, opts *WriteOptions) error {
	if opts == nil {
		defaultOptions := DefaultWriteOptions
		opts = &defaultOptions
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".svg":
		f, err := os.Create(filename)
		if err != nil {
			return err
		}
		if err := d.WriteSVG(f, opts); err != nil {
			f.Close()
			return fmt.Errorf("failed to write '%s': %w", filename, err)
		}
		return f.Close()
	case ".pdf", ".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff":
		c := d.Canvas(opts.Margin)
		if err := renderers.Write(filename, c, canvas.DPMM(opts.Resolution)); err != nil {
			return fmt.Errorf("failed to write '%s': %w", filename, err)
		}
		return nil
	default:
		return fmt.Errorf("unknown file extension: %v", ext)
	}
}
