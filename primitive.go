package bendbox

import "fmt"

// Layer is the laser operation a primitive belongs to.
type Layer int

// see Layer
const (
	Cut Layer = iota
	Engrave
)

func (l Layer) String() string {
	switch l {
	case Cut:
		return "cut"
	case Engrave:
		return "engrave"
	}
	return fmt.Sprintf("Layer(%d)", int(l))
}

// Style is the presentation of a primitive.
type Style struct {
	Layer Layer
	Color Color
	Width float64
}

// Primitive is a drawing primitive emitted by a layout: a Line, CubicPath, Rectangle or Polygon. Coordinates have the y-axis pointing down.
type Primitive interface {
	Style() Style
	Bounds() Rect
}

// Bounds returns the union of the bounds of all primitives.
func Bounds(prims []Primitive) Rect {
	r := Rect{}
	for _, prim := range prims {
		r = r.Add(prim.Bounds())
	}
	return r
}

////////////////////////////////////////////////////////////////

// Line is a straight line segment.
type Line struct {
	Start, End Point
	Stroke     Style
}

// Style implements Primitive.
func (l Line) Style() Style {
	return l.Stroke
}

// Bounds implements Primitive.
func (l Line) Bounds() Rect {
	return boundsOf(l.Start, l.End)
}

// Translate moves the line by p.
func (l Line) Translate(p Point) Line {
	l.Start = l.Start.Add(p)
	l.End = l.End.Add(p)
	return l
}

// CubeSegment is one cubic Bézier segment, starting at the end of the previous segment.
type CubeSegment struct {
	C1, C2, End Point
}

// CubicPath is a continuous open path of cubic Bézier segments.
type CubicPath struct {
	Start    Point
	Segments []CubeSegment
	Stroke   Style
}

// Style implements Primitive.
func (p CubicPath) Style() Style {
	return p.Stroke
}

// Bounds implements Primitive. It returns the bounds of the control polygon, which contains the curve.
func (p CubicPath) Bounds() Rect {
	r := boundsOf(p.Start)
	for _, seg := range p.Segments {
		r = r.AddPoint(seg.C1).AddPoint(seg.C2).AddPoint(seg.End)
	}
	return r
}

// End returns the end point of the path.
func (p CubicPath) End() Point {
	if len(p.Segments) == 0 {
		return p.Start
	}
	return p.Segments[len(p.Segments)-1].End
}

// Translate moves the path by q.
func (p CubicPath) Translate(q Point) CubicPath {
	segs := make([]CubeSegment, len(p.Segments))
	for i, seg := range p.Segments {
		segs[i] = CubeSegment{seg.C1.Add(q), seg.C2.Add(q), seg.End.Add(q)}
	}
	p.Start = p.Start.Add(q)
	p.Segments = segs
	return p
}

// Rectangle is an axis-aligned rectangle outline with its top-left corner at Origin.
type Rectangle struct {
	Origin Point
	W, H   float64
	Stroke Style
}

// Style implements Primitive.
func (r Rectangle) Style() Style {
	return r.Stroke
}

// Bounds implements Primitive.
func (r Rectangle) Bounds() Rect {
	return boundsOf(r.Origin, r.Origin.Add(Point{r.W, r.H}))
}

// Polygon is a closed polygon outline.
type Polygon struct {
	Points []Point
	Stroke Style
}

// Style implements Primitive.
func (p Polygon) Style() Style {
	return p.Stroke
}

// Bounds implements Primitive.
func (p Polygon) Bounds() Rect {
	return boundsOf(p.Points...)
}

// Translate moves the polygon by q.
func (p Polygon) Translate(q Point) Polygon {
	pts := make([]Point, len(p.Points))
	for i, pt := range p.Points {
		pts[i] = pt.Add(q)
	}
	p.Points = pts
	return p
}
