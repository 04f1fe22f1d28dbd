package bendbox

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for floating point comparisons of coordinates.
var Epsilon = 1e-10

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Degrees converts an angle in radians to degrees.
func Degrees(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// Radians converts an angle in degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space. The y-axis points down, as in SVG.
type Point struct {
	X, Y float64
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("[%g; %g]", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Rect is an axis-aligned bounding box. The zero value is empty and absorbs nothing when added.
type Rect struct {
	X0, Y0, X1, Y1 float64
	valid          bool
}

func boundsOf(ps ...Point) Rect {
	r := Rect{}
	for _, p := range ps {
		r = r.AddPoint(p)
	}
	return r
}

// Empty returns true if no point has been added to the rectangle.
func (r Rect) Empty() bool {
	return !r.valid
}

// W returns the width.
func (r Rect) W() float64 {
	return r.X1 - r.X0
}

// H returns the height.
func (r Rect) H() float64 {
	return r.Y1 - r.Y0
}

// AddPoint extends the rectangle to include p.
func (r Rect) AddPoint(p Point) Rect {
	if !r.valid {
		return Rect{p.X, p.Y, p.X, p.Y, true}
	}
	r.X0 = math.Min(r.X0, p.X)
	r.Y0 = math.Min(r.Y0, p.Y)
	r.X1 = math.Max(r.X1, p.X)
	r.Y1 = math.Max(r.Y1, p.Y)
	return r
}

// Add returns the union of both rectangles. Degenerate (zero width or height) rectangles are kept, since a vertical slit has zero width.
func (r Rect) Add(q Rect) Rect {
	if !q.valid {
		return r
	} else if !r.valid {
		return q
	}
	return r.AddPoint(Point{q.X0, q.Y0}).AddPoint(Point{q.X1, q.Y1})
}

// Move translates the rectangle by p.
func (r Rect) Move(p Point) Rect {
	if !r.valid {
		return r
	}
	r.X0 += p.X
	r.Y0 += p.Y
	r.X1 += p.X
	r.Y1 += p.Y
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("[%g; %g]--[%g; %g]", r.X0, r.Y0, r.X1, r.Y1)
}
