package bendbox

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Face is a trapezoidal side face of a box, such as a truncated pyramid. Its top edge runs from (0,0) to (TopWidth,0) and its bottom edge is centered below it, shifted right by BottomShift.
type Face struct {
	TopWidth, BottomWidth float64
	Height                float64
	BottomShift           float64
}

// Vertices returns the corners in the order top-right, top-left, bottom-left, bottom-right.
func (f Face) Vertices() [4]Point {
	left := (f.TopWidth-f.BottomWidth)/2.0 + f.BottomShift
	return [4]Point{
		{f.TopWidth, 0.0},
		{0.0, 0.0},
		{left, f.Height},
		{left + f.BottomWidth, f.Height},
	}
}

// SideAngles returns the signed tilt of the left and right side relative to vertical, in radians. A side leaning towards +x has a positive tilt.
func (f Face) SideAngles() (float64, float64) {
	v := f.Vertices()
	l := v[2].Sub(v[1])
	r := v[3].Sub(v[0])
	return math.Atan2(l.X, l.Y), math.Atan2(r.X, r.Y)
}

// SideAnglesDegrees is like SideAngles but returns degrees.
func (f Face) SideAnglesDegrees() (float64, float64) {
	l, r := f.SideAngles()
	return Degrees(l), Degrees(r)
}

// TurnAngle is the rotation in radians to apply to the next face so that its left side lines up with the right side of this face.
func (f Face) TurnAngle() float64 {
	l, r := f.SideAngles()
	return l - r
}

func (f Face) validate() error {
	if !finite(f.TopWidth) || f.TopWidth <= 0.0 {
		return fmt.Errorf("%w: face top width must be positive, got %g", ErrInvalidDimension, f.TopWidth)
	} else if !finite(f.BottomWidth) || f.BottomWidth <= 0.0 {
		return fmt.Errorf("%w: face bottom width must be positive, got %g", ErrInvalidDimension, f.BottomWidth)
	} else if !finite(f.Height) || f.Height <= 0.0 {
		return fmt.Errorf("%w: face height must be positive, got %g", ErrInvalidDimension, f.Height)
	} else if !finite(f.BottomShift) {
		return fmt.Errorf("%w: face bottom shift must be finite, got %g", ErrInvalidDimension, f.BottomShift)
	}
	return nil
}

////////////////////////////////////////////////////////////////

// Placement is the position of a face's top-left corner and the heading of its top edge in radians.
type Placement struct {
	Position Point
	Heading  float64
}

// Chain lays out trapezoidal faces end to end, each rotated so that it shares its left side with the right side of the previous face. Faces default to the four sides described by the configuration.
type Chain struct {
	Faces []Face
}

func (ch Chain) faces(cfg Config) []Face {
	if 0 < len(ch.Faces) {
		return ch.Faces
	}
	f := Face{
		TopWidth:    cfg.SideLength,
		BottomWidth: cfg.BottomSide(),
		Height:      cfg.Height,
		BottomShift: cfg.BottomShift,
	}
	return []Face{f, f, f, f}
}

// Trace returns the placement of every face without emitting primitives.
func (ch Chain) Trace(cfg Config) ([]Placement, error) {
	faces := ch.faces(cfg)
	for _, f := range faces {
		if err := f.validate(); err != nil {
			return nil, err
		}
	}

	pos := r2.Vec{}
	heading := 0.0
	places := make([]Placement, 0, len(faces))
	for _, f := range faces {
		places = append(places, Placement{Point{pos.X, pos.Y}, heading})
		top := r2.NewRotation(heading, r2.Vec{}).Rotate(r2.Vec{X: f.TopWidth})
		pos = r2.Add(pos, top)
		heading += f.TurnAngle()
	}
	return places, nil
}

// Unroll implements Layout. Each face is emitted as a cut polygon and every shared side as an engraved fold line. The drawing is shifted so that its extent starts at the origin, placements from Trace are not.
func (ch Chain) Unroll(cfg Config) (*Drawing, error) {
	if !finite(cfg.StrokeWidth) || cfg.StrokeWidth <= 0.0 {
		return nil, fmt.Errorf("%w: stroke width must be positive, got %g", ErrInvalidDimension, cfg.StrokeWidth)
	}
	places, err := ch.Trace(cfg)
	if err != nil {
		return nil, err
	}

	faces := ch.faces(cfg)
	prims := []Primitive{}
	stops := make([]float64, 0, len(faces))
	dist := 0.0
	for i, f := range faces {
		rot := r2.NewRotation(places[i].Heading, r2.Vec{})
		origin := r2.Vec{X: places[i].Position.X, Y: places[i].Position.Y}
		place := func(p Point) Point {
			q := r2.Add(origin, rot.Rotate(r2.Vec{X: p.X, Y: p.Y}))
			return Point{q.X, q.Y}
		}

		v := f.Vertices()
		poly := Polygon{Stroke: cutStyle(cfg)}
		for _, p := range v {
			poly.Points = append(poly.Points, place(p))
		}
		prims = append(prims, poly)
		if i+1 < len(faces) {
			prims = append(prims, Line{
				Start:  place(v[0]),
				End:    place(v[3]),
				Stroke: engraveStyle(cfg),
			})
		}

		dist += f.TopWidth
		stops = append(stops, dist)
	}

	bounds := Bounds(prims)
	shift := Point{-bounds.X0, -bounds.Y0}
	for i, prim := range prims {
		switch prim := prim.(type) {
		case Polygon:
			prims[i] = prim.Translate(shift)
		case Line:
			prims[i] = prim.Translate(shift)
		}
	}
	return &Drawing{
		Primitives: prims,
		Width:      bounds.W(),
		Height:     bounds.H(),
		Stops:      stops,
	}, nil
}
