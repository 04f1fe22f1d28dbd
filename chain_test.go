package bendbox

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func polygons(d *Drawing) []Polygon {
	polys := []Polygon{}
	for _, prim := range d.Primitives {
		if p, ok := prim.(Polygon); ok {
			polys = append(polys, p)
		}
	}
	return polys
}

func pointNear(p, q Point) bool {
	return near(p.X, q.X, 1e-9) && near(p.Y, q.Y, 1e-9)
}

func TestFaceVertices(t *testing.T) {
	f := Face{TopWidth: 150.0, BottomWidth: 100.0, Height: 400.0, BottomShift: 5.0}
	test.T(t, f.Vertices(), [4]Point{{150.0, 0.0}, {0.0, 0.0}, {30.0, 400.0}, {130.0, 400.0}})
}

func TestFaceAngles(t *testing.T) {
	prism := Face{TopWidth: 150.0, BottomWidth: 150.0, Height: 400.0}
	l, r := prism.SideAngles()
	test.Float(t, l, 0.0)
	test.Float(t, r, 0.0)
	test.Float(t, prism.TurnAngle(), 0.0)

	frustum := Face{TopWidth: 150.0, BottomWidth: 100.0, Height: 400.0}
	l, r = frustum.SideAngles()
	test.Float(t, l, math.Atan2(25.0, 400.0))
	test.Float(t, r, -l)
	test.Float(t, frustum.TurnAngle(), 2.0*l)

	ld, rd := frustum.SideAnglesDegrees()
	test.That(t, near(ld, 3.576334, 1e-6), ld)
	test.That(t, near(rd, -3.576334, 1e-6), rd)

	square := Face{TopWidth: 2.0, BottomWidth: 0.0001, Height: 1.0}
	ld, _ = square.SideAnglesDegrees()
	test.That(t, near(ld, 45.0, 0.01), ld)
}

func TestChainPrism(t *testing.T) {
	cfg := DefaultConfig()
	d, err := Chain{}.Unroll(cfg)
	test.Error(t, err)

	polys := polygons(d)
	test.T(t, len(polys), 4)
	test.T(t, len(d.Layer(Engrave)), 3)
	for i, poly := range polys {
		x := 150.0 * float64(i)
		test.That(t, pointNear(poly.Points[1], Point{x, 0.0}), i, poly.Points[1])
		test.That(t, pointNear(poly.Points[3], Point{x + 150.0, 400.0}), i, poly.Points[3])
	}
	test.That(t, near(d.Width, 600.0, 1e-9))
	test.That(t, near(d.Height, 400.0, 1e-9))
	test.T(t, d.Stops, []float64{150.0, 300.0, 450.0, 600.0})
}

func TestChainFrustum(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BottomWidth = 100.0

	places, err := Chain{}.Trace(cfg)
	test.Error(t, err)
	test.T(t, len(places), 4)
	turn := Face{TopWidth: 150.0, BottomWidth: 100.0, Height: 400.0}.TurnAngle()
	for i, place := range places {
		test.That(t, near(place.Heading, float64(i)*turn, 1e-12), i, place.Heading)
	}

	d, err := Chain{}.Unroll(cfg)
	test.Error(t, err)
	polys := polygons(d)
	test.T(t, len(polys), 4)
	for i := 1; i < len(polys); i++ {
		prev, cur := polys[i-1], polys[i]
		// top-left meets the previous top-right, bottom-left meets the previous bottom-right
		test.That(t, pointNear(cur.Points[1], prev.Points[0]), i, cur.Points[1], prev.Points[0])
		test.That(t, pointNear(cur.Points[2], prev.Points[3]), i, cur.Points[2], prev.Points[3])
	}

	// fold lines run along the shared sides
	folds := d.Layer(Engrave)
	test.T(t, len(folds), 3)
	fold := folds[0].(Line)
	test.That(t, pointNear(fold.Start, polys[1].Points[1]))
	test.That(t, pointNear(fold.End, polys[1].Points[2]))
}

func TestChainFaces(t *testing.T) {
	faces := []Face{
		{TopWidth: 10.0, BottomWidth: 10.0, Height: 5.0},
		{TopWidth: 20.0, BottomWidth: 20.0, Height: 5.0},
	}
	d, err := Chain{Faces: faces}.Unroll(DefaultConfig())
	test.Error(t, err)
	test.T(t, len(polygons(d)), 2)
	test.T(t, d.Stops, []float64{10.0, 30.0})

	_, err = Chain{Faces: []Face{{TopWidth: 10.0, Height: 5.0}}}.Unroll(DefaultConfig())
	test.That(t, errors.Is(err, ErrInvalidDimension), err)

	cfg := DefaultConfig()
	cfg.StrokeWidth = 0.0
	_, err = Chain{}.Unroll(cfg)
	test.That(t, errors.Is(err, ErrInvalidDimension), err)
}

func TestChainOrigin(t *testing.T) {
	faces := []Face{
		{TopWidth: 10.0, BottomWidth: 10.0, Height: 5.0, BottomShift: -3.0},
		{TopWidth: 10.0, BottomWidth: 10.0, Height: 5.0, BottomShift: -3.0},
	}
	d, err := Chain{Faces: faces}.Unroll(DefaultConfig())
	test.Error(t, err)

	bounds := d.Bounds()
	test.That(t, near(bounds.X0, 0.0, 1e-9), bounds)
	test.That(t, near(bounds.Y0, 0.0, 1e-9), bounds)
	test.That(t, near(bounds.W(), d.Width, 1e-9))

	polys := polygons(d)
	test.That(t, pointNear(polys[0].Points[1], Point{3.0, 0.0}), polys[0].Points[1])
	test.That(t, pointNear(polys[0].Points[2], Point{0.0, 5.0}), polys[0].Points[2])

	fold := d.Layer(Engrave)[0].(Line)
	test.That(t, pointNear(fold.Start, polys[1].Points[1]), fold.Start)
	test.That(t, pointNear(fold.End, polys[1].Points[2]), fold.End)
}
