package bendbox

import (
	"testing"

	"github.com/tdewolff/test"
)

func hinges(d *Drawing) []CubicPath {
	paths := []CubicPath{}
	for _, prim := range d.Primitives {
		if p, ok := prim.(CubicPath); ok {
			paths = append(paths, p)
		}
	}
	return paths
}

func segmentEquals(a, b CubeSegment) bool {
	return a.C1.Equals(b.C1) && a.C2.Equals(b.C2) && a.End.Equals(b.End)
}

func TestHingePath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Joint = DefaultJoint()

	p := hingePath(cfg, 10.0)
	test.T(t, p.Start, Point{10.0, 0.0})
	test.T(t, p.End(), Point{10.0, 400.0})
	test.T(t, len(p.Segments), 20)
	test.T(t, p.Stroke.Layer, Cut)

	// alternating bulges form S-curves of span TailWidth
	test.That(t, segmentEquals(p.Segments[0], CubeSegment{Point{30.0, 4.0}, Point{30.0, 16.0}, Point{10.0, 20.0}}), p.Segments[0])
	test.That(t, segmentEquals(p.Segments[1], CubeSegment{Point{-10.0, 24.0}, Point{-10.0, 36.0}, Point{10.0, 40.0}}), p.Segments[1])

	bounds := p.Bounds()
	test.Float(t, bounds.X0, -10.0)
	test.Float(t, bounds.X1, 30.0)
	test.Float(t, bounds.Y0, 0.0)
	test.Float(t, bounds.Y1, 400.0)
}

func TestHingePathRemainder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Height = 50.0
	cfg.Joint = DefaultJoint()

	p := hingePath(cfg, 0.0)
	test.T(t, len(p.Segments), 3)
	test.T(t, p.End(), Point{0.0, 50.0})

	// the last segment is half as high and bulges half as far
	last := p.Segments[2]
	test.That(t, segmentEquals(last, CubeSegment{Point{10.0, 42.0}, Point{10.0, 48.0}, Point{0.0, 50.0}}), last)
}

func TestUnrollJoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Joint = DefaultJoint()

	d, err := Unroll(cfg)
	test.Error(t, err)

	paths := hinges(d)
	test.T(t, len(paths), 2)
	test.T(t, paths[0].Start, Point{0.0, 0.0})
	test.That(t, near(paths[1].Start.X, cfg.Perimeter(), 1e-9))

	// both seams have the same shape so that the ends interlock
	shifted := paths[0].Translate(Point{paths[1].Start.X, 0.0})
	for i, seg := range shifted.Segments {
		test.That(t, seg.C1.Equals(paths[1].Segments[i].C1))
		test.That(t, seg.End.Equals(paths[1].Segments[i].End))
	}

	// the joint does not move the cursor
	plain := cfg
	plain.Joint = nil
	ref, err := Unroll(plain)
	test.Error(t, err)
	test.T(t, d.Stops, ref.Stops)
	test.T(t, len(d.Primitives), len(ref.Primitives)+3)

	// the seams close the ends, a rectangle would cut the lobes off
	test.T(t, len(rectangles(d)), 0)
	edges := []Line{}
	for _, prim := range d.Layer(Cut) {
		if l, ok := prim.(Line); ok {
			edges = append(edges, l)
		}
	}
	test.T(t, len(edges), 2)
	test.T(t, edges[0].Start, Point{0.0, 0.0})
	test.That(t, near(edges[0].End.X, cfg.Perimeter(), 1e-9))
	test.Float(t, edges[1].Start.Y, cfg.Height)
	test.Float(t, edges[1].End.Y, cfg.Height)
	test.T(t, paths[0].End(), edges[1].Start)
	test.T(t, paths[1].Start, edges[0].End)

	bounds := d.Bounds()
	test.Float(t, bounds.X0, -cfg.Joint.TailLength)
	test.That(t, near(bounds.X1, cfg.Perimeter()+cfg.Joint.TailLength, 1e-9))
}
