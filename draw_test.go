package bendbox

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/test"
)

func TestPath(t *testing.T) {
	line := Path(Line{Start: Point{1.0, 0.0}, End: Point{1.0, 10.0}})
	test.That(t, !line.Empty())
	test.That(t, !line.Closed())

	rect := Path(Rectangle{W: 5.0, H: 10.0})
	test.That(t, rect.Closed())

	poly := Path(Polygon{Points: []Point{{0.0, 0.0}, {5.0, 0.0}, {2.0, 3.0}}})
	test.That(t, poly.Closed())

	cfg := DefaultConfig()
	cfg.Joint = DefaultJoint()
	curve := Path(hingePath(cfg, 0.0))
	test.That(t, !curve.Empty())
	test.That(t, !curve.Closed())
}

func TestDrawingSize(t *testing.T) {
	d, err := Unroll(DefaultConfig())
	test.Error(t, err)

	w, h := d.Size(5.0)
	test.That(t, near(w, DefaultConfig().Perimeter()+10.0, 1e-9), w)
	test.Float(t, h, 410.0)

	c := d.Canvas(5.0)
	test.That(t, near(c.W, w, 1e-9))
	test.Float(t, c.H, h)
}

func TestWriteFileCanvas(t *testing.T) {
	d, err := Unroll(DefaultConfig())
	test.Error(t, err)

	dir := t.TempDir()
	opts := &WriteOptions{Margin: 2.0, Resolution: 1.0}
	for _, name := range []string{"strip.png", "strip.pdf"} {
		filename := filepath.Join(dir, name)
		test.Error(t, d.WriteFile(filename, opts))
		info, err := os.Stat(filename)
		test.Error(t, err)
		test.That(t, 0 < info.Size(), name)
	}
}
