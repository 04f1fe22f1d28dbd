package bendbox

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

func TestWriteSVG(t *testing.T) {
	d, err := Unroll(DefaultConfig())
	test.Error(t, err)

	buf := &bytes.Buffer{}
	test.Error(t, d.WriteSVG(buf, nil))
	s := buf.String()

	test.That(t, strings.Contains(s, "<svg"))
	test.That(t, strings.Contains(s, `id="cut"`))
	test.That(t, strings.Contains(s, `id="engrave"`))
	test.That(t, strings.Contains(s, "mm"))
	test.T(t, strings.Count(s, "<rect"), 1)
	test.T(t, strings.Count(s, "<line"), 40)
	test.T(t, strings.Count(s, "stroke:#FF0000"), 1)
	test.T(t, strings.Count(s, "stroke:#0000FF"), 40)
	test.That(t, strings.Index(s, `id="cut"`) < strings.Index(s, `id="engrave"`))
}

func TestWriteSVGJoint(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Joint = DefaultJoint()
	d, err := Unroll(cfg)
	test.Error(t, err)

	buf := &bytes.Buffer{}
	test.Error(t, d.WriteSVG(buf, nil))
	s := buf.String()
	test.T(t, strings.Count(s, "<path"), 2)
	test.That(t, strings.Contains(s, `d="M0 0C20 4 20 16 0 20`), "hinge path data")

	// coordinates are rounded before the path data is written
	cfg.Height = 50.0
	cfg.Joint.TaperRatio = 0.7
	d, err = Unroll(cfg)
	test.Error(t, err)
	buf.Reset()
	test.Error(t, d.WriteSVG(buf, nil))
	test.That(t, strings.Contains(buf.String(), `d="M0 0C20 6 20 14 0 20`), buf.String())
	test.That(t, strings.Contains(buf.String(), `C10 43 10 47 0 50"`), buf.String())
}

func TestWriteSVGChain(t *testing.T) {
	d, err := Chain{}.Unroll(DefaultConfig())
	test.Error(t, err)

	buf := &bytes.Buffer{}
	test.Error(t, d.WriteSVG(buf, nil))
	test.T(t, strings.Count(buf.String(), "<polygon"), 4)
}

func TestWriteSVGMinify(t *testing.T) {
	d, err := Unroll(DefaultConfig())
	test.Error(t, err)

	plain := &bytes.Buffer{}
	test.Error(t, d.WriteSVG(plain, nil))

	minified := &bytes.Buffer{}
	opts := DefaultWriteOptions
	opts.Minify = true
	test.Error(t, d.WriteSVG(minified, &opts))
	test.That(t, strings.Contains(minified.String(), "<svg"))
	test.That(t, minified.Len() < plain.Len(), minified.Len(), plain.Len())
}

func TestWriteFileSVG(t *testing.T) {
	d, err := Unroll(DefaultConfig())
	test.Error(t, err)

	filename := filepath.Join(t.TempDir(), "strip.svg")
	test.Error(t, d.WriteFile(filename, nil))
	b, err := os.ReadFile(filename)
	test.Error(t, err)
	test.T(t, strings.Count(string(b), "<line"), 40)

	test.That(t, d.WriteFile(filepath.Join(t.TempDir(), "strip.dxf"), nil) != nil)
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, os.ErrClosed
}

func TestWriteSVGError(t *testing.T) {
	d, err := Unroll(DefaultConfig())
	test.Error(t, err)
	test.T(t, d.WriteSVG(failWriter{}, nil), os.ErrClosed)
}
