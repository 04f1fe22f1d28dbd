package bendbox

import "math"

// hingePath returns the wavy seam cut at x running from the top to the bottom of the panel. Consecutive segments span TailWidth/2 and bulge alternately right and left by TailLength, so that each pair forms one S-curve. A shorter, proportionally scaled segment finishes the height.
func hingePath(cfg Config, x float64) CubicPath {
	j := cfg.Joint
	span := j.TailWidth / 2.0
	n := int(math.Floor(cfg.Height/span + Epsilon))

	p := CubicPath{
		Start:    Point{x, 0.0},
		Segments: make([]CubeSegment, 0, n+1),
		Stroke:   cutStyle(cfg),
	}
	y := 0.0
	for i := 0; i < n; i++ {
		p.Segments = append(p.Segments, hingeSegment(x, y, span, j.TailLength, j.TaperRatio, i%2 == 0))
		y += span
	}
	if rem := cfg.Height - y; Epsilon < rem {
		scale := rem / span
		p.Segments = append(p.Segments, hingeSegment(x, y, rem, scale*j.TailLength, j.TaperRatio, n%2 == 0))
	}
	if 0 < len(p.Segments) {
		p.Segments[len(p.Segments)-1].End.Y = cfg.Height
	}
	return p
}

// hingeSegment is one bulge of height h starting at (x,y).
func hingeSegment(x, y, h, amplitude, taper float64, right bool) CubeSegment {
	dx := amplitude
	if !right {
		dx = -amplitude
	}
	return CubeSegment{
		C1:  Point{x + dx, y + (1.0-taper)*h},
		C2:  Point{x + dx, y + taper*h},
		End: Point{x, y + h},
	}
}
