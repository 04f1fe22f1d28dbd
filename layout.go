package bendbox

// Layout unrolls the lateral surface of a box into drawing primitives. Every call returns a new Drawing that shares nothing with previous results.
type Layout interface {
	Unroll(cfg Config) (*Drawing, error)
}

// Drawing is the result of a layout.
type Drawing struct {
	Primitives []Primitive

	// Width and Height are the nominal size of the unrolled panel. Some primitives, such as the seam of a joint, may extend beyond it; use Bounds for the full extent.
	Width, Height float64

	// Stops are the cursor positions after each layout step, in order.
	Stops []float64
}

// Bounds returns the extent of all primitives.
func (d *Drawing) Bounds() Rect {
	return Bounds(d.Primitives)
}

// Layer returns the primitives of the given layer, in order.
func (d *Drawing) Layer(layer Layer) []Primitive {
	prims := []Primitive{}
	for _, prim := range d.Primitives {
		if prim.Style().Layer == layer {
			prims = append(prims, prim)
		}
	}
	return prims
}

// Unroll unrolls the configured box using the Strip layout.
func Unroll(cfg Config) (*Drawing, error) {
	return Strip{}.Unroll(cfg)
}

////////////////////////////////////////////////////////////////

// Strip walks once around a rounded square, cut open in the middle of a face, and lays the faces and bends out along the x-axis. Bends are engraved with vertical slits; the whole strip is outlined by one cut rectangle, or by its top and bottom edges when a joint seam closes the ends.
type Strip struct{}

// cursor is the state threaded through the layout steps. Steps return a new cursor and never modify the one passed in.
type cursor struct {
	x     float64
	prims []Primitive
	stops []float64
}

func (c cursor) advance(dx float64) cursor {
	c.x += dx
	c.stops = append(c.stops, c.x)
	return c
}

func (c cursor) emit(prims ...Primitive) cursor {
	c.prims = append(c.prims, prims...)
	return c
}

type step func(Config, cursor) cursor

// Unroll implements Layout. It returns an error wrapping ErrInvalidDimension, ErrBendRadiusTooLarge or ErrInsufficientSlits for an invalid configuration, without emitting anything.
func (Strip) Unroll(cfg Config) (*Drawing, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	steps := []step{
		leadingHalfFace,
		bend, fullFace,
		bend, fullFace,
		bend, fullFace,
		bend, trailingHalfFace,
	}
	c := cursor{
		prims: make([]Primitive, 0, 4*cfg.SlitsPerBend()+3),
		stops: make([]float64, 0, len(steps)),
	}
	for _, s := range steps {
		c = s(cfg, c)
	}

	c = outline(cfg, c)
	return &Drawing{
		Primitives: c.prims,
		Width:      cfg.Perimeter(),
		Height:     cfg.Height,
		Stops:      c.stops,
	}, nil
}

// outline cuts the strip free. With a joint the seams form the short sides, so only the top and bottom edges are cut.
func outline(cfg Config, c cursor) cursor {
	if cfg.Joint != nil {
		// end at the trailing seam so that the outline is closed
		return c.emit(
			Line{Start: Point{0.0, 0.0}, End: Point{c.x, 0.0}, Stroke: cutStyle(cfg)},
			Line{Start: Point{0.0, cfg.Height}, End: Point{c.x, cfg.Height}, Stroke: cutStyle(cfg)},
		)
	}
	return c.emit(Rectangle{
		W:      cfg.Perimeter(),
		H:      cfg.Height,
		Stroke: cutStyle(cfg),
	})
}

func leadingHalfFace(cfg Config, c cursor) cursor {
	if cfg.Joint != nil {
		c = c.emit(hingePath(cfg, c.x))
	}
	return c.advance(cfg.HalfFace())
}

func trailingHalfFace(cfg Config, c cursor) cursor {
	c = c.advance(cfg.HalfFace())
	if cfg.Joint != nil {
		c = c.emit(hingePath(cfg, c.x))
	}
	return c
}

func fullFace(cfg Config, c cursor) cursor {
	return c.advance(cfg.FullFace())
}

// bend engraves evenly spaced slits over the arc length of a bend, the first on its leading edge and the last on its trailing edge.
func bend(cfg Config, c cursor) cursor {
	n := cfg.SlitsPerBend()
	circ := cfg.BendCircumference()
	origin := Point{c.x, 0.0}
	for i := 0; i < n; i++ {
		x := float64(i) * circ / float64(n-1)
		c = c.emit(Line{
			Start:  Point{x, 0.0},
			End:    Point{x, cfg.Height},
			Stroke: engraveStyle(cfg),
		}.Translate(origin))
	}
	return c.advance(circ)
}

func cutStyle(cfg Config) Style {
	return Style{Layer: Cut, Color: cfg.CutColor, Width: cfg.StrokeWidth}
}

func engraveStyle(cfg Config) Style {
	return Style{Layer: Engrave, Color: cfg.EngraveColor, Width: cfg.StrokeWidth}
}
