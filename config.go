package bendbox

import (
	"errors"
	"fmt"
	"math"
)

// Validation errors. Errors returned by Config.Validate wrap one of these.
var (
	ErrInvalidDimension   = errors.New("invalid dimension")
	ErrBendRadiusTooLarge = errors.New("bend radius too large")
	ErrInsufficientSlits  = errors.New("insufficient slits")
)

// Upper bounds on the number of primitives a single layout step may emit.
const (
	MaxSlitsPerBend  = 10000
	MaxHingeSegments = 10000
)

// Config describes a box with a square cross-section whose four vertical corners are bent with radius BendRadius. All lengths are in millimeters. Config is a value; layouts never modify it.
type Config struct {
	SideLength       float64 `toml:"side_length" yaml:"side_length"`
	BottomWidth      float64 `toml:"bottom_width,omitempty" yaml:"bottom_width,omitempty"` // chain layout only, 0 is SideLength
	BottomShift      float64 `toml:"bottom_shift,omitempty" yaml:"bottom_shift,omitempty"` // chain layout only
	Height           float64 `toml:"height" yaml:"height"`
	BendRadius       float64 `toml:"bend_radius" yaml:"bend_radius"`
	SlitsPerRotation int     `toml:"slits_per_rotation" yaml:"slits_per_rotation"`

	CutColor     Color   `toml:"cut_color" yaml:"cut_color"`
	EngraveColor Color   `toml:"engrave_color" yaml:"engrave_color"`
	StrokeWidth  float64 `toml:"stroke_width" yaml:"stroke_width"`
	Margin       float64 `toml:"margin" yaml:"margin"`

	Joint *JointConfig `toml:"joint,omitempty" yaml:"joint,omitempty"`
}

// JointConfig enables a living-hinge seam: a wavy cut at both ends of the strip so that the ends interlock when the panel is bent closed.
type JointConfig struct {
	TailLength float64 `toml:"tail_length" yaml:"tail_length"` // horizontal amplitude
	TailWidth  float64 `toml:"tail_width" yaml:"tail_width"`   // vertical span of one S-curve
	TaperRatio float64 `toml:"taper_ratio" yaml:"taper_ratio"` // control point position within a segment
}

// DefaultConfig returns the configuration of the reference box: 150mm sides, 400mm high, bent with a 30mm radius and 40 slits per rotation.
func DefaultConfig() Config {
	return Config{
		SideLength:       150.0,
		Height:           400.0,
		BendRadius:       30.0,
		SlitsPerRotation: 40,
		CutColor:         Red,
		EngraveColor:     Blue,
		StrokeWidth:      0.1,
		Margin:           5.0,
	}
}

// DefaultJoint returns the default living-hinge seam.
func DefaultJoint() *JointConfig {
	return &JointConfig{
		TailLength: 20.0,
		TailWidth:  40.0,
		TaperRatio: 0.8,
	}
}

// BendCircumference is the arc length of a 90 degree bend.
func (cfg Config) BendCircumference() float64 {
	return math.Pi * cfg.BendRadius / 2.0
}

// SlitsPerBend is the number of engrave slits in each of the four bends.
func (cfg Config) SlitsPerBend() int {
	if cfg.SlitsPerRotation < 0 {
		return 0
	}
	return cfg.SlitsPerRotation / 4
}

// BottomSide returns the bottom width of a face, which defaults to SideLength.
func (cfg Config) BottomSide() float64 {
	if cfg.BottomWidth == 0.0 {
		return cfg.SideLength
	}
	return cfg.BottomWidth
}

// HalfFace is the flat length of the two half faces at either end of the strip.
func (cfg Config) HalfFace() float64 {
	return cfg.SideLength/2.0 - cfg.BendRadius
}

// FullFace is the flat length between two bends.
func (cfg Config) FullFace() float64 {
	return cfg.SideLength - 2.0*cfg.BendRadius
}

// Perimeter is the unrolled length of the rounded square, which is the width of the strip.
func (cfg Config) Perimeter() float64 {
	return 4.0 * (cfg.BendCircumference() + cfg.SideLength - 2.0*cfg.BendRadius)
}

// Validate returns the first configuration error, or nil. It checks dimensions first, then the bend radius against the sides, and finally the slit count.
func (cfg Config) Validate() error {
	dims := []struct {
		name string
		v    float64
	}{
		{"side length", cfg.SideLength},
		{"height", cfg.Height},
		{"bend radius", cfg.BendRadius},
	}
	for _, d := range dims {
		if !finite(d.v) || d.v <= 0.0 {
			return fmt.Errorf("%w: %s must be positive, got %g", ErrInvalidDimension, d.name, d.v)
		}
	}
	if !finite(cfg.BottomWidth) || cfg.BottomWidth < 0.0 {
		return fmt.Errorf("%w: bottom width must be positive or zero, got %g", ErrInvalidDimension, cfg.BottomWidth)
	} else if !finite(cfg.BottomShift) {
		return fmt.Errorf("%w: bottom shift must be finite, got %g", ErrInvalidDimension, cfg.BottomShift)
	} else if !finite(cfg.StrokeWidth) || cfg.StrokeWidth <= 0.0 {
		return fmt.Errorf("%w: stroke width must be positive, got %g", ErrInvalidDimension, cfg.StrokeWidth)
	} else if !finite(cfg.Margin) || cfg.Margin < 0.0 {
		return fmt.Errorf("%w: margin must be positive or zero, got %g", ErrInvalidDimension, cfg.Margin)
	}

	if cfg.SideLength/2.0 < cfg.BendRadius {
		return fmt.Errorf("%w: bend radius %g exceeds half of side length %g", ErrBendRadiusTooLarge, cfg.BendRadius, cfg.SideLength)
	} else if bottom := cfg.BottomSide(); bottom/2.0 < cfg.BendRadius {
		return fmt.Errorf("%w: bend radius %g exceeds half of bottom width %g", ErrBendRadiusTooLarge, cfg.BendRadius, bottom)
	}

	if n := cfg.SlitsPerBend(); n < 2 {
		return fmt.Errorf("%w: %d slits per rotation gives %d slits per bend, need at least 2", ErrInsufficientSlits, cfg.SlitsPerRotation, n)
	} else if MaxSlitsPerBend < n {
		return fmt.Errorf("%w: %d slits per rotation gives %d slits per bend, at most %d allowed", ErrInvalidDimension, cfg.SlitsPerRotation, n, MaxSlitsPerBend)
	}

	if cfg.Joint != nil {
		if err := cfg.Joint.validate(cfg.HalfFace(), cfg.Height); err != nil {
			return err
		}
	}
	return nil
}

func (j JointConfig) validate(halfFace, height float64) error {
	if !finite(j.TailLength) || j.TailLength <= 0.0 {
		return fmt.Errorf("%w: joint tail length must be positive, got %g", ErrInvalidDimension, j.TailLength)
	} else if !finite(j.TailWidth) || j.TailWidth <= 0.0 {
		return fmt.Errorf("%w: joint tail width must be positive, got %g", ErrInvalidDimension, j.TailWidth)
	} else if !(0.0 < j.TaperRatio && j.TaperRatio < 1.0) {
		return fmt.Errorf("%w: joint taper ratio must be in (0,1), got %g", ErrInvalidDimension, j.TaperRatio)
	} else if halfFace <= j.TailLength {
		return fmt.Errorf("%w: joint tail length %g must be smaller than the half face %g", ErrInvalidDimension, j.TailLength, halfFace)
	} else if MaxHingeSegments < height/(j.TailWidth/2.0) {
		return fmt.Errorf("%w: joint tail width %g gives more than %d seam segments over height %g", ErrInvalidDimension, j.TailWidth, MaxHingeSegments, height)
	}
	return nil
}
