package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/bendbox"
)

type Unroll struct {
	Config       string  `short:"c" desc:"Configuration file (.toml or .yaml)"`
	Side         float64 `short:"s" desc:"Side length in mm"`
	Height       float64 `desc:"Panel height in mm"`
	Radius       float64 `short:"r" desc:"Bend radius in mm"`
	Slits        int     `short:"n" desc:"Slits per full rotation of bend"`
	CutColor     string  `desc:"Stroke color of cut lines"`
	EngraveColor string  `desc:"Stroke color of engrave lines"`
	Hinge        bool    `desc:"Cut a living-hinge seam at both ends"`
	Margin       float64 `default:"-1" desc:"Margin around the drawing in mm, negative uses the configuration"`
	Resolution   float64 `default:"10" desc:"Resolution of raster output in dots per mm"`
	Minify       bool    `short:"m" desc:"Minify SVG output"`
	Verbose      bool    `short:"v" desc:"Verbose logging"`
	Output       string  `short:"o" default:"-" desc:"Output file (.svg, .pdf, .png), - writes SVG to stdout"`
}

type Chain struct {
	Config       string  `short:"c" desc:"Configuration file (.toml or .yaml)"`
	Side         float64 `short:"s" desc:"Top width of the faces in mm"`
	Bottom       float64 `short:"b" desc:"Bottom width of the faces in mm"`
	Shift        float64 `desc:"Shift of the bottom edge in mm"`
	Height       float64 `desc:"Face height in mm"`
	CutColor     string  `desc:"Stroke color of cut lines"`
	EngraveColor string  `desc:"Stroke color of fold lines"`
	Margin       float64 `default:"-1" desc:"Margin around the drawing in mm, negative uses the configuration"`
	Resolution   float64 `default:"10" desc:"Resolution of raster output in dots per mm"`
	Minify       bool    `short:"m" desc:"Minify SVG output"`
	Verbose      bool    `short:"v" desc:"Verbose logging"`
	Output       string  `short:"o" default:"-" desc:"Output file (.svg, .pdf, .png), - writes SVG to stdout"`
}

type Config struct {
	Config string `short:"c" desc:"Configuration file (.toml or .yaml)"`
	Format string `short:"f" default:"toml" desc:"Output format: toml or yaml"`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	root := argp.NewCmd(&Unroll{}, "Unroll a box with bent corners into a laser cutter drawing")
	root.AddCmd(&Chain{}, "chain", "Unroll trapezoidal faces as a chain")
	root.AddCmd(&Config{}, "config", "Print the effective configuration")
	root.Parse()
	root.PrintHelp()
}

// overrides are command line values that replace configuration values when set.
type overrides struct {
	side, bottom, shift, height, radius float64
	slits                               int
	cutColor, engraveColor              string
	hinge                               bool
}

func loadConfig(filename string, o overrides) (bendbox.Config, error) {
	cfg := bendbox.DefaultConfig()
	if filename != "" {
		var err error
		if cfg, err = bendbox.LoadConfig(filename); err != nil {
			return bendbox.Config{}, err
		}
		log.Debug().Str("file", filename).Msg("loaded configuration")
	}

	if o.side != 0.0 {
		cfg.SideLength = o.side
	}
	if o.bottom != 0.0 {
		cfg.BottomWidth = o.bottom
	}
	if o.shift != 0.0 {
		cfg.BottomShift = o.shift
	}
	if o.height != 0.0 {
		cfg.Height = o.height
	}
	if o.radius != 0.0 {
		cfg.BendRadius = o.radius
	}
	if o.slits != 0 {
		cfg.SlitsPerRotation = o.slits
	}
	if o.cutColor != "" {
		c, err := bendbox.ParseColor(o.cutColor)
		if err != nil {
			return bendbox.Config{}, err
		}
		cfg.CutColor = c
	}
	if o.engraveColor != "" {
		c, err := bendbox.ParseColor(o.engraveColor)
		if err != nil {
			return bendbox.Config{}, err
		}
		cfg.EngraveColor = c
	}
	if o.hinge && cfg.Joint == nil {
		cfg.Joint = bendbox.DefaultJoint()
	}
	return cfg, nil
}

func setVerbose(verbose bool) {
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func write(d *bendbox.Drawing, cfg bendbox.Config, output string, margin, resolution float64, minify bool) error {
	opts := &bendbox.WriteOptions{
		Margin:     cfg.Margin,
		Resolution: resolution,
		Minify:     minify,
	}
	if 0.0 <= margin {
		opts.Margin = margin
	}

	w, h := d.Size(opts.Margin)
	log.Debug().
		Int("primitives", len(d.Primitives)).
		Int("cut", len(d.Layer(bendbox.Cut))).
		Int("engrave", len(d.Layer(bendbox.Engrave))).
		Floats64("stops", d.Stops).
		Msg("unrolled")

	if output == "" || output == "-" {
		return d.WriteSVG(os.Stdout, opts)
	} else if err := d.WriteFile(output, opts); err != nil {
		return err
	}
	log.Info().Str("file", output).Float64("width", w).Float64("height", h).Msg("written")
	return nil
}

func (cmd *Unroll) Run() error {
	setVerbose(cmd.Verbose)
	cfg, err := loadConfig(cmd.Config, overrides{
		side:         cmd.Side,
		height:       cmd.Height,
		radius:       cmd.Radius,
		slits:        cmd.Slits,
		cutColor:     cmd.CutColor,
		engraveColor: cmd.EngraveColor,
		hinge:        cmd.Hinge,
	})
	if err != nil {
		return err
	}

	d, err := bendbox.Unroll(cfg)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return err
	}
	log.Debug().
		Float64("bend_circumference", cfg.BendCircumference()).
		Int("slits_per_bend", cfg.SlitsPerBend()).
		Float64("perimeter", cfg.Perimeter()).
		Msg("strip")
	return write(d, cfg, cmd.Output, cmd.Margin, cmd.Resolution, cmd.Minify)
}

func (cmd *Chain) Run() error {
	setVerbose(cmd.Verbose)
	cfg, err := loadConfig(cmd.Config, overrides{
		side:         cmd.Side,
		bottom:       cmd.Bottom,
		shift:        cmd.Shift,
		height:       cmd.Height,
		cutColor:     cmd.CutColor,
		engraveColor: cmd.EngraveColor,
	})
	if err != nil {
		return err
	}

	chain := bendbox.Chain{}
	places, err := chain.Trace(cfg)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return err
	}
	for i, place := range places {
		log.Debug().
			Int("face", i).
			Str("position", place.Position.String()).
			Float64("heading", bendbox.Degrees(place.Heading)).
			Msg("placed")
	}

	d, err := chain.Unroll(cfg)
	if err != nil {
		return err
	}
	return write(d, cfg, cmd.Output, cmd.Margin, cmd.Resolution, cmd.Minify)
}

func (cmd *Config) Run() error {
	cfg, err := loadConfig(cmd.Config, overrides{})
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		log.Warn().Err(err).Msg("configuration is not valid")
	}

	switch cmd.Format {
	case "toml":
		return bendbox.WriteConfig(os.Stdout, cfg, bendbox.TOML)
	case "yaml", "yml":
		return bendbox.WriteConfig(os.Stdout, cfg, bendbox.YAML)
	}
	return fmt.Errorf("unknown format: %s", cmd.Format)
}
