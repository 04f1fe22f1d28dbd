package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/tdewolff/bendbox"
	"github.com/tdewolff/canvas"
	canvasFyne "github.com/tdewolff/canvas/renderers/fyne"
	parseStrconv "github.com/tdewolff/parse/v2/strconv"
)

const previewWidth = 900.0 // pixels

type panel struct {
	win     fyne.Window
	preview *fyne.Container
	status  *widget.Label

	layout       *widget.Select
	side         *widget.Entry
	bottom       *widget.Entry
	shift        *widget.Entry
	height       *widget.Entry
	radius       *widget.Entry
	slits        *widget.Entry
	cutColor     *widget.Entry
	engraveColor *widget.Entry
	strokeWidth  *widget.Entry
	margin       *widget.Entry
	hinge        *widget.Check
	tailLength   *widget.Entry
	tailWidth    *widget.Entry
	taperRatio   *widget.Entry

	drawing *bendbox.Drawing
	cfg     bendbox.Config
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := bendbox.DefaultConfig()
	if 1 < len(os.Args) {
		var err error
		if cfg, err = bendbox.LoadConfig(os.Args[1]); err != nil {
			log.Fatal().Err(err).Msg("failed to load configuration")
		}
	}

	a := app.New()
	p := newPanel(a.NewWindow("bendbox"), cfg)
	p.apply()
	p.win.Resize(fyne.NewSize(1300, 700))
	p.win.ShowAndRun()
}

func newPanel(win fyne.Window, cfg bendbox.Config) *panel {
	p := &panel{
		win:     win,
		preview: container.NewStack(),
		status:  widget.NewLabel(""),
		layout:  widget.NewSelect([]string{"strip", "chain"}, nil),
		hinge:   widget.NewCheck("", nil),
	}
	p.layout.SetSelected("strip")

	entry := func(s string) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(s)
		return e
	}
	p.side = entry(formatFloat(cfg.SideLength))
	p.bottom = entry(formatFloat(cfg.BottomWidth))
	p.shift = entry(formatFloat(cfg.BottomShift))
	p.height = entry(formatFloat(cfg.Height))
	p.radius = entry(formatFloat(cfg.BendRadius))
	p.slits = entry(strconv.Itoa(cfg.SlitsPerRotation))
	p.cutColor = entry(cfg.CutColor.Hex())
	p.engraveColor = entry(cfg.EngraveColor.Hex())
	p.strokeWidth = entry(formatFloat(cfg.StrokeWidth))
	p.margin = entry(formatFloat(cfg.Margin))
	p.hinge.SetChecked(cfg.Joint != nil)
	joint := cfg.Joint
	if joint == nil {
		joint = bendbox.DefaultJoint()
	}
	p.tailLength = entry(formatFloat(joint.TailLength))
	p.tailWidth = entry(formatFloat(joint.TailWidth))
	p.taperRatio = entry(formatFloat(joint.TaperRatio))
	p.cfg = cfg

	laser := widget.NewForm(
		widget.NewFormItem("Cut color", p.cutColor),
		widget.NewFormItem("Engrave color", p.engraveColor),
		widget.NewFormItem("Stroke width", p.strokeWidth),
		widget.NewFormItem("Margin", p.margin),
	)
	box := widget.NewForm(
		widget.NewFormItem("Layout", p.layout),
		widget.NewFormItem("Side length", p.side),
		widget.NewFormItem("Bottom width", p.bottom),
		widget.NewFormItem("Bottom shift", p.shift),
		widget.NewFormItem("Height", p.height),
	)
	bend := widget.NewForm(
		widget.NewFormItem("Bend radius", p.radius),
		widget.NewFormItem("Slits per rotation", p.slits),
		widget.NewFormItem("Living hinge", p.hinge),
		widget.NewFormItem("Tail length", p.tailLength),
		widget.NewFormItem("Tail width", p.tailWidth),
		widget.NewFormItem("Taper ratio", p.taperRatio),
	)
	buttons := container.NewVBox(
		widget.NewButton("Apply", p.apply),
		widget.NewButton("Log settings", p.logSettings),
		widget.NewButton("Export SVG...", p.export),
	)

	settings := container.NewVScroll(container.NewVBox(
		widget.NewCard("Laser cutter", "", laser),
		widget.NewCard("Box", "", box),
		widget.NewCard("Bend", "", bend),
		buttons,
		p.status,
	))
	split := container.NewHSplit(settings, p.preview)
	split.SetOffset(0.25)
	win.SetContent(split)
	return p
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// parseFloat parses the whole entry as a number, trailing garbage is an error.
func parseFloat(name string, e *widget.Entry) (float64, error) {
	b := []byte(strings.TrimSpace(e.Text))
	f, n := parseStrconv.ParseFloat(b)
	if n == 0 || n != len(b) {
		return 0.0, fmt.Errorf("%s: invalid number '%s'", name, e.Text)
	}
	return f, nil
}

func parseInt(name string, e *widget.Entry) (int, error) {
	b := []byte(strings.TrimSpace(e.Text))
	i, n := parseStrconv.ParseInt(b)
	if n == 0 || n != len(b) {
		return 0, fmt.Errorf("%s: invalid number '%s'", name, e.Text)
	}
	return int(i), nil
}

// config reads a new configuration value from the form.
func (p *panel) config() (bendbox.Config, error) {
	cfg := p.cfg
	floats := []struct {
		name  string
		entry *widget.Entry
		v     *float64
	}{
		{"side length", p.side, &cfg.SideLength},
		{"bottom width", p.bottom, &cfg.BottomWidth},
		{"bottom shift", p.shift, &cfg.BottomShift},
		{"height", p.height, &cfg.Height},
		{"bend radius", p.radius, &cfg.BendRadius},
		{"stroke width", p.strokeWidth, &cfg.StrokeWidth},
		{"margin", p.margin, &cfg.Margin},
	}
	for _, f := range floats {
		v, err := parseFloat(f.name, f.entry)
		if err != nil {
			return bendbox.Config{}, err
		}
		*f.v = v
	}

	slits, err := parseInt("slits per rotation", p.slits)
	if err != nil {
		return bendbox.Config{}, err
	}
	cfg.SlitsPerRotation = slits

	if cfg.CutColor, err = bendbox.ParseColor(p.cutColor.Text); err != nil {
		return bendbox.Config{}, err
	}
	if cfg.EngraveColor, err = bendbox.ParseColor(p.engraveColor.Text); err != nil {
		return bendbox.Config{}, err
	}

	cfg.Joint = nil
	if p.hinge.Checked {
		joint := &bendbox.JointConfig{}
		fields := []struct {
			name  string
			entry *widget.Entry
			v     *float64
		}{
			{"tail length", p.tailLength, &joint.TailLength},
			{"tail width", p.tailWidth, &joint.TailWidth},
			{"taper ratio", p.taperRatio, &joint.TaperRatio},
		}
		for _, f := range fields {
			v, err := parseFloat(f.name, f.entry)
			if err != nil {
				return bendbox.Config{}, err
			}
			*f.v = v
		}
		cfg.Joint = joint
	}
	return cfg, nil
}

func (p *panel) layoutStrategy() bendbox.Layout {
	if p.layout.Selected == "chain" {
		return bendbox.Chain{}
	}
	return bendbox.Strip{}
}

// apply unrolls the current form values and replaces the preview. Nothing of the previous drawing is kept.
func (p *panel) apply() {
	cfg, err := p.config()
	if err != nil {
		p.fail(err)
		return
	}

	layout := p.layoutStrategy()
	d, err := layout.Unroll(cfg)
	if err != nil {
		p.fail(err)
		return
	}

	// thicken strokes so that hairlines remain visible on screen
	w, h := d.Size(cfg.Margin)
	dpmm := previewWidth / w
	preview := d
	if cfg.StrokeWidth*dpmm < 1.0 {
		thick := cfg
		thick.StrokeWidth = 1.0 / dpmm
		if preview, err = layout.Unroll(thick); err != nil {
			p.fail(err)
			return
		}
	}

	r := canvasFyne.New(w, h, canvas.DPMM(dpmm))
	preview.Draw(canvas.NewContext(r), cfg.Margin)
	p.preview.Objects = []fyne.CanvasObject{r.Content()}
	p.preview.Refresh()

	p.cfg, p.drawing = cfg, d
	p.status.SetText(fmt.Sprintf("%d primitives, %.1f x %.1f mm", len(d.Primitives), w, h))
	log.Info().Str("layout", p.layout.Selected).Int("primitives", len(d.Primitives)).Float64("width", w).Float64("height", h).Msg("unrolled")
}

func (p *panel) fail(err error) {
	log.Error().Err(err).Msg("apply failed")
	p.status.SetText(err.Error())
	dialog.ShowError(err, p.win)
}

func (p *panel) logSettings() {
	cfg, err := p.config()
	if err != nil {
		p.fail(err)
		return
	}
	buf := &bytes.Buffer{}
	if err := bendbox.WriteConfig(buf, cfg, bendbox.TOML); err != nil {
		p.fail(err)
		return
	}
	log.Info().Msg("settings\n" + buf.String())
}

func (p *panel) export() {
	if p.drawing == nil {
		p.fail(fmt.Errorf("nothing to export, apply valid settings first"))
		return
	}
	d, cfg := p.drawing, p.cfg
	dialog.ShowFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			p.fail(err)
			return
		} else if w == nil {
			return // cancelled
		}
		defer w.Close()

		opts := &bendbox.WriteOptions{Margin: cfg.Margin, Resolution: bendbox.DefaultWriteOptions.Resolution}
		if err := d.WriteSVG(w, opts); err != nil {
			p.fail(err)
			return
		}
		log.Info().Str("file", w.URI().Path()).Msg("exported")
	}, p.win)
}
