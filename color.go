package bendbox

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is an opaque stroke color. It marshals to and from "#RRGGBB" text so that it can be used in configuration files.
type Color color.RGBA

// Laser software conventionally distinguishes operations by pure stroke colors.
var (
	Red     = Color{0xFF, 0x00, 0x00, 0xFF}
	Blue    = Color{0x00, 0x00, 0xFF, 0xFF}
	Magenta = Color{0xFF, 0x00, 0xFF, 0xFF}
	Black   = Color{0x00, 0x00, 0x00, 0xFF}
)

// ParseColor parses a hexadecimal color of the form #RGB or #RRGGBB, or a CSS color name such as "red".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("invalid color '%s': %w", s, err)
		}
		r, g, b := c.RGB255()
		return Color{r, g, b, 0xFF}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return Color(c), nil
	}
	return Color{}, fmt.Errorf("invalid color '%s': expected #RRGGBB or a color name", s)
}

// MustParseColor is like ParseColor but panics on an error.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA(c).RGBA()
}

// Hex returns the color as #RRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	v, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
