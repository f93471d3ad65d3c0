package render

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// RGB is an 8-bit color triple in particle palette space.
type RGB struct {
	R, G, B uint8
}

// Fallback for tokens the parser does not understand.
var white = RGB{255, 255, 255}

// A few named tokens show up in palettes alongside hex values.
var namedColors = map[string]RGB{
	"white":  {255, 255, 255},
	"black":  {0, 0, 0},
	"red":    {255, 64, 64},
	"orange": {255, 165, 0},
	"yellow": {255, 220, 64},
	"green":  {64, 255, 128},
	"cyan":   {64, 224, 255},
	"blue":   {96, 128, 255},
	"purple": {180, 96, 255},
}

// ParseColor turns an opaque particle color token into RGB. Supports
// "#rgb", "#rrggbb" and a small named set; anything else is white.
func ParseColor(token string) RGB {
	if c, ok := namedColors[strings.ToLower(token)]; ok {
		return c
	}
	hex, ok := strings.CutPrefix(token, "#")
	if !ok {
		return white
	}

	switch len(hex) {
	case 3:
		r := hexNibble(hex[0])
		g := hexNibble(hex[1])
		b := hexNibble(hex[2])
		return RGB{r * 17, g * 17, b * 17}
	case 6:
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return white
		}
		return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}
	}
	return white
}

func hexNibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// Dim scales a color toward black by intensity in [0,1], used for opacity
// and trail falloff on terminals without alpha.
func (c RGB) Dim(intensity float64) RGB {
	if intensity < 0 {
		intensity = 0
	} else if intensity > 1 {
		intensity = 1
	}
	return RGB{
		R: uint8(float64(c.R) * intensity),
		G: uint8(float64(c.G) * intensity),
		B: uint8(float64(c.B) * intensity),
	}
}

// Style returns a tcell foreground style for the color.
func (c RGB) Style() tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}
