package sweep

import (
	"fmt"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is a packed 32-bit pixel color: W<<24 | R<<16 | G<<8 | B
type Color uint32

// RGB creates a Color from its red, green and blue components
func RGB(r, g, b uint8) Color {
	return RGBW(r, g, b, 0)
}

// RGBW creates a Color from its red, green, blue and white components
func RGBW(r, g, b, w uint8) Color {
	return Color(uint32(w)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }
func (c Color) W() uint8 { return uint8(c >> 24) }

// Hex returns the color as #rrggbb. The white channel is dropped.
func (c Color) Hex() string {
	return c.Colorful().Hex()
}

// Colorful converts the color to a colorful.Color
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R()) / 255,
		G: float64(c.G()) / 255,
		B: float64(c.B()) / 255,
	}
}

// ParseColor parses a #rrggbb string
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB(c.RGB255()), nil
}

// Blend linearly interpolates between two colors. amount 0 returns from, amount 255 returns to.
func Blend(from, to Color, amount uint8) Color {
	switch amount {
	case 0:
		return from
	case 255:
		return to
	}
	return RGBW(
		blendChannel(from.R(), to.R(), amount),
		blendChannel(from.G(), to.G(), amount),
		blendChannel(from.B(), to.B(), amount),
		blendChannel(from.W(), to.W(), amount),
	)
}

func blendChannel(from, to, amount uint8) uint8 {
	return uint8((uint32(to)*uint32(amount) + uint32(from)*uint32(255-amount)) >> 8)
}
