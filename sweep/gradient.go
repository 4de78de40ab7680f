package sweep

// MinFade is the lowest blend weight painted inside the gradient. Lower duty cycles flicker on common LED drivers.
const MinFade = 20

// Direction selects which side of the sweep position is still background
type Direction int

const (
	// Forward paints background ahead of the position (i > pos) and foreground behind it. Used when filling.
	Forward Direction = iota
	// Reverse paints background behind the position (i < pos) and foreground ahead of it. Used when emptying.
	Reverse
)

// Zone classifies a pixel relative to the sweep position
type Zone int

const (
	// Ahead pixels are painted background
	Ahead Zone = iota
	// Gradient pixels blend from background to foreground
	Gradient
	// Solid pixels are painted foreground
	Solid
)

// Classify determines the zone of pixel i, given the sweep position and gradient width
func Classify(i, pos, width int, dir Direction) Zone {
	d, ahead := distance(i, pos, dir)
	switch {
	case ahead:
		return Ahead
	case d >= normalizeWidth(width):
		return Solid
	default:
		return Gradient
	}
}

// Fade returns the blend weight of a gradient pixel at distance d from the front
func Fade(d, width int) uint8 {
	width = normalizeWidth(width)
	if d < 0 {
		d = 0
	}
	if d >= width {
		return 255
	}
	fade := 255 * d / width
	if fade < MinFade {
		fade = MinFade
	}
	return uint8(fade)
}

// Render paints the gradient sweep into pixels
func Render(pixels []Color, pos, width int, fg, bg Color, dir Direction) {
	width = normalizeWidth(width)
	for i := range pixels {
		switch Classify(i, pos, width, dir) {
		case Ahead:
			pixels[i] = bg
		case Solid:
			pixels[i] = fg
		default:
			d, _ := distance(i, pos, dir)
			pixels[i] = Blend(bg, fg, Fade(d, width))
		}
	}
}

// Fill paints every pixel with the same color
func Fill(pixels []Color, c Color) {
	for i := range pixels {
		pixels[i] = c
	}
}

func distance(i, pos int, dir Direction) (d int, ahead bool) {
	if dir == Reverse {
		return i - pos, i < pos
	}
	return pos - i, i > pos
}

func normalizeWidth(width int) int {
	if width < 1 {
		return 1
	}
	return width
}
