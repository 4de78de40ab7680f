package sweep

const halfProgress = ProgressMax / 2

// GradientWidth maps intensity (0-255) onto a gradient width between 1 and n/2 pixels
func GradientWidth(intensity int, n int) int {
	width := remap(int(clampParam(intensity)), 0, 255, 1, n/2)
	if width < 1 {
		width = 1
	}
	return width
}

// BoundedPosition maps progress onto a sweep position within [0, n-1]
func BoundedPosition(progress uint16, n int) int {
	return clampPosition(int(uint64(progress)*uint64(n)/(ProgressMax+1)), n)
}

// ExtendedPosition maps progress onto [0, n-1+width], so the trailing gradient leaves the strip
// before the sweep completes
func ExtendedPosition(progress uint16, n int, width int) int {
	end := n - 1 + width
	if end < 0 {
		return 0
	}
	return int(uint64(progress) * uint64(end) / ProgressMax)
}

// TrianglePosition maps progress onto a back-and-forth sweep: forward during the first half, backward during the second.
func TrianglePosition(progress uint16, n int) (pos int, reverse bool) {
	p := int(progress)
	if p <= halfProgress {
		return clampPosition(p*n/(halfProgress+1), n), false
	}
	remaining := halfProgress - (p - halfProgress)
	if remaining < 0 {
		remaining = 0
	}
	return clampPosition(remaining*n/(halfProgress+1), n), true
}

func clampPosition(pos, n int) int {
	if pos >= n {
		pos = n - 1
	}
	if pos < 0 {
		pos = 0
	}
	return pos
}

// remap is Arduino's map() for integers
func remap(x, inMin, inMax, outMin, outMax int) int {
	return (x-inMin)*(outMax-outMin)/(inMax-inMin) + outMin
}
