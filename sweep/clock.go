package sweep

import "time"

const (
	// ProgressMax is the fixed-point value for a completed phase
	ProgressMax = 65535

	// HoldTime is how long the cyclic sweep keeps the strip filled before emptying it
	HoldTime = time.Second

	baseCycleTime = 750 * time.Millisecond
	speedStep     = 150 * time.Millisecond
)

// CycleTime returns the duration of one sweep for the given speed. Speed 255 is the fastest (750ms),
// speed 0 the slowest (39s). Out-of-range speeds are clamped.
func CycleTime(speed int) time.Duration {
	return baseCycleTime + time.Duration(255-int(clampParam(speed)))*speedStep
}

// Progress converts the elapsed time within a phase into a fixed-point value in [0, ProgressMax].
// Overruns are clamped.
func Progress(elapsed, duration time.Duration) uint16 {
	if elapsed <= 0 || duration <= 0 {
		return 0
	}
	if elapsed >= duration {
		return ProgressMax
	}
	return uint16(int64(elapsed) * ProgressMax / int64(duration))
}

func clampParam(value int) uint8 {
	if value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}
	return uint8(value)
}

func since(start, now time.Duration) time.Duration {
	if now < start {
		return 0
	}
	return now - start
}
