package led

import (
	"fmt"
	"github.com/clambin/ledsweep/strip"
	"github.com/clambin/ledsweep/sweep"
	log "github.com/sirupsen/logrus"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Setter drives one sysfs LED per pixel. Each LED's brightness is set to the highest channel of its pixel.
// Pixels without a matching LED are ignored.
type Setter struct {
	LEDPaths []string
}

// Show writes the frame to the LEDs
func (setter *Setter) Show(frame strip.Frame) error {
	for i := range setter.LEDPaths {
		if i >= len(frame.Pixels) {
			break
		}
		if err := setter.SetBrightness(i, Brightness(frame.Pixels[i])); err != nil {
			return err
		}
	}
	return nil
}

// SetBrightness sets the brightness of the LED at the given index
func (setter *Setter) SetBrightness(index int, value uint8) error {
	fullPath := filepath.Join(setter.LEDPaths[index], "brightness")
	err := os.WriteFile(fullPath, []byte(strconv.Itoa(int(value))), 0640)
	if err != nil {
		err = fmt.Errorf("led %d: %w", index, err)
	}
	log.WithFields(log.Fields{
		"err":   err,
		"led":   index,
		"value": value,
	}).Trace("SetBrightness")
	return err
}

// GetBrightness returns the brightness of the LED at the given index
func (setter *Setter) GetBrightness(index int) (uint8, error) {
	fullPath := filepath.Join(setter.LEDPaths[index], "brightness")
	content, err := os.ReadFile(fullPath)
	if err != nil {
		return 0, fmt.Errorf("led %d: %w", index, err)
	}
	value, err := strconv.Atoi(strings.TrimSpace(string(content)))
	if err != nil || value < 0 || value > 255 {
		return 0, fmt.Errorf("led %d: invalid brightness %q", index, content)
	}
	return uint8(value), nil
}

// Brightness returns the highest channel of a pixel
func Brightness(c sweep.Color) uint8 {
	brightness := c.R()
	for _, channel := range []uint8{c.G(), c.B(), c.W()} {
		if channel > brightness {
			brightness = channel
		}
	}
	return brightness
}
