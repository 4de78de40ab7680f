package configuration

import (
	"fmt"
	"github.com/clambin/ledsweep/sweep"
	"github.com/clambin/ledsweep/version"
	"gopkg.in/alecthomas/kingpin.v2"
	"os"
	"path/filepath"
	"time"
)

type Configuration struct {
	Debug      bool
	ServerPort int
	LEDPaths   []string
	Preview    bool
	StripConfiguration
}

type StripConfiguration struct {
	Length   int
	Interval time.Duration
	Mode     string
	Params   sweep.Params
}

func GetConfigFromArgs(args []string) (Configuration, error) {
	var (
		cfg                    Configuration
		foreground, background string
	)

	a := kingpin.New(filepath.Base(os.Args[0]), "ledsweep")
	a.Version(version.BuildVersion)
	a.HelpFlag.Short('h')
	a.VersionFlag.Short('v')
	a.Flag("debug", "Log debug messages").Short('d').Default("false").BoolVar(&cfg.Debug)
	a.Flag("port", "API listener port").Default("8080").IntVar(&cfg.ServerPort)
	a.Flag("length", "Number of pixels in the segment").Short('n').Default("30").IntVar(&cfg.Length)
	a.Flag("interval", "Delay between two frames").Default("20ms").DurationVar(&cfg.Interval)
	a.Flag("mode", "Sweep mode (smooth, cyclic or oneshot)").Short('m').Default("cyclic").EnumVar(&cfg.Mode, sweep.Modes...)
	a.Flag("speed", "Sweep speed (0-255)").Default("128").IntVar(&cfg.Params.Speed)
	a.Flag("intensity", "Gradient width (0-255)").Default("128").IntVar(&cfg.Params.Intensity)
	a.Flag("foreground", "Foreground color").Default("#ffa000").StringVar(&foreground)
	a.Flag("background", "Background color").Default("#000000").StringVar(&background)
	a.Flag("led-path", "path name to the sysfs directory of a pixel's LED (repeat once per pixel)").StringsVar(&cfg.LEDPaths)
	a.Flag("preview", "Show the strip in the terminal").Default("false").BoolVar(&cfg.Preview)

	if _, err := a.Parse(args); err != nil {
		return cfg, fmt.Errorf("invalid command line arguments: %w", err)
	}

	var err error
	if cfg.Params.Foreground, err = sweep.ParseColor(foreground); err != nil {
		return cfg, fmt.Errorf("foreground: %w", err)
	}
	if cfg.Params.Background, err = sweep.ParseColor(background); err != nil {
		return cfg, fmt.Errorf("background: %w", err)
	}
	if cfg.Length < 0 {
		return cfg, fmt.Errorf("invalid length: %d", cfg.Length)
	}
	if cfg.Interval <= 0 {
		return cfg, fmt.Errorf("invalid interval: %s", cfg.Interval)
	}
	return cfg, nil
}
