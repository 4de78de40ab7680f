package preview

import (
	"context"
	"fmt"
	"github.com/clambin/ledsweep/strip"
	"github.com/clambin/ledsweep/sweep"
	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"sync"
)

// Terminal shows frames on a terminal screen: one cell per pixel on the first row, a status line below it.
type Terminal struct {
	screen tcell.Screen
	lock   sync.Mutex
}

// New creates a Terminal. The screen must already be initialized.
func New(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

// Show draws the frame
func (t *Terminal) Show(frame strip.Frame) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	width, height := t.screen.Size()
	if width == 0 || height == 0 {
		return fmt.Errorf("screen too small: %dx%d", width, height)
	}

	for i, pixel := range frame.Pixels {
		if i >= width {
			break
		}
		t.screen.SetContent(i, 0, ' ', nil, Style(pixel))
	}

	if height > 1 {
		status := []rune(fmt.Sprintf("%-8s %-9s %8.1fs", frame.Mode, frame.Phase, frame.Time.Seconds()))
		for x := 0; x < width; x++ {
			r := ' '
			if x < len(status) {
				r = status[x]
			}
			t.screen.SetContent(x, 1, r, nil, tcell.StyleDefault)
		}
	}

	t.screen.Show()
	return nil
}

// Run handles keyboard input until the context is canceled. quit is called when the user presses Escape or Ctrl-C.
func (t *Terminal) Run(ctx context.Context, quit func()) {
	log.Info("preview started")
	go func() {
		<-ctx.Done()
		t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()
	for ctx.Err() == nil {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
				quit()
			}
		case *tcell.EventResize:
			t.lock.Lock()
			t.screen.Sync()
			t.lock.Unlock()
		}
	}
	log.Info("preview stopped")
}

// Style returns the cell style showing a pixel
func Style(c sweep.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R()), int32(c.G()), int32(c.B())))
}
