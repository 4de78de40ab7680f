package main

import (
	"context"
	"fmt"
	"github.com/clambin/ledsweep/configuration"
	"github.com/clambin/ledsweep/driver"
	"github.com/clambin/ledsweep/led"
	"github.com/clambin/ledsweep/preview"
	"github.com/clambin/ledsweep/server"
	"github.com/clambin/ledsweep/strip"
	"github.com/clambin/ledsweep/version"
	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

func main() {
	cfg, err := configuration.GetConfigFromArgs(os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log.WithField("version", version.BuildVersion).Info("starting")
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var sinks []driver.Sink
	if cfg.Preview {
		var screen tcell.Screen
		if screen, err = tcell.NewScreen(); err == nil {
			err = screen.Init()
		}
		if err != nil {
			log.WithError(err).Fatal("failed to open terminal")
		}
		defer screen.Fini()
		// log lines would garble the preview
		log.SetOutput(io.Discard)

		p := preview.New(screen)
		go p.Run(ctx, cancel)
		sinks = append(sinks, p)
	}

	if err = run(ctx, cfg, sinks...); err != nil {
		log.WithError(err).Error("failed to run ledsweep")
	}
	log.Info("exiting")
}

func run(ctx context.Context, cfg configuration.Configuration, sinks ...driver.Sink) error {
	s, err := strip.New(cfg.StripConfiguration)
	if err != nil {
		return err
	}

	srv := server.New(cfg.ServerPort, s)
	sinks = append(sinks, srv)
	if len(cfg.LEDPaths) > 0 {
		sinks = append(sinks, &led.Setter{LEDPaths: cfg.LEDPaths})
	}
	d := driver.New(s, sinks...)

	wg := sync.WaitGroup{}
	wg.Add(2)
	go func() {
		s.Run(ctx)
		wg.Done()
	}()
	go func() {
		d.Run(ctx)
		wg.Done()
	}()

	err = srv.Run(ctx)
	wg.Wait()
	return err
}
