package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/wagner-austin/bunny"
	"github.com/wagner-austin/bunny/animation"
	"github.com/wagner-austin/bunny/config"
	"github.com/wagner-austin/bunny/events"
	"github.com/wagner-austin/bunny/timer"
)

type options struct {
	Config   string `short:"c" long:"config"    description:"YAML settings file"`
	Frames   string `short:"f" long:"frames"    description:"Frames directory, one subdirectory per frame set"`
	LogLevel string `short:"l" long:"log-level" description:"Log level (trace, debug, info, warn, error)"`
	LogFile  string `long:"log-file"            description:"Write the log to this file instead of discarding it"`
	Watch    bool   `long:"watch"               description:"Reload frames when the frames directory changes"`
}

func parseCmd() options {
	var opts options
	var cmdParser = flags.NewParser(&opts, flags.Default)
	var err error

	if _, err = cmdParser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if opts.Frames != "" {
		if opts.Frames, err = filepath.Abs(opts.Frames); err != nil {
			panic(err)
		}
	}

	return opts
}

func loadConfig(opts options) (*config.Config, error) {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return nil, err
		}
	}
	if opts.Frames != "" {
		cfg.FramesDir = opts.Frames
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	return cfg, nil
}

// setupLogging keeps the log off the screen: it goes to the log file or
// nowhere.
func setupLogging(cfg *config.Config, logFile string) (io.Closer, error) {
	if logFile == "" {
		return nil, config.ConfigureLogging(cfg.LogLevel, io.Discard)
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	if err := config.ConfigureLogging(cfg.LogLevel, f); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func loadFrames(cfg *config.Config) (*animation.BunnyFrames, error) {
	if cfg.FramesDir == "" {
		return bunny.DefaultFrames(), nil
	}
	return bunny.LoadFrames(cfg.FramesDir)
}

func run(opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logCloser, err := setupLogging(cfg, opts.LogFile)
	if err != nil {
		return err
	}
	if logCloser != nil {
		defer logCloser.Close()
	}

	frames, err := loadFrames(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	esm := events.NewEventSourceMultiplexer()
	defer esm.Close()

	actor := bunny.NewActor(cfg, frames, timer.NewIntervalFactory(esm), esm)
	defer actor.Close()

	r := &renderer{screen: screen}
	actor.On(renderEventName, r.handle)

	sources := []events.EventSource{
		newTerminalEventSource(screen, cfg.Terminal),
		events.NewTickerEventSource("Render", fpsPeriod(cfg.Terminal.FPS), newRenderEvent),
	}
	if opts.Watch && cfg.FramesDir != "" {
		watcher, err := bunny.NewFramesWatcher(cfg.FramesDir)
		if err != nil {
			return err
		}
		sources = append(sources, watcher)
	}
	for _, src := range sources {
		if _, err := actor.AddEventSource(src); err != nil {
			return err
		}
	}

	log.WithField("actor", actor.ID).Info("bunny started")
	return actor.Run()
}

func main() {
	opts := parseCmd()
	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
