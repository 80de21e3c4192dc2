package main

import (
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"

	"github.com/wagner-austin/bunny"
	"github.com/wagner-austin/bunny/animation"
	"github.com/wagner-austin/bunny/config"
)

const (
	screenWidth  = 480
	screenHeight = 320
)

type options struct {
	Config   string `short:"c" long:"config"    description:"YAML settings file"`
	Frames   string `short:"f" long:"frames"    description:"Frames directory, one subdirectory per frame set"`
	LogLevel string `short:"l" long:"log-level" description:"Log level (trace, debug, info, warn, error)"`
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

func loadConfig(opts options) *config.Config {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			log.Fatal(err)
		}
	}
	if opts.Frames != "" {
		cfg.FramesDir = opts.Frames
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}
	return cfg
}

func main() {
	opts := parseCmd()
	cfg := loadConfig(opts)
	if err := config.ConfigureLogging(cfg.LogLevel, nil); err != nil {
		log.Fatal(err)
	}

	var frames *animation.BunnyFrames
	if cfg.FramesDir != "" {
		var err error
		if frames, err = bunny.LoadFrames(cfg.FramesDir); err != nil {
			log.Fatal(err)
		}
	}

	g := NewGame(cfg, frames)
	defer g.Close()

	if opts.Watch && cfg.FramesDir != "" {
		watcher, err := bunny.NewFramesWatcher(cfg.FramesDir)
		if err != nil {
			log.Fatal(err)
		}
		g.watcher = watcher
	}

	ebiten.SetWindowSize(screenWidth*2, screenHeight*2)
	ebiten.SetWindowTitle("bunny")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
