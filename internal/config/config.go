// Package config parses the oval's command-line options.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

var (
	ErrInvalidSize     = errors.New("config: window size must be positive")
	ErrInvalidWorkers  = errors.New("config: workers must not be negative")
	ErrInvalidTicks    = errors.New("config: snapshot ticks must not be negative")
	ErrInvalidLogLevel = errors.New("config: unknown log level")
)

// TicksPerSecond is the host update rate; it matches the controller's fixed
// tick step.
const TicksPerSecond = 60

type Options struct {
	Width         int
	Height        int
	Floating      bool
	Workers       int
	LogLevel      slog.Level
	SnapshotPath  string
	SnapshotTicks int
	MediaPath     string
}

func Defaults() Options {
	return Options{
		Width:    450,
		Height:   800,
		Floating: true,
		LogLevel: slog.LevelWarn,
	}
}

// Parse reads options from args (without the program name). Usage and
// parse errors are written to output.
func Parse(args []string, output io.Writer) (Options, error) {
	opts := Defaults()
	fs := flag.NewFlagSet("oval", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.IntVar(&opts.Width, "width", opts.Width, "Window width in pixels")
	fs.IntVar(&opts.Height, "height", opts.Height, "Window height in pixels")
	fs.BoolVar(&opts.Floating, "floating", opts.Floating, "Keep the window above other windows")
	fs.IntVar(&opts.Workers, "workers", opts.Workers, "Shading goroutines (0 uses GOMAXPROCS)")
	level := fs.String("log-level", "warn", "Log level: debug, info, warn or error")
	fs.StringVar(&opts.SnapshotPath, "snapshot", "", "Render one frame to this PNG file and exit")
	fs.IntVar(&opts.SnapshotTicks, "snapshot-ticks", 0, "Timer ticks to advance before the snapshot")
	fs.StringVar(&opts.MediaPath, "media", "", "Video file to load at startup")

	if err := fs.Parse(args); err != nil {
		return Options{}, fmt.Errorf("parse flags: %w", err)
	}

	lvl, err := ParseLevel(*level)
	if err != nil {
		return Options{}, err
	}
	opts.LogLevel = lvl

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.Width, o.Height)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, o.Workers)
	}
	if o.SnapshotTicks < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTicks, o.SnapshotTicks)
	}
	return nil
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLogLevel, s)
}
