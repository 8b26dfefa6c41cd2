package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"ovalplayer/internal/app"
	"ovalplayer/internal/config"
	"ovalplayer/internal/controller"
	"ovalplayer/internal/snapshot"
)

func main() {
	opts, err := config.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "oval: %v\n", err)
		os.Exit(2)
	}
	controller.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: opts.LogLevel})))

	if opts.SnapshotPath != "" {
		if err := snapshot.Render(context.Background(), opts); err != nil {
			fmt.Fprintf(os.Stderr, "oval snapshot failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	application := app.New(opts)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "oval failed: %v\n", err)
		os.Exit(1)
	}
}
