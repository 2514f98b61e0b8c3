package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adrianliechti/serve/app"
	"github.com/adrianliechti/serve/app/server"
	"github.com/adrianliechti/serve/pkg/cli"

	"github.com/lmittmann/tint"
)

var version string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      app.LogLevel,
		TimeFormat: time.Kitchen,
	})))

	app := initApp()

	if err := app.RunContext(ctx, os.Args); err != nil {
		cli.Fatal(err)
	}
}

func initApp() *cli.App {
	return &cli.App{
		Name:  "serve",
		Usage: "serve the working directory over HTTP with caching disabled",

		Version: version,

		HideHelpCommand: true,

		Flags:  server.Flags(),
		Action: server.Action,
	}
}
