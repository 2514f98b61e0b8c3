package server

import (
	"fmt"
	"log/slog"
	"net"

	"github.com/adrianliechti/serve/app"
	"github.com/adrianliechti/serve/pkg/cli"
	"github.com/adrianliechti/serve/pkg/static"
)

func Flags() []cli.Flag {
	return []cli.Flag{
		app.PortFlag(),

		&cli.StringFlag{
			Name:    "dir",
			Usage:   "directory to serve (default: working directory)",
			EnvVars: []string{"SERVE_DIR"},
		},

		&cli.StringFlag{
			Name:    "index",
			Usage:   "index file name",
			EnvVars: []string{"SERVE_INDEX"},
			Value:   static.DefaultIndex,
		},

		&cli.BoolFlag{
			Name:    "verbose",
			Usage:   "log every request",
			EnvVars: []string{"SERVE_VERBOSE"},
		},
	}
}

func Action(c *cli.Context) error {
	if c.Bool("verbose") {
		app.LogLevel.Set(slog.LevelDebug)
	}

	port, err := app.Port(c)

	if err != nil {
		return err
	}

	s, err := static.New(static.Config{
		Root:  c.String("dir"),
		Index: c.String("index"),
	})

	if err != nil {
		return err
	}

	l, err := net.Listen("tcp", fmt.Sprintf(":%d", port))

	if err != nil {
		return err
	}

	port = l.Addr().(*net.TCPAddr).Port

	fmt.Fprintf(c.App.Writer, "Server running at http://localhost:%d\n", port)

	return s.Serve(c.Context, l)
}
