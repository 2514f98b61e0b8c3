package app

import (
	"fmt"
	"os"
	"strconv"

	"github.com/adrianliechti/serve/pkg/cli"
)

const DefaultPort = 8000

// PortFlag reads the listen port from --port or $PORT as a decimal number.
// A value that is not an integer fails the run with a parse error.
func PortFlag() *cli.IntFlag {
	return &cli.IntFlag{
		Name:    "port",
		Usage:   "port to listen on",
		EnvVars: []string{"PORT"},
		Value:   DefaultPort,
		Base:    10,
	}
}

// Port returns the resolved port. An empty but present $PORT is rejected,
// the flag parser would otherwise treat it as unset.
func Port(c *cli.Context) (int, error) {
	if !c.IsSet("port") {
		if val, ok := os.LookupEnv("PORT"); ok {
			if _, err := strconv.Atoi(val); err != nil {
				return 0, fmt.Errorf("could not parse %q as int value from env var PORT for flag port: %w", val, err)
			}
		}
	}

	return c.Int("port"), nil
}
